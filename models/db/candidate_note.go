package dbmodels

// CandidateNote is append-only; notes are never edited or removed.
type CandidateNote struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`
	Note        string
	CreatedBy   string `gorm:"type:varchar(255)"`
}
