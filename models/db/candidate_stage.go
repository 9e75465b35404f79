package dbmodels

import (
	"time"

	"recruitment-backend/models"
)

// CandidateStage is one candidate's progress against one stage template,
// instantiated at enrollment time. StageName and StageOrder are snapshots
// of the template; later template edits do not rewrite them.
type CandidateStage struct {
	BaseModel
	CandidateID string `gorm:"type:varchar(36);index"`
	StageID     string `gorm:"type:varchar(36)"`
	StageName   string `gorm:"type:varchar(255)"`
	StageOrder  int
	Status      models.StageProgressStatus `gorm:"type:varchar(50)"`
	Score       *int
	Feedback    string
	CompletedAt *time.Time
}
