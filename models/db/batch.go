package dbmodels

import (
	"recruitment-backend/models"
)

// Batch groups candidates for one job opening and time window. JobTitle is
// denormalized, not a foreign key; candidate counts are maintained by HR by
// hand and carry no referential link to candidate rows.
type Batch struct {
	BaseModel
	Name              string             `gorm:"type:varchar(255)"`
	JobTitle          string             `gorm:"type:varchar(255)"`
	Status            models.BatchStatus `gorm:"type:varchar(50);index"`
	StartDate         string             `gorm:"type:varchar(20)"`
	EndDate           string             `gorm:"type:varchar(20)"`
	MaxCandidates     int
	CurrentCandidates int
	CompletionRate    int
	AverageTime       int
}
