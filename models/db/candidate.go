package dbmodels

import (
	"recruitment-backend/models"
)

type Candidate struct {
	BaseModel
	Name       string `gorm:"type:varchar(255)"`
	Email      string `gorm:"type:varchar(255);index"`
	Phone      string `gorm:"type:varchar(255)"`
	Location   string `gorm:"type:varchar(255)"` // free text "city, state"
	Position   string `gorm:"type:varchar(255)"`
	Experience string
	Motivation string
	ResumeUrl  string
	Status     models.CandidateStatus `gorm:"type:varchar(50);index"`
	// CurrentStage mirrors the name of the candidate's current stage
	// progress record. Written only by enrollment and Advance.
	CurrentStage string `gorm:"type:varchar(255)"`
}
