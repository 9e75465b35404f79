package dbmodels

import (
	"recruitment-backend/models"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	Title        string           `gorm:"type:varchar(255)"`
	Department   string           `gorm:"type:varchar(255)"`
	Location     string           `gorm:"type:varchar(255)"`
	Type         models.JobType   `gorm:"type:varchar(50)"`
	Level        models.JobLevel  `gorm:"type:varchar(50)"`
	Status       models.JobStatus `gorm:"type:varchar(50);index"`
	Description  string
	Requirements pq.StringArray `gorm:"type:text[]"`
	Benefits     string
	Salary       string `gorm:"type:varchar(255)"`
}
