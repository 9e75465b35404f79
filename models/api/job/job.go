package jobapimodels

import (
	"time"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
)

type JobData struct {
	Title        string           `json:"title"`
	Department   string           `json:"department"`
	Location     string           `json:"location"`
	Type         models.JobType   `json:"type"`
	Level        models.JobLevel  `json:"level,omitempty"`
	Status       models.JobStatus `json:"status"`
	Description  string           `json:"description"`
	Requirements []string         `json:"requirements"`
	Benefits     string           `json:"benefits,omitempty"`
	Salary       string           `json:"salary,omitempty"`
}

func (j JobData) Validate() error {
	if j.Title == "" {
		return errors.New("job title is required")
	}
	if j.Department == "" {
		return errors.New("department is required")
	}
	if !j.Type.IsValid() {
		return errors.New("unknown employment type")
	}
	if !j.Status.IsValid() {
		return errors.New("unknown job status")
	}
	return nil
}

type JobView struct {
	ID string `json:"id"`
	JobData
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func JobConvert(rec dbmodels.Job) JobView {
	return JobView{
		ID: rec.ID,
		JobData: JobData{
			Title:        rec.Title,
			Department:   rec.Department,
			Location:     rec.Location,
			Type:         rec.Type,
			Level:        rec.Level,
			Status:       rec.Status,
			Description:  rec.Description,
			Requirements: []string(rec.Requirements),
			Benefits:     rec.Benefits,
			Salary:       rec.Salary,
		},
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
