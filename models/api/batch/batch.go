package batchapimodels

import (
	"time"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

type BatchData struct {
	Name              string             `json:"name"`
	JobTitle          string             `json:"job_title"`
	Status            models.BatchStatus `json:"status"`
	StartDate         string             `json:"start_date"`
	EndDate           string             `json:"end_date"`
	MaxCandidates     int                `json:"max_candidates"`
	CurrentCandidates int                `json:"current_candidates"`
	CompletionRate    int                `json:"completion_rate"`
	AverageTime       int                `json:"average_time"`
}

func (b BatchData) Validate() error {
	if b.Name == "" {
		return errors.New("batch name is required")
	}
	if !b.Status.IsValid() {
		return errors.New("unknown batch status")
	}
	if b.MaxCandidates < 0 || b.CurrentCandidates < 0 {
		return errors.New("candidate counts must not be negative")
	}
	if b.MaxCandidates > 0 && b.CurrentCandidates > b.MaxCandidates {
		return errors.New("current candidates exceed batch capacity")
	}
	if b.CompletionRate < 0 || b.CompletionRate > 100 {
		return errors.New("completion rate must be between 0 and 100")
	}
	if err := validateDate(b.StartDate); err != nil {
		return err
	}
	return validateDate(b.EndDate)
}

func validateDate(value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return errors.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return nil
}

type BatchView struct {
	ID string `json:"id"`
	BatchData
	CreatedAt time.Time `json:"created_at"`
}

func BatchConvert(rec dbmodels.Batch) BatchView {
	return BatchView{
		ID: rec.ID,
		BatchData: BatchData{
			Name:              rec.Name,
			JobTitle:          rec.JobTitle,
			Status:            rec.Status,
			StartDate:         rec.StartDate,
			EndDate:           rec.EndDate,
			MaxCandidates:     rec.MaxCandidates,
			CurrentCandidates: rec.CurrentCandidates,
			CompletionRate:    rec.CompletionRate,
			AverageTime:       rec.AverageTime,
		},
		CreatedAt: rec.CreatedAt,
	}
}

// AssignmentData links pipeline stages to a batch for the current session.
type AssignmentData struct {
	StageIDs []string `json:"stage_ids"`
}

func (a AssignmentData) Validate() error {
	if len(a.StageIDs) == 0 {
		return errors.New("at least one stage is required")
	}
	return nil
}

type AssignmentView struct {
	BatchID string `json:"batch_id"`
	StageID string `json:"stage_id"`
	Order   int    `json:"order"`
}
