package trackingapimodels

import (
	"time"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
)

type FeedbackData struct {
	Score    *int   `json:"score,omitempty"`
	Feedback string `json:"feedback,omitempty"`
}

func (f FeedbackData) Validate() error {
	if f.Score != nil && (*f.Score < 0 || *f.Score > 100) {
		return errors.New("score must be between 0 and 100")
	}
	if f.Score == nil && f.Feedback == "" {
		return errors.New("nothing to record")
	}
	return nil
}

type StageProgressView struct {
	ID          string                     `json:"id"`
	CandidateID string                     `json:"candidate_id"`
	StageID     string                     `json:"stage_id"`
	StageName   string                     `json:"stage_name"`
	StageOrder  int                        `json:"stage_order"`
	Status      models.StageProgressStatus `json:"status"`
	Score       *int                       `json:"score,omitempty"`
	Feedback    string                     `json:"feedback,omitempty"`
	CompletedAt *time.Time                 `json:"completed_at,omitempty"`
	CreatedAt   time.Time                  `json:"created_at"`
	UpdatedAt   time.Time                  `json:"updated_at"`
}

func StageProgressConvert(rec dbmodels.CandidateStage) StageProgressView {
	return StageProgressView{
		ID:          rec.ID,
		CandidateID: rec.CandidateID,
		StageID:     rec.StageID,
		StageName:   rec.StageName,
		StageOrder:  rec.StageOrder,
		Status:      rec.Status,
		Score:       rec.Score,
		Feedback:    rec.Feedback,
		CompletedAt: rec.CompletedAt,
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}
}

// AdvanceResult reports what Advance did with the candidate's pipeline.
type AdvanceResult struct {
	CompletedStage   string `json:"completed_stage"`
	NextStage        string `json:"next_stage,omitempty"`
	ProcessCompleted bool   `json:"process_completed"`
}
