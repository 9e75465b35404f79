package stageapimodels

import (
	"time"

	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
)

type StageData struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // expected duration in days
}

func (s StageData) Validate() error {
	if s.Name == "" {
		return errors.New("stage name is required")
	}
	if s.Duration < 0 {
		return errors.New("duration must not be negative")
	}
	return nil
}

type StageOrderData struct {
	Direction string `json:"direction"` // up/down
}

func (s StageOrderData) Validate() error {
	if s.Direction != "up" && s.Direction != "down" {
		return errors.New("direction must be up or down")
	}
	return nil
}

type StageView struct {
	ID string `json:"id"`
	StageData
	Order     int       `json:"order"`
	CreatedAt time.Time `json:"created_at"`
}

func StageConvert(rec dbmodels.StageTemplate) StageView {
	return StageView{
		ID: rec.ID,
		StageData: StageData{
			Name:        rec.Name,
			Description: rec.Description,
			Duration:    rec.Duration,
		},
		Order:     rec.StageOrder,
		CreatedAt: rec.CreatedAt,
	}
}
