package candidateapimodels

import (
	"regexp"
	"time"

	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type CandidateData struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Location   string `json:"location,omitempty"`
	Position   string `json:"position"`
	Experience string `json:"experience,omitempty"`
	Motivation string `json:"motivation,omitempty"`
}

func (c CandidateData) Validate() error {
	if c.Name == "" {
		return errors.New("candidate name is required")
	}
	if c.Email == "" {
		return errors.New("email is required")
	}
	if !emailRegex.MatchString(c.Email) {
		return errors.New("malformed email address")
	}
	if c.Phone == "" {
		return errors.New("phone is required")
	}
	if c.Position == "" {
		return errors.New("desired position is required")
	}
	return nil
}

type CandidateStatusData struct {
	Status models.CandidateStatus `json:"status"`
}

func (c CandidateStatusData) Validate() error {
	if !c.Status.IsValid() {
		return errors.New("unknown candidate status")
	}
	return nil
}

type CandidateView struct {
	ID string `json:"id"`
	CandidateData
	ResumeUrl    string                 `json:"resume_url,omitempty"`
	Status       models.CandidateStatus `json:"status"`
	CurrentStage string                 `json:"current_stage"`
	CreatedAt    time.Time              `json:"created_at"`
	UpdatedAt    time.Time              `json:"updated_at"`
}

func CandidateConvert(rec dbmodels.Candidate) CandidateView {
	return CandidateView{
		ID: rec.ID,
		CandidateData: CandidateData{
			Name:       rec.Name,
			Email:      rec.Email,
			Phone:      rec.Phone,
			Location:   rec.Location,
			Position:   rec.Position,
			Experience: rec.Experience,
			Motivation: rec.Motivation,
		},
		ResumeUrl:    rec.ResumeUrl,
		Status:       rec.Status,
		CurrentStage: rec.CurrentStage,
		CreatedAt:    rec.CreatedAt,
		UpdatedAt:    rec.UpdatedAt,
	}
}
