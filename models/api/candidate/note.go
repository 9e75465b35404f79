package candidateapimodels

import (
	"time"

	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
)

type NoteData struct {
	Note      string `json:"note"`
	CreatedBy string `json:"created_by,omitempty"`
}

func (n NoteData) Validate() error {
	if n.Note == "" {
		return errors.New("note text is required")
	}
	return nil
}

type NoteView struct {
	ID        string    `json:"id"`
	Note      string    `json:"note"`
	CreatedBy string    `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func NoteConvert(rec dbmodels.CandidateNote) NoteView {
	return NoteView{
		ID:        rec.ID,
		Note:      rec.Note,
		CreatedBy: rec.CreatedBy,
		CreatedAt: rec.CreatedAt,
	}
}
