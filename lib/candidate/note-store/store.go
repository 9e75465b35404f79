package notestore

import (
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Notes are append-only; there is no update or single-note delete.
type Provider interface {
	Create(rec dbmodels.CandidateNote) (id string, err error)
	ListByCandidate(candidateID string) (list []dbmodels.CandidateNote, err error)
	DeleteByCandidate(candidateID string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.CandidateNote) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.CandidateNote, err error) {
	list = []dbmodels.CandidateNote{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return list, nil
}

func (i impl) DeleteByCandidate(candidateID string) error {
	return i.db.
		Where("candidate_id = ?", candidateID).
		Delete(&dbmodels.CandidateNote{}).
		Error
}
