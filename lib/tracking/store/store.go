package trackingstore

import (
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.CandidateStage) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.CandidateStage, error)
	ListByCandidate(candidateID string) (list []dbmodels.CandidateStage, err error)
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

func (i impl) Create(rec dbmodels.CandidateStage) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.CandidateStage{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("record not found")
	}
	return nil
}

func (i impl) GetByID(id string) (*dbmodels.CandidateStage, error) {
	rec := dbmodels.CandidateStage{}
	err := i.db.
		Model(&dbmodels.CandidateStage{}).
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) ListByCandidate(candidateID string) (list []dbmodels.CandidateStage, err error) {
	list = []dbmodels.CandidateStage{}
	err = i.db.
		Where("candidate_id = ?", candidateID).
		Order("stage_order asc").
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
		Delete(&dbmodels.CandidateStage{}).
		Error
}
