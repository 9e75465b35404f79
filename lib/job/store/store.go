package jobstore

import (
	"recruitment-backend/models"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.Job, error)
	List() (list []dbmodels.Job, err error)
	ListByStatus(status models.JobStatus) (list []dbmodels.Job, err error)
	Delete(id string) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
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
		Model(&dbmodels.Job{}).
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

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Model(&dbmodels.Job{}).
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

func (i impl) List() (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
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

func (i impl) ListByStatus(status models.JobStatus) (list []dbmodels.Job, err error) {
	list = []dbmodels.Job{}
	err = i.db.
		Where("status = ?", status).
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

func (i impl) Delete(id string) error {
	delRec := dbmodels.Job{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&delRec).
		Error
}
