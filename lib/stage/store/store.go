package stagestore

import (
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Provider interface {
	Create(rec dbmodels.StageTemplate) (id string, err error)
	Update(id string, updMap map[string]interface{}) error
	GetByID(id string) (*dbmodels.StageTemplate, error)
	List() (list []dbmodels.StageTemplate, err error)
	Delete(id string) error
	MaxOrder() (order int, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.StageTemplate) (id string, err error) {
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
		Model(&dbmodels.StageTemplate{}).
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

func (i impl) GetByID(id string) (*dbmodels.StageTemplate, error) {
	rec := dbmodels.StageTemplate{}
	err := i.db.
		Model(&dbmodels.StageTemplate{}).
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

func (i impl) List() (list []dbmodels.StageTemplate, err error) {
	list = []dbmodels.StageTemplate{}
	err = i.db.
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

func (i impl) Delete(id string) error {
	delRec := dbmodels.StageTemplate{
		BaseModel: dbmodels.BaseModel{ID: id},
	}
	return i.db.
		Delete(&delRec).
		Error
}

func (i impl) MaxOrder() (order int, err error) {
	type result struct {
		MaxOrder int
	}
	res := result{}
	err = i.db.Table("stage_templates").
		Select("max(stage_order) as max_order").Find(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return res.MaxOrder, nil
}
