package stage

import (
	"recruitment-backend/db"
	stagestore "recruitment-backend/lib/stage/store"
	initchecker "recruitment-backend/lib/utils/init-checker"
	stageapimodels "recruitment-backend/models/api/stage"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data stageapimodels.StageData) (id string, err error)
	Update(id string, data stageapimodels.StageData) error
	List() ([]stageapimodels.StageView, error)
	// ChangeOrder swaps the stage with its neighbor and renumbers the
	// whole registry 1..N. Existing candidate stage progress records are
	// never touched; only future enrollments see the new order.
	ChangeOrder(id string, direction string) error
	// Delete removes the template without renumbering the rest and
	// without cascading to already-enrolled candidates.
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: stagestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store stagestore.Provider
}

func (i impl) Create(data stageapimodels.StageData) (string, error) {
	maxOrder, err := i.store.MaxOrder()
	if err != nil {
		return "", err
	}
	rec := dbmodels.StageTemplate{
		Name:        data.Name,
		Description: data.Description,
		Duration:    data.Duration,
		StageOrder:  maxOrder + 1,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data stageapimodels.StageData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("stage not found")
	}
	updMap := map[string]interface{}{
		"name":        data.Name,
		"description": data.Description,
		"duration":    data.Duration,
	}
	return i.store.Update(id, updMap)
}

func (i impl) List() ([]stageapimodels.StageView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]stageapimodels.StageView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, stageapimodels.StageConvert(rec))
	}
	return result, nil
}

func (i impl) ChangeOrder(id string, direction string) error {
	list, err := i.store.List()
	if err != nil {
		return err
	}
	idx := -1
	for k, rec := range list {
		if rec.ID == id {
			idx = k
			break
		}
	}
	if idx == -1 {
		return errors.New("stage not found")
	}
	if (direction == "up" && idx == 0) || (direction == "down" && idx == len(list)-1) {
		return nil
	}
	target := idx - 1
	if direction == "down" {
		target = idx + 1
	}
	list[idx], list[target] = list[target], list[idx]
	// full renumber keeps the order values dense after past deletes
	for k, rec := range list {
		newOrder := k + 1
		if rec.StageOrder == newOrder {
			continue
		}
		err = i.store.Update(rec.ID, map[string]interface{}{"stage_order": newOrder})
		if err != nil {
			return errors.Wrapf(err, "reorder of stage %s failed", rec.ID)
		}
	}
	return nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("stage not found")
	}
	return i.store.Delete(id)
}
