package job

import (
	"recruitment-backend/db"
	jobstore "recruitment-backend/lib/job/store"
	initchecker "recruitment-backend/lib/utils/init-checker"
	"recruitment-backend/models"
	jobapimodels "recruitment-backend/models/api/job"
	dbmodels "recruitment-backend/models/db"

	"github.com/lib/pq"
	"github.com/pkg/errors"
)

type Provider interface {
	Create(data jobapimodels.JobData) (id string, err error)
	Update(id string, data jobapimodels.JobData) error
	GetByID(id string) (jobapimodels.JobView, error)
	List() ([]jobapimodels.JobView, error)
	ListOpen() ([]jobapimodels.JobView, error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store: jobstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
	)
	Instance = instance
}

type impl struct {
	store jobstore.Provider
}

func (i impl) Create(data jobapimodels.JobData) (string, error) {
	rec := dbmodels.Job{
		Title:        data.Title,
		Department:   data.Department,
		Location:     data.Location,
		Type:         data.Type,
		Level:        data.Level,
		Status:       data.Status,
		Description:  data.Description,
		Requirements: pq.StringArray(data.Requirements),
		Benefits:     data.Benefits,
		Salary:       data.Salary,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data jobapimodels.JobData) error {
	updMap := map[string]interface{}{
		"title":        data.Title,
		"department":   data.Department,
		"location":     data.Location,
		"type":         data.Type,
		"level":        data.Level,
		"status":       data.Status,
		"description":  data.Description,
		"requirements": pq.StringArray(data.Requirements),
		"benefits":     data.Benefits,
		"salary":       data.Salary,
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, errors.New("job not found")
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) List() ([]jobapimodels.JobView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, nil
}

func (i impl) ListOpen() ([]jobapimodels.JobView, error) {
	recList, err := i.store.ListByStatus(models.JobStatusOpen)
	if err != nil {
		return nil, err
	}
	result := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, jobapimodels.JobConvert(rec))
	}
	return result, nil
}

// Delete removes the job only. Batches referencing its title keep the
// denormalized value; no cascade.
func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}
