package batch

import (
	"recruitment-backend/db"
	assignmentstore "recruitment-backend/lib/batch/assignment-store"
	batchstore "recruitment-backend/lib/batch/store"
	initchecker "recruitment-backend/lib/utils/init-checker"
	batchapimodels "recruitment-backend/models/api/batch"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	Create(data batchapimodels.BatchData) (id string, err error)
	Update(id string, data batchapimodels.BatchData) error
	GetByID(id string) (batchapimodels.BatchView, error)
	List() ([]batchapimodels.BatchView, error)
	Delete(id string) error
	AssignStages(batchID string, data batchapimodels.AssignmentData) error
	ListAssignments(batchID string) ([]batchapimodels.AssignmentView, error)
	RemoveAssignment(batchID, stageID string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:       batchstore.NewInstance(db.DB),
		assignments: assignmentstore.NewInstance(),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"assignments", instance.assignments,
	)
	Instance = instance
}

type impl struct {
	store       batchstore.Provider
	assignments assignmentstore.Provider
}

func (i impl) Create(data batchapimodels.BatchData) (string, error) {
	rec := dbmodels.Batch{
		Name:              data.Name,
		JobTitle:          data.JobTitle,
		Status:            data.Status,
		StartDate:         data.StartDate,
		EndDate:           data.EndDate,
		MaxCandidates:     data.MaxCandidates,
		CurrentCandidates: data.CurrentCandidates,
		CompletionRate:    data.CompletionRate,
		AverageTime:       data.AverageTime,
	}
	return i.store.Create(rec)
}

func (i impl) Update(id string, data batchapimodels.BatchData) error {
	updMap := map[string]interface{}{
		"name":               data.Name,
		"job_title":          data.JobTitle,
		"status":             data.Status,
		"start_date":         data.StartDate,
		"end_date":           data.EndDate,
		"max_candidates":     data.MaxCandidates,
		"current_candidates": data.CurrentCandidates,
		"completion_rate":    data.CompletionRate,
		"average_time":       data.AverageTime,
	}
	return i.store.Update(id, updMap)
}

func (i impl) GetByID(id string) (batchapimodels.BatchView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return batchapimodels.BatchView{}, err
	}
	if rec == nil {
		return batchapimodels.BatchView{}, errors.New("batch not found")
	}
	return batchapimodels.BatchConvert(*rec), nil
}

func (i impl) List() ([]batchapimodels.BatchView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]batchapimodels.BatchView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, batchapimodels.BatchConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	if err := i.store.Delete(id); err != nil {
		return err
	}
	i.assignments.DropBatch(id)
	return nil
}

func (i impl) AssignStages(batchID string, data batchapimodels.AssignmentData) error {
	rec, err := i.store.GetByID(batchID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("batch not found")
	}
	i.assignments.Replace(batchID, data.StageIDs)
	return nil
}

func (i impl) ListAssignments(batchID string) ([]batchapimodels.AssignmentView, error) {
	rec, err := i.store.GetByID(batchID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.New("batch not found")
	}
	return i.assignments.ListByBatch(batchID), nil
}

func (i impl) RemoveAssignment(batchID, stageID string) error {
	i.assignments.Remove(batchID, stageID)
	return nil
}
