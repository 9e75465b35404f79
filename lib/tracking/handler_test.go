package tracking

import (
	"fmt"
	"testing"
	"time"

	"recruitment-backend/models"
	trackingapimodels "recruitment-backend/models/api/tracking"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeTrackingStore struct {
	recs   []dbmodels.CandidateStage
	nextID int
}

func (f *fakeTrackingStore) Create(rec dbmodels.CandidateStage) (string, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("progress-%d", f.nextID)
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeTrackingStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.recs {
		if f.recs[idx].ID != id {
			continue
		}
		if status, ok := updMap["status"]; ok {
			f.recs[idx].Status = status.(models.StageProgressStatus)
		}
		if score, ok := updMap["score"]; ok {
			v := score.(int)
			f.recs[idx].Score = &v
		}
		if feedback, ok := updMap["feedback"]; ok {
			f.recs[idx].Feedback = feedback.(string)
		}
		if completedAt, ok := updMap["completed_at"]; ok {
			v := completedAt.(time.Time)
			f.recs[idx].CompletedAt = &v
		}
		return nil
	}
	return errors.New("record not found")
}

func (f *fakeTrackingStore) GetByID(id string) (*dbmodels.CandidateStage, error) {
	for idx := range f.recs {
		if f.recs[idx].ID == id {
			return &f.recs[idx], nil
		}
	}
	return nil, nil
}

func (f *fakeTrackingStore) ListByCandidate(candidateID string) ([]dbmodels.CandidateStage, error) {
	list := []dbmodels.CandidateStage{}
	for _, rec := range f.recs {
		if rec.CandidateID == candidateID {
			list = append(list, rec)
		}
	}
	return list, nil
}

func (f *fakeTrackingStore) DeleteByCandidate(candidateID string) error {
	kept := []dbmodels.CandidateStage{}
	for _, rec := range f.recs {
		if rec.CandidateID != candidateID {
			kept = append(kept, rec)
		}
	}
	f.recs = kept
	return nil
}

type fakeStageStore struct {
	templates []dbmodels.StageTemplate
}

func (f *fakeStageStore) Create(rec dbmodels.StageTemplate) (string, error) {
	f.templates = append(f.templates, rec)
	return rec.ID, nil
}

func (f *fakeStageStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeStageStore) GetByID(id string) (*dbmodels.StageTemplate, error) {
	for idx := range f.templates {
		if f.templates[idx].ID == id {
			return &f.templates[idx], nil
		}
	}
	return nil, nil
}

func (f *fakeStageStore) List() ([]dbmodels.StageTemplate, error) {
	return f.templates, nil
}

func (f *fakeStageStore) Delete(id string) error {
	return nil
}

func (f *fakeStageStore) MaxOrder() (int, error) {
	maxOrder := 0
	for _, tpl := range f.templates {
		if tpl.StageOrder > maxOrder {
			maxOrder = tpl.StageOrder
		}
	}
	return maxOrder, nil
}

type fakeCandidateStore struct {
	recs map[string]*dbmodels.Candidate
}

func (f *fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error) {
	f.recs[rec.ID] = &rec
	return rec.ID, nil
}

func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error {
	rec, ok := f.recs[id]
	if !ok {
		return errors.New("record not found")
	}
	if status, ok := updMap["status"]; ok {
		rec.Status = status.(models.CandidateStatus)
	}
	if stage, ok := updMap["current_stage"]; ok {
		rec.CurrentStage = stage.(string)
	}
	return nil
}

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) {
	return f.recs[id], nil
}

func (f *fakeCandidateStore) List() ([]dbmodels.Candidate, error) {
	list := []dbmodels.Candidate{}
	for _, rec := range f.recs {
		list = append(list, *rec)
	}
	return list, nil
}

func (f *fakeCandidateStore) Delete(id string) error {
	delete(f.recs, id)
	return nil
}

func pipelineTemplates() []dbmodels.StageTemplate {
	return []dbmodels.StageTemplate{
		{BaseModel: dbmodels.BaseModel{ID: "tpl-1"}, Name: "Cadastrado", StageOrder: 1},
		{BaseModel: dbmodels.BaseModel{ID: "tpl-2"}, Name: "Entrevista", StageOrder: 2},
		{BaseModel: dbmodels.BaseModel{ID: "tpl-3"}, Name: "Proposta", StageOrder: 3},
	}
}

func newTestHandler(templates []dbmodels.StageTemplate) (impl, *fakeTrackingStore, *fakeCandidateStore) {
	trackingStore := &fakeTrackingStore{}
	candidateStore := &fakeCandidateStore{recs: map[string]*dbmodels.Candidate{}}
	handler := impl{
		store:          trackingStore,
		stageStore:     &fakeStageStore{templates: templates},
		candidateStore: candidateStore,
	}
	return handler, trackingStore, candidateStore
}

func TestTracking(t *testing.T) {
	t.Run(`enrollment creates one record per template, first current`, func(t *testing.T) {
		handler, trackingStore, candidateStore := newTestHandler(pipelineTemplates())
		candidateStore.recs["cand-1"] = &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "cand-1"}}

		err := handler.Enroll("cand-1")
		require.Nil(t, err)
		require.Equal(t, 3, len(trackingStore.recs))
		require.Equal(t, models.StageProgressCurrent, trackingStore.recs[0].Status)
		require.Equal(t, models.StageProgressPending, trackingStore.recs[1].Status)
		require.Equal(t, models.StageProgressPending, trackingStore.recs[2].Status)
		require.Equal(t, "Cadastrado", trackingStore.recs[0].StageName)
		require.Equal(t, 1, trackingStore.recs[0].StageOrder)
		require.Equal(t, "tpl-3", trackingStore.recs[2].StageID)
	})

	t.Run(`advance completes current and activates next`, func(t *testing.T) {
		handler, trackingStore, candidateStore := newTestHandler(pipelineTemplates())
		candidateStore.recs["cand-1"] = &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "cand-1"}, CurrentStage: "Cadastrado"}
		require.Nil(t, handler.Enroll("cand-1"))

		result, err := handler.Advance("cand-1")
		require.Nil(t, err)
		require.Equal(t, "Cadastrado", result.CompletedStage)
		require.Equal(t, "Entrevista", result.NextStage)
		require.Equal(t, false, result.ProcessCompleted)

		require.Equal(t, models.StageProgressCompleted, trackingStore.recs[0].Status)
		require.NotNil(t, trackingStore.recs[0].CompletedAt)
		require.Equal(t, models.StageProgressCurrent, trackingStore.recs[1].Status)
		require.Equal(t, models.StageProgressPending, trackingStore.recs[2].Status)
		require.Equal(t, "Entrevista", candidateStore.recs["cand-1"].CurrentStage)
	})

	t.Run(`advancing past the final stage approves the candidate`, func(t *testing.T) {
		handler, trackingStore, candidateStore := newTestHandler(pipelineTemplates())
		candidateStore.recs["cand-1"] = &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "cand-1"}, Status: models.CandidateStatusReviewing}
		require.Nil(t, handler.Enroll("cand-1"))

		_, err := handler.Advance("cand-1")
		require.Nil(t, err)
		_, err = handler.Advance("cand-1")
		require.Nil(t, err)
		result, err := handler.Advance("cand-1")
		require.Nil(t, err)
		require.Equal(t, "Proposta", result.CompletedStage)
		require.Equal(t, "", result.NextStage)
		require.Equal(t, true, result.ProcessCompleted)
		require.Equal(t, models.CandidateStatusApproved, candidateStore.recs["cand-1"].Status)

		for _, rec := range trackingStore.recs {
			require.Equal(t, models.StageProgressCompleted, rec.Status)
		}

		_, err = handler.Advance("cand-1")
		require.ErrorIs(t, err, ErrNoActiveStage)
	})

	t.Run(`advance without active stage mutates nothing`, func(t *testing.T) {
		handler, trackingStore, candidateStore := newTestHandler(pipelineTemplates())
		candidateStore.recs["cand-1"] = &dbmodels.Candidate{BaseModel: dbmodels.BaseModel{ID: "cand-1"}, Status: models.CandidateStatusPending}
		trackingStore.recs = []dbmodels.CandidateStage{
			{BaseModel: dbmodels.BaseModel{ID: "progress-1"}, CandidateID: "cand-1", StageOrder: 1, Status: models.StageProgressPending},
		}

		_, err := handler.Advance("cand-1")
		require.ErrorIs(t, err, ErrNoActiveStage)
		require.Equal(t, models.StageProgressPending, trackingStore.recs[0].Status)
		require.Equal(t, models.CandidateStatusPending, candidateStore.recs["cand-1"].Status)
	})

	t.Run(`advance with two active stages refuses to pick`, func(t *testing.T) {
		handler, trackingStore, _ := newTestHandler(pipelineTemplates())
		trackingStore.recs = []dbmodels.CandidateStage{
			{BaseModel: dbmodels.BaseModel{ID: "progress-1"}, CandidateID: "cand-1", StageOrder: 1, Status: models.StageProgressCurrent},
			{BaseModel: dbmodels.BaseModel{ID: "progress-2"}, CandidateID: "cand-1", StageOrder: 2, Status: models.StageProgressCurrent},
		}

		_, err := handler.Advance("cand-1")
		require.ErrorIs(t, err, ErrMultipleActiveStages)
		require.Equal(t, models.StageProgressCurrent, trackingStore.recs[0].Status)
		require.Equal(t, models.StageProgressCurrent, trackingStore.recs[1].Status)
	})

	t.Run(`enrollment with empty registry creates nothing`, func(t *testing.T) {
		handler, trackingStore, _ := newTestHandler(nil)
		err := handler.Enroll("cand-1")
		require.Nil(t, err)
		require.Equal(t, 0, len(trackingStore.recs))
	})

	t.Run(`feedback recorded on a progress record`, func(t *testing.T) {
		handler, trackingStore, _ := newTestHandler(pipelineTemplates())
		trackingStore.recs = []dbmodels.CandidateStage{
			{BaseModel: dbmodels.BaseModel{ID: "progress-1"}, CandidateID: "cand-1", StageOrder: 1, Status: models.StageProgressCurrent},
		}
		score := 85
		err := handler.RecordFeedback("progress-1", trackingapimodels.FeedbackData{Score: &score, Feedback: "strong communication"})
		require.Nil(t, err)
		require.NotNil(t, trackingStore.recs[0].Score)
		require.Equal(t, 85, *trackingStore.recs[0].Score)
		require.Equal(t, "strong communication", trackingStore.recs[0].Feedback)

		err = handler.RecordFeedback("missing", trackingapimodels.FeedbackData{Feedback: "x"})
		require.NotNil(t, err)
	})
}
