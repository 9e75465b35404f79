package candidate

import (
	"fmt"
	"testing"

	"recruitment-backend/models"
	candidateapimodels "recruitment-backend/models/api/candidate"
	trackingapimodels "recruitment-backend/models/api/tracking"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fakeCandidateStore struct {
	recs   []dbmodels.Candidate
	nextID int
}

func (f *fakeCandidateStore) Create(rec dbmodels.Candidate) (string, error) {
	f.nextID++
	rec.ID = fmt.Sprintf("cand-%d", f.nextID)
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeCandidateStore) Update(id string, updMap map[string]interface{}) error {
	for idx := range f.recs {
		if f.recs[idx].ID != id {
			continue
		}
		if name, ok := updMap["name"]; ok {
			f.recs[idx].Name = name.(string)
		}
		if status, ok := updMap["status"]; ok {
			f.recs[idx].Status = status.(models.CandidateStatus)
		}
		if url, ok := updMap["resume_url"]; ok {
			f.recs[idx].ResumeUrl = url.(string)
		}
		if stage, ok := updMap["current_stage"]; ok {
			f.recs[idx].CurrentStage = stage.(string)
		}
		return nil
	}
	return errors.New("record not found")
}

func (f *fakeCandidateStore) GetByID(id string) (*dbmodels.Candidate, error) {
	for idx := range f.recs {
		if f.recs[idx].ID == id {
			return &f.recs[idx], nil
		}
	}
	return nil, nil
}

func (f *fakeCandidateStore) List() ([]dbmodels.Candidate, error) {
	return f.recs, nil
}

func (f *fakeCandidateStore) Delete(id string) error {
	kept := []dbmodels.Candidate{}
	for _, rec := range f.recs {
		if rec.ID != id {
			kept = append(kept, rec)
		}
	}
	f.recs = kept
	return nil
}

type fakeNoteStore struct {
	notes []dbmodels.CandidateNote
}

func (f *fakeNoteStore) Create(rec dbmodels.CandidateNote) (string, error) {
	rec.ID = fmt.Sprintf("note-%d", len(f.notes)+1)
	f.notes = append(f.notes, rec)
	return rec.ID, nil
}

// newest first, like the real store
func (f *fakeNoteStore) ListByCandidate(candidateID string) ([]dbmodels.CandidateNote, error) {
	list := []dbmodels.CandidateNote{}
	for idx := len(f.notes) - 1; idx >= 0; idx-- {
		if f.notes[idx].CandidateID == candidateID {
			list = append(list, f.notes[idx])
		}
	}
	return list, nil
}

func (f *fakeNoteStore) DeleteByCandidate(candidateID string) error {
	kept := []dbmodels.CandidateNote{}
	for _, rec := range f.notes {
		if rec.CandidateID != candidateID {
			kept = append(kept, rec)
		}
	}
	f.notes = kept
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
	return nil, nil
}

func (f *fakeStageStore) List() ([]dbmodels.StageTemplate, error) {
	return f.templates, nil
}

func (f *fakeStageStore) Delete(id string) error {
	return nil
}

func (f *fakeStageStore) MaxOrder() (int, error) {
	return len(f.templates), nil
}

type fakeTrackingStore struct {
	recs []dbmodels.CandidateStage
}

func (f *fakeTrackingStore) Create(rec dbmodels.CandidateStage) (string, error) {
	f.recs = append(f.recs, rec)
	return rec.ID, nil
}

func (f *fakeTrackingStore) Update(id string, updMap map[string]interface{}) error {
	return nil
}

func (f *fakeTrackingStore) GetByID(id string) (*dbmodels.CandidateStage, error) {
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

// fakeTracker records enrollments into the shared fake tracking store so
// delete-cascade checks see real records.
type fakeTracker struct {
	store     *fakeTrackingStore
	stages    *fakeStageStore
	enrollErr error
	enrolled  []string
}

func (f *fakeTracker) Enroll(candidateID string) error {
	if f.enrollErr != nil {
		return f.enrollErr
	}
	f.enrolled = append(f.enrolled, candidateID)
	for idx, tpl := range f.stages.templates {
		status := models.StageProgressPending
		if idx == 0 {
			status = models.StageProgressCurrent
		}
		_, _ = f.store.Create(dbmodels.CandidateStage{
			CandidateID: candidateID,
			StageID:     tpl.ID,
			StageName:   tpl.Name,
			StageOrder:  tpl.StageOrder,
			Status:      status,
		})
	}
	return nil
}

func (f *fakeTracker) Advance(candidateID string) (trackingapimodels.AdvanceResult, error) {
	return trackingapimodels.AdvanceResult{}, nil
}

func (f *fakeTracker) RecordFeedback(progressID string, data trackingapimodels.FeedbackData) error {
	return nil
}

func (f *fakeTracker) ListByCandidate(candidateID string) ([]trackingapimodels.StageProgressView, error) {
	return nil, nil
}

type testEnv struct {
	handler       impl
	store         *fakeCandidateStore
	noteStore     *fakeNoteStore
	trackingStore *fakeTrackingStore
	tracker       *fakeTracker
}

func newTestEnv(templates []dbmodels.StageTemplate) testEnv {
	store := &fakeCandidateStore{}
	noteStore := &fakeNoteStore{}
	stageStore := &fakeStageStore{templates: templates}
	trackingStore := &fakeTrackingStore{}
	tracker := &fakeTracker{store: trackingStore, stages: stageStore}
	return testEnv{
		handler: impl{
			store:         store,
			noteStore:     noteStore,
			stageStore:    stageStore,
			trackingStore: trackingStore,
			tracker:       tracker,
		},
		store:         store,
		noteStore:     noteStore,
		trackingStore: trackingStore,
		tracker:       tracker,
	}
}

func pipelineTemplates() []dbmodels.StageTemplate {
	return []dbmodels.StageTemplate{
		{BaseModel: dbmodels.BaseModel{ID: "tpl-1"}, Name: "Triagem", StageOrder: 1},
		{BaseModel: dbmodels.BaseModel{ID: "tpl-2"}, Name: "Entrevista", StageOrder: 2},
	}
}

func TestCandidate(t *testing.T) {
	t.Run(`create enrolls and lands on the first stage`, func(t *testing.T) {
		env := newTestEnv(pipelineTemplates())
		id, err := env.handler.Create(candidateapimodels.CandidateData{
			Name:     "Ana Silva",
			Email:    "ana.silva@example.com",
			Phone:    "+55 11 91234-5678",
			Location: "Campinas, São Paulo",
			Position: "Backend Engineer",
		})
		require.Nil(t, err)
		require.Equal(t, []string{id}, env.tracker.enrolled)

		rec, err := env.store.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, models.CandidateStatusPending, rec.Status)
		require.Equal(t, "Triagem", rec.CurrentStage)

		progress, err := env.trackingStore.ListByCandidate(id)
		require.Nil(t, err)
		require.Equal(t, 2, len(progress))
		require.Equal(t, models.StageProgressCurrent, progress[0].Status)
	})

	t.Run(`application round trip lands on the first registry stage`, func(t *testing.T) {
		env := newTestEnv([]dbmodels.StageTemplate{
			{BaseModel: dbmodels.BaseModel{ID: "tpl-1"}, Name: "Screening", StageOrder: 1},
			{BaseModel: dbmodels.BaseModel{ID: "tpl-2"}, Name: "Interview", StageOrder: 2},
		})
		id, err := env.handler.Create(candidateapimodels.CandidateData{
			Name:     "Ana Silva",
			Email:    "ana@x.com",
			Phone:    "11999990000",
			Position: "Developer",
		})
		require.Nil(t, err)

		rec, err := env.store.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, "Screening", rec.CurrentStage)

		progress, err := env.trackingStore.ListByCandidate(id)
		require.Nil(t, err)
		require.Equal(t, 2, len(progress))
		require.Equal(t, models.StageProgressCurrent, progress[0].Status)
		require.Equal(t, models.StageProgressPending, progress[1].Status)
	})

	t.Run(`create with empty registry falls back to the default stage name`, func(t *testing.T) {
		env := newTestEnv(nil)
		id, err := env.handler.Create(candidateapimodels.CandidateData{
			Name:     "Bruno Costa",
			Email:    "bruno@example.com",
			Phone:    "+55 21 99876-5432",
			Position: "Data Analyst",
		})
		require.Nil(t, err)
		rec, err := env.store.GetByID(id)
		require.Nil(t, err)
		require.Equal(t, models.DefaultStageName, rec.CurrentStage)
	})

	t.Run(`failed enrollment still registers the candidate`, func(t *testing.T) {
		env := newTestEnv(pipelineTemplates())
		env.tracker.enrollErr = errors.New("store unavailable")

		id, err := env.handler.Create(candidateapimodels.CandidateData{
			Name:     "Carla Dias",
			Email:    "carla@example.com",
			Phone:    "123",
			Position: "QA",
		})
		require.Nil(t, err)
		rec, err := env.store.GetByID(id)
		require.Nil(t, err)
		require.NotNil(t, rec)
		progress, err := env.trackingStore.ListByCandidate(id)
		require.Nil(t, err)
		require.Equal(t, 0, len(progress))
	})

	t.Run(`delete cascades to progress records and notes`, func(t *testing.T) {
		env := newTestEnv(pipelineTemplates())
		id, err := env.handler.Create(candidateapimodels.CandidateData{
			Name:     "Ana Silva",
			Email:    "ana.silva@example.com",
			Phone:    "+55 11 91234-5678",
			Position: "Backend Engineer",
		})
		require.Nil(t, err)
		_, err = env.handler.AddNote(id, candidateapimodels.NoteData{Note: "great portfolio", CreatedBy: "hr"})
		require.Nil(t, err)

		err = env.handler.Delete(id)
		require.Nil(t, err)
		require.Equal(t, 0, len(env.store.recs))
		require.Equal(t, 0, len(env.trackingStore.recs))
		require.Equal(t, 0, len(env.noteStore.notes))
	})

	t.Run(`delete of an unknown candidate is rejected`, func(t *testing.T) {
		env := newTestEnv(nil)
		err := env.handler.Delete("missing")
		require.NotNil(t, err)
	})

	t.Run(`notes require an existing candidate`, func(t *testing.T) {
		env := newTestEnv(nil)
		_, err := env.handler.AddNote("missing", candidateapimodels.NoteData{Note: "x"})
		require.NotNil(t, err)
	})

	t.Run(`notes come back newest first`, func(t *testing.T) {
		env := newTestEnv(nil)
		id, err := env.handler.Create(candidateapimodels.CandidateData{
			Name:     "Ana Silva",
			Email:    "ana.silva@example.com",
			Phone:    "1",
			Position: "Backend Engineer",
		})
		require.Nil(t, err)
		_, err = env.handler.AddNote(id, candidateapimodels.NoteData{Note: "first contact done", CreatedBy: "hr"})
		require.Nil(t, err)
		_, err = env.handler.AddNote(id, candidateapimodels.NoteData{Note: "scheduled interview", CreatedBy: "hr"})
		require.Nil(t, err)

		notes, err := env.handler.ListNotes(id)
		require.Nil(t, err)
		require.Equal(t, 2, len(notes))
		require.Equal(t, "scheduled interview", notes[0].Note)
		require.Equal(t, "first contact done", notes[1].Note)
	})
}
