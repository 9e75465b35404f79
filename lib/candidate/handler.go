package candidate

import (
	"recruitment-backend/db"
	notestore "recruitment-backend/lib/candidate/note-store"
	candidatestore "recruitment-backend/lib/candidate/store"
	stagestore "recruitment-backend/lib/stage/store"
	"recruitment-backend/lib/tracking"
	trackingstore "recruitment-backend/lib/tracking/store"
	initchecker "recruitment-backend/lib/utils/init-checker"
	connectionhub "recruitment-backend/lib/ws/hub/connection-hub"
	"recruitment-backend/models"
	candidateapimodels "recruitment-backend/models/api/candidate"
	dbmodels "recruitment-backend/models/db"
	wsmodels "recruitment-backend/models/ws"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Create(data candidateapimodels.CandidateData) (id string, err error)
	Update(id string, data candidateapimodels.CandidateData) error
	UpdateStatus(id string, status models.CandidateStatus) error
	SetResumeUrl(id string, url string) error
	GetByID(id string) (candidateapimodels.CandidateView, error)
	List() ([]candidateapimodels.CandidateView, error)
	// Delete cascades to the candidate's stage progress records and notes.
	Delete(id string) error
	AddNote(candidateID string, data candidateapimodels.NoteData) (id string, err error)
	ListNotes(candidateID string) ([]candidateapimodels.NoteView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         candidatestore.NewInstance(db.DB),
		noteStore:     notestore.NewInstance(db.DB),
		stageStore:    stagestore.NewInstance(db.DB),
		trackingStore: trackingstore.NewInstance(db.DB),
		tracker:       tracking.Instance,
	}
	initchecker.CheckInit(
		"store", instance.store,
		"noteStore", instance.noteStore,
		"stageStore", instance.stageStore,
		"trackingStore", instance.trackingStore,
		"tracker", instance.tracker,
	)
	Instance = instance
}

type impl struct {
	store         candidatestore.Provider
	noteStore     notestore.Provider
	stageStore    stagestore.Provider
	trackingStore trackingstore.Provider
	tracker       tracking.Provider
}

// Create persists the candidate first and enrolls afterwards. A failed
// enrollment leaves the candidate without stage records; the failure is
// logged and not rolled back, matching the store's non-transactional model.
func (i impl) Create(data candidateapimodels.CandidateData) (string, error) {
	currentStage := models.DefaultStageName
	templates, err := i.stageStore.List()
	if err != nil {
		return "", errors.Wrap(err, "stage registry read failed")
	}
	if len(templates) > 0 {
		currentStage = templates[0].Name
	}

	rec := dbmodels.Candidate{
		Name:         data.Name,
		Email:        data.Email,
		Phone:        data.Phone,
		Location:     data.Location,
		Position:     data.Position,
		Experience:   data.Experience,
		Motivation:   data.Motivation,
		Status:       models.CandidateStatusPending,
		CurrentStage: currentStage,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		return "", err
	}
	if err = i.tracker.Enroll(id); err != nil {
		log.WithError(err).
			WithField("candidate_id", id).
			Error("stage enrollment failed, candidate left without stage records")
	}
	i.notifyFeed()
	return id, nil
}

func (i impl) Update(id string, data candidateapimodels.CandidateData) error {
	updMap := map[string]interface{}{
		"name":       data.Name,
		"email":      data.Email,
		"phone":      data.Phone,
		"location":   data.Location,
		"position":   data.Position,
		"experience": data.Experience,
		"motivation": data.Motivation,
	}
	if err := i.store.Update(id, updMap); err != nil {
		return err
	}
	i.notifyFeed()
	return nil
}

func (i impl) UpdateStatus(id string, status models.CandidateStatus) error {
	if err := i.store.Update(id, map[string]interface{}{"status": status}); err != nil {
		return err
	}
	i.notifyFeed()
	return nil
}

func (i impl) SetResumeUrl(id string, url string) error {
	return i.store.Update(id, map[string]interface{}{"resume_url": url})
}

func (i impl) GetByID(id string) (candidateapimodels.CandidateView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return candidateapimodels.CandidateView{}, err
	}
	if rec == nil {
		return candidateapimodels.CandidateView{}, errors.New("candidate not found")
	}
	return candidateapimodels.CandidateConvert(*rec), nil
}

func (i impl) List() ([]candidateapimodels.CandidateView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.CandidateView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, candidateapimodels.CandidateConvert(rec))
	}
	return result, nil
}

func (i impl) Delete(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("candidate not found")
	}
	if err = i.store.Delete(id); err != nil {
		return err
	}
	// the cascade below is best effort, the candidate row is already gone
	if err = i.trackingStore.DeleteByCandidate(id); err != nil {
		log.WithError(err).
			WithField("candidate_id", id).
			Error("stage progress cleanup failed")
	}
	if err = i.noteStore.DeleteByCandidate(id); err != nil {
		log.WithError(err).
			WithField("candidate_id", id).
			Error("note cleanup failed")
	}
	i.notifyFeed()
	return nil
}

func (i impl) AddNote(candidateID string, data candidateapimodels.NoteData) (string, error) {
	rec, err := i.store.GetByID(candidateID)
	if err != nil {
		return "", err
	}
	if rec == nil {
		return "", errors.New("candidate not found")
	}
	return i.noteStore.Create(dbmodels.CandidateNote{
		CandidateID: candidateID,
		Note:        data.Note,
		CreatedBy:   data.CreatedBy,
	})
}

func (i impl) ListNotes(candidateID string) ([]candidateapimodels.NoteView, error) {
	recList, err := i.noteStore.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	result := make([]candidateapimodels.NoteView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, candidateapimodels.NoteConvert(rec))
	}
	return result, nil
}

// notifyFeed pushes the full candidate list to connected dashboard
// clients. Snapshot per update, like the store-native subscription the
// dashboard replaces.
func (i impl) notifyFeed() {
	if connectionhub.Instance == nil {
		return
	}
	list, err := i.List()
	if err != nil {
		log.WithError(err).Error("candidate feed snapshot failed")
		return
	}
	connectionhub.Instance.Broadcast(wsmodels.ServerMessage{
		MsgType: wsmodels.MsgTypeCandidates,
		Data:    list,
	})
}
