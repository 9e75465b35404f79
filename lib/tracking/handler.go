package tracking

import (
	"time"

	"recruitment-backend/db"
	candidatestore "recruitment-backend/lib/candidate/store"
	stagestore "recruitment-backend/lib/stage/store"
	trackingstore "recruitment-backend/lib/tracking/store"
	initchecker "recruitment-backend/lib/utils/init-checker"
	"recruitment-backend/models"
	trackingapimodels "recruitment-backend/models/api/tracking"
	dbmodels "recruitment-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrNoActiveStage is reported when a candidate has no record in
	// status current, including candidates whose process already finished.
	ErrNoActiveStage = errors.New("candidate has no active stage")
	// ErrMultipleActiveStages marks drifted data; Advance refuses to
	// guess which record is the real current one.
	ErrMultipleActiveStages = errors.New("candidate has more than one active stage")
)

type Provider interface {
	// Enroll instantiates one progress record per registry stage, in
	// template order, the first one current and the rest pending. The
	// writes are sequential and not atomic.
	Enroll(candidateID string) error
	// Advance completes the current stage and activates the next one.
	// Completing the last stage approves the candidate instead.
	Advance(candidateID string) (trackingapimodels.AdvanceResult, error)
	RecordFeedback(progressID string, data trackingapimodels.FeedbackData) error
	ListByCandidate(candidateID string) ([]trackingapimodels.StageProgressView, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:          trackingstore.NewInstance(db.DB),
		stageStore:     stagestore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"stageStore", instance.stageStore,
		"candidateStore", instance.candidateStore,
	)
	Instance = instance
}

type impl struct {
	store          trackingstore.Provider
	stageStore     stagestore.Provider
	candidateStore candidatestore.Provider
}

func (i impl) Enroll(candidateID string) error {
	templates, err := i.stageStore.List()
	if err != nil {
		return errors.Wrap(err, "stage registry read failed")
	}
	for idx, tpl := range templates {
		status := models.StageProgressPending
		if idx == 0 {
			status = models.StageProgressCurrent
		}
		rec := dbmodels.CandidateStage{
			CandidateID: candidateID,
			StageID:     tpl.ID,
			StageName:   tpl.Name,
			StageOrder:  tpl.StageOrder,
			Status:      status,
		}
		_, err = i.store.Create(rec)
		if err != nil {
			return errors.Wrapf(err, "enrollment into stage %q failed", tpl.Name)
		}
	}
	return nil
}

func (i impl) Advance(candidateID string) (trackingapimodels.AdvanceResult, error) {
	result := trackingapimodels.AdvanceResult{}
	list, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return result, err
	}
	var current *dbmodels.CandidateStage
	for idx := range list {
		if list[idx].Status != models.StageProgressCurrent {
			continue
		}
		if current != nil {
			return result, ErrMultipleActiveStages
		}
		current = &list[idx]
	}
	if current == nil {
		return result, ErrNoActiveStage
	}

	var next *dbmodels.CandidateStage
	for idx := range list {
		if list[idx].Status == models.StageProgressPending && list[idx].StageOrder > current.StageOrder {
			next = &list[idx]
			break
		}
	}

	now := time.Now()
	err = i.store.Update(current.ID, map[string]interface{}{
		"status":       models.StageProgressCompleted,
		"completed_at": now,
	})
	if err != nil {
		return result, errors.Wrap(err, "stage completion failed")
	}
	result.CompletedStage = current.StageName

	if next == nil {
		// final stage done: no new current record, the candidate is approved
		err = i.candidateStore.Update(candidateID, map[string]interface{}{
			"status": models.CandidateStatusApproved,
		})
		if err != nil {
			return result, errors.Wrap(err, "candidate approval failed")
		}
		result.ProcessCompleted = true
		log.WithField("candidate_id", candidateID).Info("hiring process completed")
		return result, nil
	}

	err = i.store.Update(next.ID, map[string]interface{}{
		"status": models.StageProgressCurrent,
	})
	if err != nil {
		return result, errors.Wrap(err, "next stage activation failed")
	}
	err = i.candidateStore.Update(candidateID, map[string]interface{}{
		"current_stage": next.StageName,
	})
	if err != nil {
		return result, errors.Wrap(err, "candidate stage name sync failed")
	}
	result.NextStage = next.StageName
	return result, nil
}

func (i impl) RecordFeedback(progressID string, data trackingapimodels.FeedbackData) error {
	rec, err := i.store.GetByID(progressID)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.New("stage progress record not found")
	}
	updMap := map[string]interface{}{}
	if data.Score != nil {
		updMap["score"] = *data.Score
	}
	if data.Feedback != "" {
		updMap["feedback"] = data.Feedback
	}
	return i.store.Update(progressID, updMap)
}

func (i impl) ListByCandidate(candidateID string) ([]trackingapimodels.StageProgressView, error) {
	recList, err := i.store.ListByCandidate(candidateID)
	if err != nil {
		return nil, err
	}
	result := make([]trackingapimodels.StageProgressView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, trackingapimodels.StageProgressConvert(rec))
	}
	return result, nil
}
