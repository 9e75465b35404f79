package assignmentstore

import (
	"sync"

	batchapimodels "recruitment-backend/models/api/batch"
)

// Provider keeps batch-to-stage assignments in memory only. The
// association is viewing-session state and is deliberately not persisted;
// a restart drops it.
type Provider interface {
	// Replace swaps the batch's assignment set for the given stages,
	// ordered as passed.
	Replace(batchID string, stageIDs []string)
	ListByBatch(batchID string) []batchapimodels.AssignmentView
	Remove(batchID, stageID string)
	DropBatch(batchID string)
}

func NewInstance() Provider {
	return &impl{
		byBatch: map[string][]batchapimodels.AssignmentView{},
	}
}

type impl struct {
	mu      sync.RWMutex
	byBatch map[string][]batchapimodels.AssignmentView
}

func (i *impl) Replace(batchID string, stageIDs []string) {
	list := make([]batchapimodels.AssignmentView, 0, len(stageIDs))
	for idx, stageID := range stageIDs {
		list = append(list, batchapimodels.AssignmentView{
			BatchID: batchID,
			StageID: stageID,
			Order:   idx + 1,
		})
	}
	i.mu.Lock()
	defer i.mu.Unlock()
	i.byBatch[batchID] = list
}

func (i *impl) ListByBatch(batchID string) []batchapimodels.AssignmentView {
	i.mu.RLock()
	defer i.mu.RUnlock()
	list := i.byBatch[batchID]
	result := make([]batchapimodels.AssignmentView, len(list))
	copy(result, list)
	return result
}

func (i *impl) Remove(batchID, stageID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	list := i.byBatch[batchID]
	filtered := make([]batchapimodels.AssignmentView, 0, len(list))
	for _, item := range list {
		if item.StageID != stageID {
			filtered = append(filtered, item)
		}
	}
	for idx := range filtered {
		filtered[idx].Order = idx + 1
	}
	i.byBatch[batchID] = filtered
}

func (i *impl) DropBatch(batchID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	delete(i.byBatch, batchID)
}
