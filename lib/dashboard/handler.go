package dashboard

import (
	"bytes"
	"sort"
	"strings"

	"recruitment-backend/db"
	batchstore "recruitment-backend/lib/batch/store"
	candidatestore "recruitment-backend/lib/candidate/store"
	xlsexport "recruitment-backend/lib/export/xls"
	jobstore "recruitment-backend/lib/job/store"
	stagestore "recruitment-backend/lib/stage/store"
	trackingstore "recruitment-backend/lib/tracking/store"
	initchecker "recruitment-backend/lib/utils/init-checker"
	"recruitment-backend/models"
	dashboardapimodels "recruitment-backend/models/api/dashboard"
	dbmodels "recruitment-backend/models/db"
)

// RegionOther collects candidates whose location has no parsable state.
const RegionOther = "Outros"

type Provider interface {
	// Stats scans candidates, jobs, stages, progress records and batches
	// and derives the dashboard figures. Nothing is cached.
	Stats() (dashboardapimodels.DashboardStats, error)
	ExportCandidatesXls() (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	instance := impl{
		candidateStore: candidatestore.NewInstance(db.DB),
		jobStore:       jobstore.NewInstance(db.DB),
		stageStore:     stagestore.NewInstance(db.DB),
		batchStore:     batchstore.NewInstance(db.DB),
		trackingStore:  trackingstore.NewInstance(db.DB),
		xlsExport:      xlsexport.Instance,
	}
	initchecker.CheckInit(
		"candidateStore", instance.candidateStore,
		"jobStore", instance.jobStore,
		"stageStore", instance.stageStore,
		"batchStore", instance.batchStore,
		"trackingStore", instance.trackingStore,
		"xlsExport", instance.xlsExport,
	)
	Instance = instance
}

type impl struct {
	candidateStore candidatestore.Provider
	jobStore       jobstore.Provider
	stageStore     stagestore.Provider
	batchStore     batchstore.Provider
	trackingStore  trackingstore.Provider
	xlsExport      xlsexport.Provider
}

func (i impl) Stats() (dashboardapimodels.DashboardStats, error) {
	stats := dashboardapimodels.DashboardStats{}

	candidates, err := i.candidateStore.List()
	if err != nil {
		return stats, err
	}
	stats.Candidates = countByStatus(candidates)
	stats.Regions = groupByRegion(candidates)

	stages, err := i.stageStore.List()
	if err != nil {
		return stats, err
	}
	stats.Stages, err = i.stageFigures(stages, candidates)
	if err != nil {
		return stats, err
	}

	jobs, err := i.jobStore.List()
	if err != nil {
		return stats, err
	}
	stats.Jobs.Total = len(jobs)
	for _, job := range jobs {
		if job.Status == models.JobStatusOpen {
			stats.Jobs.Open++
		}
	}

	batches, err := i.batchStore.List()
	if err != nil {
		return stats, err
	}
	stats.Batches = batchFigures(batches)
	return stats, nil
}

func (i impl) ExportCandidatesXls() (*bytes.Buffer, error) {
	candidates, err := i.candidateStore.List()
	if err != nil {
		return nil, err
	}
	return i.xlsExport.ExportCandidateList(candidates)
}

func countByStatus(candidates []dbmodels.Candidate) dashboardapimodels.StatusCounts {
	counts := dashboardapimodels.StatusCounts{Total: len(candidates)}
	for _, c := range candidates {
		switch c.Status {
		case models.CandidateStatusPending:
			counts.Pending++
		case models.CandidateStatusReviewing:
			counts.Reviewing++
		case models.CandidateStatusApproved:
			counts.Approved++
		case models.CandidateStatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

// groupByRegion buckets candidates by the state token of their
// "city, state" location.
func groupByRegion(candidates []dbmodels.Candidate) []dashboardapimodels.RegionFigure {
	total := len(candidates)
	byRegion := map[string]int{}
	for _, c := range candidates {
		byRegion[ParseRegion(c.Location)]++
	}
	result := make([]dashboardapimodels.RegionFigure, 0, len(byRegion))
	for region, count := range byRegion {
		percentage := 0
		if total > 0 {
			percentage = count * 100 / total
		}
		result = append(result, dashboardapimodels.RegionFigure{
			Region:     region,
			Candidates: count,
			Percentage: percentage,
		})
	}
	sort.Slice(result, func(a, b int) bool {
		if result[a].Candidates != result[b].Candidates {
			return result[a].Candidates > result[b].Candidates
		}
		return result[a].Region < result[b].Region
	})
	return result
}

// ParseRegion extracts the state part of a free-text "city, state"
// location. Anything without a comma-separated second token goes to
// RegionOther.
func ParseRegion(location string) string {
	idx := strings.LastIndex(location, ",")
	if idx == -1 {
		return RegionOther
	}
	region := strings.TrimSpace(location[idx+1:])
	if region == "" {
		return RegionOther
	}
	return region
}

func (i impl) stageFigures(stages []dbmodels.StageTemplate, candidates []dbmodels.Candidate) ([]dashboardapimodels.StageFigure, error) {
	type tally struct {
		current   int
		completed int
		total     int
	}
	byStage := map[string]*tally{}
	for _, c := range candidates {
		records, err := i.trackingStore.ListByCandidate(c.ID)
		if err != nil {
			return nil, err
		}
		for _, rec := range records {
			t := byStage[rec.StageID]
			if t == nil {
				t = &tally{}
				byStage[rec.StageID] = t
			}
			t.total++
			switch rec.Status {
			case models.StageProgressCurrent:
				t.current++
			case models.StageProgressCompleted:
				t.completed++
			}
		}
	}
	result := make([]dashboardapimodels.StageFigure, 0, len(stages))
	for _, stage := range stages {
		figure := dashboardapimodels.StageFigure{
			StageID: stage.ID,
			Stage:   stage.Name,
		}
		if t := byStage[stage.ID]; t != nil {
			figure.Candidates = t.current
			if t.total > 0 {
				figure.Completion = t.completed * 100 / t.total
			}
		}
		result = append(result, figure)
	}
	return result, nil
}

func batchFigures(batches []dbmodels.Batch) dashboardapimodels.BatchFigures {
	figures := dashboardapimodels.BatchFigures{Total: len(batches)}
	if len(batches) == 0 {
		return figures
	}
	sumCompletion := 0
	sumAverageTime := 0
	for _, b := range batches {
		figures.CandidatesInBatch += b.CurrentCandidates
		sumCompletion += b.CompletionRate
		sumAverageTime += b.AverageTime
	}
	figures.MeanCompletionRate = sumCompletion / len(batches)
	figures.MeanAverageTime = sumAverageTime / len(batches)
	return figures
}
