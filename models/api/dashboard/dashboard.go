package dashboardapimodels

type StatusCounts struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Reviewing int `json:"reviewing"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
}

type RegionFigure struct {
	Region     string `json:"region"`
	Candidates int    `json:"candidates"`
	Percentage int    `json:"percentage"`
}

type StageFigure struct {
	StageID    string `json:"stage_id"`
	Stage      string `json:"stage"`
	Candidates int    `json:"candidates"` // currently in this stage
	Completion int    `json:"completion"` // completed / enrolled, percent
}

type JobFigures struct {
	Total int `json:"total"`
	Open  int `json:"open"`
}

type BatchFigures struct {
	Total              int `json:"total"`
	CandidatesInBatch  int `json:"candidates_in_batch"`
	MeanCompletionRate int `json:"mean_completion_rate"`
	MeanAverageTime    int `json:"mean_average_time"`
}

type DashboardStats struct {
	Candidates StatusCounts   `json:"candidates"`
	Regions    []RegionFigure `json:"regions"`
	Stages     []StageFigure  `json:"stages"`
	Jobs       JobFigures     `json:"jobs"`
	Batches    BatchFigures   `json:"batches"`
}
