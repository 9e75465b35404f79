package models

type CandidateStatus string

const (
	CandidateStatusPending   CandidateStatus = "pending"
	CandidateStatusReviewing CandidateStatus = "reviewing"
	CandidateStatusApproved  CandidateStatus = "approved"
	CandidateStatusRejected  CandidateStatus = "rejected"
)

func (s CandidateStatus) IsValid() bool {
	switch s {
	case CandidateStatusPending, CandidateStatusReviewing, CandidateStatusApproved, CandidateStatusRejected:
		return true
	}
	return false
}

type StageProgressStatus string

const (
	StageProgressPending   StageProgressStatus = "pending"
	StageProgressCurrent   StageProgressStatus = "current"
	StageProgressCompleted StageProgressStatus = "completed"
)

type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
	JobStatusDraft  JobStatus = "draft"
)

func (s JobStatus) IsValid() bool {
	switch s {
	case JobStatusOpen, JobStatusClosed, JobStatusDraft:
		return true
	}
	return false
}

type JobType string

const (
	JobTypeFullTime JobType = "full-time"
	JobTypePartTime JobType = "part-time"
	JobTypeContract JobType = "contract"
	JobTypeIntern   JobType = "intern"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeIntern:
		return true
	}
	return false
}

type JobLevel string

const (
	JobLevelJunior JobLevel = "junior"
	JobLevelMid    JobLevel = "mid"
	JobLevelSenior JobLevel = "senior"
	JobLevelLead   JobLevel = "lead"
)

type BatchStatus string

const (
	BatchStatusPlanned   BatchStatus = "planned"
	BatchStatusActive    BatchStatus = "active"
	BatchStatusCompleted BatchStatus = "completed"
	BatchStatusCancelled BatchStatus = "cancelled"
)

func (s BatchStatus) IsValid() bool {
	switch s {
	case BatchStatusPlanned, BatchStatusActive, BatchStatusCompleted, BatchStatusCancelled:
		return true
	}
	return false
}

// DefaultStageName is shown on a candidate created while the stage
// registry is empty.
const DefaultStageName = "Cadastrado"
