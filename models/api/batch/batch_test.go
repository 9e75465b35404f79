package batchapimodels

import (
	"testing"

	"recruitment-backend/models"

	"github.com/stretchr/testify/require"
)

func validBatch() BatchData {
	return BatchData{
		Name:              "Turma 2026-01",
		JobTitle:          "Backend Engineer",
		Status:            models.BatchStatusActive,
		StartDate:         "2026-01-05",
		EndDate:           "2026-03-27",
		MaxCandidates:     30,
		CurrentCandidates: 12,
		CompletionRate:    40,
		AverageTime:       18,
	}
}

func TestBatchValidation(t *testing.T) {
	t.Run(`complete payload passes`, func(t *testing.T) {
		require.Nil(t, validBatch().Validate())
	})

	t.Run(`name and status are required`, func(t *testing.T) {
		data := validBatch()
		data.Name = ""
		require.NotNil(t, data.Validate())

		data = validBatch()
		data.Status = "paused"
		require.NotNil(t, data.Validate())
	})

	t.Run(`capacity bounds the current count`, func(t *testing.T) {
		data := validBatch()
		data.CurrentCandidates = data.MaxCandidates
		require.Nil(t, data.Validate())

		data.CurrentCandidates = data.MaxCandidates + 1
		require.NotNil(t, data.Validate())

		data = validBatch()
		data.MaxCandidates = 0
		data.CurrentCandidates = 50
		require.Nil(t, data.Validate())

		data = validBatch()
		data.CurrentCandidates = -1
		require.NotNil(t, data.Validate())
	})

	t.Run(`completion rate is a percentage`, func(t *testing.T) {
		data := validBatch()
		data.CompletionRate = 100
		require.Nil(t, data.Validate())

		data.CompletionRate = 101
		require.NotNil(t, data.Validate())

		data.CompletionRate = -1
		require.NotNil(t, data.Validate())
	})

	t.Run(`dates must be YYYY-MM-DD when present`, func(t *testing.T) {
		data := validBatch()
		data.StartDate = ""
		data.EndDate = ""
		require.Nil(t, data.Validate())

		data = validBatch()
		data.StartDate = "05/01/2026"
		require.NotNil(t, data.Validate())

		data = validBatch()
		data.EndDate = "2026-13-01"
		require.NotNil(t, data.Validate())
	})

	t.Run(`assignments need at least one stage`, func(t *testing.T) {
		require.Nil(t, AssignmentData{StageIDs: []string{"tpl-1"}}.Validate())
		require.NotNil(t, AssignmentData{}.Validate())
	})
}
