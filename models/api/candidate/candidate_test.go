package candidateapimodels

import (
	"testing"

	"recruitment-backend/models"

	"github.com/stretchr/testify/require"
)

func validCandidate() CandidateData {
	return CandidateData{
		Name:     "Ana Silva",
		Email:    "ana.silva@example.com",
		Phone:    "+55 11 91234-5678",
		Location: "Campinas, São Paulo",
		Position: "Backend Engineer",
	}
}

func TestCandidateValidation(t *testing.T) {
	t.Run(`complete payload passes`, func(t *testing.T) {
		require.Nil(t, validCandidate().Validate())
	})

	t.Run(`required fields are enforced`, func(t *testing.T) {
		data := validCandidate()
		data.Name = ""
		require.NotNil(t, data.Validate())

		data = validCandidate()
		data.Email = ""
		require.NotNil(t, data.Validate())

		data = validCandidate()
		data.Phone = ""
		require.NotNil(t, data.Validate())

		data = validCandidate()
		data.Position = ""
		require.NotNil(t, data.Validate())
	})

	t.Run(`location and motivation are optional`, func(t *testing.T) {
		data := validCandidate()
		data.Location = ""
		data.Experience = ""
		data.Motivation = ""
		require.Nil(t, data.Validate())
	})

	t.Run(`malformed emails are rejected`, func(t *testing.T) {
		for _, email := range []string{"plain", "no@tld", "spaces in@mail.com", "@example.com", "ana@"} {
			data := validCandidate()
			data.Email = email
			require.NotNil(t, data.Validate(), email)
		}
	})

	t.Run(`status payload accepts known statuses only`, func(t *testing.T) {
		require.Nil(t, CandidateStatusData{Status: models.CandidateStatusReviewing}.Validate())
		require.NotNil(t, CandidateStatusData{Status: "archived"}.Validate())
		require.NotNil(t, CandidateStatusData{}.Validate())
	})

	t.Run(`notes require text`, func(t *testing.T) {
		require.Nil(t, NoteData{Note: "call scheduled"}.Validate())
		require.NotNil(t, NoteData{}.Validate())
	})
}
