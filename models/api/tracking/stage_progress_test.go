package trackingapimodels

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFeedbackValidation(t *testing.T) {
	t.Run(`score bounds`, func(t *testing.T) {
		for score, wantErr := range map[int]bool{0: false, 100: false, -1: true, 101: true} {
			s := score
			err := FeedbackData{Score: &s}.Validate()
			if wantErr {
				require.NotNil(t, err, score)
			} else {
				require.Nil(t, err, score)
			}
		}
	})

	t.Run(`empty payload is rejected`, func(t *testing.T) {
		require.NotNil(t, FeedbackData{}.Validate())
		require.Nil(t, FeedbackData{Feedback: "solid system design answers"}.Validate())
	})
}
