package presenter

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/meeting-insights/internal/domain/entities"
	"github.com/johnquangdev/meeting-insights/internal/usecase/analysis"
)

func TestToUserResponse_OmitsPassword(t *testing.T) {
	u := &entities.User{ID: 1, Username: "johndoe", Password: "password123", Name: "John Doe"}

	raw, err := json.Marshal(ToUserResponse(u))
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.Contains(t, string(raw), `"username":"johndoe"`)

	assert.Nil(t, ToUserResponse(nil))
	assert.NotNil(t, ToUserResponses(nil))
}

func TestToAnalyzeResponse_FlattensMeeting(t *testing.T) {
	result := &analysis.Result{
		Meeting: &entities.MeetingWithDetails{
			Meeting:      entities.Meeting{ID: 7, Title: "Sync", Status: entities.MeetingStatusAnalyzed},
			Decisions:    []entities.Decision{},
			ActionItems:  []entities.ActionItem{},
			Participants: []string{"PM"},
		},
		UsedFallback: analysis.FallbackUsage{Decisions: true},
		Warning:      "check the file",
	}

	raw, err := json.Marshal(ToAnalyzeResponse(result))
	require.NoError(t, err)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, float64(7), body["id"])
	assert.Equal(t, "Analyzed", body["status"])
	assert.Equal(t, []interface{}{"PM"}, body["participants"])
	assert.Equal(t, "check the file", body["warning"])
	assert.Equal(t, map[string]interface{}{"decisions": true, "actionItems": false}, body["usedFallback"])
}
