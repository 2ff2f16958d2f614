package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The dashboard frontend binds the overview counters by camelCase key,
// so these must not follow the snake_case convention of the other DTOs.
func TestAnalyticsOverviewWireKeys(t *testing.T) {
	raw, err := json.Marshal(AnalyticsOverview{TotalBots: 3, BotsInReview: 1})
	require.NoError(t, err)

	var keys map[string]int
	require.NoError(t, json.Unmarshal(raw, &keys))

	for _, key := range []string{
		"totalBots", "totalTesters", "totalSessions",
		"liveSessions", "completedSessions", "reviewedSessions",
		"totalMessages", "totalLikes", "totalDislikes",
		"botsInReview", "botsTesting", "botsLive", "botsNotLive", "botsCancelled",
	} {
		_, ok := keys[key]
		assert.True(t, ok, "missing overview key %q", key)
	}
	assert.Equal(t, 3, keys["totalBots"])
	assert.Equal(t, 1, keys["botsInReview"])
}
