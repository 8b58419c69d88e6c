package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampEncoding(t *testing.T) {
	moscow := time.FixedZone("MSK", 3*60*60)

	raw, err := json.Marshal(TrackingSnapshot{
		SessionID: "session",
		UpdatedAt: Timestamp{Time: time.Date(2024, 5, 1, 15, 0, 0, 0, moscow)},
	})
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "2024-05-01T12:00:00Z", decoded["updatedAt"])
}
