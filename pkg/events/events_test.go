package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisherWithoutBroker(t *testing.T) {
	t.Setenv("AGENCYTOOLS_AMQP_URL", "")

	publisher, err := NewPublisher(context.Background())
	require.NoError(t, err)

	assert.IsType(t, NoopPublisher{}, publisher)
	assert.NoError(t, publisher.Publish(context.Background(), &DatasetGenerated{DatasetID: "ca-vancouver-translink-seabus"}))
	assert.NoError(t, publisher.Close())
}

func TestDatasetGeneratedJSON(t *testing.T) {
	event := &DatasetGenerated{
		DatasetID:   "ca-vancouver-translink-seabus",
		Destination: "directory",
		Routes:      1,
		Trips:       2,
		GeneratedAt: time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
	}

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "ca-vancouver-translink-seabus", decoded["DatasetID"])
	assert.Equal(t, float64(2), decoded["Trips"])
	assert.NotContains(t, decoded, "SnapshotID")
}
