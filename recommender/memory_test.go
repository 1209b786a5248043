package recommender

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMemoryClientTrackerLifecycle(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	created, err := client.CreateEventTracker(ctx, "demo-tracker", "arn:aws:personalize:::dataset-group/demo")
	require.NoError(t, err)
	require.NotEmpty(t, created.ARN)
	require.NotEmpty(t, created.TrackingID)
	require.True(t, created.Active())

	described, err := client.DescribeEventTracker(ctx, created.ARN)
	require.NoError(t, err)
	require.Equal(t, created.TrackingID, described.TrackingID)
	require.Equal(t, "demo-tracker", described.Name)

	_, err = client.DescribeEventTracker(ctx, "arn:nope")
	require.ErrorIs(t, err, ErrTrackerNotFound)
}

func TestMemoryClientRecommendations(t *testing.T) {
	ctx := context.Background()
	client := NewMemoryClient()

	tracker, err := client.CreateEventTracker(ctx, "t", "arn:dsg")
	require.NoError(t, err)

	now := time.Now()
	err = client.PutEvents(ctx, tracker.TrackingID, []Event{
		{UserID: "u1", ItemID: "A", EventType: "review", SentAt: now},
		{UserID: "u2", ItemID: "A", EventType: "review", SentAt: now},
		{UserID: "u1", ItemID: "B", EventType: "review", SentAt: now},
		{UserID: "u3", ItemID: "C", EventType: "review", SentAt: now},
		{UserID: "u4", ItemID: "C", EventType: "review", SentAt: now},
		{UserID: "u5", ItemID: "C", EventType: "review", SentAt: now},
	})
	require.NoError(t, err)

	recs, err := client.GetRecommendations(ctx, "arn:campaign", "u1", 2)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, "C", recs[0].ItemID)
	require.Equal(t, "A", recs[1].ItemID)

	require.Len(t, client.Events(tracker.TrackingID), 6)
}
