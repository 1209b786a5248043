package personalize

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/personalize"
	ptypes "github.com/aws/aws-sdk-go-v2/service/personalize/types"
	"github.com/aws/aws-sdk-go-v2/service/personalizeevents"
	"github.com/aws/aws-sdk-go-v2/service/personalizeruntime"
	rtypes "github.com/aws/aws-sdk-go-v2/service/personalizeruntime/types"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/recstream/recommender"
)

type fakeControl struct {
	created   []*personalize.CreateEventTrackerInput
	described []*personalize.DescribeEventTrackerInput
}

func (f *fakeControl) CreateEventTracker(_ context.Context, params *personalize.CreateEventTrackerInput, _ ...func(*personalize.Options)) (*personalize.CreateEventTrackerOutput, error) {
	f.created = append(f.created, params)
	return &personalize.CreateEventTrackerOutput{
		EventTrackerArn: aws.String("arn:tracker"),
		TrackingId:      aws.String("tid-1"),
	}, nil
}

func (f *fakeControl) DescribeEventTracker(_ context.Context, params *personalize.DescribeEventTrackerInput, _ ...func(*personalize.Options)) (*personalize.DescribeEventTrackerOutput, error) {
	f.described = append(f.described, params)
	return &personalize.DescribeEventTrackerOutput{
		EventTracker: &ptypes.EventTracker{
			EventTrackerArn: params.EventTrackerArn,
			TrackingId:      aws.String("tid-1"),
			Name:            aws.String("demo"),
			Status:          aws.String("ACTIVE"),
		},
	}, nil
}

type fakeRuntime struct{}

func (fakeRuntime) GetRecommendations(_ context.Context, params *personalizeruntime.GetRecommendationsInput, _ ...func(*personalizeruntime.Options)) (*personalizeruntime.GetRecommendationsOutput, error) {
	return &personalizeruntime.GetRecommendationsOutput{
		ItemList: []rtypes.PredictedItem{
			{ItemId: aws.String("A"), Score: aws.Float64(0.9)},
			{ItemId: aws.String("B"), Score: aws.Float64(0.1)},
		},
	}, nil
}

type fakeEvents struct {
	calls []*personalizeevents.PutEventsInput
}

func (f *fakeEvents) PutEvents(_ context.Context, params *personalizeevents.PutEventsInput, _ ...func(*personalizeevents.Options)) (*personalizeevents.PutEventsOutput, error) {
	f.calls = append(f.calls, params)
	return &personalizeevents.PutEventsOutput{}, nil
}

func newTestClient(control ControlAPI, runtime RuntimeAPI, events EventsAPI) *Client {
	// Disable rate limiting in tests.
	return New(control, runtime, events, func(o *Options) { o.EventsPerSecond = 0 })
}

func TestCreateEventTracker(t *testing.T) {
	control := &fakeControl{}
	client := newTestClient(control, fakeRuntime{}, &fakeEvents{})

	tracker, err := client.CreateEventTracker(context.Background(), "demo", "arn:dsg")
	require.NoError(t, err)

	require.Equal(t, "arn:tracker", tracker.ARN)
	require.Equal(t, "tid-1", tracker.TrackingID)
	require.True(t, tracker.Active())

	require.Len(t, control.created, 1)
	require.Equal(t, "demo", aws.ToString(control.created[0].Name))
	require.Len(t, control.described, 1)
}

func TestGetRecommendations(t *testing.T) {
	client := newTestClient(&fakeControl{}, fakeRuntime{}, &fakeEvents{})

	recs, err := client.GetRecommendations(context.Background(), "arn:campaign", "u1", 2)
	require.NoError(t, err)

	require.Equal(t, []recommender.Recommendation{
		{ItemID: "A", Score: 0.9},
		{ItemID: "B", Score: 0.1},
	}, recs)
}

func TestPutEventsGroupsBySession(t *testing.T) {
	events := &fakeEvents{}
	client := newTestClient(&fakeControl{}, fakeRuntime{}, events)

	err := client.PutEvents(context.Background(), "tid-1", []recommender.Event{
		{UserID: "u1", ItemID: "A", EventType: "review"},
		{UserID: "u2", ItemID: "B", EventType: "review"},
		{UserID: "u1", ItemID: "C", EventType: "review"},
	})
	require.NoError(t, err)

	// Two sessions: u1 (two events) and u2 (one event), in first-seen order.
	require.Len(t, events.calls, 2)
	require.Equal(t, "u1", aws.ToString(events.calls[0].UserId))
	require.Len(t, events.calls[0].EventList, 2)
	require.Equal(t, "u2", aws.ToString(events.calls[1].UserId))
	require.Len(t, events.calls[1].EventList, 1)

	// Session ID falls back to the user ID when unset.
	require.Equal(t, "u1", aws.ToString(events.calls[0].SessionId))

	// SentAt is defaulted.
	require.NotNil(t, events.calls[0].EventList[0].SentAt)
	require.False(t, events.calls[0].EventList[0].SentAt.IsZero())
}
