// Package personalize implements recommender.Client on AWS Personalize.
//
// Control-plane calls (trackers) go to the personalize service, ranked
// recommendations to personalize-runtime, and interaction events to
// personalize-events. Event submission is rate limited client-side since
// the events endpoint throttles aggressively on fresh trackers.
package personalize

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/personalize"
	"github.com/aws/aws-sdk-go-v2/service/personalizeevents"
	etypes "github.com/aws/aws-sdk-go-v2/service/personalizeevents/types"
	"github.com/aws/aws-sdk-go-v2/service/personalizeruntime"
	"golang.org/x/time/rate"

	"github.com/hupe1980/recstream/recommender"
)

// ControlAPI is the subset of the personalize control-plane client used
// here. Satisfied by *personalize.Client.
type ControlAPI interface {
	CreateEventTracker(ctx context.Context, params *personalize.CreateEventTrackerInput, optFns ...func(*personalize.Options)) (*personalize.CreateEventTrackerOutput, error)
	DescribeEventTracker(ctx context.Context, params *personalize.DescribeEventTrackerInput, optFns ...func(*personalize.Options)) (*personalize.DescribeEventTrackerOutput, error)
}

// RuntimeAPI is the subset of the personalize runtime client used here.
// Satisfied by *personalizeruntime.Client.
type RuntimeAPI interface {
	GetRecommendations(ctx context.Context, params *personalizeruntime.GetRecommendationsInput, optFns ...func(*personalizeruntime.Options)) (*personalizeruntime.GetRecommendationsOutput, error)
}

// EventsAPI is the subset of the personalize events client used here.
// Satisfied by *personalizeevents.Client.
type EventsAPI interface {
	PutEvents(ctx context.Context, params *personalizeevents.PutEventsInput, optFns ...func(*personalizeevents.Options)) (*personalizeevents.PutEventsOutput, error)
}

// Options configures the client.
type Options struct {
	// EventsPerSecond limits PutEvents calls. Zero disables limiting.
	EventsPerSecond float64
}

// DefaultOptions are applied before option functions run.
var DefaultOptions = Options{
	EventsPerSecond: 10,
}

// Client implements recommender.Client on AWS Personalize.
type Client struct {
	control ControlAPI
	runtime RuntimeAPI
	events  EventsAPI
	limiter *rate.Limiter
}

var _ recommender.Client = (*Client)(nil)

// New creates a Client from the three service APIs.
func New(control ControlAPI, runtime RuntimeAPI, events EventsAPI, optFns ...func(o *Options)) *Client {
	opts := DefaultOptions
	for _, fn := range optFns {
		fn(&opts)
	}

	var limiter *rate.Limiter
	if opts.EventsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(opts.EventsPerSecond), 1)
	}

	return &Client{
		control: control,
		runtime: runtime,
		events:  events,
		limiter: limiter,
	}
}

// NewFromConfig creates a Client with SDK clients built from cfg.
func NewFromConfig(cfg aws.Config, optFns ...func(o *Options)) *Client {
	return New(
		personalize.NewFromConfig(cfg),
		personalizeruntime.NewFromConfig(cfg),
		personalizeevents.NewFromConfig(cfg),
		optFns...,
	)
}

// CreateEventTracker creates a tracking resource in the dataset group.
func (c *Client) CreateEventTracker(ctx context.Context, name, datasetGroupARN string) (*recommender.Tracker, error) {
	out, err := c.control.CreateEventTracker(ctx, &personalize.CreateEventTrackerInput{
		Name:            aws.String(name),
		DatasetGroupArn: aws.String(datasetGroupARN),
	})
	if err != nil {
		return nil, err
	}

	// Creation is async; describe for the authoritative state.
	return c.DescribeEventTracker(ctx, aws.ToString(out.EventTrackerArn))
}

// DescribeEventTracker fetches the current state of a tracker.
func (c *Client) DescribeEventTracker(ctx context.Context, trackerARN string) (*recommender.Tracker, error) {
	out, err := c.control.DescribeEventTracker(ctx, &personalize.DescribeEventTrackerInput{
		EventTrackerArn: aws.String(trackerARN),
	})
	if err != nil {
		return nil, err
	}

	t := out.EventTracker
	return &recommender.Tracker{
		ARN:        aws.ToString(t.EventTrackerArn),
		TrackingID: aws.ToString(t.TrackingId),
		Name:       aws.ToString(t.Name),
		Status:     aws.ToString(t.Status),
	}, nil
}

// GetRecommendations returns up to numResults ranked items for a user.
func (c *Client) GetRecommendations(ctx context.Context, campaignARN, userID string, numResults int) ([]recommender.Recommendation, error) {
	out, err := c.runtime.GetRecommendations(ctx, &personalizeruntime.GetRecommendationsInput{
		CampaignArn: aws.String(campaignARN),
		UserId:      aws.String(userID),
		NumResults:  int32(numResults),
	})
	if err != nil {
		return nil, err
	}

	recs := make([]recommender.Recommendation, 0, len(out.ItemList))
	for _, item := range out.ItemList {
		recs = append(recs, recommender.Recommendation{
			ItemID: aws.ToString(item.ItemId),
			Score:  aws.ToFloat64(item.Score),
		})
	}
	return recs, nil
}

// PutEvents submits interaction events against a tracking ID.
//
// The events API scopes each call to one user session, so events are
// grouped by (user, session) and submitted one call per group, in first
// occurrence order.
func (c *Client) PutEvents(ctx context.Context, trackingID string, events []recommender.Event) error {
	type sessionKey struct {
		userID    string
		sessionID string
	}

	var order []sessionKey
	groups := make(map[sessionKey][]etypes.Event)

	for _, e := range events {
		key := sessionKey{userID: e.UserID, sessionID: e.SessionID}
		if key.sessionID == "" {
			key.sessionID = e.UserID
		}
		if _, ok := groups[key]; !ok {
			order = append(order, key)
		}

		sentAt := e.SentAt
		if sentAt.IsZero() {
			sentAt = time.Now()
		}

		groups[key] = append(groups[key], etypes.Event{
			EventType: aws.String(e.EventType),
			ItemId:    aws.String(e.ItemID),
			SentAt:    aws.Time(sentAt),
		})
	}

	for _, key := range order {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
		}

		_, err := c.events.PutEvents(ctx, &personalizeevents.PutEventsInput{
			TrackingId: aws.String(trackingID),
			UserId:     aws.String(key.userID),
			SessionId:  aws.String(key.sessionID),
			EventList:  groups[key],
		})
		if err != nil {
			return err
		}
	}
	return nil
}
