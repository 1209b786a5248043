// Package recommender defines the capability surface of the managed
// recommendation service this project orchestrates.
//
// The streaming core never talks to the service; tooling around it needs
// exactly four request/response calls: create and describe an event
// tracker, fetch ranked recommendations, and submit interaction events.
// Client captures those so commands can run against AWS Personalize (see
// the personalize subpackage) or the in-memory fake interchangeably.
package recommender

import (
	"context"
	"errors"
	"time"
)

// ErrTrackerNotFound is returned when describing an unknown event tracker.
var ErrTrackerNotFound = errors.New("event tracker not found")

// Tracker identifies an event-tracking resource.
type Tracker struct {
	ARN        string
	TrackingID string
	Name       string
	Status     string
}

// Active reports whether the tracker is ready to accept events.
func (t *Tracker) Active() bool {
	return t.Status == "ACTIVE"
}

// Event is one user/item interaction.
type Event struct {
	UserID    string
	SessionID string
	ItemID    string
	EventType string
	SentAt    time.Time
}

// Recommendation is one ranked item.
type Recommendation struct {
	ItemID string
	Score  float64
}

// Client is the capability object for the managed recommendation service.
type Client interface {
	// CreateEventTracker creates a tracking resource in the dataset group.
	CreateEventTracker(ctx context.Context, name, datasetGroupARN string) (*Tracker, error)

	// DescribeEventTracker fetches the current state of a tracker.
	DescribeEventTracker(ctx context.Context, trackerARN string) (*Tracker, error)

	// GetRecommendations returns up to numResults ranked items for a user.
	GetRecommendations(ctx context.Context, campaignARN, userID string, numResults int) ([]Recommendation, error)

	// PutEvents submits interaction events against a tracking ID.
	PutEvents(ctx context.Context, trackingID string, events []Event) error
}
