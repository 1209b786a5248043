package recommender

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// MemoryClient is an in-memory Client implementation for tests and local
// demos. Recommendations are a popularity ranking over the events it has
// received: items with more events rank higher, ties break by item ID so
// results are deterministic.
type MemoryClient struct {
	mu       sync.Mutex
	trackers map[string]*Tracker // by ARN
	events   map[string][]Event  // by tracking ID
	counts   map[string]int      // events per item
	seq      int
}

// NewMemoryClient creates an empty in-memory client.
func NewMemoryClient() *MemoryClient {
	return &MemoryClient{
		trackers: make(map[string]*Tracker),
		events:   make(map[string][]Event),
		counts:   make(map[string]int),
	}
}

// CreateEventTracker creates a tracking resource in the dataset group.
func (m *MemoryClient) CreateEventTracker(_ context.Context, name, datasetGroupARN string) (*Tracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	t := &Tracker{
		ARN:        fmt.Sprintf("%s/event-tracker/%d", datasetGroupARN, m.seq),
		TrackingID: fmt.Sprintf("tracking-%d", m.seq),
		Name:       name,
		Status:     "ACTIVE",
	}
	m.trackers[t.ARN] = t
	return t, nil
}

// DescribeEventTracker fetches the current state of a tracker.
func (m *MemoryClient) DescribeEventTracker(_ context.Context, trackerARN string) (*Tracker, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.trackers[trackerARN]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrTrackerNotFound, trackerARN)
	}
	cp := *t
	return &cp, nil
}

// GetRecommendations returns up to numResults ranked items for a user.
func (m *MemoryClient) GetRecommendations(_ context.Context, _, _ string, numResults int) ([]Recommendation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	recs := make([]Recommendation, 0, len(m.counts))
	for item, count := range m.counts {
		recs = append(recs, Recommendation{ItemID: item, Score: float64(count)})
	}
	sort.Slice(recs, func(i, j int) bool {
		if recs[i].Score != recs[j].Score {
			return recs[i].Score > recs[j].Score
		}
		return recs[i].ItemID < recs[j].ItemID
	})

	if numResults > 0 && len(recs) > numResults {
		recs = recs[:numResults]
	}
	return recs, nil
}

// PutEvents submits interaction events against a tracking ID.
func (m *MemoryClient) PutEvents(_ context.Context, trackingID string, events []Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.events[trackingID] = append(m.events[trackingID], events...)
	for _, e := range events {
		if e.ItemID != "" {
			m.counts[e.ItemID]++
		}
	}
	return nil
}

// Events returns the events received for a tracking ID. Handy in tests.
func (m *MemoryClient) Events(trackingID string) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Event, len(m.events[trackingID]))
	copy(out, m.events[trackingID])
	return out
}
