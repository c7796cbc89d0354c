package store

import (
	"context"
	"sort"
	"sync"

	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
	"github.com/preston-bernstein/market-names/internal/providers"
)

// EventStore keeps a thread-safe snapshot of sport events in memory.
type EventStore struct {
	source providers.EventSource

	mu     sync.RWMutex
	events map[urn.URN]sportevents.SportEvent
}

// NewEventStore constructs an empty EventStore fed by source.
func NewEventStore(source providers.EventSource) *EventStore {
	return &EventStore{
		source: source,
		events: make(map[urn.URN]sportevents.SportEvent),
	}
}

// Refresh replaces the snapshot with the events the source currently serves.
func (s *EventStore) Refresh(ctx context.Context) error {
	events, err := s.source.FetchEvents(ctx)
	if err != nil {
		return err
	}
	s.SetEvents(events)
	return nil
}

// ListEvents returns the events ordered by id.
func (s *EventStore) ListEvents() []sportevents.SportEvent {
	s.mu.RLock()
	result := make([]sportevents.SportEvent, 0, len(s.events))
	for _, e := range s.events {
		result = append(result, e)
	}
	s.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID().String() < result[j].ID().String()
	})
	return result
}

// GetEvent retrieves an event by id.
func (s *EventStore) GetEvent(id urn.URN) (sportevents.SportEvent, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.events[id]
	return e, ok
}

// SetEvents replaces the existing events with a new snapshot.
func (s *EventStore) SetEvents(events []sportevents.SportEvent) {
	next := make(map[urn.URN]sportevents.SportEvent, len(events))
	for _, e := range events {
		if e == nil {
			continue
		}
		next[e.ID()] = e
	}

	s.mu.Lock()
	s.events = next
	s.mu.Unlock()
}
