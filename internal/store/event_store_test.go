package store

import (
	"context"
	"errors"
	"testing"

	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
	"github.com/preston-bernstein/market-names/internal/teststubs"
)

func TestEventStoreSetAndGet(t *testing.T) {
	s := NewEventStore(&teststubs.StubSource{})
	s.SetEvents([]sportevents.SportEvent{
		&sportevents.Match{EventID: urn.New(urn.TypeMatch, 2)},
		&sportevents.Match{EventID: urn.New(urn.TypeMatch, 1)},
		nil,
	})

	list := s.ListEvents()
	if len(list) != 2 {
		t.Fatalf("expected 2 events, got %d", len(list))
	}
	if list[0].ID().ID != 1 {
		t.Fatalf("expected events ordered by id, got %s first", list[0].ID())
	}
	if _, ok := s.GetEvent(urn.New(urn.TypeMatch, 2)); !ok {
		t.Fatalf("expected to find sr:match:2")
	}
	if _, ok := s.GetEvent(urn.New(urn.TypeMatch, 3)); ok {
		t.Fatalf("expected missing id to return false")
	}
}

func TestEventStoreSetReplacesSnapshot(t *testing.T) {
	s := NewEventStore(&teststubs.StubSource{})
	s.SetEvents([]sportevents.SportEvent{&sportevents.Tournament{EventID: urn.New(urn.TypeTournament, 1)}})
	s.SetEvents([]sportevents.SportEvent{&sportevents.Tournament{EventID: urn.New(urn.TypeTournament, 2)}})

	if _, ok := s.GetEvent(urn.New(urn.TypeTournament, 1)); ok {
		t.Fatalf("expected old event to be removed after replace")
	}
}

func TestEventStoreRefresh(t *testing.T) {
	src := &teststubs.StubSource{Events: []sportevents.SportEvent{&sportevents.Match{EventID: urn.New(urn.TypeMatch, 1)}}}
	s := NewEventStore(src)
	if err := s.Refresh(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if _, ok := s.GetEvent(urn.New(urn.TypeMatch, 1)); !ok {
		t.Fatalf("expected refreshed event")
	}

	src.Err = errors.New("down")
	if err := s.Refresh(context.Background()); err == nil {
		t.Fatalf("expected refresh error")
	}
	if len(s.ListEvents()) != 1 {
		t.Fatalf("expected snapshot to survive a failed refresh")
	}
}
