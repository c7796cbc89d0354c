package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sony/gobreaker"
	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/metrics"
	"github.com/preston-bernstein/market-names/internal/teststubs"
)

func TestBreakerSourceOpensAfterConsecutiveFailures(t *testing.T) {
	inner := &teststubs.StubSource{Err: errors.New("down")}
	recorder := metrics.NewRecorder()
	logger, buf := newBufferLogger()
	b := NewBreakerSource(inner, "catalog", time.Hour, logger, recorder)

	for i := 0; i < breakerTripFailures; i++ {
		if _, err := b.FetchMarkets(context.Background(), language.English); errors.Is(err, ErrSourceUnavailable) {
			t.Fatalf("call %d rejected before the breaker tripped", i)
		}
	}
	_, err := b.FetchMarkets(context.Background(), language.English)
	if !errors.Is(err, ErrSourceUnavailable) || !errors.Is(err, gobreaker.ErrOpenState) {
		t.Fatalf("expected open breaker error, got %v", err)
	}
	if int(inner.Calls.Load()) != breakerTripFailures {
		t.Fatalf("expected %d inner calls, got %d", breakerTripFailures, inner.Calls.Load())
	}
	if recorder.SourceRejections("catalog") != 1 {
		t.Fatalf("expected 1 rejection, got %d", recorder.SourceRejections("catalog"))
	}
	if b.(*breakerSource).State() != gobreaker.StateOpen {
		t.Fatalf("expected open state")
	}
	if !contains(buf.String(), "circuit breaker state changed") {
		t.Fatalf("expected state change log, got %q", buf.String())
	}
}

func TestBreakerSourceIgnoresNotFound(t *testing.T) {
	inner := &teststubs.StubSource{Err: &NotFoundError{Source: "catalog", Kind: "profiles"}}
	b := NewBreakerSource(inner, "catalog", time.Hour, nil, nil)

	for i := 0; i < breakerTripFailures+2; i++ {
		_, err := b.FetchProfiles(context.Background(), language.English)
		if _, ok := AsNotFoundError(err); !ok {
			t.Fatalf("expected not found to pass through, got %v", err)
		}
	}
	if b.(*breakerSource).State() != gobreaker.StateClosed {
		t.Fatalf("expected closed breaker")
	}
}

func TestBreakerSourceHalfOpenProbe(t *testing.T) {
	inner := &flakySource{failures: breakerTripFailures, err: errors.New("down")}
	b := NewBreakerSource(inner, "catalog", 20*time.Millisecond, nil, nil)

	for i := 0; i < breakerTripFailures; i++ {
		_, _ = b.FetchEvents(context.Background())
	}
	time.Sleep(30 * time.Millisecond)

	if _, err := b.FetchEvents(context.Background()); err != nil {
		t.Fatalf("expected probe to succeed, got %v", err)
	}
	if b.(*breakerSource).State() != gobreaker.StateClosed {
		t.Fatalf("expected breaker to close after a successful probe")
	}
}

func TestBreakerSourcePassesResults(t *testing.T) {
	inner := &flakySource{}
	b := NewBreakerSource(inner, "catalog", 0, nil, nil)
	comps, err := b.FetchProfiles(context.Background(), language.English)
	if err != nil || len(comps) != 1 {
		t.Fatalf("expected one competitor, got %v (%v)", comps, err)
	}
}

func (b *breakerSource) State() gobreaker.State {
	return b.cb.State()
}
