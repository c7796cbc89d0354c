package providers

import (
	"context"
	"sync/atomic"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
)

// flakySource fails the first failures calls with err and succeeds afterwards.
type flakySource struct {
	failures int32
	err      error
	calls    atomic.Int32
}

func (f *flakySource) result() error {
	if f.calls.Add(1) <= f.failures {
		return f.err
	}
	return nil
}

func (f *flakySource) FetchMarkets(context.Context, language.Tag) ([]markets.Description, error) {
	if err := f.result(); err != nil {
		return nil, err
	}
	return []markets.Description{{ID: 1}}, nil
}

func (f *flakySource) FetchProfiles(context.Context, language.Tag) ([]profiles.Competitor, error) {
	if err := f.result(); err != nil {
		return nil, err
	}
	return []profiles.Competitor{{Name: "Boston Celtics"}}, nil
}

func (f *flakySource) FetchEvents(context.Context) ([]sportevents.SportEvent, error) {
	if err := f.result(); err != nil {
		return nil, err
	}
	return nil, nil
}
