package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/profiles"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/providers"
)

// Writer persists catalog files in the layout FSSource reads.
type Writer struct {
	basePath string
}

// NewWriter constructs a writer rooted at basePath.
func NewWriter(basePath string) *Writer {
	return &Writer{basePath: basePath}
}

// BasePath exposes the writer root path.
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteMarkets writes the descriptions of one locale, ordered by id and variant.
func (w *Writer) WriteMarkets(locale language.Tag, descs []markets.Description) error {
	recs := make([]marketRecord, 0, len(descs))
	for _, d := range descs {
		recs = append(recs, toMarketRecord(d, locale))
	}
	sortMarkets(recs)
	return w.write(MarketsPath(w.BasePath(), locale), marketsFile{Markets: recs})
}

// WriteProfiles writes the competitor profiles of one locale.
func (w *Writer) WriteProfiles(locale language.Tag, comps []profiles.Competitor) error {
	recs := make([]competitorRecord, 0, len(comps))
	for _, c := range comps {
		recs = append(recs, toCompetitorRecord(c))
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID < recs[j].ID })
	return w.write(ProfilesPath(w.BasePath(), locale), profilesFile{Competitors: recs})
}

// WriteEvents writes all sport events.
func (w *Writer) WriteEvents(events []sportevents.SportEvent) error {
	recs := make([]eventRecord, 0, len(events))
	for _, e := range events {
		rec, err := toEventRecord(e)
		if err != nil {
			return err
		}
		recs = append(recs, rec)
	}
	return w.write(EventsPath(w.BasePath()), eventsFileRecord{Events: recs})
}

// write replaces target atomically and leaves it untouched when the content is unchanged.
func (w *Writer) write(target string, payload any) error {
	if w == nil {
		return errors.New("catalog writer not configured")
	}
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(payload); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	data := buf.Bytes()

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return nil
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, target)
}

// Export copies everything src serves for locales into w.
func Export(ctx context.Context, src providers.Source, w *Writer, locales []language.Tag) error {
	for _, locale := range locales {
		descs, err := src.FetchMarkets(ctx, locale)
		if err != nil {
			return fmt.Errorf("exporting %s markets: %w", locale, err)
		}
		if err := w.WriteMarkets(locale, descs); err != nil {
			return err
		}
		comps, err := src.FetchProfiles(ctx, locale)
		if err != nil {
			return fmt.Errorf("exporting %s profiles: %w", locale, err)
		}
		if err := w.WriteProfiles(locale, comps); err != nil {
			return err
		}
	}
	events, err := src.FetchEvents(ctx)
	if err != nil {
		return fmt.Errorf("exporting events: %w", err)
	}
	return w.WriteEvents(events)
}
