package handlers

import (
	"context"
	"errors"
	"log/slog"
	nethttp "net/http"
	"strconv"
	"strings"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/domain/markets"
	"github.com/preston-bernstein/market-names/internal/domain/sportevents"
	"github.com/preston-bernstein/market-names/internal/domain/urn"
	"github.com/preston-bernstein/market-names/internal/logging"
	"github.com/preston-bernstein/market-names/internal/naming"
	"github.com/preston-bernstein/market-names/internal/poller"
)

const marketsPrefix = "/markets/"

// EventLookup finds the sport event a market belongs to.
type EventLookup interface {
	GetEvent(id urn.URN) (sportevents.SportEvent, bool)
}

// NameResponse is the payload of both name endpoints.
type NameResponse struct {
	Name      string `json:"name"`
	MarketID  int    `json:"marketId"`
	OutcomeID string `json:"outcomeId,omitempty"`
	Locale    string `json:"locale"`
}

// Handler wires HTTP routes to the name generation engine.
type Handler struct {
	factory       *naming.Factory
	events        EventLookup
	defaultLocale language.Tag
	logger        *slog.Logger
	statusFn      func() poller.Status
}

// NewHandler constructs a Handler. Requests without a locale use defaultLocale.
func NewHandler(factory *naming.Factory, events EventLookup, defaultLocale language.Tag, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		factory:       factory,
		events:        events,
		defaultLocale: defaultLocale,
		logger:        logger,
		statusFn:      statusFn,
	}
}

// ServeHTTP dispatches by path so the handler can be mounted on its own.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case strings.HasPrefix(r.URL.Path, marketsPrefix):
		h.Markets(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports whether the catalog has loaded (e.g., for Kubernetes probes).
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

// Markets serves /markets/{marketID}/name and /markets/{marketID}/outcomes/{outcomeID}/name.
func (h *Handler) Markets(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	segments := strings.Split(strings.TrimPrefix(r.URL.Path, marketsPrefix), "/")
	var outcomeID string
	switch {
	case len(segments) == 2 && segments[1] == "name":
	case len(segments) == 4 && segments[1] == "outcomes" && segments[3] == "name" && segments[2] != "":
		outcomeID = segments[2]
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
		return
	}

	marketID, err := strconv.Atoi(segments[0])
	if err != nil || marketID <= 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid market id", h.logger)
		return
	}
	req, ok := h.parseNameRequest(w, r)
	if !ok {
		return
	}

	provider := h.factory.Build(req.event, marketID, req.specifiers)
	var name string
	if outcomeID == "" {
		name, err = provider.MarketName(r.Context(), req.locale)
	} else {
		name, err = provider.OutcomeName(r.Context(), outcomeID, req.locale)
	}
	if err != nil {
		h.writeNameError(w, r, err)
		return
	}
	if name == "" {
		if r.Context().Err() != nil {
			writeError(w, r, nethttp.StatusServiceUnavailable, "request canceled", h.logger)
			return
		}
		writeError(w, r, nethttp.StatusNotFound, "name unavailable", h.logger)
		return
	}

	logInfo(r, h.logger, "served name",
		logging.FieldMarketID, marketID,
		logging.FieldOutcomeID, outcomeID,
		logging.FieldLocale, req.locale.String(),
	)
	writeJSON(w, nethttp.StatusOK, NameResponse{
		Name:      name,
		MarketID:  marketID,
		OutcomeID: outcomeID,
		Locale:    req.locale.String(),
	}, h.logger)
}

type nameRequest struct {
	event      sportevents.SportEvent
	locale     language.Tag
	specifiers map[string]string
}

// parseNameRequest reads the query parameters shared by both name endpoints and
// writes the error response itself when they are unusable.
func (h *Handler) parseNameRequest(w nethttp.ResponseWriter, r *nethttp.Request) (nameRequest, bool) {
	query := r.URL.Query()

	rawEvent := strings.TrimSpace(query.Get("event"))
	if rawEvent == "" {
		writeError(w, r, nethttp.StatusBadRequest, "event query parameter required", h.logger)
		return nameRequest{}, false
	}
	eventID, err := urn.Parse(rawEvent)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid event id", h.logger)
		return nameRequest{}, false
	}
	if h.events == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "events not loaded", h.logger)
		return nameRequest{}, false
	}
	event, ok := h.events.GetEvent(eventID)
	if !ok {
		writeError(w, r, nethttp.StatusNotFound, "event not found", h.logger)
		return nameRequest{}, false
	}

	locale := h.defaultLocale
	if raw := strings.TrimSpace(query.Get("locale")); raw != "" {
		if locale, err = language.Parse(raw); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid locale", h.logger)
			return nameRequest{}, false
		}
	}

	specifiers, err := markets.ParseSpecifiers(query.Get("specifiers"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid specifiers", h.logger)
		return nameRequest{}, false
	}

	return nameRequest{event: event, locale: locale, specifiers: specifiers}, true
}

func (h *Handler) writeNameError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	var genErr *naming.NameGenerationError
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		writeError(w, r, nethttp.StatusServiceUnavailable, "request canceled", h.logger)
	case errors.As(err, &genErr):
		writeError(w, r, nethttp.StatusUnprocessableEntity, genErr.Error(), h.logger)
	default:
		writeError(w, r, nethttp.StatusInternalServerError, "name generation failed", h.logger)
	}
}
