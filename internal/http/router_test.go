package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/http/handlers"
	"github.com/preston-bernstein/market-names/internal/naming"
	"github.com/preston-bernstein/market-names/internal/providers/fixture"
	"github.com/preston-bernstein/market-names/internal/store"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	catalog := store.NewCatalog(fixture.New(), []language.Tag{language.English}, nil)
	if err := catalog.Refresh(context.Background()); err != nil {
		t.Fatalf("catalog refresh failed: %v", err)
	}
	factory := naming.NewFactory(catalog.Markets, catalog.Profiles)
	return NewRouter(handlers.NewHandler(factory, catalog.Events, language.English, nil, nil))
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router := newRouter(t)

	cases := map[string]int{
		"/health":                                        http.StatusOK,
		"/ready":                                         http.StatusOK,
		"/markets/1/name?event=sr:match:1":               http.StatusOK,
		"/markets/1/outcomes/2/name?event=sr:match:1":    http.StatusOK,
		"/markets/1/outcomes/2/name?event=sr:match:1234": http.StatusNotFound, // known route with missing event
	}

	for path, expected := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/does-not-exist", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown route, got %d", rr.Code)
	}
}
