package server

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"golang.org/x/text/language"

	"github.com/preston-bernstein/market-names/internal/config"
	"github.com/preston-bernstein/market-names/internal/providers/fixture"
	"github.com/preston-bernstein/market-names/internal/testutil"
	"github.com/preston-bernstein/market-names/internal/teststubs"
)

func testConfig() config.Config {
	return config.Config{
		DefaultLocale: language.English,
		Catalog: config.CatalogConfig{
			Locales:         []language.Tag{language.English, language.German},
			RefreshInterval: time.Hour,
		},
		Source: config.SourceConfig{
			RateInterval:  time.Millisecond,
			RateBurst:     10,
			RetryAttempts: 1,
		},
	}
}

func waitForRefresh(t *testing.T, srv *Server) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		status := srv.poller.Status()
		if !status.LastSuccess.IsZero() || status.ConsecutiveFailures > 0 {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("timed out waiting for catalog refresh")
}

func TestServerServesHealthAndNames(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := newServerWithSource(testConfig(), nil, fixture.New())
	srv.poller.Start(ctx)
	waitForRefresh(t, srv)

	router := srv.Handler()

	rr := testutil.Serve(router, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(router, http.MethodGet, "/markets/18/outcomes/13/name?event=sr:match:1&locale=de&specifiers=total%3D210.5", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if resp["name"] != "unter 210.5" {
		t.Fatalf("unexpected name %v", resp["name"])
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected middleware to set a request id")
	}
}

func TestServerHandlesSourceErrorGracefully(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	source := &teststubs.StubSource{Err: errors.New("catalog offline"), Notify: make(chan struct{})}
	srv := newServerWithSource(testConfig(), nil, source)
	srv.poller.Start(ctx)

	select {
	case <-source.Notify:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("timed out waiting for refresh to reach the source")
	}
	waitForRefresh(t, srv)

	router := srv.Handler()
	rr := testutil.Serve(router, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	rr = testutil.Serve(router, http.MethodGet, "/markets/1/name?event=sr:match:1", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestNewConstructsServer(t *testing.T) {
	cfg := config.Config{
		Port:    "0",
		Catalog: config.CatalogConfig{Source: config.SourceFixture},
		Metrics: config.MetricsConfig{Enabled: false},
	}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatalf("expected server with handler")
	}
	if srv.catalog == nil {
		t.Fatalf("expected catalog to be wired")
	}
}

func TestDefaultLocaleFallsBackToEnglish(t *testing.T) {
	if got := defaultLocale(config.Config{}); got != language.English {
		t.Fatalf("expected en, got %s", got)
	}
	if got := defaultLocale(config.Config{DefaultLocale: language.German}); got != language.German {
		t.Fatalf("expected de, got %s", got)
	}
}

func TestGracefulShutdownCallsStopAndShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, p)
	srv.gracefulShutdown()

	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
}

func TestGracefulShutdownTimesOutLongRunningShutdown(t *testing.T) {
	p := &testutil.StubPoller{}
	blocking := &testutil.BlockingHTTPServer{
		AddrVal:    ":0",
		HandlerVal: http.NewServeMux(),
		Unblock:    make(chan struct{}),
	}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := newServerWithDeps(config.Config{}, nil, blocking, p)

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", blocking.ShutdownCalls)
	}
	if p.StopCalls != 1 {
		t.Fatalf("expected poller Stop to be called once, got %d", p.StopCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestGracefulShutdownContinuesWhenPollerStopErrors(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	p := &testutil.StubPoller{Err: errors.New("stop failure")}
	httpSrv := &testutil.StubHTTPServer{}

	srv := newServerWithDeps(config.Config{}, logger, httpSrv, p)
	srv.gracefulShutdown()

	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown to be called once, got %d", httpSrv.ShutdownCalls)
	}
	if !strings.Contains(buf.String(), "failed to stop poller") {
		t.Fatalf("expected poller stop failure to be logged, got %s", buf.String())
	}
}

func TestServerStartHandlesListenErrorAndStops(t *testing.T) {
	httpSrv := &testutil.StubHTTPServer{ListenErr: errors.New("listen failure")}
	srv := newServerWithDeps(config.Config{}, nil, httpSrv, &testutil.StubPoller{})

	var wg sync.WaitGroup
	wg.Add(1)
	stopCalled := make(chan struct{})
	stop := func() {
		close(stopCalled)
		wg.Done()
	}

	srv.startServer(stop)

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}

	wg.Wait()
}

func TestRunCancelsAndStopsComponents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	plr := &testutil.StubPoller{}
	httpSrv := &testutil.StubHTTPServer{ListenErr: http.ErrServerClosed}

	srv := newServerWithDeps(config.Config{}, nil, httpSrv, plr)

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	// Let Start be invoked.
	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if plr.StartCalls != 1 {
		t.Fatalf("expected poller Start called once, got %d", plr.StartCalls)
	}
	if plr.StopCalls != 1 {
		t.Fatalf("expected poller Stop called once, got %d", plr.StopCalls)
	}
	if httpSrv.ShutdownCalls != 1 {
		t.Fatalf("expected server Shutdown called once, got %d", httpSrv.ShutdownCalls)
	}
}
