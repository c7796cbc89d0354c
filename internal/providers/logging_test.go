package providers

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/preston-bernstein/market-names/internal/logging"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}

func TestLogWithSourceNilLogger(t *testing.T) {
	logWithSource(context.Background(), nil, slog.LevelInfo, "catalog", "ignored")
}

func TestLogWithSourcePrefersContextLogger(t *testing.T) {
	fallback, fallbackBuf := newBufferLogger()
	scoped, scopedBuf := newBufferLogger()
	ctx := logging.WithLogger(context.Background(), scoped)

	logWithSource(ctx, fallback, slog.LevelWarn, "catalog", "hello")

	if fallbackBuf.Len() != 0 {
		t.Fatalf("expected fallback logger unused, got %q", fallbackBuf.String())
	}
	if !contains(scopedBuf.String(), "source=catalog") {
		t.Fatalf("expected source attribute, got %q", scopedBuf.String())
	}
}
