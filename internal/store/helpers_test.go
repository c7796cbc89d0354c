package store

import (
	"bytes"
	"log/slog"
	"strings"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	return slog.New(slog.NewTextHandler(buf, nil)), buf
}

func contains(s, sub string) bool {
	return strings.Contains(s, sub)
}
