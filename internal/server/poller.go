package server

import (
	"context"

	"github.com/preston-bernstein/market-names/internal/poller"
)

// Poller defines the minimal refresh loop behavior needed by the server.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
