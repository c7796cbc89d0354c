package providers

import (
	"context"
	"errors"
	"fmt"
)

// ErrSourceUnavailable is returned when a source refuses work, e.g. while its circuit is open.
var ErrSourceUnavailable = errors.New("catalog source unavailable")

// NotFoundError reports that a source has no data for the requested key.
type NotFoundError struct {
	Source string
	Kind   string
	Key    string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s: no %s", e.Source, e.Kind)
	}
	return fmt.Sprintf("%s: no %s for %s", e.Source, e.Kind, e.Key)
}

// AsNotFoundError attempts to unwrap an error into a NotFoundError.
func AsNotFoundError(err error) (*NotFoundError, bool) {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// retryable reports whether another attempt could succeed.
func retryable(err error) bool {
	if err == nil {
		return false
	}
	if _, ok := AsNotFoundError(err); ok {
		return false
	}
	return !errors.Is(err, ErrSourceUnavailable) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}
