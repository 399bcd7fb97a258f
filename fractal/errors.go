package fractal

import (
	"errors"
	"fmt"
)

var (
	ErrCanvasClosed      = errors.New("canvas closed")
	ErrDrawingInProgress = errors.New("drawing already in progress")
)

// ConfigurationError reports settings or a canvas that a run cannot start with.
// It is returned before anything is drawn.
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// ResourceError reports a drawing surface that became unavailable.
type ResourceError struct {
	Op  string
	Err error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
