package stripchart

import (
	"errors"
	"fmt"
	"log"
	"os"
)

var (
	// ErrTooManyTicks is reported when a tick computation or a manual tick
	// list exceeds MaxTicks.
	ErrTooManyTicks = errors.New("too many major ticks")

	// ErrTooManyTraces is returned when adding more than MaxTraces traces.
	ErrTooManyTraces = errors.New("too many traces")

	// ErrNoSurface is returned by operations that need the chart size
	// before the first resize.
	ErrNoSurface = errors.New("chart has no size")

	// ErrUnknownTrace is returned when removing a trace not attached to the chart.
	ErrUnknownTrace = errors.New("trace not attached to chart")
)

// CapacityError reports that a soft limit was hit. The operation was
// aborted and the previous state kept.
type CapacityError struct {
	Limit     int
	Requested int
	Err       error
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("stripchart: %v: %d requested, limit is %d", e.Err, e.Requested, e.Limit)
}

func (e *CapacityError) Unwrap() error { return e.Err }

// Logger receives reports about recoverable errors during layout.
var Logger = log.New(os.Stderr, "stripchart: ", log.LstdFlags)

// debug enables tracing of the layout passes.
var debug = false

func debugf(format string, args ...interface{}) {
	if debug {
		Logger.Printf(format, args...)
	}
}
