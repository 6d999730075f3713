package core

import "github.com/inovacc/citynews/internal/model"

// State is the result state of a tracked fetch
type State int

const (
	StateIdle State = iota
	StateLoading
	StateFailed
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateFailed:
		return "failed"
	case StateLoaded:
		return "loaded"
	}

	return "unknown"
}

// Ticket identifies one issued request.
type Ticket struct {
	// Seq increases with every request a tracker issues
	Seq uint64

	// Path is the backend path the request must be sent to
	Path string
}

// Tracker follows the lifecycle of a repeatable fetch of T.
//
// A Tracker is not safe for concurrent use; all calls must come from the
// goroutine that owns the view.
type Tracker[T any] struct {
	resource string
	state    State
	value    T
	message  string
	cause    error
	issued   uint64
}

// NewTracker creates an idle tracker. resource names what is fetched and is
// used in failure messages ("cities", "news").
func NewTracker[T any](resource string) *Tracker[T] {
	return &Tracker[T]{resource: resource}
}

// Begin moves the tracker to Loading and issues a ticket for path.
// Any earlier ticket becomes stale.
func (t *Tracker[T]) Begin(path string) Ticket {
	var zero T

	t.issued++
	t.state = StateLoading
	t.value = zero
	t.message = ""
	t.cause = nil

	return Ticket{Seq: t.issued, Path: path}
}

// Resolve applies the outcome of the request identified by ticket.
// It returns false and changes nothing when the ticket is stale or was
// already resolved.
func (t *Tracker[T]) Resolve(ticket Ticket, env model.Envelope[T], err error) bool {
	if ticket.Seq != t.issued || t.state != StateLoading {
		return false
	}

	switch {
	case err != nil:
		t.fail(TransportMessage(t.resource, err), err)
	case !env.Success:
		t.fail(ApplicationMessage(t.resource), nil)
	default:
		t.state = StateLoaded
		t.value = env.Data
	}

	return true
}

func (t *Tracker[T]) fail(message string, cause error) {
	var zero T

	t.state = StateFailed
	t.value = zero
	t.message = message
	t.cause = cause
}

// State returns the current result state.
func (t *Tracker[T]) State() State {
	return t.state
}

// Value returns the loaded value. ok is false unless the state is Loaded.
func (t *Tracker[T]) Value() (value T, ok bool) {
	if t.state != StateLoaded {
		var zero T

		return zero, false
	}

	return t.value, true
}

// Message returns the failure message, or "" unless the state is Failed.
func (t *Tracker[T]) Message() string {
	return t.message
}

// Err returns the failure as a *FetchError, or nil unless the state is Failed.
func (t *Tracker[T]) Err() error {
	if t.state != StateFailed {
		return nil
	}

	return &FetchError{Message: t.message, Err: t.cause}
}

// Issued returns the sequence number of the most recent ticket.
func (t *Tracker[T]) Issued() uint64 {
	return t.issued
}
