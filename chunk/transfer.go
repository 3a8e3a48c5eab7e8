package chunk

import "github.com/pkg/errors"

// State is the lifecycle position of a Transfer.
type State int

const (
	StateCreated State = iota
	StateActive
	StateComplete
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateCreated:
		return "created"
	case StateActive:
		return "active"
	case StateComplete:
		return "complete"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Transfer tracks one file's worth of frames. The first admitted frame fixes
// Name and Kind for the rest of the transfer.
type Transfer struct {
	Name string
	Kind string

	state  State
	frames int
	bytes  int64
	cause  error
}

// Admit validates f against the frames admitted before it and counts it.
// A metadata mismatch aborts the transfer.
func (t *Transfer) Admit(f Frame) error {
	switch t.state {
	case StateComplete, StateAborted:
		return ErrClosed
	case StateCreated:
		t.Name, t.Kind = f.Name, f.Kind
		t.state = StateActive
	default:
		if f.Name != t.Name {
			return t.violation(&ProtocolViolation{Index: t.frames, Field: "name", Want: t.Name, Got: f.Name})
		}
		if f.Kind != t.Kind {
			return t.violation(&ProtocolViolation{Index: t.frames, Field: "kind", Want: t.Kind, Got: f.Kind})
		}
	}
	t.frames++
	t.bytes += int64(len(f.Payload))
	return nil
}

func (t *Transfer) violation(pv *ProtocolViolation) error {
	t.Abort(pv)
	return pv
}

// Complete marks the transfer as fully delivered. A transfer with no frames
// may complete; that is the empty payload.
func (t *Transfer) Complete() error {
	switch t.state {
	case StateAborted:
		return errors.Wrap(ErrIncomplete, "complete after abort")
	case StateComplete:
		return nil
	}
	t.state = StateComplete
	return nil
}

// Abort marks the transfer as failed. The first cause wins.
func (t *Transfer) Abort(cause error) {
	if t.state == StateComplete || t.state == StateAborted {
		return
	}
	if cause == nil {
		cause = ErrIncomplete
	}
	t.state = StateAborted
	t.cause = cause
}

func (t *Transfer) State() State { return t.state }

func (t *Transfer) Frames() int { return t.frames }

func (t *Transfer) Bytes() int64 { return t.bytes }

// Err returns nil once complete, the abort cause when aborted, and
// ErrIncomplete while frames are still expected.
func (t *Transfer) Err() error {
	switch t.state {
	case StateComplete:
		return nil
	case StateAborted:
		if errors.Is(t.cause, ErrIncomplete) {
			return t.cause
		}
		return &incompleteError{cause: t.cause}
	default:
		return ErrIncomplete
	}
}

// incompleteError matches ErrIncomplete with errors.Is while keeping the cause
// reachable with errors.As.
type incompleteError struct {
	cause error
}

func (e *incompleteError) Error() string {
	return ErrIncomplete.Error() + ": " + e.cause.Error()
}

func (e *incompleteError) Is(target error) bool { return target == ErrIncomplete }

func (e *incompleteError) Unwrap() error { return e.cause }
