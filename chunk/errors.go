package chunk

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
)

var (
	// ErrInputNotFound is returned when the source payload can not be opened.
	ErrInputNotFound = errors.New("input not found")
	// ErrIncomplete is returned for the result of a transfer that did not complete.
	ErrIncomplete = errors.New("transfer incomplete")
	// ErrClosed is returned when frames arrive after a transfer has finished.
	ErrClosed = errors.New("transfer already finished")
)

// ProtocolViolation reports a frame whose metadata disagrees with the
// frames before it.
type ProtocolViolation struct {
	Index int
	Field string
	Want  string
	Got   string
}

func (e *ProtocolViolation) Error() string {
	return fmt.Sprintf("protocol violation at frame %d: %s changed from %q to %q", e.Index, e.Field, e.Want, e.Got)
}

// IsProtocolViolation reports whether err wraps a *ProtocolViolation.
func IsProtocolViolation(err error) bool {
	var pv *ProtocolViolation
	return errors.As(err, &pv)
}

// ReadFile loads the whole payload at path.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, errors.Wrap(ErrInputNotFound, path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return data, nil
}
