package transfer

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Stats counts what crossed the wire in each direction.
type Stats struct {
	FramesSent     int64
	BytesSent      int64
	FramesReceived int64
	BytesReceived  int64
}

// TransportError is returned for any call that did not complete: connection
// loss, deadline expiry, cancellation or an error status from the server.
type TransportError struct {
	Method string
	Code   codes.Code
	Stats  Stats
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transfer %s failed (%s) after sending %d frames/%d bytes and receiving %d frames/%d bytes: %v",
		e.Method, e.Code, e.Stats.FramesSent, e.Stats.BytesSent, e.Stats.FramesReceived, e.Stats.BytesReceived, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// GRPCStatus lets status.Code and status.Convert see through the wrapper.
func (e *TransportError) GRPCStatus() *status.Status {
	return status.New(e.Code, e.Err.Error())
}

// IsTransportError reports whether err wraps a *TransportError.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// newTransportError classifies err. ctxErr is the call context's error, if
// any, so cancellation and deadlines unwrap to the context sentinels.
func newTransportError(method string, err error, ctxErr error, stats Stats) *TransportError {
	te := &TransportError{
		Method: method,
		Code:   status.Code(err),
		Stats:  stats,
		Err:    err,
	}
	switch {
	case ctxErr != nil && (te.Code == codes.Canceled || te.Code == codes.DeadlineExceeded || te.Code == codes.Unknown):
		te.Code = status.FromContextError(ctxErr).Code()
		te.Err = errors.Wrap(ctxErr, status.Convert(err).Message())
	case errors.Is(err, context.Canceled):
		te.Code = codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		te.Code = codes.DeadlineExceeded
	}
	return te
}
