package transfer

import (
	"context"
	"io"
	"sync/atomic"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/kerosiinikone/go-grpc-pixelforge/pb"
	"github.com/rs/zerolog"
)

// Call is one in-flight full-duplex transfer. The outbound side is pumped by
// its own goroutine; the inbound side is pulled with Recv. Recv must not be
// called from more than one goroutine.
type Call struct {
	method string
	stream pb.StreamClient
	ctx    context.Context
	cancel context.CancelFunc
	log    zerolog.Logger

	// sendErr is written by pump before sendDone is closed.
	sendDone chan struct{}
	sendErr  error

	framesSent atomic.Int64
	bytesSent  atomic.Int64
	framesRecv atomic.Int64
	bytesRecv  atomic.Int64

	// err is the terminal result handed out by every Recv after the first.
	err error
}

func (call *Call) pump(src chunk.Source, params pb.Params) {
	defer close(call.sendDone)

	for {
		if err := call.ctx.Err(); err != nil {
			call.sendErr = err
			return
		}
		f, ok := src.Next()
		if !ok {
			break
		}
		if err := call.stream.Send(pb.NewInput(f, params)); err != nil {
			// io.EOF means the server already ended the call; its status
			// comes from Recv.
			if err == io.EOF {
				call.log.Debug().Int64("frames", call.framesSent.Load()).Msg("server finished before the input was sent")
				break
			}
			call.sendErr = err
			return
		}
		call.framesSent.Add(1)
		call.bytesSent.Add(int64(f.Len()))
	}

	if err := call.stream.CloseSend(); err != nil {
		call.sendErr = err
		return
	}
	call.log.Trace().Int64("frames", call.framesSent.Load()).Msg("half-closed")
}

// Recv returns the next reply frame in the order the server sent it. It
// returns io.EOF once the server completed the call with OK and the outbound
// side was half-closed; any other outcome is a *TransportError. The server's
// status decides the outcome even when it stopped reading early; Stats
// tells how much of the input was sent.
func (call *Call) Recv() (chunk.Frame, error) {
	if call.err != nil {
		return chunk.Frame{}, call.err
	}

	m, err := call.stream.Recv()
	if err == io.EOF {
		<-call.sendDone
		if call.sendErr != nil {
			return chunk.Frame{}, call.finish(call.sendErr)
		}
		call.err = io.EOF
		call.cancel()
		return chunk.Frame{}, io.EOF
	}
	if err != nil {
		return chunk.Frame{}, call.finish(err)
	}

	f := m.Frame()
	call.framesRecv.Add(1)
	call.bytesRecv.Add(int64(f.Len()))
	return f, nil
}

func (call *Call) finish(err error) error {
	te := newTransportError(call.method, err, call.ctx.Err(), Stats{})
	call.cancel()
	<-call.sendDone
	te.Stats = call.Stats()
	call.err = te
	call.log.Debug().Err(err).Str("code", te.Code.String()).Msg("transfer failed")
	return te
}

// Cancel stops frame production and releases the stream. Frames in flight
// are discarded and later Recv calls fail with a canceled TransportError.
func (call *Call) Cancel() {
	call.cancel()
}

// Close releases the call's resources once it is done.
func (call *Call) Close() {
	call.cancel()
	<-call.sendDone
}

// Stats reports the traffic of the call so far.
func (call *Call) Stats() Stats {
	return Stats{
		FramesSent:     call.framesSent.Load(),
		BytesSent:      call.bytesSent.Load(),
		FramesReceived: call.framesRecv.Load(),
		BytesReceived:  call.bytesRecv.Load(),
	}
}
