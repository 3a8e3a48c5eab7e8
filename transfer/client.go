package transfer

import (
	"context"
	"io"
	"time"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/kerosiinikone/go-grpc-pixelforge/pb"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// Client opens PixelForging transfers over one connection. A Client may run
// several transfers concurrently; each Call owns its own stream.
type Client struct {
	cc  *grpc.ClientConn
	rpc pb.PixelForgingClient

	// Timeout is the overall deadline of each call when non-zero.
	Timeout time.Duration
	Log     zerolog.Logger
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int

	// Extra options, for tests dialing a bufconn listener.
	Extra []grpc.DialOption
}

// Dial connects to a PixelForging server at target.
func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}
	dialOpts = append(dialOpts, opts.Extra...)

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
		dialOpts = append(dialOpts, grpc.WithBlock())
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, errors.Wrapf(err, "dial %s", target)
	}
	c := NewClient(cc)
	c.cc = cc
	return c, nil
}

// NewClient wraps an existing connection. Close is a no-op for such clients.
// Logging is off until Log is set.
func NewClient(cc grpc.ClientConnInterface) *Client {
	return &Client{
		rpc: pb.NewPixelForgingClient(cc),
		Log: zerolog.Nop(),
	}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Open starts method and begins pumping frames from src. Frames are pulled
// from src only after the previous one was accepted by the transport.
func (c *Client) Open(ctx context.Context, method string, src chunk.Source, params pb.Params) (*Call, error) {
	var cancel context.CancelFunc
	if c.Timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}

	stream, err := pb.OpenStream(ctx, c.rpc, method)
	if err != nil {
		te := newTransportError(method, err, ctx.Err(), Stats{})
		cancel()
		return nil, te
	}

	call := &Call{
		method:   method,
		stream:   stream,
		ctx:      ctx,
		cancel:   cancel,
		sendDone: make(chan struct{}),
		log:      c.Log.With().Str("method", method).Logger(),
	}
	go call.pump(src, params)
	return call, nil
}

// Transfer runs method to completion, feeding every reply frame into dst.
// dst ends up either complete or aborted, never in between.
func (c *Client) Transfer(ctx context.Context, method string, src chunk.Source, params pb.Params, dst *chunk.Reassembler) (Stats, error) {
	call, err := c.Open(ctx, method, src, params)
	if err != nil {
		dst.Abort(err)
		return Stats{}, err
	}
	defer call.Close()

	for {
		f, err := call.Recv()
		if err == io.EOF {
			break
		}
		if err != nil {
			dst.Abort(err)
			return call.Stats(), err
		}
		if err := dst.Write(f); err != nil {
			call.Cancel()
			dst.Abort(err)
			return call.Stats(), errors.Wrap(err, "reassemble reply")
		}
	}
	if err := dst.Complete(); err != nil {
		return call.Stats(), errors.Wrap(err, "finish reply")
	}

	stats := call.Stats()
	c.Log.Debug().
		Str("method", method).
		Str("file", dst.Name()).
		Int64("frames_sent", stats.FramesSent).
		Int64("frames_received", stats.FramesReceived).
		Int64("bytes_received", stats.BytesReceived).
		Msg("transfer complete")
	return stats, nil
}
