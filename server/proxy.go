package server

import (
	"context"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/kerosiinikone/go-grpc-pixelforge/pb"
	"github.com/kerosiinikone/go-grpc-pixelforge/transfer"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
	"github.com/pkg/errors"
)

// chainedProcessor runs a local processor and hands its result to the next
// service, returning what that service sends back.
type chainedProcessor struct {
	local     workers.Processor
	next      *transfer.Client
	method    string
	chunkSize int
}

var _ workers.Processor = chainedProcessor{}

func (c chainedProcessor) Process(ctx context.Context, img []byte, kind string, p workers.Params) ([]byte, error) {
	out, err := c.local.Process(ctx, img, kind, p)
	if err != nil {
		return nil, err
	}
	dst := chunk.NewReassembler()
	src := chunk.NewEncoder(out, "", kind, c.chunkSize)
	if _, err := c.next.Transfer(ctx, c.method, src, toWire(p), dst); err != nil {
		return nil, errors.Wrapf(err, "forward to %s", c.method)
	}
	return dst.Result()
}

// chain wraps every linked method of procs so its result goes on to next.
func chain(procs map[string]workers.Processor, next *transfer.Client, links map[string]string, chunkSize int) error {
	for from, to := range links {
		local, ok := procs[from]
		if !ok {
			return errors.Errorf("chain: unknown method %s", from)
		}
		if !knownMethod(to) {
			return errors.Errorf("chain: unknown upstream method %s", to)
		}
		procs[from] = chainedProcessor{local: local, next: next, method: to, chunkSize: chunkSize}
	}
	return nil
}

func knownMethod(method string) bool {
	switch method {
	case pb.MethodExtractPalette, pb.MethodEcho, pb.MethodInvert, pb.MethodResize:
		return true
	}
	return false
}

func toWire(p workers.Params) pb.Params {
	return pb.Params{
		ColorsPerRow: int32(p.ColorsPerRow),
		ColorWidth:   int32(p.ColorWidth),
		ColorHeight:  int32(p.ColorHeight),
		ColorNum:     int32(p.ColorNum),
		Width:        int32(p.Width),
		Height:       int32(p.Height),
	}
}
