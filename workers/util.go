package workers

import (
	"bytes"
	"context"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/pkg/errors"
)

// Params holds the processing parameters of one transfer. Zero values mean
// "use the processor's default".
type Params struct {
	ColorsPerRow int
	ColorWidth   int
	ColorHeight  int
	ColorNum     int
	Width        int
	Height       int
}

const (
	// MaxDimension bounds every size parameter a client may send.
	MaxDimension = 1 << 14
	// MaxCanvasBytes bounds the RGBA image a processor may allocate.
	MaxCanvasBytes = 64 << 20
)

// ErrOutOfRange is returned for parameters or output sizes above the limits.
var ErrOutOfRange = errors.New("out of range")

// Validate rejects negative sizes and sizes above MaxDimension, and a
// resize target larger than MaxCanvasBytes.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    int
	}{
		{"colorsPerRow", p.ColorsPerRow},
		{"colorWidth", p.ColorWidth},
		{"colorHeight", p.ColorHeight},
		{"colorNum", p.ColorNum},
		{"width", p.Width},
		{"height", p.Height},
	} {
		if f.v < 0 || f.v > MaxDimension {
			return errors.Wrapf(ErrOutOfRange, "%s %d not in 0..%d", f.name, f.v, MaxDimension)
		}
	}
	return CheckCanvas(p.Width, p.Height)
}

// CheckCanvas fails when a width x height RGBA image exceeds MaxCanvasBytes.
func CheckCanvas(width, height int) error {
	if width < 0 || height < 0 || int64(width)*int64(height)*4 > MaxCanvasBytes {
		return errors.Wrapf(ErrOutOfRange, "canvas %dx%d exceeds %d bytes", width, height, MaxCanvasBytes)
	}
	return nil
}

// Processor transforms a fully reassembled image and returns the encoded
// result in the same kind.
type Processor interface {
	Process(ctx context.Context, img []byte, kind string, p Params) ([]byte, error)
}

// Streamer is implemented by processors that can emit output for each chunk
// as it arrives instead of waiting for the whole image.
type Streamer interface {
	ProcessChunk(data []byte) []byte
}

// ProcessorFunc adapts a function to the Processor interface.
type ProcessorFunc func(ctx context.Context, img []byte, kind string, p Params) ([]byte, error)

func (f ProcessorFunc) Process(ctx context.Context, img []byte, kind string, p Params) ([]byte, error) {
	return f(ctx, img, kind, p)
}

// ImageChunk holds data that is relevant when chunks of an image are
// passed around internally. The last chunk of a stream has Completed set
// and carries the worker's error, if any.
type ImageChunk struct {
	Data      []byte
	Completed bool
	Err       error
}

// NewImageChunk creates a data chunk
func NewImageChunk(d []byte) ImageChunk {
	return ImageChunk{Data: d}
}

// Done creates the completion chunk
func Done(err error) ImageChunk {
	return ImageChunk{Completed: true, Err: err}
}

// Run reads the image chunks from inch and buffers them until the completion
// chunk, then processes the image and pipes the result to outch. Streamers
// forward every chunk immediately instead. Run closes outch when it returns.
func Run(ctx context.Context, proc Processor, kind string, p Params, chunkSize int, inch <-chan ImageChunk, outch chan<- ImageChunk) {
	defer close(outch)

	var (
		imgBuffer   = new(bytes.Buffer)
		streamer, _ = proc.(Streamer)
	)

	for {
		select {
		case <-ctx.Done():
			return
		case imgChunk, ok := <-inch:
			if !ok {
				// Input ended without a completion chunk: nothing to emit.
				return
			}
			if !imgChunk.Completed {
				if streamer != nil {
					data, err := processChunk(streamer, imgChunk.Data)
					if err != nil {
						send(ctx, outch, Done(err))
						return
					}
					if !send(ctx, outch, NewImageChunk(data)) {
						return
					}
					continue
				}
				imgBuffer.Write(imgChunk.Data)
				continue
			}

			if streamer != nil {
				send(ctx, outch, Done(nil))
				return
			}
			result, err := process(ctx, proc, imgBuffer.Bytes(), kind, p)
			if err != nil {
				send(ctx, outch, Done(errors.Wrap(err, "process image")))
				return
			}
			PipeResult(ctx, result, chunkSize, outch)
			return
		}
	}
}

// process runs proc, reporting a panic as an error.
func process(ctx context.Context, proc Processor, img []byte, kind string, p Params) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errors.Errorf("processor panicked: %v", r)
		}
	}()
	return proc.Process(ctx, img, kind, p)
}

func processChunk(s Streamer, data []byte) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, errors.Errorf("processor panicked: %v", r)
		}
	}()
	return s.ProcessChunk(data), nil
}

// PipeResult splits b into chunkSize pieces on c and finishes with a
// completion chunk.
func PipeResult(ctx context.Context, b []byte, chunkSize int, c chan<- ImageChunk) {
	enc := chunk.NewEncoder(b, "", "", chunkSize)
	for f, ok := enc.Next(); ok; f, ok = enc.Next() {
		if !send(ctx, c, NewImageChunk(f.Payload)) {
			return
		}
	}
	send(ctx, c, Done(nil))
}

func send(ctx context.Context, c chan<- ImageChunk, ch ImageChunk) bool {
	select {
	case c <- ch:
		return true
	case <-ctx.Done():
		return false
	}
}
