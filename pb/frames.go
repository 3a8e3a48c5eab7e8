package pb

import (
	"context"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Method names of the PixelForging service.
const (
	MethodExtractPalette = "ExtractPalette"
	MethodEcho           = "Echo"
	MethodInvert         = "Invert"
	MethodResize         = "Resize"
)

// Params are the processing parameters of a transfer.
type Params struct {
	ColorsPerRow int32
	ColorWidth   int32
	ColorHeight  int32
	ColorNum     int32
	Width        int32
	Height       int32
}

// StreamClient is the client side of any PixelForging method; every
// generated method client satisfies it.
type StreamClient interface {
	Send(*ExtractPaletteInput) error
	Recv() (*ExtractPaletteOutput, error)
	grpc.ClientStream
}

// StreamServer is the server side of any PixelForging method.
type StreamServer interface {
	Send(*ExtractPaletteOutput) error
	Recv() (*ExtractPaletteInput, error)
	grpc.ServerStream
}

// OpenStream starts method on c by name.
func OpenStream(ctx context.Context, c PixelForgingClient, method string, opts ...grpc.CallOption) (StreamClient, error) {
	switch method {
	case MethodExtractPalette:
		return c.ExtractPalette(ctx, opts...)
	case MethodEcho:
		return c.Echo(ctx, opts...)
	case MethodInvert:
		return c.Invert(ctx, opts...)
	case MethodResize:
		return c.Resize(ctx, opts...)
	}
	return nil, status.Errorf(codes.Unimplemented, "unknown method %s", method)
}

// NewInput builds the wire message for f.
func NewInput(f chunk.Frame, p Params) *ExtractPaletteInput {
	return &ExtractPaletteInput{
		FileBytes:    f.Payload,
		FileName:     f.Name,
		FileType:     f.Kind,
		ColorsPerRow: p.ColorsPerRow,
		ColorWidth:   p.ColorWidth,
		ColorHeight:  p.ColorHeight,
		ColorNum:     p.ColorNum,
		Width:        p.Width,
		Height:       p.Height,
	}
}

func (x *ExtractPaletteInput) Frame() chunk.Frame {
	return chunk.Frame{Payload: x.GetFileBytes(), Name: x.GetFileName(), Kind: x.GetFileType()}
}

func (x *ExtractPaletteInput) Params() Params {
	return Params{
		ColorsPerRow: x.GetColorsPerRow(),
		ColorWidth:   x.GetColorWidth(),
		ColorHeight:  x.GetColorHeight(),
		ColorNum:     x.GetColorNum(),
		Width:        x.GetWidth(),
		Height:       x.GetHeight(),
	}
}

// NewOutput builds the wire message for f.
func NewOutput(f chunk.Frame) *ExtractPaletteOutput {
	return &ExtractPaletteOutput{
		PaletteBytes: f.Payload,
		FileName:     f.Name,
		FileType:     f.Kind,
	}
}

func (x *ExtractPaletteOutput) Frame() chunk.Frame {
	return chunk.Frame{Payload: x.GetPaletteBytes(), Name: x.GetFileName(), Kind: x.GetFileType()}
}
