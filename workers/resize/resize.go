// Package resize scales an image to the requested dimensions.
package resize

import (
	"context"
	"image"

	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

const (
	processor = resize.Lanczos3

	// Used when neither dimension is given.
	defaultWidth  = 100
	defaultHeight = 100
)

// Processor resizes to Params.Width x Params.Height. A zero dimension keeps
// the aspect ratio.
type Processor struct{}

var _ workers.Processor = Processor{}

func (Processor) Process(_ context.Context, img []byte, kind string, p workers.Params) ([]byte, error) {
	decoded, err := workers.Decode(img, kind)
	if err != nil {
		return nil, err
	}
	width, height := p.Width, p.Height
	if width <= 0 && height <= 0 {
		width, height = defaultWidth, defaultHeight
	}
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if err := workers.CheckCanvas(outputSize(decoded.Bounds(), width, height)); err != nil {
		return nil, errors.Wrap(err, "resize")
	}
	return workers.Encode(resize.Resize(uint(width), uint(height), decoded, processor), kind)
}

// outputSize fills in a zero dimension from the aspect ratio of b.
func outputSize(b image.Rectangle, width, height int) (int, int) {
	if b.Dx() == 0 || b.Dy() == 0 {
		return width, height
	}
	if width == 0 {
		width = int(int64(b.Dx()) * int64(height) / int64(b.Dy()))
	}
	if height == 0 {
		height = int(int64(b.Dy()) * int64(width) / int64(b.Dx()))
	}
	return width, height
}
