// Package invert inverts the colours of an image.
package invert

import (
	"context"

	"github.com/disintegration/imaging"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
)

// Processor inverts every pixel and re-encodes the image in its own kind.
type Processor struct{}

var _ workers.Processor = Processor{}

func (Processor) Process(_ context.Context, img []byte, kind string, _ workers.Params) ([]byte, error) {
	decoded, err := workers.Decode(img, kind)
	if err != nil {
		return nil, err
	}
	return workers.Encode(imaging.Invert(decoded), kind)
}
