package resize

import (
	"context"
	"image"
	"testing"

	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resized(t *testing.T, src image.Rectangle, p workers.Params) image.Rectangle {
	t.Helper()
	in, err := workers.Encode(image.NewNRGBA(src), ".png")
	require.NoError(t, err)

	out, err := Processor{}.Process(context.Background(), in, ".png", p)
	require.NoError(t, err)

	img, err := workers.Decode(out, ".png")
	require.NoError(t, err)
	return img.Bounds()
}

func TestResize(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 4, 2), resized(t, image.Rect(0, 0, 10, 10), workers.Params{Width: 4, Height: 2}))
}

func TestResizeKeepsAspectRatio(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 10, 5), resized(t, image.Rect(0, 0, 40, 20), workers.Params{Width: 10}))
}

func TestResizeDefaults(t *testing.T) {
	assert.Equal(t, image.Rect(0, 0, 100, 100), resized(t, image.Rect(0, 0, 20, 20), workers.Params{}))
}

func TestResizeRejectsHugeOutput(t *testing.T) {
	in, err := workers.Encode(image.NewNRGBA(image.Rect(0, 0, 400, 1)), ".png")
	require.NoError(t, err)

	// The width follows from the aspect ratio: 400 * 10000.
	_, err = Processor{}.Process(context.Background(), in, ".png", workers.Params{Height: 10000})
	assert.ErrorIs(t, err, workers.ErrOutOfRange)
}
