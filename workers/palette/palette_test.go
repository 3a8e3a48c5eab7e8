package palette

import (
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red    = color.NRGBA{R: 255, A: 255}
	green  = color.NRGBA{G: 255, A: 255}
	blue   = color.NRGBA{B: 255, A: 255}
	transp = color.NRGBA{}
)

// 3x3 image with one colour per row, blue rows counted twice.
func mock3x3() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for x := 0; x < 3; x++ {
		img.Set(x, 0, blue)
		img.Set(x, 1, green)
		img.Set(x, 2, red)
	}
	img.Set(0, 1, blue)
	return img
}

func TestExtractOrdersByHue(t *testing.T) {
	assert.Equal(t, []color.NRGBA{red, green, blue}, Extract(mock3x3(), 0))
}

func TestExtractLimitKeepsMostFrequent(t *testing.T) {
	// blue: 4 pixels, red: 3, green: 2
	assert.Equal(t, []color.NRGBA{red, blue}, Extract(mock3x3(), 2))
}

func TestExtractSkipsTransparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			img.Set(x, y, transp)
		}
	}
	assert.Empty(t, Extract(img, 0))
}

func TestRenderGrid(t *testing.T) {
	canvas := Render([]color.NRGBA{red, green, blue, red}, 0, 0, 0)
	assert.Equal(t, image.Rect(0, 0, 150, 100), canvas.Bounds())
	assert.Equal(t, green, canvas.NRGBAAt(75, 25))
	assert.Equal(t, red, canvas.NRGBAAt(10, 60))
	assert.Equal(t, uint8(0), canvas.NRGBAAt(60, 60).A)

	small := Render([]color.NRGBA{blue}, 2, 4, 3)
	assert.Equal(t, image.Rect(0, 0, 8, 3), small.Bounds())
}

func TestToHSL(t *testing.T) {
	h, s, l := ToHSL(green)
	assert.InDelta(t, 120, h, 1e-9)
	assert.InDelta(t, 1, s, 1e-9)
	assert.InDelta(t, 0.5, l, 1e-9)

	h, s, _ = ToHSL(color.NRGBA{R: 128, G: 128, B: 128, A: 255})
	assert.Zero(t, h)
	assert.Zero(t, s)
}

func TestProcessRoundTrip(t *testing.T) {
	in, err := workers.Encode(mock3x3(), ".png")
	require.NoError(t, err)

	out, err := Processor{}.Process(context.Background(), in, ".png", workers.Params{ColorsPerRow: 3, ColorWidth: 10, ColorHeight: 10})
	require.NoError(t, err)

	img, err := workers.Decode(out, ".png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 30, 10), img.Bounds())
	assert.Equal(t, []color.NRGBA{red, green, blue}, Extract(img, 0))
}

func TestProcessRejectsBlankImage(t *testing.T) {
	in, err := workers.Encode(image.NewNRGBA(image.Rect(0, 0, 4, 4)), ".png")
	require.NoError(t, err)

	_, err = Processor{}.Process(context.Background(), in, ".png", workers.Params{})
	assert.ErrorIs(t, err, ErrNoColors)
}

func TestProcessRejectsHugeCanvas(t *testing.T) {
	in, err := workers.Encode(mock3x3(), ".png")
	require.NoError(t, err)

	_, err = Processor{}.Process(context.Background(), in, ".png", workers.Params{ColorWidth: workers.MaxDimension, ColorHeight: workers.MaxDimension})
	assert.ErrorIs(t, err, workers.ErrOutOfRange)
}
