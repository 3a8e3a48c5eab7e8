// Package palette extracts the colour palette of an image and renders it as
// a grid of solid colour blocks.
package palette

import (
	"context"
	"image"
	"image/color"
	"image/draw"
	"math"
	"sort"

	"github.com/disintegration/imaging"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
	"github.com/pkg/errors"
)

const (
	colorBlockWidth     = 50
	colorBlockHeight    = 50
	colorsPerRowDefault = 3

	// maxColors bounds the rendered palette of photographs with many
	// thousands of distinct colours.
	maxColors = 1024
)

// ErrNoColors is returned for images without a single opaque pixel.
var ErrNoColors = errors.New("image has no visible colors")

// Processor renders the palette of an image in the image's own kind.
type Processor struct{}

var _ workers.Processor = Processor{}

func (Processor) Process(ctx context.Context, img []byte, kind string, p workers.Params) ([]byte, error) {
	decoded, err := workers.Decode(img, kind)
	if err != nil {
		return nil, err
	}
	colors := Extract(decoded, p.ColorNum)
	if len(colors) == 0 {
		return nil, ErrNoColors
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := workers.CheckCanvas(canvasSize(len(colors), p.ColorsPerRow, p.ColorWidth, p.ColorHeight)); err != nil {
		return nil, errors.Wrap(err, "palette")
	}
	return workers.Encode(Render(colors, p.ColorsPerRow, p.ColorWidth, p.ColorHeight), kind)
}

type colorCount struct {
	c color.NRGBA
	n int
}

// Extract returns the distinct visible colours of img ordered by hue, then
// lightness, then saturation. With limit > 0 only the limit most frequent
// colours are kept.
func Extract(img image.Image, limit int) []color.NRGBA {
	var (
		nrgba  = imaging.Clone(img)
		counts = make(map[color.NRGBA]int)
	)
	for i := 0; i+3 < len(nrgba.Pix); i += 4 {
		c := color.NRGBA{R: nrgba.Pix[i], G: nrgba.Pix[i+1], B: nrgba.Pix[i+2], A: nrgba.Pix[i+3]}
		if c.A == 0 {
			continue
		}
		counts[c]++
	}

	ranked := make([]colorCount, 0, len(counts))
	for c, n := range counts {
		ranked = append(ranked, colorCount{c: c, n: n})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].n != ranked[j].n {
			return ranked[i].n > ranked[j].n
		}
		return pack(ranked[i].c) < pack(ranked[j].c)
	})
	if limit <= 0 || limit > maxColors {
		limit = maxColors
	}
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	hsl := make([]hslColor, len(ranked))
	for i, r := range ranked {
		h, s, l := ToHSL(r.c)
		hsl[i] = hslColor{c: r.c, h: h, s: s, l: l}
	}
	sort.Slice(hsl, func(i, j int) bool {
		a, b := hsl[i], hsl[j]
		switch {
		case a.h != b.h:
			return a.h < b.h
		case a.l != b.l:
			return a.l < b.l
		case a.s != b.s:
			return a.s < b.s
		}
		return pack(a.c) < pack(b.c)
	})

	out := make([]color.NRGBA, len(hsl))
	for i, c := range hsl {
		out[i] = c.c
	}
	return out
}

// Render draws colors as blocks of width x height, perRow blocks per row.
// Zero arguments take the defaults (3 per row, 50x50 blocks).
func Render(colors []color.NRGBA, perRow, width, height int) *image.NRGBA {
	perRow, width, height = blockDefaults(perRow, width, height)
	w, h := canvasSize(len(colors), perRow, width, height)
	canvas := imaging.New(w, h, color.Transparent)
	for i, c := range colors {
		x, y := (i%perRow)*width, (i/perRow)*height
		draw.Draw(canvas, image.Rect(x, y, x+width, y+height), &image.Uniform{C: c}, image.Point{}, draw.Src)
	}
	return canvas
}

func blockDefaults(perRow, width, height int) (int, int, int) {
	if perRow <= 0 {
		perRow = colorsPerRowDefault
	}
	if width <= 0 {
		width = colorBlockWidth
	}
	if height <= 0 {
		height = colorBlockHeight
	}
	return perRow, width, height
}

// canvasSize is the pixel size of the palette of n colours.
func canvasSize(n, perRow, width, height int) (int, int) {
	perRow, width, height = blockDefaults(perRow, width, height)
	rows := (n + perRow - 1) / perRow
	return perRow * width, rows * height
}

type hslColor struct {
	c       color.NRGBA
	h, s, l float64
}

// ToHSL converts c to hue (degrees), saturation and lightness.
func ToHSL(c color.NRGBA) (h, s, l float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	l = (maxC + minC) / 2
	if maxC == minC {
		return 0, 0, l
	}

	delta := maxC - minC
	s = delta / (1 - math.Abs(2*l-1))
	switch maxC {
	case r:
		h = math.Mod((g-b)/delta+6, 6)
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return h * 60, s, l
}

func pack(c color.NRGBA) uint32 {
	return uint32(c.R)<<24 | uint32(c.G)<<16 | uint32(c.B)<<8 | uint32(c.A)
}
