package main

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	a := &app{log: zerolog.Nop()}
	cmd := a.rootCmd()
	cmd.SetArgs(append(args, "--log-level", "disabled"))
	return cmd.ExecuteContext(context.Background())
}

func TestExtractPaletteLocal(t *testing.T) {
	dir := t.TempDir()
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})
	in, err := workers.Encode(src, ".png")
	require.NoError(t, err)

	input := filepath.Join(dir, "logo.png")
	output := filepath.Join(dir, "palette.png")
	require.NoError(t, os.WriteFile(input, in, 0o644))

	require.NoError(t, execute(t, "extract-palette", "--local",
		"--input-image", input, "--output-image", output,
		"--colors-per-row", "2", "--width", "5", "--height", "5"))

	b, err := os.ReadFile(output)
	require.NoError(t, err)
	img, err := workers.Decode(b, ".png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 5), img.Bounds())
}

func TestLocalFailureLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "broken.png")
	output := filepath.Join(dir, "out.png")
	require.NoError(t, os.WriteFile(input, []byte("not a png"), 0o644))

	assert.Error(t, execute(t, "invert", "--local", "--input-image", input, "--output-image", output))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
