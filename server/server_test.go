package server

import (
	"context"
	"image"
	"image/color"
	"io"
	"net"
	"testing"
	"time"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/kerosiinikone/go-grpc-pixelforge/config"
	"github.com/kerosiinikone/go-grpc-pixelforge/pb"
	"github.com/kerosiinikone/go-grpc-pixelforge/transfer"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers/palette"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func startServer(t *testing.T) *transfer.Client {
	t.Helper()
	cfg := config.Default()
	cfg.Transfer.ChunkSize = 32
	return startServerWith(t, cfg)
}

func startServerWith(t *testing.T, cfg *config.Config) *transfer.Client {
	t.Helper()

	s, err := New(cfg, zerolog.Nop())
	require.NoError(t, err)

	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)
	return dialBufconn(t, lis)
}

// startService serves svc alone, for processors the server does not ship.
func startService(t *testing.T, svc *apiService) *transfer.Client {
	t.Helper()

	s := grpc.NewServer()
	pb.RegisterPixelForgingServer(s, svc)
	lis := bufconn.Listen(1 << 20)
	go func() {
		_ = s.Serve(lis)
	}()
	t.Cleanup(s.Stop)
	return dialBufconn(t, lis)
}

func dialBufconn(t *testing.T, lis *bufconn.Listener) *transfer.Client {
	t.Helper()

	dialer := func(context.Context, string) (net.Conn, error) { return lis.Dial() }
	c, err := transfer.Dial("bufnet", transfer.DialOptions{
		Timeout: 2 * time.Second,
		Extra:   []grpc.DialOption{grpc.WithContextDialer(dialer)},
	})
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	c.Timeout = 5 * time.Second
	return c
}

func pngImage(t *testing.T, colors ...color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, len(colors), 4))
	for x, c := range colors {
		for y := 0; y < 4; y++ {
			img.SetNRGBA(x, y, c)
		}
	}
	b, err := workers.Encode(img, ".png")
	require.NoError(t, err)
	return b
}

func run(t *testing.T, c *transfer.Client, method string, src chunk.Source, p pb.Params) ([]byte, error) {
	t.Helper()
	dst := chunk.NewReassembler()
	if _, err := c.Transfer(context.Background(), method, src, p, dst); err != nil {
		_, resErr := dst.Result()
		require.ErrorIs(t, resErr, chunk.ErrIncomplete)
		return nil, err
	}
	return dst.Result()
}

func TestEcho(t *testing.T) {
	c := startServer(t)
	in := make([]byte, 100)
	for i := range in {
		in[i] = byte(i)
	}

	call, err := c.Open(context.Background(), pb.MethodEcho, chunk.NewEncoder(in, "logo.png", ".png", 32), pb.Params{})
	require.NoError(t, err)
	defer call.Close()

	var (
		sizes []int
		out   []byte
	)
	for {
		f, err := call.Recv()
		if err != nil {
			require.Equal(t, io.EOF, err)
			break
		}
		assert.Equal(t, "logo.png", f.Name)
		assert.Equal(t, ".png", f.Kind)
		sizes = append(sizes, f.Len())
		out = append(out, f.Payload...)
	}
	assert.Equal(t, []int{32, 32, 32, 4}, sizes)
	assert.Equal(t, in, out)
}

func TestEchoEmpty(t *testing.T) {
	c := startServer(t)

	out, err := run(t, c, pb.MethodEcho, chunk.NewEncoder(nil, "empty.png", ".png", 32), pb.Params{})
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestExtractPalette(t *testing.T) {
	c := startServer(t)
	var (
		red   = color.NRGBA{R: 255, A: 255}
		green = color.NRGBA{G: 255, A: 255}
		blue  = color.NRGBA{B: 255, A: 255}
		in    = pngImage(t, blue, red, green, red)
	)

	out, err := run(t, c, pb.MethodExtractPalette, chunk.NewEncoder(in, "logo.png", ".png", 32), pb.Params{ColorsPerRow: 2, ColorWidth: 5, ColorHeight: 5})
	require.NoError(t, err)

	img, err := workers.Decode(out, ".png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 10, 10), img.Bounds())
	assert.Equal(t, []color.NRGBA{red, green, blue}, palette.Extract(img, 0))
}

func TestInvertAndResize(t *testing.T) {
	c := startServer(t)
	in := pngImage(t, color.NRGBA{R: 255, A: 255}, color.NRGBA{R: 255, A: 255})

	out, err := run(t, c, pb.MethodInvert, chunk.NewEncoder(in, "a.png", ".png", 32), pb.Params{})
	require.NoError(t, err)
	img, err := workers.Decode(out, ".png")
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0, 0xffff, 0xffff}, []uint32{r, g, b})

	out, err = run(t, c, pb.MethodResize, chunk.NewEncoder(in, "a.png", ".png", 32), pb.Params{Width: 6, Height: 3})
	require.NoError(t, err)
	img, err = workers.Decode(out, ".png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 3), img.Bounds())
}

func TestInboundMetadataChangeIsRejected(t *testing.T) {
	c := startServer(t)
	frames := chunk.Split(pngImage(t, color.NRGBA{R: 1, A: 255}), "a.png", ".png", 32)
	require.Greater(t, len(frames), 2)
	frames[2].Kind = ".jpg"

	_, err := run(t, c, pb.MethodExtractPalette, chunk.NewSliceSource(frames), pb.Params{})
	require.True(t, transfer.IsTransportError(err), "got %v", err)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "protocol violation")
}

func TestUndecodableImage(t *testing.T) {
	c := startServer(t)

	_, err := run(t, c, pb.MethodExtractPalette, chunk.NewEncoder([]byte("definitely not a png"), "a.png", ".png", 8), pb.Params{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = run(t, c, pb.MethodExtractPalette, chunk.NewEncoder(nil, "a.png", ".png", 8), pb.Params{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestConcurrentCallsDoNotMix(t *testing.T) {
	c := startServer(t)

	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		go func(i int) {
			in := make([]byte, 1000+i)
			for j := range in {
				in[j] = byte(i)
			}
			dst := chunk.NewReassembler()
			if _, err := c.Transfer(context.Background(), pb.MethodEcho, chunk.NewEncoder(in, "f", "k", 32), pb.Params{}, dst); err != nil {
				errs <- err
				return
			}
			out, err := dst.Result()
			if err == nil && string(out) != string(in) {
				err = assert.AnError
			}
			errs <- err
		}(i)
	}
	for i := 0; i < 8; i++ {
		assert.NoError(t, <-errs)
	}
}

func TestOversizedParamsAreRejected(t *testing.T) {
	c := startServer(t)
	in := pngImage(t, color.NRGBA{R: 1, A: 255})

	for _, p := range []pb.Params{
		{ColorWidth: 1 << 30, ColorHeight: 1 << 30},
		{ColorsPerRow: -1},
		{Width: 16384, Height: 16384},
	} {
		_, err := run(t, c, pb.MethodExtractPalette, chunk.NewEncoder(in, "a.png", ".png", 32), p)
		assert.Equal(t, codes.InvalidArgument, status.Code(err), "%+v", p)
	}

	// Each dimension is in range but the palette canvas is not.
	_, err := run(t, c, pb.MethodExtractPalette, chunk.NewEncoder(in, "a.png", ".png", 32), pb.Params{ColorWidth: 16384, ColorHeight: 16384})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	// The server is still serving.
	out, err := run(t, c, pb.MethodEcho, chunk.NewEncoder([]byte("ok"), "a", "b", 32), pb.Params{})
	require.NoError(t, err)
	assert.Equal(t, []byte("ok"), out)
}

func TestProcessorPanicFailsOnlyThatCall(t *testing.T) {
	c := startService(t, &apiService{
		procs: map[string]workers.Processor{
			pb.MethodExtractPalette: workers.ProcessorFunc(func(context.Context, []byte, string, workers.Params) ([]byte, error) {
				panic("index out of range")
			}),
			pb.MethodEcho: workers.Echo{},
		},
		chunkSize: 32,
		log:       zerolog.Nop(),
	})

	_, err := run(t, c, pb.MethodExtractPalette, chunk.NewEncoder([]byte("img"), "a.png", ".png", 32), pb.Params{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Contains(t, err.Error(), "panicked")

	out, err := run(t, c, pb.MethodEcho, chunk.NewEncoder([]byte("still up"), "a", "b", 32), pb.Params{})
	require.NoError(t, err)
	assert.Equal(t, []byte("still up"), out)
}

func TestChainForwardsToUpstream(t *testing.T) {
	upCfg := config.Default()
	up, err := New(upCfg, zerolog.Nop())
	require.NoError(t, err)
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() {
		_ = up.Serve(lis)
	}()
	t.Cleanup(up.Stop)

	cfg := config.Default()
	cfg.Transfer.ChunkSize = 32
	cfg.Server.Upstream = lis.Addr().String()
	cfg.Server.Chain = map[string]string{pb.MethodResize: pb.MethodInvert}
	c := startServerWith(t, cfg)

	in := pngImage(t, color.NRGBA{R: 255, A: 255}, color.NRGBA{R: 255, A: 255})
	out, err := run(t, c, pb.MethodResize, chunk.NewEncoder(in, "a.png", ".png", 32), pb.Params{Width: 6, Height: 3})
	require.NoError(t, err)

	img, err := workers.Decode(out, ".png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 6, 3), img.Bounds())
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Less(t, r, uint32(0x0400))
	assert.Greater(t, g, uint32(0xfb00))
	assert.Greater(t, b, uint32(0xfb00))
}

func TestChainNeedsUpstream(t *testing.T) {
	cfg := config.Default()
	cfg.Server.Chain = map[string]string{pb.MethodResize: pb.MethodInvert}
	_, err := New(cfg, zerolog.Nop())
	assert.Error(t, err)
}

func TestProcessInProcess(t *testing.T) {
	in := pngImage(t, color.NRGBA{G: 255, A: 255})

	out, err := Process(context.Background(), pb.MethodExtractPalette, in, ".png", pb.Params{ColorsPerRow: 1, ColorWidth: 4, ColorHeight: 4})
	require.NoError(t, err)
	img, err := workers.Decode(out, ".png")
	require.NoError(t, err)
	assert.Equal(t, image.Rect(0, 0, 4, 4), img.Bounds())

	_, err = Process(context.Background(), "Sharpen", in, ".png", pb.Params{})
	assert.Error(t, err)
	_, err = Process(context.Background(), pb.MethodResize, in, ".png", pb.Params{Width: 1 << 20})
	assert.ErrorIs(t, err, workers.ErrOutOfRange)
}
