package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/kerosiinikone/go-grpc-pixelforge/config"
	"github.com/kerosiinikone/go-grpc-pixelforge/logging"
	"github.com/kerosiinikone/go-grpc-pixelforge/pb"
	"github.com/kerosiinikone/go-grpc-pixelforge/server"
	"github.com/kerosiinikone/go-grpc-pixelforge/transfer"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type app struct {
	cfgPath string
	local   bool
	cfg     *config.Config
	log     zerolog.Logger
}

// runTransfer sends input through method and writes the reply to output.
func (a *app) runTransfer(ctx context.Context, method, input, output string, params pb.Params) error {
	img, err := loadImage(input)
	if err != nil {
		return err
	}
	dst, err := saveImage(output)
	if err != nil {
		return err
	}
	if a.local {
		return a.runLocal(ctx, method, img, params, dst)
	}

	client, err := transfer.Dial(a.cfg.Address(), transfer.DialOptions{
		Timeout:     a.cfg.Transfer.DialTimeout,
		MaxMsgBytes: a.cfg.Server.MaxMsgBytes,
	})
	if err != nil {
		dst.Abort(err)
		return err
	}
	defer client.Close()
	client.Timeout = a.cfg.Transfer.Timeout
	client.Log = a.log

	a.log.Info().
		Str("method", method).
		Str("file", img.Name).
		Int("bytes", len(img.Data)).
		Str("server", a.cfg.Address()).
		Msg("sending")

	stats, err := client.Transfer(ctx, method, img.frames(a.cfg.ChunkSize()), params, dst)
	if err != nil {
		return err
	}
	a.log.Info().
		Str("output", output).
		Int64("frames", stats.FramesReceived).
		Int64("bytes", stats.BytesReceived).
		Msg("received")
	return nil
}

// runLocal processes the image in this process instead of on a server.
func (a *app) runLocal(ctx context.Context, method string, img *Image, params pb.Params, dst *chunk.Reassembler) error {
	out, err := server.Process(ctx, method, img.Data, img.Kind, params)
	if err != nil {
		dst.Abort(err)
		return err
	}
	for _, f := range chunk.Split(out, img.Name, img.Kind, a.cfg.ChunkSize()) {
		if err := dst.Write(f); err != nil {
			dst.Abort(err)
			return err
		}
	}
	if err := dst.Complete(); err != nil {
		return err
	}
	a.log.Info().Str("method", method).Str("file", img.Name).Int("bytes", len(out)).Msg("processed locally")
	return nil
}

func (a *app) serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the PixelForging gRPC server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.StartServerAndListen(ctx, a.cfg, a.log)
		},
	}
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "pixelforge",
		Short:         "A CLI to process images on a PixelForging server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.cfgPath)
			if err != nil {
				return err
			}
			if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.New(cfg.Log, "pixelforge")
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&a.cfgPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().BoolVar(&a.local, "local", false, "Process the image in this process instead of on the server")
	config.RegisterFlags(cmd.PersistentFlags())

	cmd.AddCommand(
		a.extractPaletteCmd(),
		a.simpleCmd(pb.MethodEcho, "echo", "Send the image and save it back unchanged"),
		a.simpleCmd(pb.MethodInvert, "invert", "Invert the colors of the image"),
		a.resizeCmd(),
		a.serveCmd(),
	)
	return cmd
}

type ioFlags struct {
	input  string
	output string
}

func (f *ioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.input, "input-image", "", "Path of the image to send")
	cmd.Flags().StringVar(&f.output, "output-image", "", "Path the result is saved to")
	_ = cmd.MarkFlagRequired("input-image")
	_ = cmd.MarkFlagRequired("output-image")
}

func (a *app) extractPaletteCmd() *cobra.Command {
	var (
		io     ioFlags
		params struct{ perRow, width, height, num int }
	)
	cmd := &cobra.Command{
		Use:   "extract-palette",
		Short: "Extract the color palette of the image",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := a.cfg.Palette
			if cmd.Flags().Changed("colors-per-row") {
				p.ColorsPerRow = params.perRow
			}
			if cmd.Flags().Changed("width") {
				p.ColorWidth = params.width
			}
			if cmd.Flags().Changed("height") {
				p.ColorHeight = params.height
			}
			if cmd.Flags().Changed("colors-num") {
				p.ColorNum = params.num
			}
			return a.runTransfer(cmd.Context(), pb.MethodExtractPalette, io.input, io.output, pb.Params{
				ColorsPerRow: int32(p.ColorsPerRow),
				ColorWidth:   int32(p.ColorWidth),
				ColorHeight:  int32(p.ColorHeight),
				ColorNum:     int32(p.ColorNum),
			})
		},
	}
	io.register(cmd)
	cmd.Flags().IntVar(&params.perRow, "colors-per-row", 0, "Number of color blocks per row (0 = server default)")
	cmd.Flags().IntVar(&params.width, "width", 0, "Width of a color block (0 = server default)")
	cmd.Flags().IntVar(&params.height, "height", 0, "Height of a color block (0 = server default)")
	cmd.Flags().IntVar(&params.num, "colors-num", 0, "Keep only the most frequent colors (0 = all)")
	return cmd
}

func (a *app) resizeCmd() *cobra.Command {
	var (
		io            ioFlags
		width, height int
	)
	cmd := &cobra.Command{
		Use:   "resize",
		Short: "Resize the image (a zero dimension keeps the aspect ratio)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTransfer(cmd.Context(), pb.MethodResize, io.input, io.output, pb.Params{
				Width:  int32(width),
				Height: int32(height),
			})
		},
	}
	io.register(cmd)
	cmd.Flags().IntVar(&width, "width", 0, "Target width")
	cmd.Flags().IntVar(&height, "height", 0, "Target height")
	return cmd
}

func (a *app) simpleCmd(method, use, short string) *cobra.Command {
	var io ioFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runTransfer(cmd.Context(), method, io.input, io.output, pb.Params{})
		},
	}
	io.register(cmd)
	return cmd
}

func main() {
	a := &app{log: log.Logger}
	if err := a.rootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "pixelforge:", err)
		os.Exit(1)
	}
}
