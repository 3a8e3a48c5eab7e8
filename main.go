package main

// Pixel Forging Service

// pixelforging.proto defines the chunk messages for image transfer
// between client and the service

// Every call is a full-duplex stream: the client sends the image in chunks,
// the service pipes them to a per-call worker and streams the result back
// in chunks while the client may still be sending

// Key Points: Bidirectional Streaming, Backpressure, Explicit Completion

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/kerosiinikone/go-grpc-pixelforge/config"
	"github.com/kerosiinikone/go-grpc-pixelforge/logging"
	"github.com/kerosiinikone/go-grpc-pixelforge/server"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "pixelforged",
		Short:         "Serve the PixelForging gRPC service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}
			if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
				return err
			}
			logger := logging.New(cfg.Log, "pixelforged")

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.StartServerAndListen(ctx, cfg, logger)
		},
	}
	cmd.Flags().StringVar(&cfgPath, "config", "", "Path to a YAML config file")
	config.RegisterFlags(cmd.Flags())
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("pixelforged failed")
		os.Exit(1)
	}
}
