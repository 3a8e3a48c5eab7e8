package server

import (
	"context"
	"net"

	"github.com/kerosiinikone/go-grpc-pixelforge/config"
	"github.com/kerosiinikone/go-grpc-pixelforge/pb"
	"github.com/kerosiinikone/go-grpc-pixelforge/transfer"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers/invert"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers/palette"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers/resize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
)

// Server is a PixelForging gRPC server.
type Server struct {
	cfg      *config.Config
	log      zerolog.Logger
	grpc     *grpc.Server
	upstream *transfer.Client
}

// Processors returns the processor of every PixelForging method, with the
// expensive ones behind a result cache of cacheSize entries.
func Processors(cacheSize int) (map[string]workers.Processor, error) {
	procs := map[string]workers.Processor{
		pb.MethodExtractPalette: palette.Processor{},
		pb.MethodEcho:           workers.Echo{},
		pb.MethodInvert:         invert.Processor{},
		pb.MethodResize:         resize.Processor{},
	}
	for method, proc := range procs {
		cached, err := workers.Cached(proc, cacheSize)
		if err != nil {
			return nil, errors.Wrapf(err, "processor %s", method)
		}
		procs[method] = cached
	}
	return procs, nil
}

// New builds a server for cfg. opts are appended to the gRPC server options.
func New(cfg *config.Config, logger zerolog.Logger, opts ...grpc.ServerOption) (*Server, error) {
	procs, err := Processors(cfg.Server.CacheSize)
	if err != nil {
		return nil, err
	}
	upstream, err := dialUpstream(cfg, procs, logger)
	if err != nil {
		return nil, err
	}

	var serverOpts []grpc.ServerOption
	if cfg.Server.MaxMsgBytes > 0 {
		serverOpts = append(serverOpts,
			grpc.MaxRecvMsgSize(cfg.Server.MaxMsgBytes),
			grpc.MaxSendMsgSize(cfg.Server.MaxMsgBytes),
		)
	}
	s := grpc.NewServer(append(serverOpts, opts...)...)
	pb.RegisterPixelForgingServer(s, &apiService{
		procs:     procs,
		chunkSize: cfg.ChunkSize(),
		log:       logger.With().Str("component", "server").Logger(),
	})

	return &Server{
		cfg:      cfg,
		log:      logger,
		grpc:     s,
		upstream: upstream,
	}, nil
}

// dialUpstream connects to the next service when methods are chained to it.
func dialUpstream(cfg *config.Config, procs map[string]workers.Processor, logger zerolog.Logger) (*transfer.Client, error) {
	if len(cfg.Server.Chain) == 0 {
		return nil, nil
	}
	if cfg.Server.Upstream == "" {
		return nil, errors.New("server.chain needs server.upstream")
	}
	next, err := transfer.Dial(cfg.Server.Upstream, transfer.DialOptions{
		Timeout:     cfg.Transfer.DialTimeout,
		MaxMsgBytes: cfg.Server.MaxMsgBytes,
	})
	if err != nil {
		return nil, errors.Wrap(err, "upstream")
	}
	next.Timeout = cfg.Transfer.Timeout
	next.Log = logger.With().Str("component", "upstream").Logger()

	if err := chain(procs, next, cfg.Server.Chain, cfg.ChunkSize()); err != nil {
		next.Close()
		return nil, err
	}
	logger.Info().Str("upstream", cfg.Server.Upstream).Interface("chain", cfg.Server.Chain).Msg("chaining to upstream")
	return next, nil
}

// Process runs method in-process on img with the checks a call to the
// server applies.
func Process(ctx context.Context, method string, img []byte, kind string, p pb.Params) ([]byte, error) {
	procs, err := Processors(0)
	if err != nil {
		return nil, err
	}
	proc, ok := procs[method]
	if !ok {
		return nil, errors.Errorf("unknown method %s", method)
	}
	params := toParams(p)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return proc.Process(ctx, img, kind, params)
}

// Serve accepts connections on lis until Stop.
func (s *Server) Serve(lis net.Listener) error {
	s.log.Info().Str("addr", lis.Addr().String()).Msg("server started")
	if err := s.grpc.Serve(lis); err != nil {
		return errors.Wrap(err, "failed to serve")
	}
	return nil
}

// Stop waits for running transfers to finish.
func (s *Server) Stop() {
	s.grpc.GracefulStop()
	if s.upstream != nil {
		s.upstream.Close()
	}
}

// StartServerAndListen listens on the configured address and serves until
// ctx is done.
func StartServerAndListen(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	lis, err := net.Listen("tcp", cfg.Address())
	if err != nil {
		return errors.Wrap(err, "failed to listen")
	}
	s, err := New(cfg, logger)
	if err != nil {
		lis.Close()
		return err
	}

	go func() {
		<-ctx.Done()
		s.log.Info().Msg("shutting down")
		s.Stop()
	}()
	return s.Serve(lis)
}
