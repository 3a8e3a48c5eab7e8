package server

import (
	"context"
	"io"
	"sync"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/kerosiinikone/go-grpc-pixelforge/pb"
	"github.com/kerosiinikone/go-grpc-pixelforge/workers"
	"github.com/rs/zerolog"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// apiService implements the PixelForging streams. Every call gets its own
// channels and worker goroutine; nothing is shared between calls.
type apiService struct {
	procs     map[string]workers.Processor
	chunkSize int
	log       zerolog.Logger

	pb.UnimplementedPixelForgingServer
}

func (svc *apiService) ExtractPalette(srv pb.PixelForging_ExtractPaletteServer) error {
	return svc.transfer(srv, pb.MethodExtractPalette)
}

func (svc *apiService) Echo(srv pb.PixelForging_EchoServer) error {
	return svc.transfer(srv, pb.MethodEcho)
}

func (svc *apiService) Invert(srv pb.PixelForging_InvertServer) error {
	return svc.transfer(srv, pb.MethodInvert)
}

func (svc *apiService) Resize(srv pb.PixelForging_ResizeServer) error {
	return svc.transfer(srv, pb.MethodResize)
}

// transfer receives the inbound frames, pipes them to a worker and streams
// the worker's output back. The first frame fixes name, kind and params.
func (svc *apiService) transfer(srv pb.StreamServer, method string) error {
	proc, ok := svc.procs[method]
	if !ok {
		return status.Errorf(codes.Unimplemented, "method %s not configured", method)
	}

	var (
		ctx, cancel = context.WithCancel(srv.Context())
		inch        = make(chan workers.ImageChunk)
		outch       = make(chan workers.ImageChunk)
		wg          sync.WaitGroup
		t           chunk.Transfer
		sendErr     error
		log         = svc.log.With().Str("method", method).Logger()
	)
	defer cancel()

	msg, err := srv.Recv()
	if err != nil && err != io.EOF {
		log.Debug().Err(err).Msg("receive failed")
		return err
	}
	var (
		name   = msg.GetFileName()
		kind   = msg.GetFileType()
		params = toParams(msg.Params())
	)
	log = log.With().Str("file", name).Str("type", kind).Logger()
	if err := params.Validate(); err != nil {
		log.Warn().Err(err).Msg("transfer rejected")
		return status.Error(codes.InvalidArgument, err.Error())
	}
	log.Info().Msg("transfer started")

	go workers.Run(ctx, proc, kind, params, svc.chunkSize, inch, outch)

	// Send results to client -> listen to the worker
	wg.Add(1)
	go func() {
		defer wg.Done()
		sendErr = sendResults(srv, name, kind, outch)
		if sendErr != nil {
			cancel()
		}
	}()

	for msg != nil {
		if err := t.Admit(msg.Frame()); err != nil {
			cancel()
			wg.Wait()
			log.Warn().Err(err).Int("frames", t.Frames()).Msg("transfer aborted")
			return status.Error(codes.InvalidArgument, err.Error())
		}
		// Pipe to worker
		select {
		case inch <- workers.NewImageChunk(msg.GetFileBytes()):
		case <-ctx.Done():
			wg.Wait()
			return abandoned(ctx, sendErr)
		}

		msg, err = srv.Recv()
		if err != nil && err != io.EOF {
			cancel()
			wg.Wait()
			log.Debug().Err(err).Int("frames", t.Frames()).Msg("receive failed")
			return err
		}
	}
	t.Complete()
	log.Debug().Int("frames", t.Frames()).Int64("bytes", t.Bytes()).Msg("finished receiving data")

	select {
	case inch <- workers.Done(nil):
	case <-ctx.Done():
		wg.Wait()
		return abandoned(ctx, sendErr)
	}
	wg.Wait()
	if sendErr != nil {
		log.Warn().Err(sendErr).Msg("transfer failed")
		return sendErr
	}
	log.Info().Int64("bytes", t.Bytes()).Msg("transfer complete")
	return nil
}

// sendResults streams the worker's chunks until its completion chunk.
func sendResults(srv pb.StreamServer, name, kind string, outch <-chan workers.ImageChunk) error {
	for processed := range outch {
		if processed.Completed {
			if processed.Err != nil {
				// Upstream failures keep their code.
				if st, ok := status.FromError(processed.Err); ok && st.Code() != codes.Unknown {
					return status.Error(st.Code(), processed.Err.Error())
				}
				return status.Error(codes.InvalidArgument, processed.Err.Error())
			}
			return nil
		}
		resp := pb.NewOutput(chunk.Frame{Payload: processed.Data, Name: name, Kind: kind})
		if err := srv.Send(resp); err != nil {
			return err
		}
	}
	return status.Error(codes.Canceled, "worker stopped before completion")
}

func abandoned(ctx context.Context, sendErr error) error {
	if sendErr != nil {
		return sendErr
	}
	return status.FromContextError(ctx.Err()).Err()
}

func toParams(p pb.Params) workers.Params {
	return workers.Params{
		ColorsPerRow: int(p.ColorsPerRow),
		ColorWidth:   int(p.ColorWidth),
		ColorHeight:  int(p.ColorHeight),
		ColorNum:     int(p.ColorNum),
		Width:        int(p.Width),
		Height:       int(p.Height),
	}
}
