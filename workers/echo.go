package workers

import "context"

// Echo returns its input unchanged, chunk by chunk.
type Echo struct{}

var (
	_ Processor = Echo{}
	_ Streamer  = Echo{}
)

func (Echo) Process(_ context.Context, img []byte, _ string, _ Params) ([]byte, error) {
	return img, nil
}

func (Echo) ProcessChunk(data []byte) []byte { return data }
