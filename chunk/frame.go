package chunk

// DefaultSize is the payload size of every frame but the last one when no
// size is configured.
const DefaultSize = 32

// Frame is one unit of a chunked transfer. Name and Kind describe the whole
// transfer and are repeated on every frame.
type Frame struct {
	Payload []byte
	Name    string
	Kind    string
}

// Len returns the payload length
func (f Frame) Len() int { return len(f.Payload) }

// Source yields frames one at a time. ok is false once the sequence is exhausted.
type Source interface {
	Next() (f Frame, ok bool)
}

// Encoder splits a payload into frames lazily. An empty payload yields no
// frames at all.
type Encoder struct {
	data []byte
	name string
	kind string
	size int
	off  int
}

var _ Source = (*Encoder)(nil)

// NewEncoder returns an Encoder over data. A size below 1 falls back to DefaultSize.
func NewEncoder(data []byte, name, kind string, size int) *Encoder {
	if size < 1 {
		size = DefaultSize
	}
	return &Encoder{
		data: data,
		name: name,
		kind: kind,
		size: size,
	}
}

// Next returns the following frame. The payload aliases the encoder's input.
func (e *Encoder) Next() (Frame, bool) {
	if e.off >= len(e.data) {
		return Frame{}, false
	}
	end := e.off + e.size
	if end > len(e.data) {
		end = len(e.data)
	}
	f := Frame{
		Payload: e.data[e.off:end:end],
		Name:    e.name,
		Kind:    e.kind,
	}
	e.off = end
	return f, true
}

// Reset rewinds the encoder to the first frame.
func (e *Encoder) Reset() { e.off = 0 }

// Count is the total number of frames the encoder produces.
func (e *Encoder) Count() int {
	return (len(e.data) + e.size - 1) / e.size
}

// Size is the configured frame payload size.
func (e *Encoder) Size() int { return e.size }

// Split encodes data eagerly.
func Split(data []byte, name, kind string, size int) []Frame {
	var (
		enc    = NewEncoder(data, name, kind, size)
		frames = make([]Frame, 0, enc.Count())
	)
	for f, ok := enc.Next(); ok; f, ok = enc.Next() {
		frames = append(frames, f)
	}
	return frames
}

// SliceSource replays a fixed list of frames.
type SliceSource struct {
	frames []Frame
	pos    int
}

// NewSliceSource wraps frames as a Source.
func NewSliceSource(frames []Frame) *SliceSource {
	return &SliceSource{frames: frames}
}

func (s *SliceSource) Next() (Frame, bool) {
	if s.pos >= len(s.frames) {
		return Frame{}, false
	}
	f := s.frames[s.pos]
	s.pos++
	return f, true
}
