package chunk

import (
	"github.com/pkg/errors"
)

// Reassembler appends frame payloads to a Sink in delivery order. It never
// needs the total length up front.
type Reassembler struct {
	t    Transfer
	sink Sink
	mem  *MemorySink
}

// NewReassembler collects the payload in memory.
func NewReassembler() *Reassembler {
	mem := &MemorySink{}
	return &Reassembler{sink: mem, mem: mem}
}

// NewReassemblerTo streams the payload into sink.
func NewReassemblerTo(sink Sink) *Reassembler {
	return &Reassembler{sink: sink}
}

// Write admits f and appends its payload.
func (r *Reassembler) Write(f Frame) error {
	if err := r.t.Admit(f); err != nil {
		if IsProtocolViolation(err) {
			r.sink.Abort()
		}
		return err
	}
	if _, err := r.sink.Write(f.Payload); err != nil {
		r.Abort(err)
		return errors.Wrap(err, "write frame payload")
	}
	return nil
}

// Complete commits the sink. Only after Complete returns nil is the result
// observable as done.
func (r *Reassembler) Complete() error {
	switch r.t.State() {
	case StateAborted:
		return r.t.Err()
	case StateComplete:
		return nil
	}
	if err := r.sink.Commit(); err != nil {
		r.t.Abort(err)
		return err
	}
	return r.t.Complete()
}

// Abort discards whatever was written so far.
func (r *Reassembler) Abort(cause error) {
	if r.t.State() == StateComplete || r.t.State() == StateAborted {
		return
	}
	r.t.Abort(cause)
	r.sink.Abort()
}

// Result returns the in-memory payload of a complete transfer. Anything
// short of completion yields an error matching ErrIncomplete (or the
// ProtocolViolation that aborted it).
func (r *Reassembler) Result() ([]byte, error) {
	if err := r.t.Err(); err != nil {
		return nil, err
	}
	if r.mem == nil {
		return nil, nil
	}
	b := r.mem.Bytes()
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// Name is the file name fixed by the first frame.
func (r *Reassembler) Name() string { return r.t.Name }

// Kind is the file type fixed by the first frame.
func (r *Reassembler) Kind() string { return r.t.Kind }

func (r *Reassembler) State() State { return r.t.State() }

func (r *Reassembler) Frames() int { return r.t.Frames() }

func (r *Reassembler) Bytes() int64 { return r.t.Bytes() }

// Err reports the transfer's outcome; see Transfer.Err.
func (r *Reassembler) Err() error { return r.t.Err() }
