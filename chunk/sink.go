package chunk

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Sink receives reassembled bytes. Exactly one of Commit or Abort is called
// when the transfer ends; a sink must not present its content as finished
// before Commit.
type Sink interface {
	io.Writer
	Commit() error
	Abort() error
}

// MemorySink keeps the payload in memory.
type MemorySink struct {
	buf       bytes.Buffer
	committed bool
}

func (m *MemorySink) Write(p []byte) (int, error) { return m.buf.Write(p) }

func (m *MemorySink) Commit() error {
	m.committed = true
	return nil
}

func (m *MemorySink) Abort() error {
	m.buf.Reset()
	return nil
}

// Bytes returns the committed payload, or nil if the sink was never committed.
func (m *MemorySink) Bytes() []byte {
	if !m.committed {
		return nil
	}
	return m.buf.Bytes()
}

// FileSink appends to a temporary file next to Path and renames it into
// place on Commit, so a partial output never appears under Path.
type FileSink struct {
	Path string

	tmp *os.File
}

// CreateFile opens a FileSink for path.
func CreateFile(path string) (*FileSink, error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".part-*")
	if err != nil {
		return nil, errors.Wrapf(err, "create temp for %s", path)
	}
	return &FileSink{Path: path, tmp: tmp}, nil
}

func (s *FileSink) Write(p []byte) (int, error) {
	if s.tmp == nil {
		return 0, ErrClosed
	}
	return s.tmp.Write(p)
}

func (s *FileSink) Commit() error {
	if s.tmp == nil {
		return ErrClosed
	}
	tmp := s.tmp
	s.tmp = nil
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return errors.Wrap(err, "sync output")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrap(err, "close output")
	}
	if err := os.Rename(tmp.Name(), s.Path); err != nil {
		os.Remove(tmp.Name())
		return errors.Wrapf(err, "rename output to %s", s.Path)
	}
	return nil
}

func (s *FileSink) Abort() error {
	if s.tmp == nil {
		return nil
	}
	tmp := s.tmp
	s.tmp = nil
	tmp.Close()
	if err := os.Remove(tmp.Name()); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove partial output")
	}
	return nil
}
