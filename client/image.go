package main

import (
	"path/filepath"

	"github.com/kerosiinikone/go-grpc-pixelforge/chunk"
	"github.com/pkg/errors"
)

// Image is the source side of one transfer: the whole file in memory plus
// the metadata repeated on each frame.
type Image struct {
	Name string
	Kind string
	Data []byte
}

// loadImage reads the input file before any call is opened, so a missing
// file never starts a transfer.
func loadImage(path string) (*Image, error) {
	data, err := chunk.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Image{
		Name: filepath.Base(path),
		Kind: filepath.Ext(path),
		Data: data,
	}, nil
}

// frames returns the lazy frame sequence of the image.
func (i *Image) frames(chunkSize int) *chunk.Encoder {
	return chunk.NewEncoder(i.Data, i.Name, i.Kind, chunkSize)
}

// saveImage opens the reassembler for path. Nothing appears at path unless
// the transfer completes.
func saveImage(path string) (*chunk.Reassembler, error) {
	if path == "" {
		return nil, errors.New("output path is empty")
	}
	sink, err := chunk.CreateFile(path)
	if err != nil {
		return nil, err
	}
	return chunk.NewReassemblerTo(sink), nil
}
