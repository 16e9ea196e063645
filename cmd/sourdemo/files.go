package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/gzip"
)

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var first error
	for i := len(r.closers) - 1; i >= 0; i-- {
		if err := r.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// openInput opens a demo or recording, decompressing it based on its
// extension.
func openInput(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".gz":
		gz, err := gzip.NewReader(file)
		if err != nil {
			file.Close()
			return nil, err
		}
		return &readCloser{gz, []io.Closer{file, gz}}, nil
	case ".sz":
		return &readCloser{snappy.NewReader(file), []io.Closer{file}}, nil
	}

	return file, nil
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var first error
	for i := len(w.closers) - 1; i >= 0; i-- {
		if err := w.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// createOutput is the counterpart of openInput. "-" is standard output.
func createOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return &writeCloser{os.Stdout, []io.Closer{nopCloser{}}}, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	switch filepath.Ext(path) {
	case ".gz":
		gz := gzip.NewWriter(file)
		return &writeCloser{gz, []io.Closer{file, gz}}, nil
	case ".sz":
		sz := snappy.NewBufferedWriter(file)
		return &writeCloser{sz, []io.Closer{file, sz}}, nil
	}

	return file, nil
}
