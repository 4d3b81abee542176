// Package textio resolves the input and output ends of the batch pipeline:
// a named file when given, otherwise the process streams.
package textio

import (
	"io"
	"os"
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// Input opens path for reading; empty or "-" means stdin.
func Input(path string) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// Output creates path for writing; empty or "-" means stdout.
func Output(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	return os.Create(path)
}
