package ucdparse

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
)

// Open opens a data file for reading. Files ending in ".xz" are
// decompressed transparently; the Unihan database is quite large and is
// often kept compressed.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".xz") {
		return f, nil
	}
	tracer().Debugf("decompressing %s", path)
	xr, err := xz.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("xz data file %s: %w", path, err)
	}
	return &xzFile{Reader: xr, f: f}, nil
}

type xzFile struct {
	*xz.Reader
	f *os.File
}

func (x *xzFile) Close() error {
	return x.f.Close()
}

// OpenAll opens a list of data files and concatenates them to a single
// reader. Closing the returned reader closes all files.
func OpenAll(paths ...string) (io.ReadCloser, error) {
	files := make(multiCloser, 0, len(paths))
	readers := make([]io.Reader, 0, len(paths))
	for _, p := range paths {
		rc, err := Open(p)
		if err != nil {
			files.Close()
			return nil, err
		}
		files = append(files, rc)
		// guard against files missing a final newline
		readers = append(readers, rc, strings.NewReader("\n"))
	}
	return &concatFile{Reader: io.MultiReader(readers...), files: files}, nil
}

type multiCloser []io.ReadCloser

func (m multiCloser) Close() error {
	var first error
	for _, c := range m {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type concatFile struct {
	io.Reader
	files multiCloser
}

func (c *concatFile) Close() error {
	return c.files.Close()
}
