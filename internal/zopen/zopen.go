// Package zopen opens possibly-compressed files behind a uniform stream
// interface. Compression is selected by the file's final extension; names
// without a recognized compression suffix are passed through untouched.
package zopen

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4"
	"github.com/spf13/afero"
	"github.com/ulikunitz/xz"
)

// Provider opens read and write streams on a backing filesystem.
type Provider struct {
	fs afero.Fs
}

// New returns a Provider over the given filesystem.
func New(fs afero.Fs) *Provider {
	return &Provider{fs: fs}
}

// Default is the Provider over the operating system filesystem.
var Default = New(afero.NewOsFs())

// Open opens name for reading, transparently decompressing based on the
// final extension. The returned ReadCloser closes the decompressor and the
// underlying file.
func (p *Provider) Open(name string) (io.ReadCloser, error) {
	f, err := p.fs.Open(name)
	if err != nil {
		return nil, err
	}
	switch compressionExt(name) {
	case ".gz", ".z":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stream{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".bz2":
		zr, err := bzip2.NewReader(f, nil)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stream{Reader: zr, closers: []io.Closer{zr, f}}, nil
	case ".xz", ".lzma":
		zr, err := xz.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stream{Reader: zr, closers: []io.Closer{f}}, nil
	case ".zst":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		rc := zr.IOReadCloser()
		return &stream{Reader: rc, closers: []io.Closer{rc, f}}, nil
	case ".lz4":
		return &stream{Reader: lz4.NewReader(f), closers: []io.Closer{f}}, nil
	}
	return f, nil
}

// Create opens name for writing, creating or truncating it, transparently
// compressing based on the final extension. Closing the returned WriteCloser
// flushes the compressor before closing the underlying file.
func (p *Provider) Create(name string) (io.WriteCloser, error) {
	f, err := p.fs.Create(name)
	if err != nil {
		return nil, err
	}
	switch compressionExt(name) {
	case ".gz", ".z":
		zw := gzip.NewWriter(f)
		return &stream{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case ".bz2":
		zw, err := bzip2.NewWriter(f, nil)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stream{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case ".xz", ".lzma":
		zw, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stream{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case ".zst":
		zw, err := zstd.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &stream{Writer: zw, closers: []io.Closer{zw, f}}, nil
	case ".lz4":
		zw := lz4.NewWriter(f)
		return &stream{Writer: zw, closers: []io.Closer{zw, f}}, nil
	}
	return f, nil
}

// compressionExt returns the lowercased final extension of name.
func compressionExt(name string) string {
	return strings.ToLower(filepath.Ext(name))
}

// stream is a read or write stream with an ordered chain of closers
// (compressor first, then file). Close reports the first failure but
// still closes everything.
type stream struct {
	io.Reader
	io.Writer
	closers []io.Closer
}

func (s *stream) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
