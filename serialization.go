// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// serialization.go — the Load and Dump dispatchers. Each call resolves a
// format tag (explicit override or filename sniffing), looks up the codec,
// opens exactly one possibly-compressed stream, and decodes or encodes the
// whole value. Nothing is cached or retried; every exit path releases the
// stream.

package monty

import (
	"errors"
	"fmt"

	"github.com/materialyzeai/monty/internal/codec"
)

// Load reads and decodes the file at path. The format is taken from
// WithFormat if given, otherwise identified from the filename. Compressed
// files (".gz", ".bz2", ".xz", ".zst", ".lz4") are decompressed
// transparently.
//
// For JSON, JSON-Lines, and MessagePack the decoded tree is passed through
// the decode hook (mson.DecodeTree unless overridden), reconstructing
// registered types from their records. JSON-Lines returns an ordered []any
// with one entry per physical line.
//
// Missing files and malformed content surface as the filesystem's or
// codec's native error, unwrapped.
func Load(path string, opts ...Option) (any, error) {
	cfg := newConfig(opts)

	f := cfg.format
	if f == "" {
		f = IdentifyFormat(path)
	}
	if !f.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, string(f))
	}
	c, err := lookupCodec(f)
	if err != nil {
		return nil, err
	}

	start := cfg.clock.Now()
	fp, err := cfg.provider.Open(path)
	if err != nil {
		cfg.metrics.RecordError("load", string(f))
		return nil, err
	}
	defer fp.Close()

	v, err := c.Decode(fp, cfg.codecOptions(f))
	if err != nil {
		cfg.metrics.RecordError("load", string(f))
		return nil, err
	}
	cfg.metrics.RecordLatency("load", string(f), cfg.clock.Now().Sub(start))
	cfg.logger.Debug("monty: load", "path", path, "format", string(f))
	return v, nil
}

// Dump encodes v and writes it to the file at path, creating or truncating
// it. Format resolution and compression mirror Load.
//
// For JSON-Lines, v must be a slice or array; each entry is encoded
// independently and written followed by a single newline, so a mid-sequence
// encode failure can leave a truncated file (no rollback). The encode hook
// (mson.EncodeTree unless overridden) flattens registered types into
// records for JSON, JSON-Lines, and MessagePack.
func Dump(v any, path string, opts ...Option) error {
	cfg := newConfig(opts)

	f := cfg.format
	if f == "" {
		f = IdentifyFormat(path)
	}
	if !f.valid() {
		return fmt.Errorf("%w: %q", ErrInvalidFormat, string(f))
	}
	c, err := lookupCodec(f)
	if err != nil {
		return err
	}

	start := cfg.clock.Now()
	fp, err := cfg.provider.Create(path)
	if err != nil {
		cfg.metrics.RecordError("dump", string(f))
		return err
	}

	if err := c.Encode(fp, v, cfg.codecOptions(f)); err != nil {
		fp.Close()
		cfg.metrics.RecordError("dump", string(f))
		if errors.Is(err, codec.ErrNotSlice) {
			return fmt.Errorf("%w, got %T", ErrJSONLines, v)
		}
		return err
	}
	// Close flushes any compressor; its error is the write's error.
	if err := fp.Close(); err != nil {
		cfg.metrics.RecordError("dump", string(f))
		return err
	}
	cfg.metrics.RecordLatency("dump", string(f), cfg.clock.Now().Sub(start))
	cfg.logger.Debug("monty: dump", "path", path, "format", string(f))
	return nil
}

func lookupCodec(f Format) (codec.Codec, error) {
	c, err := codec.Lookup(string(f))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCodecUnavailable, f)
	}
	return c, nil
}

// codecOptions builds the per-call codec options. YAML takes no object
// hooks; the other formats receive the configured (possibly nil) hooks.
func (c *config) codecOptions(f Format) codec.Options {
	o := codec.Options{Indent: c.indent}
	if f == YAML {
		return o
	}
	o.DecodeHook = c.decodeHook
	o.EncodeHook = c.encodeHook
	return o
}
