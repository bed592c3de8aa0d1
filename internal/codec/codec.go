// Package codec provides stream encode/decode implementations for the
// supported file formats, looked up by name through a registry.
package codec

import (
	"errors"
	"fmt"
	"io"
	"sync"
)

// Options carries per-call settings forwarded to a codec. Zero values mean
// "no setting"; hooks are optional and ignored by codecs that do not take
// them (YAML).
type Options struct {
	// Indent is the indentation width for text formats. 0 writes compact
	// output.
	Indent int
	// DecodeHook, when non-nil, transforms the decoded value (or each
	// decoded line for jsonl) before it is returned.
	DecodeHook func(any) (any, error)
	// EncodeHook, when non-nil, transforms the value (or each entry for
	// jsonl) before it is encoded.
	EncodeHook func(any) (any, error)
}

// Codec encodes and decodes values on a stream.
type Codec interface {
	// Name returns the format tag this codec serves.
	Name() string
	// Encode writes v to w. Parse and I/O errors are returned unmodified.
	Encode(w io.Writer, v any, o Options) error
	// Decode reads a single value (or, for jsonl, an ordered sequence of
	// per-line values) from r.
	Decode(r io.Reader, o Options) (any, error)
}

// ErrUnavailable is returned by Lookup when no codec is registered under the
// requested name.
var ErrUnavailable = errors.New("codec: unavailable")

// ErrNotSlice is returned by the jsonl codec when asked to encode a value
// that is not a slice or array.
var ErrNotSlice = errors.New("codec: jsonl requires a slice or array")

var (
	mu       sync.RWMutex
	registry = map[string]Codec{}
)

// Register adds c to the registry under c.Name(). Codecs register themselves
// in init; a later registration under the same name wins.
func Register(c Codec) {
	mu.Lock()
	defer mu.Unlock()
	registry[c.Name()] = c
}

// Lookup returns the codec registered under name, or ErrUnavailable naming
// the missing capability.
func Lookup(name string) (Codec, error) {
	mu.RLock()
	defer mu.RUnlock()
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnavailable, name)
	}
	return c, nil
}
