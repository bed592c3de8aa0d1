package codec

import (
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

func init() {
	Register(MsgPack{})
}

// MsgPack is the binary-map codec using MessagePack encoding.
type MsgPack struct{}

// Name returns "mpk".
func (MsgPack) Name() string { return "mpk" }

// Encode writes v as a single MessagePack value.
func (MsgPack) Encode(w io.Writer, v any, o Options) error {
	v, err := applyEncodeHook(v, o)
	if err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(v)
}

// Decode reads a single MessagePack value from r. Maps with string keys
// decode as map[string]any, so the decode hook sees the same shapes it sees
// for JSON.
func (MsgPack) Decode(r io.Reader, o Options) (any, error) {
	var v any
	if err := msgpack.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return applyDecodeHook(v, o)
}
