package codec

import (
	"io"

	"gopkg.in/yaml.v3"
)

func init() {
	Register(YAML{})
}

// YAML is the whole-stream YAML codec. It takes no object hooks; YAML values
// round-trip as plain maps, sequences, and scalars.
type YAML struct{}

// Name returns "yaml".
func (YAML) Name() string { return "yaml" }

// Encode writes v as a single YAML document.
func (YAML) Encode(w io.Writer, v any, o Options) error {
	enc := yaml.NewEncoder(w)
	if o.Indent > 0 {
		enc.SetIndent(o.Indent)
	}
	if err := enc.Encode(v); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// Decode reads a single YAML document from r.
func (YAML) Decode(r io.Reader, o Options) (any, error) {
	var v any
	if err := yaml.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}
