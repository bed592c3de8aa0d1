// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// json.go — JSON and JSON-Lines codecs wrapping encoding/json. JSON reads
// and writes one value per stream; JSON-Lines reads and writes one value per
// physical line.

package codec

import (
	"bufio"
	"encoding/json"
	"io"
	"reflect"
	"strings"
)

func init() {
	Register(JSON{})
	Register(JSONLines{})
}

// JSON is the whole-stream JSON codec.
type JSON struct{}

// Name returns "json".
func (JSON) Name() string { return "json" }

// Encode writes v as a single JSON document. Indent > 0 pretty-prints.
func (JSON) Encode(w io.Writer, v any, o Options) error {
	v, err := applyEncodeHook(v, o)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	if o.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", o.Indent))
	}
	return enc.Encode(v)
}

// Decode reads a single JSON document from r.
func (JSON) Decode(r io.Reader, o Options) (any, error) {
	var v any
	if err := json.NewDecoder(r).Decode(&v); err != nil {
		return nil, err
	}
	return applyDecodeHook(v, o)
}

// JSONLines is the line-oriented JSON codec. The decoded value is always an
// ordered []any with one entry per physical line; a trailing newline on the
// last line does not produce an extra entry.
type JSONLines struct{}

// Name returns "jsonl".
func (JSONLines) Name() string { return "jsonl" }

// Encode writes one JSON value plus a newline per element of v, which must
// be a slice or array. Entries are encoded independently and written one at
// a time; a failing entry leaves the previously written lines on the stream.
// Indent is ignored so each value stays on one line.
func (JSONLines) Encode(w io.Writer, v any, o Options) error {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return ErrNotSlice
	}
	for i := 0; i < rv.Len(); i++ {
		entry, err := applyEncodeHook(rv.Index(i).Interface(), o)
		if err != nil {
			return err
		}
		b, err := json.Marshal(entry)
		if err != nil {
			return err
		}
		b = append(b, '\n')
		if _, err := w.Write(b); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads r line by line, decoding each physical line as one JSON value.
func (JSONLines) Decode(r io.Reader, o Options) (any, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	out := []any{}
	for sc.Scan() {
		var v any
		if err := json.Unmarshal(sc.Bytes(), &v); err != nil {
			return nil, err
		}
		v, err := applyDecodeHook(v, o)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func applyEncodeHook(v any, o Options) (any, error) {
	if o.EncodeHook == nil {
		return v, nil
	}
	return o.EncodeHook(v)
}

func applyDecodeHook(v any, o Options) (any, error) {
	if o.DecodeHook == nil {
		return v, nil
	}
	return o.DecodeHook(v)
}
