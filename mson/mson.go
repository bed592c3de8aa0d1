// Package mson implements the object encoding convention used by the
// JSON-family and MessagePack serializers: values that know how to flatten
// themselves into plain records are written with "@module" and "@class"
// identifiers, and records carrying those identifiers are reconstructed into
// live values through a process-wide type registry.
package mson

import (
	"reflect"
	"sync"
)

// Marker keys embedded in encoded records to identify the originating type.
const (
	ModuleKey = "@module"
	ClassKey  = "@class"
)

// MSONable is implemented by types that can flatten themselves into a plain
// record. The returned map must contain only values the target codec can
// encode (maps, slices, scalars, or further MSONable values).
type MSONable interface {
	AsDict() map[string]any
}

// DecodeFunc reconstructs a live value from a flattened record. The record
// passed in no longer contains the marker keys. Numeric fields arrive as
// whatever the codec decoded them to (float64 for JSON); narrowing is the
// DecodeFunc's responsibility.
type DecodeFunc func(rec map[string]any) (any, error)

type entry struct {
	module string
	class  string
	decode DecodeFunc
}

var (
	mu     sync.RWMutex
	byType = map[reflect.Type]entry{}
	byName = map[string]entry{}
)

// Register associates a concrete type with its module/class identifiers and
// a constructor. The prototype fixes the registered type: register with the
// same shape (pointer or value) that will appear in dumped trees. Safe for
// concurrent use; a later registration for the same type or name wins.
func Register(prototype MSONable, module, class string, decode DecodeFunc) {
	mu.Lock()
	defer mu.Unlock()
	e := entry{module: module, class: class, decode: decode}
	byType[reflect.TypeOf(prototype)] = e
	byName[module+"."+class] = e
}

// EncodeTree walks v and flattens every MSONable it finds via AsDict,
// tagging registered types with the marker keys. Maps with string keys and
// slices are walked recursively; all other values pass through unchanged.
// Unregistered MSONable values are flattened without markers and will decode
// back as plain maps.
func EncodeTree(v any) (any, error) {
	switch t := v.(type) {
	case MSONable:
		e, registered := lookupType(reflect.TypeOf(v))
		rec := t.AsDict()
		out := make(map[string]any, len(rec)+2)
		for k, val := range rec {
			enc, err := EncodeTree(val)
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		if registered {
			out[ModuleKey] = e.module
			out[ClassKey] = e.class
		}
		return out, nil
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			enc, err := EncodeTree(val)
			if err != nil {
				return nil, err
			}
			out[k] = enc
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			enc, err := EncodeTree(val)
			if err != nil {
				return nil, err
			}
			out[i] = enc
		}
		return out, nil
	}
	return v, nil
}

// DecodeTree walks a freshly decoded value, children first, and replaces
// every map carrying registered marker keys with the value built by its
// DecodeFunc. Maps with unregistered markers are left as plain maps.
func DecodeTree(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			dec, err := DecodeTree(val)
			if err != nil {
				return nil, err
			}
			out[k] = dec
		}
		module, mok := out[ModuleKey].(string)
		class, cok := out[ClassKey].(string)
		if mok && cok {
			if e, ok := lookupName(module + "." + class); ok {
				rec := make(map[string]any, len(out))
				for k, val := range out {
					if k == ModuleKey || k == ClassKey {
						continue
					}
					rec[k] = val
				}
				return e.decode(rec)
			}
		}
		return out, nil
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			dec, err := DecodeTree(val)
			if err != nil {
				return nil, err
			}
			out[i] = dec
		}
		return out, nil
	}
	return v, nil
}

func lookupType(t reflect.Type) (entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := byType[t]
	return e, ok
}

func lookupName(name string) (entry, bool) {
	mu.RLock()
	defer mu.RUnlock()
	e, ok := byName[name]
	return e, ok
}
