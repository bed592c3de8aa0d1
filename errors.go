// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// errors.go — sentinel error variables returned by the public monty API,
// covering format resolution, codec availability, and JSON-Lines value
// shape. Parse and filesystem failures are propagated unmodified from the
// underlying codec or filesystem and are deliberately absent here.

// Package monty loads and dumps structured data to files in one of four
// interchangeable formats — JSON, JSON-Lines, YAML, and MessagePack —
// selected by filename extension, with transparent compression and a
// pluggable object reconstruction convention (see the mson package).
package monty

import "errors"

// Format errors
var (
	// ErrInvalidFormat is returned when a caller supplies a format tag
	// outside the recognized set, before any file is touched.
	ErrInvalidFormat = errors.New("monty: invalid format")

	// ErrCodecUnavailable is returned when the resolved format has no
	// registered codec, before any file is opened.
	ErrCodecUnavailable = errors.New("monty: codec unavailable")
)

// Value errors
var (
	// ErrJSONLines is returned by Dump when the value for a jsonl write is
	// not a slice or array of independently encodable entries.
	ErrJSONLines = errors.New("monty: jsonl dump requires a slice or array")
)
