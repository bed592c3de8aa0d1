package monty

import (
	"path/filepath"
	"strings"
)

// Format selects which codec handles a Load or Dump call.
type Format string

// Recognized format tags.
const (
	JSON      Format = "json"
	JSONLines Format = "jsonl"
	YAML      Format = "yaml"
	MsgPack   Format = "mpk"
)

func (f Format) valid() bool {
	switch f {
	case JSON, JSONLines, YAML, MsgPack:
		return true
	}
	return false
}

// IdentifyFormat returns the format for a filename. Matching is
// case-insensitive, considers only the final path component, and uses
// contains-semantics so trailing compression suffixes (".gz", ".bz2", ...)
// do not affect the result. Priority: ".mpk", then ".yaml"/".yml", then
// "jsonl"; anything else is JSON. Never fails.
func IdentifyFormat(name string) Format {
	base := strings.ToLower(filepath.Base(name))
	switch {
	case strings.Contains(base, ".mpk"):
		return MsgPack
	case strings.Contains(base, ".yaml"), strings.Contains(base, ".yml"):
		return YAML
	case strings.Contains(base, "jsonl"):
		return JSONLines
	}
	return JSON
}
