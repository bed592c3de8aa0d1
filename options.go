// Copyright (c) 2026 Nlaak Studios (https://nlaak.com)
// Author: Andrew Donelson (https://www.linkedin.com/in/andrew-donelson/)
//
// options.go — per-call options for Load and Dump. Options are merged
// against system defaults at the call boundary; the object codec hooks are
// injected only when the caller has not supplied competing ones.

package monty

import (
	"github.com/materialyzeai/monty/internal/clock"
	"github.com/materialyzeai/monty/internal/metrics"
	"github.com/materialyzeai/monty/internal/zopen"
	"github.com/materialyzeai/monty/mson"
	"github.com/spf13/afero"
)

// Re-export types so callers only import this package.
type Recorder = metrics.Recorder
type Clock = clock.Clock

// DecodeHook transforms a freshly decoded value tree before it is returned
// (for jsonl, each per-line value). The default is mson.DecodeTree.
type DecodeHook = func(any) (any, error)

// EncodeHook transforms a value tree before it is encoded (for jsonl, each
// entry). The default is mson.EncodeTree.
type EncodeHook = func(any) (any, error)

// Option configures a single Load or Dump call.
type Option func(*config)

// config holds the merged per-call settings. The hook "set" flags
// distinguish an explicit nil (reconstruction disabled) from an absent
// option (default injected).
type config struct {
	format Format
	indent int

	decodeHook    DecodeHook
	decodeHookSet bool
	encodeHook    EncodeHook
	encodeHookSet bool

	provider *zopen.Provider
	logger   Logger
	metrics  Recorder
	clock    Clock
}

func newConfig(opts []Option) *config {
	c := &config{}
	for _, o := range opts {
		o(c)
	}
	c.defaults()
	return c
}

func (c *config) defaults() {
	if c.provider == nil {
		c.provider = zopen.Default
	}
	if c.logger == nil {
		c.logger = noopLogger{}
	}
	if c.metrics == nil {
		c.metrics = metrics.Noop{}
	}
	if c.clock == nil {
		c.clock = clock.Real{}
	}
	if !c.decodeHookSet {
		c.decodeHook = mson.DecodeTree
	}
	if !c.encodeHookSet {
		c.encodeHook = mson.EncodeTree
	}
}

// WithFormat forces the format tag, bypassing extension sniffing.
func WithFormat(f Format) Option {
	return func(c *config) { c.format = f }
}

// WithIndent sets the indentation width for JSON and YAML output.
func WithIndent(n int) Option {
	return func(c *config) { c.indent = n }
}

// WithDecodeHook sets the decode hook for JSON-family and MessagePack reads.
// Passing nil disables object reconstruction entirely: records come back as
// plain maps.
func WithDecodeHook(h DecodeHook) Option {
	return func(c *config) {
		c.decodeHook = h
		c.decodeHookSet = true
	}
}

// WithEncodeHook sets the encode hook for JSON-family and MessagePack
// writes. Passing nil disables object flattening.
func WithEncodeHook(h EncodeHook) Option {
	return func(c *config) {
		c.encodeHook = h
		c.encodeHookSet = true
	}
}

// WithFS overrides the backing filesystem (useful with afero.NewMemMapFs in
// tests).
func WithFS(fs afero.Fs) Option {
	return func(c *config) { c.provider = zopen.New(fs) }
}

// WithLogger routes monty's internal logging to l.
func WithLogger(l Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithMetrics records per-call latency and errors to r.
func WithMetrics(r Recorder) Option {
	return func(c *config) { c.metrics = r }
}

// WithClock overrides the clock used for latency measurement.
func WithClock(clk Clock) Option {
	return func(c *config) { c.clock = clk }
}
