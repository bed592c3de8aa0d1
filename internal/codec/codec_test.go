package codec_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/materialyzeai/monty/internal/codec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Registered(t *testing.T) {
	for _, name := range []string{"json", "jsonl", "yaml", "mpk"} {
		c, err := codec.Lookup(name)
		require.NoError(t, err)
		assert.Equal(t, name, c.Name())
	}
}

func TestLookup_Unavailable(t *testing.T) {
	_, err := codec.Lookup("parquet")
	assert.ErrorIs(t, err, codec.ErrUnavailable)
	assert.Contains(t, err.Error(), "parquet")
}

func TestJSON_RoundTrip(t *testing.T) {
	c := codec.JSON{}
	orig := map[string]any{"id": 1.0, "name": "test"}

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, orig, codec.Options{}))

	got, err := c.Decode(&buf, codec.Options{})
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestJSON_Indent(t *testing.T) {
	c := codec.JSON{}
	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, map[string]any{"a": 1}, codec.Options{Indent: 4}))
	assert.Contains(t, buf.String(), "\n    \"a\"")
}

func TestJSON_Hooks(t *testing.T) {
	c := codec.JSON{}
	o := codec.Options{
		EncodeHook: func(v any) (any, error) {
			return map[string]any{"wrapped": v}, nil
		},
		DecodeHook: func(v any) (any, error) {
			return v.(map[string]any)["wrapped"], nil
		},
	}

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, "inner", o))

	got, err := c.Decode(&buf, o)
	require.NoError(t, err)
	assert.Equal(t, "inner", got)
}

func TestJSONLines_Shape(t *testing.T) {
	c := codec.JSONLines{}
	entries := []any{
		map[string]any{"n": 0.0},
		map[string]any{"n": 1.0},
		map[string]any{"n": 2.0},
	}

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, entries, codec.Options{}))

	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "\n"))
	assert.Len(t, strings.Split(strings.TrimSuffix(out, "\n"), "\n"), 3)

	got, err := c.Decode(&buf, codec.Options{})
	require.NoError(t, err)
	assert.Equal(t, entries, got)
}

func TestJSONLines_NotSlice(t *testing.T) {
	c := codec.JSONLines{}
	var buf bytes.Buffer
	err := c.Encode(&buf, map[string]any{"a": 1}, codec.Options{})
	assert.ErrorIs(t, err, codec.ErrNotSlice)
	assert.Zero(t, buf.Len())
}

func TestJSONLines_PerLineHook(t *testing.T) {
	c := codec.JSONLines{}
	calls := 0
	o := codec.Options{
		DecodeHook: func(v any) (any, error) {
			calls++
			return v, nil
		},
	}
	_, err := c.Decode(strings.NewReader("{\"a\":1}\n{\"a\":2}\n"), o)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestYAML_RoundTrip(t *testing.T) {
	c := codec.YAML{}
	orig := map[string]any{"hello": "world", "n": 3}

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, orig, codec.Options{}))

	got, err := c.Decode(&buf, codec.Options{})
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestMsgPack_RoundTrip(t *testing.T) {
	c := codec.MsgPack{}
	orig := map[string]any{"hello": "world"}

	var buf bytes.Buffer
	require.NoError(t, c.Encode(&buf, orig, codec.Options{}))

	got, err := c.Decode(&buf, codec.Options{})
	require.NoError(t, err)
	assert.Equal(t, orig, got)
}

func TestJSON_MalformedContent(t *testing.T) {
	c := codec.JSON{}
	_, err := c.Decode(strings.NewReader("hello: world\n"), codec.Options{})
	assert.Error(t, err)
}
