package monty_test

import (
	"testing"

	"github.com/materialyzeai/monty"
	"github.com/spf13/afero"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func benchValue() map[string]any {
	records := make([]any, 32)
	for i := range records {
		records[i] = map[string]any{
			"id":    float64(i),
			"name":  "record",
			"tags":  []any{"a", "b", "c"},
			"inner": map[string]any{"x": 1.0, "y": 2.0},
		}
	}
	return map[string]any{"records": records, "count": 32.0}
}

func benchDump(b *testing.B, name string) {
	b.Helper()
	memfs := afero.NewMemMapFs()
	v := benchValue()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := monty.Dump(v, name, monty.WithFS(memfs)); err != nil {
			b.Fatal(err)
		}
	}
}

func benchLoad(b *testing.B, name string) {
	b.Helper()
	memfs := afero.NewMemMapFs()
	if err := monty.Dump(benchValue(), name, monty.WithFS(memfs)); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := monty.Load(name, monty.WithFS(memfs)); err != nil {
			b.Fatal(err)
		}
	}
}

// ── format benchmarks ─────────────────────────────────────────────────────────

func BenchmarkDump_JSON(b *testing.B)    { benchDump(b, "bench.json") }
func BenchmarkLoad_JSON(b *testing.B)    { benchLoad(b, "bench.json") }
func BenchmarkDump_YAML(b *testing.B)    { benchDump(b, "bench.yaml") }
func BenchmarkLoad_YAML(b *testing.B)    { benchLoad(b, "bench.yaml") }
func BenchmarkDump_MsgPack(b *testing.B) { benchDump(b, "bench.mpk") }
func BenchmarkLoad_MsgPack(b *testing.B) { benchLoad(b, "bench.mpk") }

// ── compression benchmarks ────────────────────────────────────────────────────

func BenchmarkDump_JSON_Gzip(b *testing.B) { benchDump(b, "bench.json.gz") }
func BenchmarkLoad_JSON_Gzip(b *testing.B) { benchLoad(b, "bench.json.gz") }
func BenchmarkDump_JSON_Zstd(b *testing.B) { benchDump(b, "bench.json.zst") }
func BenchmarkLoad_JSON_Zstd(b *testing.B) { benchLoad(b, "bench.json.zst") }
