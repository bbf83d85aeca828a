//go:build go1.18
// +build go1.18

package tokenizer

import (
	"reflect"
	"testing"
)

// FuzzTokenizer tests the tokenizer with random inputs: it must never panic,
// must always produce at least one row per stream with at least one field per
// row, and must produce identical rows no matter where the input is split
// into chunks.
// Run with: go test -fuzz=FuzzTokenizer -fuzztime=30s ./internal/tokenizer
func FuzzTokenizer(f *testing.F) {
	seeds := []string{
		"",
		"a",
		"a,b,c",
		"a,b,c\n",
		"a,b\r\nc,d",
		"\"quoted\"",
		"\"with,comma\"",
		"\"with\"\"quote\"",
		"\"multi\nline\"",
		"a\rb",
		"a\r",
		"\r\n",
		",,",
		"\"\"",
		"a\"b\"\"",
		"\"a\"b\"c",
		"\ufeffh1,h2\nv1,v2",
	}
	for _, s := range seeds {
		f.Add(s, 0)
	}

	f.Fuzz(func(t *testing.T, input string, cut int) {
		whole := New()
		rows := whole.Feed(input)
		if row, ok := whole.Flush(); ok {
			rows = append(rows, row)
		}

		// Totality: every stream yields at least one row, every row at
		// least one field.
		if len(rows) == 0 {
			t.Fatalf("no rows for input %q", input)
		}
		for i, row := range rows {
			if len(row) == 0 {
				t.Fatalf("row %d has zero fields for input %q", i, input)
			}
		}

		// Chunk-boundary determinism: splitting the stream anywhere must
		// not change the result.
		runes := []rune(input)
		cut %= len(runes) + 1
		if cut < 0 {
			cut += len(runes) + 1
		}
		split := New()
		got := split.Feed(string(runes[:cut]))
		got = append(got, split.Feed(string(runes[cut:]))...)
		if row, ok := split.Flush(); ok {
			got = append(got, row)
		}
		if !reflect.DeepEqual(got, rows) {
			t.Errorf("split at %d: got %v, want %v", cut, got, rows)
		}
	})
}
