package matcher

import (
	"iter"
	"slices"
	"strings"
	"testing"
	"unsafe"
)

const poem = `Rust:
really productive.
also passive.
probably problamatic.
but simply lovely.
Come dive into the world of rust.`

func collect(seq iter.Seq[string]) []string {
	var result []string
	seq(func(line string) bool {
		result = append(result, line)
		return true
	})
	return result
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contents string
		expected []string
	}{
		{
			name:     "one result",
			query:    "duct",
			contents: "Rust:\nsafe, fast, productive.\nPick three.",
			expected: []string{"safe, fast, productive."},
		},
		{
			name:     "multiple results",
			query:    "ive",
			contents: poem,
			expected: []string{
				"really productive.",
				"also passive.",
				"Come dive into the world of rust.",
			},
		},
		{
			name:     "empty contents",
			query:    "hi",
			contents: "",
			expected: nil,
		},
		{
			name:     "empty query matches every line",
			query:    "",
			contents: poem,
			expected: strings.Split(poem, "\n"),
		},
		{
			name:     "empty query and contents",
			query:    "",
			contents: "",
			expected: nil,
		},
		{
			name:     "case sensitive misses folded query",
			query:    "rUsT",
			contents: poem,
			expected: nil,
		},
		{
			name:     "trailing newline adds no empty line",
			query:    "",
			contents: "one\ntwo\n",
			expected: []string{"one", "two"},
		},
		{
			name:     "blank interior line is preserved",
			query:    "",
			contents: "one\n\ntwo",
			expected: []string{"one", "", "two"},
		},
		{
			name:     "crlf terminators are trimmed",
			query:    "two",
			contents: "one\r\ntwo\r\nthree\r\n",
			expected: []string{"two"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(Match(tt.query, tt.contents))
			if !slices.Equal(got, tt.expected) {
				t.Errorf("expected %q but got %q", tt.expected, got)
			}
		})
	}
}

func TestMatchFold(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contents string
		expected []string
	}{
		{
			name:     "folded query hits both casings",
			query:    "rUsT",
			contents: poem,
			expected: []string{"Rust:", "Come dive into the world of rust."},
		},
		{
			name:     "empty contents",
			query:    "hi",
			contents: "",
			expected: nil,
		},
		{
			name:     "empty query matches every line",
			query:    "",
			contents: "One\nTWO",
			expected: []string{"One", "TWO"},
		},
		{
			name:     "original casing is preserved in results",
			query:    "world",
			contents: "Hello WORLD\ngoodbye",
			expected: []string{"Hello WORLD"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(MatchFold(tt.query, tt.contents))
			if !slices.Equal(got, tt.expected) {
				t.Errorf("expected %q but got %q", tt.expected, got)
			}
		})
	}
}

func TestMatch_OrderPreserved(t *testing.T) {
	contents := "b match\na match\nskip\nc match"
	got := collect(Match("match", contents))
	expected := []string{"b match", "a match", "c match"}
	if !slices.Equal(got, expected) {
		t.Errorf("expected matches in original order %q but got %q", expected, got)
	}
}

func TestMatch_Idempotent(t *testing.T) {
	first := collect(Match("ive", poem))
	second := collect(Match("ive", poem))
	if !slices.Equal(first, second) {
		t.Errorf("two identical calls differed: %q vs %q", first, second)
	}
}

func TestMatch_StopsEarly(t *testing.T) {
	// Consuming only the first match must not touch later lines; a second
	// range over the same sequence starts from the beginning again.
	seq := Match("ive", poem)

	var first string
	count := 0
	for line := range seq {
		first = line
		count++
		break
	}

	if count != 1 {
		t.Fatalf("expected a single yield but got %d", count)
	}
	if first != "really productive." {
		t.Errorf("expected first match %q but got %q", "really productive.", first)
	}

	if got := collect(seq); len(got) != 3 {
		t.Errorf("expected re-ranging the sequence to yield 3 matches but got %d", len(got))
	}
}

func TestMatch_YieldsViewsIntoContents(t *testing.T) {
	contents := "alpha\nbeta\ngamma"
	for line := range Match("beta", contents) {
		if line != "beta" {
			t.Fatalf("expected %q but got %q", "beta", line)
		}
		// A yielded line shares the contents backing array rather than
		// being a fresh allocation.
		base := unsafe.StringData(contents)
		data := unsafe.StringData(line)
		offset := uintptr(unsafe.Pointer(data)) - uintptr(unsafe.Pointer(base))
		if offset != uintptr(len("alpha\n")) {
			t.Errorf("expected line to alias contents at offset 6 but got offset %d", offset)
		}
	}
}
