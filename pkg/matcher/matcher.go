// Package matcher implements the line-filtering core: two stateless
// functions that select the lines of a text containing a query substring,
// one case-sensitive and one case-insensitive.
//
// Both return lazy sequences of views into the original text. Nothing is
// copied and nothing is buffered; callers may stop consuming at any point.
package matcher

import (
	"iter"
	"strings"
)

// Match returns the lines of contents that contain query as an exact
// substring, in their original order.
//
// An empty query matches every line. Empty contents yield nothing. Each
// yielded line is a subslice of contents and is valid only as long as
// contents is.
func Match(query, contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range lines(contents) {
			if strings.Contains(line, query) {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// MatchFold is Match with case-insensitive containment: both the query and
// each line are lowercased before the substring test. Folding is used for
// comparison only; yielded lines keep their original casing.
func MatchFold(query, contents string) iter.Seq[string] {
	query = strings.ToLower(query)
	return func(yield func(string) bool) {
		for line := range lines(contents) {
			if strings.Contains(strings.ToLower(line), query) {
				if !yield(line) {
					return
				}
			}
		}
	}
}

// lines yields the newline-delimited segments of s without their
// terminators. A final newline does not produce a trailing empty line, and a
// trailing '\r' is trimmed from each line, so CRLF input behaves like LF
// input. Every yielded line is a subslice of s.
func lines(s string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for len(s) > 0 {
			line := s
			if i := strings.IndexByte(s, '\n'); i >= 0 {
				line, s = s[:i], s[i+1:]
			} else {
				s = ""
			}
			line = strings.TrimSuffix(line, "\r")
			if !yield(line) {
				return
			}
		}
	}
}
