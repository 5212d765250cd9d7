package buffer

import "sort"

// Range is a half-open byte range [Start, End) into a source string.
type Range struct {
	Start int
	End   int
}

// TextBuffer accumulates slices of a single source string.
type TextBuffer struct {
	parts []string
	size  int
}

// New creates a new TextBuffer.
func New() *TextBuffer {
	return &TextBuffer{
		parts: make([]string, 0),
	}
}

// Write appends text to the buffer. Empty text is ignored.
func (tb *TextBuffer) Write(text string) {
	if text == "" {
		return
	}
	tb.parts = append(tb.parts, text)
	tb.size += len(text)
}

// Len returns the accumulated length in bytes.
func (tb *TextBuffer) Len() int {
	return tb.size
}

// String returns the accumulated text.
func (tb *TextBuffer) String() string {
	if len(tb.parts) == 0 {
		return ""
	}
	result := make([]byte, 0, tb.size)
	for _, p := range tb.parts {
		result = append(result, p...)
	}
	return string(result)
}

// Reset clears the buffer.
func (tb *TextBuffer) Reset() {
	tb.parts = tb.parts[:0]
	tb.size = 0
}

// Subtract copies source into the buffer, skipping every excluded range.
//
// Ranges must be disjoint and inside source; callers validate that first.
// The ranges slice is not modified.
func (tb *TextBuffer) Subtract(source string, excluded []Range) {
	sorted := make([]Range, len(excluded))
	copy(sorted, excluded)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	cursor := 0
	for _, r := range sorted {
		if r.Start > cursor {
			tb.Write(source[cursor:r.Start])
		}
		if r.End > cursor {
			cursor = r.End
		}
	}
	if cursor < len(source) {
		tb.Write(source[cursor:])
	}
}

// Exclude returns source with every excluded range removed.
func Exclude(source string, excluded []Range) string {
	tb := New()
	tb.Subtract(source, excluded)
	return tb.String()
}
