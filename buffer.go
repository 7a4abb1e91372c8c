package main

// The in-memory text buffer: an ordered list of lines, each a slice of runes.
// Edit operations live on Editor; this file owns the raw content and the
// rune/byte conversions needed by the syntax classifier.

import "strings"

// Buffer holds the content of the open file as lines of runes. It is never
// empty: an empty document is a single empty line.
type Buffer struct {
	lines [][]rune
}

// NewBuffer returns a buffer containing one empty line.
func NewBuffer() *Buffer {
	return &Buffer{lines: [][]rune{{}}}
}

// NewBufferFromString splits file contents on newline characters. The split
// is verbatim: a trailing newline produces a trailing empty line, so String
// reproduces the original bytes exactly.
func NewBufferFromString(contents string) *Buffer {
	parts := strings.Split(contents, "\n")
	lines := make([][]rune, len(parts))
	for i, part := range parts {
		lines[i] = []rune(part)
	}
	if len(lines) == 0 {
		lines = [][]rune{{}}
	}
	return &Buffer{lines: lines}
}

// String joins the lines with newlines. A buffer of N lines yields exactly
// N-1 newline characters.
func (b *Buffer) String() string {
	var result strings.Builder
	for i, line := range b.lines {
		result.WriteString(string(line))
		if i < len(b.lines)-1 {
			result.WriteString("\n")
		}
	}
	return result.String()
}

// Bytes returns the whole buffer as UTF-8, as consumed by the syntax parser.
func (b *Buffer) Bytes() []byte {
	return []byte(b.String())
}

// LineCount returns the number of lines in the buffer.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the runes of line i, or nil when i is out of range.
func (b *Buffer) Line(i int) []rune {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// LineLen returns the rune length of line i, or 0 when i is out of range.
func (b *Buffer) LineLen(i int) int {
	if i < 0 || i >= len(b.lines) {
		return 0
	}
	return len(b.lines[i])
}

// lineByteOffsets returns the cumulative byte offset of every rune boundary
// in a line. offsets[i] is the byte position of rune i; offsets[len(line)]
// is the byte length of the whole line. Rune indices differ from byte
// indices for multi-byte characters, so this is computed on demand rather
// than cached.
func lineByteOffsets(line []rune) []int {
	offsets := make([]int, len(line)+1)
	for i, r := range line {
		offsets[i+1] = offsets[i] + len(string(r))
	}
	return offsets
}
