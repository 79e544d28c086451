package span

import (
	"fmt"
	"sort"
)

// Position is a human readable source location.
type Position struct {
	File   string
	Offset int
	Line   int // 1-based
	Column int // 1-based, in bytes
}

func (p Position) String() string {
	if p.File != "" {
		return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// LineIndex maps byte offsets of one buffer to line/column positions.
type LineIndex struct {
	file       string
	size       int
	lineStarts []int
}

// NewLineIndex records the start offset of every line in src.
func NewLineIndex(file string, src []byte) *LineIndex {
	starts := []int{0}
	for i, c := range src {
		if c == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &LineIndex{file: file, size: len(src), lineStarts: starts}
}

func (x *LineIndex) Lines() int {
	return len(x.lineStarts)
}

// Position converts offset to a Position. Offsets are clamped to the buffer.
func (x *LineIndex) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > x.size {
		offset = x.size
	}
	line := sort.Search(len(x.lineStarts), func(i int) bool {
		return x.lineStarts[i] > offset
	})
	return Position{
		File:   x.file,
		Offset: offset,
		Line:   line,
		Column: offset - x.lineStarts[line-1] + 1,
	}
}

// LineStart returns the offset of the 1-based line, or -1.
func (x *LineIndex) LineStart(line int) int {
	if line < 1 || line > len(x.lineStarts) {
		return -1
	}
	return x.lineStarts[line-1]
}
