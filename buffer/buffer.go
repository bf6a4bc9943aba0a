// Package buffer gives the parser's address-evaluator collaborator
// contract a concrete shape: an Evaluator interface and a LineBuffer
// reference implementation over in-memory text, so tests and the demo
// CLI have something real to resolve addresses against. Buffer editing
// itself stays out of scope.
package buffer

import (
	"fmt"
	"regexp"

	"github.com/jsynacek/vex/address"
)

// Evaluator resolves one address.Address, relative to anchor (the current
// line, 1-based), into a concrete 1-based line number. anchor is threaded
// in by the caller rather than held by the Evaluator, so a ';' separator
// in a two-address range can re-anchor the right-hand side on the left's
// resolved line.
type Evaluator interface {
	Resolve(a *address.Address, anchor int) (line int, err error)
}

// LineBuffer is a minimal line-oriented Evaluator over a slice of lines,
// grounded on original_source/ex_location.py and ex_range.py's
// calculate_range_part (translated from Sublime Text's view/Region model
// to plain line numbers) and on jsynacek-med/point.go's GotoLine
// line-counting idiom.
type LineBuffer struct {
	Lines []string
	Marks map[byte]int // 1-based line numbers
}

// NewLineBuffer builds a LineBuffer over an already-split slice of lines.
func NewLineBuffer(lines []string) *LineBuffer {
	return &LineBuffer{Lines: lines, Marks: make(map[byte]int)}
}

func (b *LineBuffer) lastLine() int { return len(b.Lines) }

// Resolve implements Evaluator.
func (b *LineBuffer) Resolve(a *address.Address, anchor int) (int, error) {
	if a == nil {
		return 0, fmt.Errorf("buffer: nil address")
	}

	var line int
	switch a.Kind {
	case address.Current:
		line = anchor
	case address.Last:
		line = b.lastLine()
	case address.Whole:
		// % expands a Range to 1,$ in rangeparse.expandWhole; resolved as a
		// bare Address (outside that expansion) it anchors on the last line
		// and, like the expanded range's own endpoints, ignores any offset.
		line = b.lastLine()
	case address.Numeric:
		line = a.Numeric
	case address.Mark:
		l, ok := b.Marks[a.Mark]
		if !ok {
			return 0, fmt.Errorf("buffer: mark %q not set", a.Mark)
		}
		line = l
	case address.ForwardSearch, address.OpenForward:
		l, err := b.search(a.Pattern, anchor, true)
		if err != nil {
			return 0, err
		}
		line = l
	case address.ReverseSearch, address.OpenReverse:
		l, err := b.search(a.Pattern, anchor, false)
		if err != nil {
			return 0, err
		}
		line = l
	default:
		return 0, fmt.Errorf("buffer: unresolvable address kind %v", a.Kind)
	}

	if a.Kind != address.Whole {
		line += a.Offset
	}
	for _, so := range a.SearchOffsets {
		l, err := b.search(so.Pattern, line, so.Delim == '/')
		if err != nil {
			return 0, err
		}
		line = l + so.Offset
	}

	if line < 0 || line > b.lastLine() {
		return 0, fmt.Errorf("buffer: line %d out of range (1-%d)", line, b.lastLine())
	}
	return line, nil
}

// search scans forward (or backward, wrapping) from anchor for a line
// matching pattern, the way Vim's /pattern/ and ?pattern? addresses do,
// and returns the 1-based line number of the first match found.
func (b *LineBuffer) search(pattern string, anchor int, forward bool) (int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return 0, fmt.Errorf("buffer: bad search pattern %q: %w", pattern, err)
	}
	n := b.lastLine()
	if n == 0 {
		return 0, fmt.Errorf("buffer: empty buffer, pattern %q not found", pattern)
	}
	if forward {
		for i := 1; i <= n; i++ {
			idx := ((anchor - 1 + i) % n) + 1
			if re.MatchString(b.Lines[idx-1]) {
				return idx, nil
			}
		}
	} else {
		for i := 1; i <= n; i++ {
			idx := ((anchor-1-i)%n + n) % n
			idx++
			if re.MatchString(b.Lines[idx-1]) {
				return idx, nil
			}
		}
	}
	return 0, fmt.Errorf("buffer: pattern %q not found", pattern)
}
