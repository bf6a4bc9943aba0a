// Package rangeparse composes one or two addresses, joined by an optional
// separator, into a Range — either a prefix range that precedes a command
// name, or a standalone range that is the entire command line (a "goto").
package rangeparse

import "github.com/jsynacek/vex/address"

// Range is zero, one, or two addresses with an optional separator.
type Range struct {
	Left       *address.Address
	Right      *address.Address
	Separator  byte // 0 when no separator was present
	Incomplete bool // true when one side of a separated range was omitted, or for an open-ended standalone search
	Text       string
}

// Empty reports whether the range carries no addresses at all.
func (r *Range) Empty() bool {
	return r == nil || (r.Left == nil && r.Right == nil && r.Separator == 0)
}

// ParsePrefix consumes a range from the start of s, stopping at the first
// character that cannot extend it (a command-name letter or '!'). It
// returns nil, 0 if no range is present at all. Open-ended search addresses
// are never accepted here — they are only legal in ParseStandalone.
func ParsePrefix(s string) (*Range, int) {
	left, leftN, leftOK := address.Lex(s, false)
	pos := 0
	if leftOK {
		pos = leftN
	} else {
		left = nil
	}

	if pos < len(s) && (s[pos] == ',' || s[pos] == ';') {
		sep := s[pos]
		pos++
		right, rightN, rightOK := address.Lex(s[pos:], false)
		if rightOK {
			pos += rightN
		} else {
			right = nil
		}
		return expandWhole(&Range{
			Left:       left,
			Right:      right,
			Separator:  sep,
			Incomplete: left == nil || right == nil,
			Text:       s[:pos],
		}), pos
	}

	if left == nil {
		return nil, 0
	}
	return expandWhole(&Range{Left: left, Text: s[:pos]}), pos
}

// expandWhole turns a range with a '%' address on either side into the
// explicit range 1,$, discarding any offset attached to the '%' and the
// other side's address, mirroring original_source/ex_range.py's
// calculate_range: a '%' always means the entire buffer.
func expandWhole(r *Range) *Range {
	if r == nil {
		return r
	}
	leftWhole := r.Left != nil && r.Left.Kind == address.Whole
	rightWhole := r.Right != nil && r.Right.Kind == address.Whole
	if !leftWhole && !rightWhole {
		return r
	}
	return &Range{
		Left:      &address.Address{Kind: address.Numeric, Numeric: 1},
		Right:     &address.Address{Kind: address.Last},
		Separator: ',',
		Text:      r.Text,
	}
}

// ParseStandalone parses s as a range that must cover the whole input. It
// reports the Range and whether s was recognized as one at all. Unlike
// ParsePrefix, the open-ended /pattern and ?pattern forms are accepted
// here, provided they consume the remainder of s with no separator or
// right-hand side (matching the original parser's EX_ONLY_RANGE_REGEXP,
// which has no alternative branch combining an open-ended address with a
// separator).
func ParseStandalone(s string) (*Range, bool) {
	if s == "" {
		return nil, false
	}
	if r, n := ParsePrefix(s); r != nil && n == len(s) {
		return r, true
	}
	if s[0] == '/' || s[0] == '?' {
		addr, n, ok := address.Lex(s, true)
		if ok && n == len(s) && (addr.Kind == address.OpenForward || addr.Kind == address.OpenReverse) {
			return &Range{Left: addr, Incomplete: true, Text: s}, true
		}
	}
	return nil, false
}
