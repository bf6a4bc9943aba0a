// Package address implements the ex command-line address lexer: it
// consumes exactly one address expression from the start of a string and
// reports how many bytes it took.
//
// The scanner is hand-written rather than regex-based because the escape
// rules around search delimiters need lookbehind-like logic (an escaped
// delimiter does not end the pattern) that Go's regexp package cannot
// express directly.
package address

import "strconv"

// Kind identifies the form an address takes.
type Kind int

const (
	// None is the zero value and never appears in a successfully lexed Address.
	None Kind = iota
	Current        // .
	Last           // $
	Whole          // %
	Numeric        // 123
	Mark           // 'x
	ForwardSearch  // /pattern/
	ReverseSearch  // ?pattern?
	OpenForward    // /pattern (standalone, no closing delimiter)
	OpenReverse    // ?pattern (standalone, no closing delimiter)
)

// SearchOffset is one trailing /pattern/ or ?pattern? offset chained after
// an address, with its own accumulated numeric offset.
type SearchOffset struct {
	Delim   byte
	Pattern string
	Offset  int
}

// Address is one endpoint of a Range.
type Address struct {
	Kind          Kind
	Mark          byte   // set when Kind == Mark
	Pattern       string // set when Kind is one of the search kinds
	Delim         byte   // the delimiter used for Pattern ('/' or '?')
	Numeric       int    // set when Kind == Numeric
	Offset        int    // accumulated signed offset attached directly to the base address
	SearchOffsets []SearchOffset
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isMarkChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '<' || c == '>'
}

// Lex consumes one address expression (plus any trailing offsets) from the
// start of s. standalone allows the open-ended /pattern and ?pattern forms
// that are only legal when the address is the entire input (see
// rangeparse.ParseStandalone). It reports the Address, the number of bytes
// consumed, and whether anything was recognized at all.
func Lex(s string, standalone bool) (addr *Address, n int, ok bool) {
	if s == "" {
		return nil, 0, false
	}
	addr = &Address{}
	i := 0
	switch {
	case s[0] == '.':
		addr.Kind = Current
		i = 1
	case s[0] == '$':
		addr.Kind = Last
		i = 1
	case s[0] == '%':
		addr.Kind = Whole
		i = 1
	case s[0] == '\'' || s[0] == '`':
		if len(s) < 2 || !isMarkChar(s[1]) {
			return nil, 0, false
		}
		addr.Kind = Mark
		addr.Mark = s[1]
		i = 2
	case s[0] == '/' || s[0] == '?':
		delim := s[0]
		pat, consumed, closed := scanPattern(s[1:], delim)
		if closed {
			if delim == '/' {
				addr.Kind = ForwardSearch
			} else {
				addr.Kind = ReverseSearch
			}
			addr.Pattern = pat
			addr.Delim = delim
			i = 1 + consumed + 1
		} else {
			if !standalone {
				return nil, 0, false
			}
			if delim == '/' {
				addr.Kind = OpenForward
			} else {
				addr.Kind = OpenReverse
			}
			addr.Pattern = pat
			addr.Delim = delim
			return addr, 1 + consumed, true
		}
	case isDigit(s[0]):
		j := 0
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		num, _ := strconv.Atoi(s[:j])
		addr.Kind = Numeric
		addr.Numeric = num
		i = j
	case s[0] == '+' || s[0] == '-':
		// A bare leading sign has no base symbol of its own; it implies the
		// current line, and the offset loop below does all the work.
		addr.Kind = Current
		i = 0
	default:
		return nil, 0, false
	}

	i += lexOffsets(addr, s[i:])
	return addr, i, true
}

// lexOffsets consumes a run of offset tokens (signed decimals, bare signs,
// and chained search offsets) from the start of s and accumulates them onto
// addr. It returns the number of bytes consumed.
func lexOffsets(addr *Address, s string) int {
	i := 0
	searchIdx := -1 // -1 means accumulate into addr.Offset; otherwise index into addr.SearchOffsets
	for i < len(s) {
		c := s[i]
		switch {
		case c == '+' || c == '-':
			sign := 1
			if c == '-' {
				sign = -1
			}
			j := i + 1
			start := j
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			delta := sign
			if j > start {
				n, _ := strconv.Atoi(s[start:j])
				delta = sign * n
			}
			if searchIdx < 0 {
				addr.Offset += delta
			} else {
				addr.SearchOffsets[searchIdx].Offset += delta
			}
			i = j
		case c == '/' || c == '?':
			pat, consumed, closed := scanPattern(s[i+1:], c)
			if !closed {
				return i
			}
			addr.SearchOffsets = append(addr.SearchOffsets, SearchOffset{Delim: c, Pattern: pat})
			searchIdx = len(addr.SearchOffsets) - 1
			i += 1 + consumed + 1
		default:
			return i
		}
	}
	return i
}

// scanPattern reads a pattern body up to (but not including) an unescaped
// delim, applying the escape rules: \\ -> \, \<delim> -> <delim>, any
// other \x -> x. It returns the processed pattern, the number
// of source bytes consumed (not counting a closing delimiter), and whether
// a closing delimiter was found.
func scanPattern(s string, delim byte) (pattern string, n int, closed bool) {
	var buf []byte
	i := 0
	for i < len(s) {
		c := s[i]
		if c == delim {
			return string(buf), i, true
		}
		if c == '\\' && i+1 < len(s) {
			next := s[i+1]
			buf = append(buf, next)
			i += 2
			continue
		}
		buf = append(buf, c)
		i++
	}
	return string(buf), i, false
}
