package args

import "fmt"

// Separators recognized in the long form of a substitute command.
const substituteSeparators = "!$:/&@%"

// Flag characters recognized after the pattern/replacement, or on their
// own in the short form.
const substituteFlags = "giI"

// Substitute is the tokenized result of a :s, :&& or :g/.../s sub-command
// argument string.
type Substitute struct {
	Delimiter   byte // 0 in the short form
	Search      string
	Replacement string
	Flags       string
	Count       string
}

type substState int

const (
	stStart substState = iota
	stInPattern
	stInEscape
	stInFlags
	stInCount
	stEOF
)

// substLexer is a hand-written, explicit-state scanner for the substitute
// grammar, grounded directly on original_source/substitute.py's
// SubstituteCommandParser.
type substLexer struct {
	src   string
	pos   int
	state substState
	delim byte
}

func (l *substLexer) atEOF() bool { return l.pos >= len(l.src) }
func (l *substLexer) ch() byte    { return l.src[l.pos] }

func (l *substLexer) skipSpace() {
	for !l.atEOF() && (l.ch() == ' ' || l.ch() == '\t') {
		l.pos++
	}
}

// scanString reads characters up to (but not including) an unescaped
// delimiter, applying the same backslash rules as package address:
// \\ -> \, \<delim> -> <delim>, any other \x -> x. It walks stInPattern
// and stInEscape explicitly rather than folding the escape check into one
// branch, so the state machine mirrors
// original_source/substitute.py's SubstituteCommandParser state-for-state.
func (l *substLexer) scanString() string {
	l.state = stInPattern
	var buf []byte
	for !l.atEOF() {
		c := l.ch()
		if l.state == stInEscape {
			buf = append(buf, c)
			l.pos++
			l.state = stInPattern
			continue
		}
		if c == l.delim {
			break
		}
		if c == '\\' && l.pos+1 < len(l.src) {
			l.state = stInEscape
			l.pos++
			continue
		}
		buf = append(buf, c)
		l.pos++
	}
	l.state = stEOF
	return string(buf)
}

func (l *substLexer) scanFlags() string {
	l.state = stInFlags
	l.skipSpace()
	start := l.pos
	for !l.atEOF() {
		c := l.ch()
		found := false
		for i := 0; i < len(substituteFlags); i++ {
			if c == substituteFlags[i] {
				found = true
				break
			}
		}
		if !found {
			break
		}
		l.pos++
	}
	l.state = stEOF
	return l.src[start:l.pos]
}

func (l *substLexer) scanCount() string {
	l.state = stInCount
	l.skipSpace()
	start := l.pos
	for !l.atEOF() && l.ch() >= '0' && l.ch() <= '9' {
		l.pos++
	}
	l.state = stEOF
	return l.src[start:l.pos]
}

func isSeparator(c byte) bool {
	for i := 0; i < len(substituteSeparators); i++ {
		if substituteSeparators[i] == c {
			return true
		}
	}
	return false
}

// ParseSubstitute tokenizes the tail of a :s/:&&/:g-sub command into its
// (delimiter, search, replacement, flags, count) parts.
func ParseSubstitute(tail string) (*Substitute, error) {
	l := &substLexer{src: tail}
	sub := &Substitute{}

	if l.atEOF() || !isSeparator(l.ch()) {
		return parseSubstituteShort(l, sub)
	}
	return parseSubstituteLong(l, sub)
}

func parseSubstituteShort(l *substLexer, sub *Substitute) (*Substitute, error) {
	sub.Flags = l.scanFlags()
	sub.Count = l.scanCount()
	if !l.atEOF() {
		return nil, fmt.Errorf("trailing characters in substitute command: %q", l.src[l.pos:])
	}
	return sub, nil
}

func parseSubstituteLong(l *substLexer, sub *Substitute) (*Substitute, error) {
	sub.Delimiter = l.ch()
	l.delim = sub.Delimiter
	l.pos++

	if !l.atEOF() {
		sub.Search = l.scanString()
	}
	if !l.atEOF() {
		l.pos++ // consume separator
	}
	if !l.atEOF() {
		sub.Replacement = l.scanString()
	}
	if !l.atEOF() {
		l.pos++ // consume separator
	}
	if !l.atEOF() {
		sub.Flags = l.scanFlags()
	}
	if !l.atEOF() {
		sub.Count = l.scanCount()
	}
	if !l.atEOF() {
		return nil, fmt.Errorf("trailing characters in substitute command: %q", l.src[l.pos:])
	}
	return sub, nil
}
