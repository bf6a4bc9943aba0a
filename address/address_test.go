package address

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLexSymbolic(t *testing.T) {
	cases := []struct {
		in   string
		kind Kind
	}{
		{".", Current},
		{"$", Last},
		{"%", Whole},
	}
	for _, c := range cases {
		addr, n, ok := Lex(c.in, false)
		if !ok || n != len(c.in) || addr.Kind != c.kind {
			t.Fatalf("Lex(%q) = %+v, %d, %v; want kind %v consuming all", c.in, addr, n, ok, c.kind)
		}
	}
}

func TestLexNumeric(t *testing.T) {
	addr, n, ok := Lex("100", false)
	if !ok || n != 3 || addr.Kind != Numeric || addr.Numeric != 100 {
		t.Fatalf("Lex(100) = %+v, %d, %v", addr, n, ok)
	}
}

func TestLexMark(t *testing.T) {
	for _, in := range []string{"'a", "'A", "'<", "'>"} {
		addr, n, ok := Lex(in, false)
		if !ok || n != 2 || addr.Kind != Mark || addr.Mark != in[1] {
			t.Fatalf("Lex(%q) = %+v, %d, %v", in, addr, n, ok)
		}
	}
}

func TestLexMarkRequiresMarkChar(t *testing.T) {
	if _, _, ok := Lex("'0123", false); !ok {
		// '0' is alnum, so this is fine and consumes "'0"; just confirm no panic.
	}
	if _, _, ok := Lex("'", false); ok {
		t.Fatalf("Lex(%q) should fail: no mark char follows", "'")
	}
}

func TestLexForwardSearch(t *testing.T) {
	addr, n, ok := Lex("/foo/rest", false)
	if !ok || n != 5 || addr.Kind != ForwardSearch || addr.Pattern != "foo" || addr.Delim != '/' {
		t.Fatalf("Lex(/foo/rest) = %+v, %d, %v", addr, n, ok)
	}
}

func TestLexReverseSearch(t *testing.T) {
	addr, n, ok := Lex("?bar?", false)
	if !ok || n != 5 || addr.Kind != ReverseSearch || addr.Pattern != "bar" {
		t.Fatalf("Lex(?bar?) = %+v, %d, %v", addr, n, ok)
	}
}

func TestLexEmptyPattern(t *testing.T) {
	addr, n, ok := Lex("//", false)
	if !ok || n != 2 || addr.Pattern != "" {
		t.Fatalf("Lex(//) = %+v, %d, %v", addr, n, ok)
	}
}

func TestLexEscapedDelimiter(t *testing.T) {
	// foo\/bar escapes the delimiter so it's part of the pattern.
	addr, n, ok := Lex(`/foo\/bar/`, false)
	if !ok || addr.Pattern != "foo/bar" || n != len(`/foo\/bar/`) {
		t.Fatalf(`Lex(/foo\/bar/) = %+v, %d, %v`, addr, n, ok)
	}
}

func TestLexEscapedBackslash(t *testing.T) {
	addr, _, ok := Lex(`/foo\\bar/`, false)
	if !ok || addr.Pattern != `foo\bar` {
		t.Fatalf(`Lex(/foo\\bar/) = %+v, %v`, addr, ok)
	}
}

func TestLexUnknownEscapePassesThrough(t *testing.T) {
	addr, _, ok := Lex(`/foo\hbar/`, false)
	if !ok || addr.Pattern != "foohbar" {
		t.Fatalf(`Lex(/foo\hbar/) = %+v, %v`, addr, ok)
	}
}

func TestLexOpenEndedOnlyWhenStandalone(t *testing.T) {
	if _, _, ok := Lex("/foo", false); ok {
		t.Fatalf("Lex(/foo, false) should fail: no closing delimiter and not standalone")
	}
	addr, n, ok := Lex("/foo", true)
	if !ok || addr.Kind != OpenForward || addr.Pattern != "foo" || n != 4 {
		t.Fatalf("Lex(/foo, true) = %+v, %d, %v", addr, n, ok)
	}
}

func TestOffsetAccumulation(t *testing.T) {
	// "+100++--+" sums to 101.
	addr, n, ok := Lex(".+100++--+", false)
	if !ok || n != len(".+100++--+") || addr.Offset != 101 {
		t.Fatalf("Lex(.+100++--+) = %+v, %d, %v; want offset 101", addr, n, ok)
	}
}

func TestBareSignOffsets(t *testing.T) {
	addr, n, ok := Lex("+", false)
	if !ok || n != 1 || addr.Kind != Current || addr.Offset != 1 {
		t.Fatalf("Lex(+) = %+v, %d, %v", addr, n, ok)
	}
	addr, n, ok = Lex("--", false)
	if !ok || n != 2 || addr.Offset != -2 {
		t.Fatalf("Lex(--) = %+v, %d, %v", addr, n, ok)
	}
}

func TestSearchOffsetChain(t *testing.T) {
	// Adapted from original_source/vex/parsers/test_range_parser.py's
	// testCanHaveMultipleSearchBasedOffsetsWithInterspersedNumericOffets.
	// The base /foo/ stays in Pattern with its own offset; only the
	// searches that follow it are chained into SearchOffsets.
	addr, n, ok := Lex("/foo/+100/bar/+100--+++?baz?", false)
	if !ok || n != len("/foo/+100/bar/+100--+++?baz?") {
		t.Fatalf("Lex(...) = %+v, %d, %v", addr, n, ok)
	}
	if addr.Kind != ForwardSearch || addr.Pattern != "foo" || addr.Offset != 100 {
		t.Fatalf("base address = %+v; want /foo/ with offset 100", addr)
	}
	want := []SearchOffset{
		{Delim: '/', Pattern: "bar", Offset: 101},
		{Delim: '?', Pattern: "baz", Offset: 0},
	}
	if diff := cmp.Diff(want, addr.SearchOffsets); diff != "" {
		t.Fatalf("search offsets mismatch (-want +got):\n%s", diff)
	}
}

func TestLexNoMatch(t *testing.T) {
	if _, _, ok := Lex("foo", false); ok {
		t.Fatalf("Lex(foo) should not recognize a command name as an address")
	}
	if _, _, ok := Lex("", false); ok {
		t.Fatalf("Lex(\"\") should fail")
	}
}
