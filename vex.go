// Package vex parses a single Vim-compatible ex command line into a
// structured ParsedCommand: an optional line range, the resolved command
// identity, the force ("!") flag, and a named argument map.
//
// Parsing is total over well-formed input: a wholly unrecognized line
// reports ok == false, while a structurally valid but policy-violating one
// (bad bang, disallowed range, trailing characters) is still returned,
// carrying its violations in ParseErrors.
package vex

import (
	"strings"

	"github.com/jsynacek/vex/address"
	"github.com/jsynacek/vex/args"
	"github.com/jsynacek/vex/cmdtable"
	"github.com/jsynacek/vex/errcode"
	"github.com/jsynacek/vex/rangeparse"
)

// ParsedCommand is the parser's output for one command line.
type ParsedCommand struct {
	Name        string
	CommandID   string
	Forced      bool
	Range       *rangeparse.Range
	Args        map[string]string
	ParseErrors []errcode.Code
}

func isNameStart(c byte) bool {
	return c == ':' || c == '!' || c == '&' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// extractName consumes a command name from the start of s: a maximal run
// of letters, or an operator for the one-off names ':' and '&'/'&&'. A
// bare '!' never reaches it: Parse turns that into shell_out first.
// Grounded on
// original_source/vex/parsers/test_range_parser.py's
// CommandLineParser behavior for '&', '&&', ':' and bare '!'.
func extractName(s string) (name string, rest string) {
	if s == "" {
		return "", s
	}
	switch s[0] {
	case ':':
		return ":", s[1:]
	case '&':
		if len(s) > 1 && s[1] == '&' {
			return "&&", s[2:]
		}
		return "&", s[1:]
	}
	i := 0
	for i < len(s) && isAlpha(s[i]) {
		i++
	}
	return s[:i], s[i:]
}

// defaultRangeSymbol gives the handful of commands whose real Vim
// semantics imply a range even when none is written: :substitute and :&&
// act on the current line, :global acts on the whole buffer. Every other
// command's range stays exactly what the user wrote (possibly empty) —
// see DESIGN.md for why this isn't applied uniformly.
var defaultRangeSymbol = map[string]string{
	"substitute":        ".",
	"substitute_repeat": ".",
	"global":            "%",
}

// applyDefaultRange fills in id's implied default range when rng is empty.
func applyDefaultRange(id string, rng *rangeparse.Range) *rangeparse.Range {
	sym, ok := defaultRangeSymbol[id]
	if !ok || !rng.Empty() {
		return rng
	}
	defRng, _ := rangeparse.ParsePrefix(sym)
	return defRng
}

// Parse converts a single ex command line into a ParsedCommand. It
// returns a nil command and ok == false only when the line is wholly
// unrecognized: what follows any range cannot start a command name or a
// bare bang, or the name resolves to no command table entry.
func Parse(line string) (*ParsedCommand, bool) {
	trimmed := strings.TrimPrefix(line, ":")

	if strings.TrimSpace(trimmed) == "" {
		cur, _, _ := address.Lex(".", false)
		return &ParsedCommand{
			Name:      "NOP",
			CommandID: "nop",
			Range:     &rangeparse.Range{Left: cur, Text: "."},
			Args:      map[string]string{},
		}, true
	}

	if r, ok := rangeparse.ParseStandalone(trimmed); ok {
		return &ParsedCommand{
			Name:      ":",
			CommandID: "goto",
			Range:     r,
			Args:      map[string]string{},
		}, true
	}

	rng, n := rangeparse.ParsePrefix(trimmed)
	rest := trimmed[n:]

	if !isNameStart(rest[0]) {
		return nil, false
	}

	if rest[0] == '!' {
		return &ParsedCommand{
			Name:      "!",
			CommandID: "shell_out",
			Range:     rng,
			Args:      map[string]string{"shell_cmd": rest[1:]},
		}, true
	}

	name, afterName := extractName(rest)
	if name == "" {
		return nil, false
	}

	forced := false
	if afterName != "" && afterName[0] == '!' {
		forced = true
		afterName = afterName[1:]
	}

	desc, ok := cmdtable.Resolve(name)
	if !ok {
		return nil, false
	}

	argMap := args.Extract(desc, afterName)
	rng = applyDefaultRange(desc.ID, rng)

	pc := &ParsedCommand{
		Name:      name,
		CommandID: desc.ID,
		Forced:    forced,
		Range:     rng,
		Args:      argMap,
	}
	pc.ParseErrors = classify(desc, pc, afterName)
	return pc, true
}
