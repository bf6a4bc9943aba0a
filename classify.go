package vex

import (
	"github.com/jsynacek/vex/args"
	"github.com/jsynacek/vex/cmdtable"
	"github.com/jsynacek/vex/errcode"
)

// classify checks a resolved command against its descriptor's ErrorOn set
// and returns the violations found, in a fixed order. Grounded on
// original_source/ex_command_parser.py's ExCommandParser.parse, which
// performs the same checks inline right after resolving the command.
func classify(desc *cmdtable.Descriptor, pc *ParsedCommand, afterName string) []errcode.Code {
	var errs []errcode.Code

	if desc.ErrorOn[errcode.NoBangAllowed] && pc.Forced {
		errs = append(errs, errcode.NoBangAllowed)
	}
	if desc.ErrorOn[errcode.TrailingChars] && args.HasTrailingChars(desc, afterName) {
		errs = append(errs, errcode.TrailingChars)
	}
	if desc.ErrorOn[errcode.NoRangeAllowed] && !pc.Range.Empty() {
		errs = append(errs, errcode.NoRangeAllowed)
	}
	if desc.ErrorOn[errcode.InvalidRange] && len(pc.Args) == 0 {
		errs = append(errs, errcode.InvalidRange)
	}
	if desc.ErrorOn[errcode.AddressRequired] && len(pc.Args) == 0 {
		errs = append(errs, errcode.AddressRequired)
	}

	return errs
}
