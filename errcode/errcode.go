// Package errcode lists the parse-error codes a ParsedCommand can carry,
// numbered per Vim's own error-code convention where one exists.
package errcode

import "strconv"

// Code identifies a class of parse error.
type Code int

const (
	UnknownCommand  Code = 492 // no table entry resolved for the command name
	TrailingChars   Code = 488 // residual argument text the command doesn't accept
	NoBangAllowed   Code = 477 // ! given to a command that forbids it
	NoRangeAllowed  Code = 481 // a range given to a command that forbids one
	InvalidRange    Code = 16  // a range present but structurally wrong for the command
	InvalidAddress  Code = 14  // an address expected by the command but not found
	AddressRequired Code = 14  // alias of InvalidAddress; same Vim error number
	UnsavedChanges  Code = 37  // buffer modified but not saved (host-reported, not emitted by the parser)
)

var messages = map[Code]string{
	TrailingChars:  "Trailing characters.",
	UnknownCommand: "Not an editor command.",
	NoBangAllowed:  "No ! allowed.",
	InvalidRange:   "Invalid range.",
	InvalidAddress: "Invalid address.",
	NoRangeAllowed: "No range allowed.",
	UnsavedChanges: "There are unsaved changes.",
}

// Message returns the human-readable text for a code, or "" if unknown.
func (c Code) Message() string {
	return messages[c]
}

// String renders the code the way a host displays it: "E<code> <message>".
func (c Code) String() string {
	msg := c.Message()
	if msg == "" {
		return "E" + strconv.Itoa(int(c))
	}
	return "E" + strconv.Itoa(int(c)) + " " + msg
}
