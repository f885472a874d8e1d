// Package dispatch classifies the command-line argument vector into a terminal
// action without touching the filesystem, so the invocation contract can be
// tested in isolation from the encoders.
package dispatch

import "strings"

// Kind identifies the terminal action selected for an invocation.
type Kind int

const (
	// ShowHelp prints the usage text to stdout and exits 0.
	ShowHelp Kind = iota
	// RunHex encodes the input file as a hex byte array.
	RunHex
	// RunString encodes the input file as a raw-string literal.
	RunString
	// Fail reports an argument diagnostic and exits 1.
	Fail
)

// Action is the classified form of an argument vector. For RunHex and
// RunString the path and name fields are populated; for Fail, Message holds
// the diagnostic (without the "ERROR:" prefix or help hint).
type Action struct {
	Kind       Kind
	InputPath  string
	OutputPath string
	ArrayName  string
	Message    string
}

// Diagnostic messages for argument errors. The CLI layer prefixes them and
// appends the help hint.
const (
	MsgNotEnoughArguments = "Not enough arguments"
	MsgTooManyArguments   = "Too many arguments"
	MsgUnrecognizedOption = "Unrecognized option"
)

// Classify maps the argument vector (program name excluded) to exactly one
// action. The rules are applied in priority order: missing arguments, the
// help tokens, the string-mode tokens, any other leading-slash option, and
// finally the default hex mode. Option tokens are matched exactly and
// case-sensitively.
//
// Parameters:
//   - args: The raw arguments as passed on the command line.
//
// Returns:
//   - Action: The selected terminal action.
func Classify(args []string) Action {
	if len(args) < 1 {
		return Action{Kind: Fail, Message: MsgNotEnoughArguments}
	}

	switch args[0] {
	case "/?", "/help":
		if len(args) > 1 {
			return Action{Kind: Fail, Message: MsgTooManyArguments}
		}
		return Action{Kind: ShowHelp}

	case "/s", "/string":
		if len(args) < 4 {
			return Action{Kind: Fail, Message: MsgNotEnoughArguments}
		}
		if len(args) > 4 {
			return Action{Kind: Fail, Message: MsgTooManyArguments}
		}
		return Action{
			Kind:       RunString,
			InputPath:  args[1],
			OutputPath: args[2],
			ArrayName:  args[3],
		}
	}

	if strings.HasPrefix(args[0], "/") {
		return Action{Kind: Fail, Message: MsgUnrecognizedOption}
	}

	if len(args) < 3 {
		return Action{Kind: Fail, Message: MsgNotEnoughArguments}
	}
	if len(args) > 3 {
		return Action{Kind: Fail, Message: MsgTooManyArguments}
	}
	return Action{
		Kind:       RunHex,
		InputPath:  args[0],
		OutputPath: args[1],
		ArrayName:  args[2],
	}
}
