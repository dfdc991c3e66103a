package commands

import (
	"slices"
	"strings"
)

// History lists the inputs entered so far.
type History struct {
	More bool // render the full report of command entries
}

// Word returns "history".
func (History) Word() string { return WordHistory }

// Execute lists previous inputs, newest first.
func (c History) Execute(_ Model, history *CommandHistory) (Result, error) {
	if c.More {
		return Result{Feedback: "Opened history report.", ShowHistoryReport: true}, nil
	}
	inputs := history.Inputs()
	if len(inputs) == 0 {
		return Result{Feedback: "You have not yet entered any commands."}, nil
	}
	slices.Reverse(inputs)
	return Result{Feedback: "Entered commands (from most recent to earliest):\n" + strings.Join(inputs, "\n")}, nil
}

// Help shows usage instructions.
type Help struct {
	Topic string // optional command word
}

// Word returns "help".
func (Help) Word() string { return WordHelp }

// Execute returns the usage of one command, or the summary of all of them.
func (c Help) Execute(_ Model, _ *CommandHistory) (Result, error) {
	if u, ok := Usage(c.Topic); ok {
		return Result{Feedback: u}, nil
	}
	return Result{Feedback: Summary()}, nil
}

// Exit ends the interactive session.
type Exit struct{}

// Word returns "exit".
func (Exit) Word() string { return WordExit }

// Execute asks the caller to stop.
func (Exit) Execute(_ Model, _ *CommandHistory) (Result, error) {
	return Result{Feedback: "Exiting Thane Park as requested ...", Exit: true}, nil
}
