package commands

import (
	"slices"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// CommandHistory holds the commands entered during one session.
type CommandHistory struct {
	inputs  []string
	entries []entities.CommandEntry
}

// NewCommandHistory returns an empty history.
func NewCommandHistory() *CommandHistory {
	return &CommandHistory{}
}

// Add records a raw input line.
func (h *CommandHistory) Add(input string) {
	h.inputs = append(h.inputs, input)
}

// Record appends the outcome of a command.
func (h *CommandHistory) Record(entry entities.CommandEntry) {
	h.entries = append(h.entries, entry)
}

// Inputs returns the raw inputs, earliest first.
func (h *CommandHistory) Inputs() []string {
	return slices.Clone(h.inputs)
}

// Entries returns the recorded outcomes, earliest first.
func (h *CommandHistory) Entries() []entities.CommandEntry {
	return slices.Clone(h.entries)
}
