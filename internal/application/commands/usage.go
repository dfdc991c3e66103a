package commands

import (
	"fmt"
	"strings"
)

// Command words.
const (
	WordAdd      = "add"
	WordUpdate   = "update"
	WordDelete   = "delete"
	WordShutdown = "shutdown"
	WordOpen     = "open"
	WordFilter   = "filter"
	WordFind     = "find"
	WordView     = "view"
	WordViewAll  = "viewall"
	WordClear    = "clear"
	WordUndo     = "undo"
	WordRedo     = "redo"
	WordHistory  = "history"
	WordHelp     = "help"
	WordExit     = "exit"
	WordImport   = "import"
)

// Words lists every command in help order.
var Words = []string{
	WordAdd, WordUpdate, WordDelete, WordShutdown, WordOpen,
	WordFilter, WordFind, WordView, WordViewAll, WordClear,
	WordUndo, WordRedo, WordHistory, WordHelp, WordExit,
}

var usages = map[string]string{
	WordAdd: "add: Adds a ride to the park.\n" +
		"Parameters: n/NAME m/DAYS_SINCE_MAINTENANCE w/WAITING_TIME a/ZONE [t/TAG]...\n" +
		"Example: add n/Battlestar Galactica m/1 w/15 a/Sci-Fi City t/scary",
	WordUpdate: "update: Updates the ride at the given index of the displayed list. " +
		"Existing values are overwritten by the input values.\n" +
		"Parameters: INDEX (must be a positive integer) [n/NAME] [m/DAYS] [w/WAITING_TIME] [a/ZONE] [t/TAG]...\n" +
		"Example: update 1 m/0 w/20",
	WordDelete: "delete: Deletes the ride at the given index of the displayed list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: delete 1",
	WordShutdown: "shutdown: Shuts down the ride at the given index of the displayed list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: shutdown 1",
	WordOpen: "open: Opens the ride at the given index of the displayed list.\n" +
		"Parameters: INDEX (must be a positive integer)\n" +
		"Example: open 1",
	WordFilter: "filter: Finds the rides whose attributes match every predicate and displays them with index numbers.\n" +
		"Parameters: PREFIX OPERATOR VALUE... (prefixes m/ w/, operators < > = <= >=)\n" +
		"Example: filter m/< 1000 w/>= 5",
	WordFind: "find: Finds rides whose names contain any of the given keywords (case-insensitive).\n" +
		"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
		"Example: find galactica mountain",
	WordView: "view: Selects the ride identified by its name or by its index in the displayed list.\n" +
		"Parameters: NAME|INDEX\n" +
		"Example: view Battlestar Galactica",
	WordViewAll: "viewall: Shows every ride in the park.\nExample: viewall",
	WordClear:   "clear: Removes every ride from the park.\nExample: clear",
	WordUndo:    "undo: Restores the park to the state before the previous undoable command.\nExample: undo",
	WordRedo:    "redo: Reverses the most recent undo.\nExample: redo",
	WordHistory: "history: Shows history of executed commands.\n" +
		"Parameters: [more]\n" +
		"Example: history more",
	WordHelp: "help: Shows program usage instructions.\n" +
		"Parameters: [COMMAND_WORD]\n" +
		"Example: help add",
	WordExit: "exit: Exits the program.\nExample: exit",
}

// Usage returns the usage text of a command word.
func Usage(word string) (string, bool) {
	u, ok := usages[word]
	return u, ok
}

// Summary returns a short overview of every command.
func Summary() string {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, w := range Words {
		first, _, _ := strings.Cut(usages[w], "\n")
		fmt.Fprintf(&b, "  %s\n", first)
	}
	b.WriteString("Type 'help COMMAND' for details.")
	return b.String()
}
