package main

import "github.com/ersonp/thanepark/internal/infrastructure/config"

// DefaultPark is selected when --park is not given.
const DefaultPark = config.DefaultPark

// Default limits for CLI commands.
const (
	DefaultHistoryLimit = 20
)

// Valid list output formats; the export formats plus a terminal table.
var listFormats = []string{"table", "json", "csv", "markdown"}

// Shell texts.
const (
	shellPrompt  = "thanepark> "
	shellWelcome = "Welcome to Thane Park. Type 'help' for the list of commands."
)
