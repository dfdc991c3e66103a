// Package parser turns shell input into commands.
package parser

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ersonp/thanepark/internal/application/commands"
	"github.com/ersonp/thanepark/internal/domain/entities"
)

// ErrUnknownCommand is returned for an unrecognised command word.
var ErrUnknownCommand = errors.New("unknown command")

// ErrInvalidFormat is returned when the arguments do not fit the command.
var ErrInvalidFormat = errors.New("invalid command format")

// Parse reads one line of input of the form "WORD ARGS".
func Parse(input string) (commands.Command, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, invalidFormat(commands.WordHelp, "empty input")
	}
	word, args, _ := strings.Cut(input, " ")
	args = strings.TrimSpace(args)

	switch word {
	case commands.WordAdd:
		return parseAdd(args)
	case commands.WordUpdate:
		return parseUpdate(args)
	case commands.WordDelete:
		i, err := parseIndex(word, args)
		if err != nil {
			return nil, err
		}
		return commands.Delete{Index: i}, nil
	case commands.WordShutdown:
		i, err := parseIndex(word, args)
		if err != nil {
			return nil, err
		}
		return commands.Shutdown{Index: i}, nil
	case commands.WordOpen:
		i, err := parseIndex(word, args)
		if err != nil {
			return nil, err
		}
		return commands.Open{Index: i}, nil
	case commands.WordFilter:
		return parseFilter(args)
	case commands.WordFind:
		keywords := strings.Fields(args)
		if len(keywords) == 0 {
			return nil, invalidFormat(word, "no keywords")
		}
		return commands.Find{Keywords: keywords}, nil
	case commands.WordView:
		return parseView(args)
	case commands.WordViewAll:
		return commands.ViewAll{}, nil
	case commands.WordClear:
		return commands.Clear{}, nil
	case commands.WordUndo:
		return commands.Undo{}, nil
	case commands.WordRedo:
		return commands.Redo{}, nil
	case commands.WordHistory:
		// Any argument, not just "more", asks for the full report.
		return commands.History{More: args != ""}, nil
	case commands.WordHelp:
		return commands.Help{Topic: args}, nil
	case commands.WordExit:
		return commands.Exit{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, word)
	}
}

// ParseIndex converts a one-based index argument into a zero-based index.
func ParseIndex(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: index must be a positive integer, got %q", ErrInvalidFormat, s)
	}
	return n - 1, nil
}

// ParseCondition parses filter predicates such as "m/<10 w/>=5".
func ParseCondition(args string) (entities.Condition, error) {
	am := tokenize(args, PrefixMaintenance, PrefixWaitTime)
	if am.preamble != "" {
		return nil, fmt.Errorf("%w: unexpected text %q", ErrInvalidFormat, am.preamble)
	}

	var cond entities.Condition
	for _, p := range []string{PrefixMaintenance, PrefixWaitTime} {
		attr, err := entities.ParseNumericAttribute(p)
		if err != nil {
			return nil, err
		}
		for _, expr := range am.all(p) {
			pred, err := entities.ParseAttributePredicate(attr, expr)
			if err != nil {
				return nil, err
			}
			cond = append(cond, pred)
		}
	}
	if len(cond) == 0 {
		return nil, fmt.Errorf("%w: no predicate given", ErrInvalidFormat)
	}
	return cond, nil
}

func parseIndex(word, args string) (int, error) {
	i, err := ParseIndex(args)
	if err != nil {
		return 0, withUsage(word, err)
	}
	return i, nil
}

func parseAdd(args string) (commands.Command, error) {
	am := tokenize(args, PrefixName, PrefixMaintenance, PrefixWaitTime, PrefixAddress, PrefixTag)
	for _, p := range []string{PrefixName, PrefixMaintenance, PrefixWaitTime, PrefixAddress} {
		if !am.has(p) {
			return nil, invalidFormat(commands.WordAdd, "missing "+p)
		}
	}
	if am.preamble != "" {
		return nil, invalidFormat(commands.WordAdd, fmt.Sprintf("unexpected text %q", am.preamble))
	}

	name, _ := am.value(PrefixName)
	address, _ := am.value(PrefixAddress)
	maintenance, err := parseNumber(am, PrefixMaintenance)
	if err != nil {
		return nil, err
	}
	wait, err := parseNumber(am, PrefixWaitTime)
	if err != nil {
		return nil, err
	}
	tags, err := parseTags(am.all(PrefixTag))
	if err != nil {
		return nil, err
	}

	ride, err := entities.NewRide(name, maintenance, wait, address, entities.StatusOpen, tags)
	if err != nil {
		return nil, err
	}
	return commands.Add{Ride: ride}, nil
}

func parseUpdate(args string) (commands.Command, error) {
	am := tokenize(args, PrefixName, PrefixMaintenance, PrefixWaitTime, PrefixAddress, PrefixTag)
	index, err := parseIndex(commands.WordUpdate, am.preamble)
	if err != nil {
		return nil, err
	}

	var d entities.UpdateDescriptor
	if v, ok := am.value(PrefixName); ok {
		d.Name = &v
	}
	if v, ok := am.value(PrefixAddress); ok {
		d.Address = &v
	}
	if am.has(PrefixMaintenance) {
		n, err := parseNumber(am, PrefixMaintenance)
		if err != nil {
			return nil, err
		}
		d.Maintenance = &n
	}
	if am.has(PrefixWaitTime) {
		n, err := parseNumber(am, PrefixWaitTime)
		if err != nil {
			return nil, err
		}
		d.WaitTime = &n
	}
	if am.has(PrefixTag) {
		tags, err := parseTags(am.all(PrefixTag))
		if err != nil {
			return nil, err
		}
		if tags == nil {
			tags = []string{}
		}
		d.Tags = &tags
	}
	return commands.Update{Index: index, Descriptor: d}, nil
}

func parseFilter(args string) (commands.Command, error) {
	cond, err := ParseCondition(args)
	if err != nil {
		if errors.Is(err, ErrInvalidFormat) {
			return nil, withUsage(commands.WordFilter, err)
		}
		return nil, err
	}
	return commands.Filter{Condition: cond}, nil
}

func parseView(args string) (commands.Command, error) {
	if args == "" {
		return nil, invalidFormat(commands.WordView, "missing ride name")
	}
	c := commands.View{Target: args}
	if i, err := ParseIndex(args); err == nil {
		c.Index = &i
	}
	return c, nil
}

func parseNumber(am argMap, prefix string) (int, error) {
	v, _ := am.value(prefix)
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %s expects a whole number, got %q", entities.ErrValidation, prefix, v)
	}
	return n, nil
}

// parseTags treats a lone empty "t/" as clearing all tags.
func parseTags(values []string) ([]string, error) {
	if len(values) == 1 && values[0] == "" {
		return nil, nil
	}
	for _, v := range values {
		if v == "" {
			return nil, fmt.Errorf("%w: tags should be alphanumeric", entities.ErrValidation)
		}
	}
	return entities.NormalizeTags(values), nil
}

func invalidFormat(word, detail string) error {
	return withUsage(word, fmt.Errorf("%w: %s", ErrInvalidFormat, detail))
}

func withUsage(word string, err error) error {
	usage, ok := commands.Usage(word)
	if !ok {
		return err
	}
	return fmt.Errorf("%w\n%s", err, usage)
}
