package parser

import (
	"sort"
	"strings"
)

// Argument prefixes.
const (
	PrefixName        = "n/"
	PrefixMaintenance = "m/"
	PrefixWaitTime    = "w/"
	PrefixAddress     = "a/"
	PrefixTag         = "t/"
)

// argMap holds the values found after each prefix, in input order, plus the
// text before the first prefix.
type argMap struct {
	preamble string
	values   map[string][]string
}

// value returns the last value given for prefix.
func (a argMap) value(prefix string) (string, bool) {
	v := a.values[prefix]
	if len(v) == 0 {
		return "", false
	}
	return v[len(v)-1], true
}

func (a argMap) all(prefix string) []string {
	return a.values[prefix]
}

func (a argMap) has(prefix string) bool {
	return len(a.values[prefix]) > 0
}

type prefixPos struct {
	prefix string
	start  int
}

// tokenize splits args on the given prefixes. A prefix only counts at the
// start of args or right after whitespace.
func tokenize(args string, prefixes ...string) argMap {
	var found []prefixPos
	for _, p := range prefixes {
		for from := 0; from <= len(args)-len(p); {
			i := strings.Index(args[from:], p)
			if i < 0 {
				break
			}
			i += from
			if i == 0 || args[i-1] == ' ' || args[i-1] == '\t' {
				found = append(found, prefixPos{prefix: p, start: i})
			}
			from = i + 1
		}
	}
	sort.Slice(found, func(i, j int) bool { return found[i].start < found[j].start })

	out := argMap{values: make(map[string][]string)}
	end := len(args)
	if len(found) > 0 {
		end = found[0].start
	}
	out.preamble = strings.TrimSpace(args[:end])

	for i, f := range found {
		end := len(args)
		if i+1 < len(found) {
			end = found[i+1].start
		}
		v := strings.TrimSpace(args[f.start+len(f.prefix) : end])
		out.values[f.prefix] = append(out.values[f.prefix], v)
	}
	return out
}
