package parsers

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLParser parses rides from a YAML sequence, or from a document with a
// top-level "rides" key.
type YAMLParser struct{}

// Parse reads YAML from the reader and returns parsed rides.
func (p *YAMLParser) Parse(r io.Reader) ([]RawRide, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return []RawRide{}, nil
		}
		return nil, fmt.Errorf("parsing YAML: %w", err)
	}

	seq := &root
	if seq.Kind == yaml.DocumentNode && len(seq.Content) > 0 {
		seq = seq.Content[0]
	}
	if seq.Kind == yaml.MappingNode {
		seq = findKey(seq, "rides")
		if seq == nil {
			return nil, errors.New("parsing YAML: missing rides key")
		}
	}
	if seq.Kind != yaml.SequenceNode {
		return nil, errors.New("parsing YAML: expected a list of rides")
	}

	rides := make([]RawRide, 0, len(seq.Content))
	for _, item := range seq.Content {
		var ride RawRide
		if err := item.Decode(&ride); err != nil {
			return nil, fmt.Errorf("line %d: %w", item.Line, err)
		}
		ride.LineNum = item.Line
		rides = append(rides, ride)
	}
	return rides, nil
}

func findKey(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}
