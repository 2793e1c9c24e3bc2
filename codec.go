package red

// State codecs: decode YAML/JSON documents into State values for
// declarative initial-state seeding, and encode snapshots back out for
// inspection and golden tests. Everything here works on byte slices;
// the library itself never touches files or the network.

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StateFromYAML decodes a YAML mapping document into a State. Nested
// mappings come back as map[string]any, which every operation accepts
// interchangeably with State.
func StateFromYAML(data []byte) (State, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return State(raw), nil
}

// StateFromJSON decodes a JSON object into a State. Per encoding/json,
// all numbers decode as float64.
func StateFromJSON(data []byte) (State, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	return State(raw), nil
}

// StateToYAML encodes a state snapshot as YAML.
func StateToYAML(s State) ([]byte, error) {
	data, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// StateToJSON encodes a state snapshot as indented JSON.
func StateToJSON(s State) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("json marshal: %w", err)
	}
	return data, nil
}

// ExtendStateYAML is ExtendState with a YAML document as the partial
// state: the decoded mapping is shallow-merged into the Builder's
// initial state.
func (b *Builder) ExtendStateYAML(data []byte) (*Builder, error) {
	s, err := StateFromYAML(data)
	if err != nil {
		return nil, err
	}
	return b.ExtendState(Partial(s)), nil
}
