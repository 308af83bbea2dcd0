package drt

import (
	"bytes"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load decodes a YAML rule table. Decoding starts from the built-in
// gf180mcu values, so a file only needs the fields it changes plus a new
// process name. Unknown fields are rejected.
//
// Example file:
//
//	process: gf180mcu-wide
//	description: gf180mcu with relaxed inverter spacing
//	device_spacing: 3.0
func Load(r io.Reader) (*Rules, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("drt: read rules: %w", err)
	}

	rules := gf180mcu()
	rules.Process = ""
	rules.Description = ""

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(rules); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidRules)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return rules, nil
}
