package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"github.com/alexiusacademia/gopurlin/internal/purlin"
)

// LoadDesign reads a YAML design file. Keys missing from the file keep
// the values of purlin.DefaultInput.
func LoadDesign(path string) (purlin.Input, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return purlin.Input{}, fmt.Errorf("read design file: %w", err)
	}

	in, err := ParseDesign(data)
	if err != nil {
		return purlin.Input{}, fmt.Errorf("%s: %w", path, err)
	}
	return in, nil
}

// ParseDesign decodes a YAML design document over the default input
func ParseDesign(data []byte) (purlin.Input, error) {
	in := purlin.DefaultInput()
	if err := yaml.UnmarshalStrict(data, &in); err != nil {
		return purlin.Input{}, fmt.Errorf("parse design: %w", err)
	}
	return in, nil
}

// WriteDesign saves an input as a YAML design file
func WriteDesign(path string, in purlin.Input) error {
	data, err := yaml.Marshal(in)
	if err != nil {
		return fmt.Errorf("encode design: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write design file: %w", err)
	}
	return nil
}
