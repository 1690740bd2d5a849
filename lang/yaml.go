package lang

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML document from the given path.
func LoadFile(path string) (Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	obj, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return obj, nil
}

// Parse decodes a YAML mapping document into an Object. Nested mappings become
// Objects and non-string keys are stringified. An empty document yields an empty Object.
func Parse(data []byte) (Object, error) {
	var raw any

	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if raw == nil {
		return Object{}, nil
	}

	obj, ok := normalize(raw).(Object)
	if !ok {
		return nil, fmt.Errorf("failed to parse YAML: document is %T: %w", raw, ErrNotMapping)
	}

	return obj, nil
}

// ParseValue decodes a single YAML value, such as a scalar given on a command line.
func ParseValue(text string) (any, error) {
	var raw any

	if err := yaml.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML value %q: %w", text, err)
	}

	return normalize(raw), nil
}

// Marshal serializes a record to YAML. Delegates are flattened first.
func Marshal(r Record) ([]byte, error) {
	return MarshalValue(r)
}

// MarshalValue serializes any value to YAML, flattening records it contains.
func MarshalValue(v any) ([]byte, error) {
	return yaml.Marshal(flattenValue(v, ancestors{}))
}

// WriteFile writes a record to the given path as YAML.
func WriteFile(r Record, path string) error {
	data, err := Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	return nil
}

func normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		out := make(Object, len(x))
		for k, val := range x {
			out[k] = normalize(val)
		}

		return out
	case map[any]any:
		out := make(Object, len(x))
		for k, val := range x {
			out[fmt.Sprint(k)] = normalize(val)
		}

		return out
	case []any:
		for i, val := range x {
			x[i] = normalize(val)
		}

		return x
	default:
		return v
	}
}
