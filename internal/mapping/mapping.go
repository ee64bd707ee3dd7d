package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ColumnMapping pairs a source column key, as it appears in a Real Intent
// CSV export, with the destination column label Pipedrive expects on import.
type ColumnMapping struct {
	Source string `json:"source" yaml:"source"`
	Label  string `json:"label" yaml:"label"`
}

// Mapping is an ordered list of column mappings. The order of the entries
// determines the column order of the converted output, so a Mapping is kept
// as a slice rather than a map.
type Mapping []ColumnMapping

// Default returns the built-in Real Intent to Pipedrive column mapping.
// Pipedrive allows multiple Email and Phone columns to be mapped to the same
// person field during import; Household income is not a default Pipedrive
// field and must be created as a custom field before importing.
func Default() Mapping {
	return Mapping{
		{Source: "first_name", Label: "First name"},
		{Source: "last_name", Label: "Last name"},
		{Source: "email_1", Label: "Email"},
		{Source: "email_2", Label: "Email 2"},
		{Source: "email_3", Label: "Email 3"},
		{Source: "phone_1", Label: "Phone"},
		{Source: "phone_2", Label: "Phone 2"},
		{Source: "address", Label: "Address"},
		{Source: "city", Label: "City"},
		{Source: "state", Label: "State"},
		{Source: "zip_code", Label: "Postal code"},
		{Source: "household_income", Label: "Household income"},
	}
}

// Validate checks that the mapping is usable for conversion: it must not be
// empty, every entry must carry both a source key and a destination label,
// and source keys must be unique.
func (m Mapping) Validate() error {
	if len(m) == 0 {
		return fmt.Errorf("mapping cannot be empty")
	}
	seen := make(map[string]struct{}, len(m))
	for i, cm := range m {
		if cm.Source == "" {
			return fmt.Errorf("mapping entry %d: source key cannot be empty", i+1)
		}
		if cm.Label == "" {
			return fmt.Errorf("mapping entry %d (%s): destination label cannot be empty", i+1, cm.Source)
		}
		if _, ok := seen[cm.Source]; ok {
			return fmt.Errorf("duplicate source key in mapping: %s", cm.Source)
		}
		seen[cm.Source] = struct{}{}
	}
	return nil
}

// Sources returns the source keys in mapping order.
func (m Mapping) Sources() []string {
	keys := make([]string, 0, len(m))
	for _, cm := range m {
		keys = append(keys, cm.Source)
	}
	return keys
}

// Labels returns the destination labels in mapping order.
func (m Mapping) Labels() []string {
	labels := make([]string, 0, len(m))
	for _, cm := range m {
		labels = append(labels, cm.Label)
	}
	return labels
}

// LoadFile reads a mapping override from a YAML file containing a list of
// {source, label} records. The file's entry order is preserved as the output
// column order. The loaded mapping is validated before being returned.
func LoadFile(path string) (Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}

	var m Mapping
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse mapping file: %w", err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mapping file %s: %w", path, err)
	}
	return m, nil
}
