package formats

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/blockmodels/pkg/mesh"
)

// YAML is the YAML document codec.
type YAML struct{}

// Name returns "yaml".
func (YAML) Name() string { return "yaml" }

// Ext returns ".yaml".
func (YAML) Ext() string { return ".yaml" }

// Encode writes m as a YAML document with two-space indentation.
func (YAML) Encode(m *mesh.Model) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(newModelDoc(m)); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses a YAML document and validates the result.
func (YAML) Decode(data []byte) (*mesh.Model, error) {
	var doc modelDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	return validated(doc.model())
}

// TOML is the TOML document codec.
type TOML struct{}

// Name returns "toml".
func (TOML) Name() string { return "toml" }

// Ext returns ".toml".
func (TOML) Ext() string { return ".toml" }

// Encode writes m as a TOML document.
func (TOML) Encode(m *mesh.Model) ([]byte, error) {
	data, err := toml.Marshal(newModelDoc(m))
	if err != nil {
		return nil, fmt.Errorf("encoding toml: %w", err)
	}
	return data, nil
}

// Decode parses a TOML document and validates the result. Unknown keys
// are rejected.
func (TOML) Decode(data []byte) (*mesh.Model, error) {
	var doc modelDoc
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("parsing toml: %w", err)
	}
	return validated(doc.model())
}
