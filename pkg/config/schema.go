package config

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var configSchemaJSON []byte

// Validate checks cfg against the embedded configuration JSON Schema.
// Structural constraints (types, required fields, allowed values) are
// schema-driven; Validate additionally requires bind_address to contain
// a ':' separating host and port.
func Validate(cfg Config) error {
	doc, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config for validation: %w", err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(configSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}

	if !result.Valid() {
		var problems []string
		for _, desc := range result.Errors() {
			problems = append(problems, desc.String())
		}
		return fmt.Errorf("configuration violates schema:\n%s", strings.Join(problems, "\n"))
	}

	if !strings.Contains(cfg.BindAddress, ":") {
		return fmt.Errorf("bind_address %q must be a host:port pair", cfg.BindAddress)
	}

	return nil
}
