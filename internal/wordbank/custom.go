package wordbank

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// customFile is the on-disk shape of a custom vocabulary overlay.
type customFile struct {
	Names       []string `json:"names"`
	Places      []string `json:"places"`
	Professions []string `json:"professions"`
	Categories  []struct {
		Name      string   `json:"name"`
		Items     []string `json:"items"`
		Container string   `json:"container"`
	} `json:"categories"`
}

// customSchema validates custom vocabulary files before they are merged.
var customSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"names":       map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 1}},
		"places":      map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 1}},
		"professions": map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 1}},
		"categories": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name":      map[string]any{"type": "string", "minLength": 1},
					"items":     map[string]any{"type": "array", "items": map[string]any{"type": "string", "minLength": 1}, "minItems": 1},
					"container": map[string]any{"type": "string", "minLength": 1},
				},
				"required":             []any{"name", "items", "container"},
				"additionalProperties": false,
			},
		},
	},
	"additionalProperties": false,
}

// Load reads a custom vocabulary file, validates it against the overlay
// schema, and returns a copy of base with the custom pools appended.
// Unlike catalog lookups this is direct user input, so a malformed file is
// a hard error rather than a logged fallback.
func Load(path string, base *Bank) (*Bank, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read custom bank: %w", err)
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("custom bank %s: invalid JSON: %w", path, err)
	}

	compiled, err := compileCustomSchema()
	if err != nil {
		return nil, err
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("custom bank %s: %w", path, err)
	}

	var cf customFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("custom bank %s: %w", path, err)
	}

	merged := *base
	merged.Names = append(append([]string{}, base.Names...), cf.Names...)
	merged.Places = append(append([]string{}, base.Places...), cf.Places...)
	merged.Professions = append(append([]string{}, base.Professions...), cf.Professions...)
	merged.Categories = append([]ItemCategory{}, base.Categories...)
	for _, c := range cf.Categories {
		merged.Categories = append(merged.Categories, ItemCategory{
			Name: c.Name, Items: c.Items, Container: c.Container,
		})
	}
	return &merged, nil
}

func compileCustomSchema() (*jsonschema.Schema, error) {
	defBytes, err := json.Marshal(customSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal overlay schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse overlay schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	const url = "schema://wordbank-overlay.json"
	if err := c.AddResource(url, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile overlay schema: %w", err)
	}
	return compiled, nil
}
