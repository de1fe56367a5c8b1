// Where: cli/internal/manifest/manifest.go
// What: Template manifest loading and schema validation.
// Why: Keep the list of shippable template trees declarative and verifiable.
package manifest

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"sigs.k8s.io/yaml"
)

// Template describes one shippable template tree.
type Template struct {
	ID             string `json:"id"`
	Label          string `json:"label"`
	Dir            string `json:"dir"`
	Target         string `json:"target"`
	NeedsServerEnv bool   `json:"needs_server_env,omitempty"`
}

// Manifest is the parsed templates.yml.
type Manifest struct {
	Templates []Template `json:"templates"`
}

const schemaName = "templates.schema.json"

// Load validates payload (YAML) against the JSON schema and parses it.
func Load(payload, schema []byte) (Manifest, error) {
	sch, err := compileSchema(schema)
	if err != nil {
		return Manifest{}, err
	}

	jsonData, err := yaml.YAMLToJSON(payload)
	if err != nil {
		return Manifest{}, fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return Manifest{}, fmt.Errorf("unmarshal json: %w", err)
	}
	if err := sch.Validate(document); err != nil {
		return Manifest{}, fmt.Errorf("invalid template manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(payload, &m); err != nil {
		return Manifest{}, err
	}
	return m, nil
}

// Backend returns the template for a backend framework identifier.
func (m Manifest) Backend(id string) (Template, bool) {
	for _, tpl := range m.Templates {
		if tpl.Target == "backend" && tpl.ID == id {
			return tpl, true
		}
	}
	return Template{}, false
}

// Frontend returns the single frontend template.
func (m Manifest) Frontend() (Template, bool) {
	for _, tpl := range m.Templates {
		if tpl.Target == "frontend" {
			return tpl, true
		}
	}
	return Template{}, false
}

// BackendIDs lists backend framework identifiers in manifest order.
func (m Manifest) BackendIDs() []string {
	var ids []string
	for _, tpl := range m.Templates {
		if tpl.Target == "backend" {
			ids = append(ids, tpl.ID)
		}
	}
	return ids
}

func compileSchema(schema []byte) (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(schemaName, strings.NewReader(string(schema))); err != nil {
		return nil, err
	}
	return compiler.Compile(schemaName)
}
