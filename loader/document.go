package loader

import (
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/skematic/jsonschema"
)

// Document is a named, versioned schema definition as carried in
// configuration files or transmitted between services.
//
//	doc, err := loader.ParseDocumentYAML(data)
//	if err != nil {
//		return err
//	}
//	schema, err := doc.Compile()
type Document struct {
	// Name identifies the schema (e.g. "user-email").
	Name string `json:"name" yaml:"name"`

	// Version is the document version (e.g. "1.0").
	Version string `json:"version" yaml:"version"`

	// Description is a human-readable description of the schema.
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Schema is the schema document in canonical keyword form.
	Schema map[string]any `json:"schema" yaml:"schema"`
}

// ParseDocument decodes a JSON-encoded Document.
func ParseDocument(data []byte) (*Document, error) {
	var d Document
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, jsonschema.NewSyntaxError("loader.ParseDocument", err)
	}
	return &d, nil
}

// ParseDocumentYAML decodes a YAML-encoded Document.
func ParseDocumentYAML(data []byte) (*Document, error) {
	var d Document
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, jsonschema.NewSyntaxError("loader.ParseDocumentYAML", err)
	}
	return &d, nil
}

// Validate checks that the document envelope itself is well formed.
func (d *Document) Validate() error {
	if d.Name == "" {
		return jsonschema.NewConfigurationError("Document.Validate",
			errors.New("document name is required"))
	}
	if d.Version == "" {
		return jsonschema.NewConfigurationError("Document.Validate",
			errors.New("document version is required"))
	}
	if len(d.Schema) == 0 {
		return jsonschema.NewConfigurationError("Document.Validate",
			errors.New("document schema is required"))
	}
	return nil
}

// Compile validates the envelope and compiles the embedded schema document.
func (d *Document) Compile() (jsonschema.Schema, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return Compile(d.Schema)
}

// String returns a short description for logging.
func (d *Document) String() string {
	return fmt.Sprintf("Document{Name: %s, Version: %s}", d.Name, d.Version)
}
