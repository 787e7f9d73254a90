package loader

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/skematic/jsonschema"
	"github.com/skematic/jsonschema/format"
)

// Load compiles a JSON-encoded schema document into a schema node.
func Load(data []byte) (jsonschema.Schema, error) {
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, jsonschema.NewSyntaxError("loader.Load", err)
	}
	return Compile(doc)
}

// LoadYAML compiles a YAML-encoded schema document into a schema node.
func LoadYAML(data []byte) (jsonschema.Schema, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, jsonschema.NewSyntaxError("loader.LoadYAML", err)
	}
	return Compile(doc)
}

// Compile builds a schema node from a decoded document, dispatching on the
// "type" keyword. Unknown types and unknown format names are configuration
// errors; an invalid pattern surfaces as the builder's syntax error.
func Compile(doc map[string]any) (jsonschema.Schema, error) {
	typ, _ := doc["type"].(string)
	switch typ {
	case "string":
		return compileString(doc)
	case "number":
		return compileNumber(doc, false)
	case "integer":
		return compileNumber(doc, true)
	case "boolean":
		return compileBoolean(doc)
	default:
		return nil, jsonschema.NewConfigurationError("loader.Compile",
			fmt.Errorf("%w: %q", jsonschema.ErrUnknownType, typ))
	}
}

func compileString(doc map[string]any) (jsonschema.Schema, error) {
	b := jsonschema.NewStringSchema()

	if title, ok := doc["title"].(string); ok {
		b.Title(title)
	}
	if desc, ok := doc["description"].(string); ok {
		b.Description(desc)
	}
	if id, ok := doc["$id"].(string); ok {
		b.ID(id)
	}
	if def, ok := doc["default"]; ok {
		b.Default(def)
	}

	n, ok, err := intKeyword(doc, "minLength")
	if err != nil {
		return nil, err
	}
	if ok {
		b.MinLength(n)
	}

	n, ok, err = intKeyword(doc, "maxLength")
	if err != nil {
		return nil, err
	}
	if ok {
		b.MaxLength(n)
	}

	if pattern, ok := doc["pattern"].(string); ok {
		b.Pattern(pattern)
	}

	if name, ok := doc["format"].(string); ok {
		v, found := format.Lookup(name)
		if !found {
			return nil, jsonschema.NewConfigurationError("loader.Compile",
				fmt.Errorf("%w: %q", jsonschema.ErrUnknownFormat, name))
		}
		b.Format(v)
	}

	return b.Build()
}

func compileNumber(doc map[string]any, integer bool) (jsonschema.Schema, error) {
	b := jsonschema.NewNumberSchema().RequiresInteger(integer)

	if title, ok := doc["title"].(string); ok {
		b.Title(title)
	}
	if desc, ok := doc["description"].(string); ok {
		b.Description(desc)
	}
	if id, ok := doc["$id"].(string); ok {
		b.ID(id)
	}
	if def, ok := doc["default"]; ok {
		b.Default(def)
	}

	f, ok, err := floatKeyword(doc, "minimum")
	if err != nil {
		return nil, err
	}
	if ok {
		b.Minimum(f)
	}

	f, ok, err = floatKeyword(doc, "maximum")
	if err != nil {
		return nil, err
	}
	if ok {
		b.Maximum(f)
	}

	if exclusive, ok := doc["exclusiveMinimum"].(bool); ok {
		b.ExclusiveMinimum(exclusive)
	}
	if exclusive, ok := doc["exclusiveMaximum"].(bool); ok {
		b.ExclusiveMaximum(exclusive)
	}

	f, ok, err = floatKeyword(doc, "multipleOf")
	if err != nil {
		return nil, err
	}
	if ok {
		b.MultipleOf(f)
	}

	return b.Build()
}

func compileBoolean(doc map[string]any) (jsonschema.Schema, error) {
	b := jsonschema.NewBooleanSchema()

	if title, ok := doc["title"].(string); ok {
		b.Title(title)
	}
	if desc, ok := doc["description"].(string); ok {
		b.Description(desc)
	}
	if id, ok := doc["$id"].(string); ok {
		b.ID(id)
	}
	if def, ok := doc["default"]; ok {
		b.Default(def)
	}

	return b.Build()
}

// intKeyword reads an integer keyword. JSON decoding yields float64, YAML
// decoding yields int, so both are accepted; a fractional value is an error.
func intKeyword(doc map[string]any, key string) (int, bool, error) {
	raw, ok := doc[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case uint64:
		return int(v), true, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, false, jsonschema.NewConfigurationError("loader.Compile",
				fmt.Errorf("keyword %q must be an integer, got %v", key, v))
		}
		return int(v), true, nil
	default:
		return 0, false, jsonschema.NewConfigurationError("loader.Compile",
			fmt.Errorf("keyword %q must be an integer, got %T", key, raw))
	}
}

// floatKeyword reads a numeric keyword, accepting any decoded numeric kind.
func floatKeyword(doc map[string]any, key string) (float64, bool, error) {
	raw, ok := doc[key]
	if !ok {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case uint64:
		return float64(v), true, nil
	case float64:
		return v, true, nil
	default:
		return 0, false, jsonschema.NewConfigurationError("loader.Compile",
			fmt.Errorf("keyword %q must be a number, got %T", key, raw))
	}
}
