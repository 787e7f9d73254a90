// Package loader compiles JSON Schema documents into immutable schema nodes.
//
// A document is the canonical keyword form emitted by DescribeTo: a map with
// a "type" key selecting the node variant and constraint keywords alongside.
// The loader dispatches on "type", drives the corresponding builder, and
// resolves "format" names through the format package registry. Compiling a
// document produced by DescribeTo yields a node equal to the original, so the
// two round-trip.
//
//	schema, err := loader.Load([]byte(`{
//		"type": "string",
//		"minLength": 3,
//		"format": "email"
//	}`))
//
// YAML documents are supported through LoadYAML, and Document wraps a named,
// versioned schema definition as carried in configuration files.
package loader
