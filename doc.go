// Package jsonschema implements a JSON Schema validation engine for pre-parsed
// JSON values.
//
// A schema is a tree of immutable constraint nodes. Each node variant validates
// one shape of value (string, number, boolean) and shares a common contract:
// validation, serialization, equality, and hashing. Nodes are built once through
// a fluent builder and may then be shared across any number of goroutines;
// Validate is a pure function of (node, value).
//
// # Building Schemas
//
// Builders perform all expensive derivations (regular expression compilation)
// exactly once, at the builder-to-node transition. Configuration errors surface
// from Build, never from Validate:
//
//	schema, err := jsonschema.NewStringSchema().
//		MinLength(3).
//		MaxLength(64).
//		Pattern("^[a-z][a-z0-9-]*$").
//		Build()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// # Validation
//
// Validate never stops at the first failure. Every applicable constraint runs
// and every violation is collected into a single *ValidationError:
//
//	if err := schema.Validate("x"); err != nil {
//		var verr *jsonschema.ValidationError
//		if errors.As(err, &verr) {
//			for _, v := range verr.Flatten() {
//				fmt.Printf("%s: %s\n", v.Keyword, v.Message)
//			}
//		}
//	}
//
// # Serialization
//
// Every node serializes back into canonical JSON Schema keyword form through
// DescribeTo, MarshalJSON, or String. The loader package compiles such
// documents back into nodes, and the two round-trip.
//
// # Subpackages
//
//   - format: pluggable semantic string checks (email, date-time, uuid, ...)
//     including CEL-expression validators
//   - loader: compiles JSON or YAML schema documents into nodes
//   - instrument: OpenTelemetry span and metric instrumentation for validators
package jsonschema
