package jsonschema

import (
	"fmt"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// NumberSchema validates that a value is a number meeting bound and
// multiple-of constraints. It is a sibling variant of StringSchema and obeys
// the same contracts: collect-all validation, variant-tagged equality, and
// conditional keyword serialization.
type NumberSchema struct {
	meta             Meta
	minimum          *float64
	maximum          *float64
	exclusiveMinimum bool
	exclusiveMaximum bool
	multipleOf       *float64
	requiresNumber   bool
	requiresInteger  bool
}

// NumberSchemaBuilder accumulates configuration for one NumberSchema.
type NumberSchemaBuilder struct {
	meta             Meta
	minimum          *float64
	maximum          *float64
	exclusiveMinimum bool
	exclusiveMaximum bool
	multipleOf       *float64
	requiresNumber   bool
	requiresInteger  bool
}

// NewNumberSchema returns a builder with defaults: requiresNumber true and no
// bound constraints.
func NewNumberSchema() *NumberSchemaBuilder {
	return &NumberSchemaBuilder{requiresNumber: true}
}

// Title sets the schema title.
func (b *NumberSchemaBuilder) Title(title string) *NumberSchemaBuilder {
	b.meta.Title = title
	return b
}

// Description sets the schema description.
func (b *NumberSchemaBuilder) Description(desc string) *NumberSchemaBuilder {
	b.meta.Description = desc
	return b
}

// ID sets the schema identifier.
func (b *NumberSchemaBuilder) ID(id string) *NumberSchemaBuilder {
	b.meta.ID = id
	return b
}

// Default sets the default value carried by the schema.
func (b *NumberSchemaBuilder) Default(value any) *NumberSchemaBuilder {
	b.meta.Default = value
	return b
}

// Minimum sets the lower bound.
func (b *NumberSchemaBuilder) Minimum(n float64) *NumberSchemaBuilder {
	b.minimum = &n
	return b
}

// Maximum sets the upper bound.
func (b *NumberSchemaBuilder) Maximum(n float64) *NumberSchemaBuilder {
	b.maximum = &n
	return b
}

// ExclusiveMinimum makes the lower bound exclusive.
func (b *NumberSchemaBuilder) ExclusiveMinimum(exclusive bool) *NumberSchemaBuilder {
	b.exclusiveMinimum = exclusive
	return b
}

// ExclusiveMaximum makes the upper bound exclusive.
func (b *NumberSchemaBuilder) ExclusiveMaximum(exclusive bool) *NumberSchemaBuilder {
	b.exclusiveMaximum = exclusive
	return b
}

// MultipleOf requires the subject to be a multiple of n.
func (b *NumberSchemaBuilder) MultipleOf(n float64) *NumberSchemaBuilder {
	b.multipleOf = &n
	return b
}

// RequiresNumber controls whether non-numeric values are a type violation.
// With false, non-numeric values are out of this node's jurisdiction.
func (b *NumberSchemaBuilder) RequiresNumber(required bool) *NumberSchemaBuilder {
	b.requiresNumber = required
	return b
}

// RequiresInteger additionally requires the subject to be a whole number.
func (b *NumberSchemaBuilder) RequiresInteger(required bool) *NumberSchemaBuilder {
	b.requiresInteger = required
	return b
}

// Build produces the immutable NumberSchema.
func (b *NumberSchemaBuilder) Build() (*NumberSchema, error) {
	return &NumberSchema{
		meta:             b.meta,
		minimum:          b.minimum,
		maximum:          b.maximum,
		exclusiveMinimum: b.exclusiveMinimum,
		exclusiveMaximum: b.exclusiveMaximum,
		multipleOf:       b.multipleOf,
		requiresNumber:   b.requiresNumber,
		requiresInteger:  b.requiresInteger,
	}, nil
}

// Meta returns the schema metadata.
func (s *NumberSchema) Meta() Meta {
	return s.meta
}

// Minimum returns the lower bound, if one is set.
func (s *NumberSchema) Minimum() (float64, bool) {
	if s.minimum == nil {
		return 0, false
	}
	return *s.minimum, true
}

// Maximum returns the upper bound, if one is set.
func (s *NumberSchema) Maximum() (float64, bool) {
	if s.maximum == nil {
		return 0, false
	}
	return *s.maximum, true
}

// MultipleOf returns the multiple-of constraint, if one is set.
func (s *NumberSchema) MultipleOf() (float64, bool) {
	if s.multipleOf == nil {
		return 0, false
	}
	return *s.multipleOf, true
}

// RequiresNumber reports whether non-numeric values are a type violation.
func (s *NumberSchema) RequiresNumber() bool {
	return s.requiresNumber
}

// RequiresInteger reports whether the subject must be a whole number.
func (s *NumberSchema) RequiresInteger() bool {
	return s.requiresInteger
}

// Validate checks value against every applicable constraint and accumulates
// all violations into a single *ValidationError.
func (s *NumberSchema) Validate(value any) error {
	subject, ok := numericValue(value)
	if !ok {
		if !s.requiresNumber {
			return nil
		}
		v := newViolation(s, "type", fmt.Sprintf("expected number, got %s", jsonKind(value)))
		return aggregate(s, []*ValidationError{v})
	}

	var causes []*ValidationError
	if s.requiresInteger && subject != math.Trunc(subject) {
		causes = append(causes, newViolation(s, "type",
			fmt.Sprintf("expected integer, got %v", value)))
	}
	causes = s.checkBounds(subject, causes)
	if s.multipleOf != nil && math.Mod(subject, *s.multipleOf) != 0 {
		causes = append(causes, newViolation(s, "multipleOf",
			fmt.Sprintf("%v is not a multiple of %v", subject, *s.multipleOf)))
	}
	return aggregate(s, causes)
}

func (s *NumberSchema) checkBounds(subject float64, causes []*ValidationError) []*ValidationError {
	if s.minimum != nil {
		if s.exclusiveMinimum && subject <= *s.minimum {
			causes = append(causes, newViolation(s, "exclusiveMinimum",
				fmt.Sprintf("%v is not higher than %v", subject, *s.minimum)))
		} else if !s.exclusiveMinimum && subject < *s.minimum {
			causes = append(causes, newViolation(s, "minimum",
				fmt.Sprintf("%v is not higher or equal to %v", subject, *s.minimum)))
		}
	}
	if s.maximum != nil {
		if s.exclusiveMaximum && subject >= *s.maximum {
			causes = append(causes, newViolation(s, "exclusiveMaximum",
				fmt.Sprintf("%v is not lower than %v", subject, *s.maximum)))
		} else if !s.exclusiveMaximum && subject > *s.maximum {
			causes = append(causes, newViolation(s, "maximum",
				fmt.Sprintf("%v is not lower or equal to %v", subject, *s.maximum)))
		}
	}
	return causes
}

// Equals reports whether other is a NumberSchema with equal constraint fields
// and equal base metadata.
func (s *NumberSchema) Equals(other Schema) bool {
	o, ok := other.(*NumberSchema)
	if !ok {
		return false
	}
	return s.requiresNumber == o.requiresNumber &&
		s.requiresInteger == o.requiresInteger &&
		s.exclusiveMinimum == o.exclusiveMinimum &&
		s.exclusiveMaximum == o.exclusiveMaximum &&
		floatPtrEqual(s.minimum, o.minimum) &&
		floatPtrEqual(s.maximum, o.maximum) &&
		floatPtrEqual(s.multipleOf, o.multipleOf) &&
		s.meta.equals(o.meta)
}

// Hash returns a hash consistent with Equals.
func (s *NumberSchema) Hash() uint64 {
	d := xxhash.New()
	hashString(d, "number") // variant tag
	s.meta.writeHash(d)
	hashBool(d, s.requiresNumber)
	hashBool(d, s.requiresInteger)
	hashBool(d, s.exclusiveMinimum)
	hashBool(d, s.exclusiveMaximum)
	hashFloatPtr(d, s.minimum)
	hashFloatPtr(d, s.maximum)
	hashFloatPtr(d, s.multipleOf)
	return d.Sum64()
}

// DescribeTo re-emits the canonical constraint keywords conditionally.
func (s *NumberSchema) DescribeTo(p *Printer) {
	p.Object()
	s.meta.describeTo(p)
	if s.requiresInteger {
		p.Key("type").Value("integer")
	} else if s.requiresNumber {
		p.Key("type").Value("number")
	}
	p.IfPresent("minimum", s.minimum)
	p.IfPresent("maximum", s.maximum)
	if s.exclusiveMinimum {
		p.Key("exclusiveMinimum").Value(true)
	}
	if s.exclusiveMaximum {
		p.Key("exclusiveMaximum").Value(true)
	}
	p.IfPresent("multipleOf", s.multipleOf)
	p.EndObject()
}

// MarshalJSON serializes the node to its canonical JSON document form.
func (s *NumberSchema) MarshalJSON() ([]byte, error) {
	return DescribeJSON(s)
}

// String returns the canonical JSON document form.
func (s *NumberSchema) String() string {
	return describeString(s)
}

// numericValue extracts a float64 from any Go numeric kind. Booleans and
// strings are not numbers.
func numericValue(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	default:
		return 0, false
	}
}
