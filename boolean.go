package jsonschema

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// BooleanSchema validates that a value is a boolean. It carries no constraint
// keywords of its own; it exists to complete type unions and to anchor the
// variant-tagged equality contract.
type BooleanSchema struct {
	meta Meta
}

// BooleanSchemaBuilder accumulates configuration for one BooleanSchema.
type BooleanSchemaBuilder struct {
	meta Meta
}

// NewBooleanSchema returns a builder with no configuration.
func NewBooleanSchema() *BooleanSchemaBuilder {
	return &BooleanSchemaBuilder{}
}

// Title sets the schema title.
func (b *BooleanSchemaBuilder) Title(title string) *BooleanSchemaBuilder {
	b.meta.Title = title
	return b
}

// Description sets the schema description.
func (b *BooleanSchemaBuilder) Description(desc string) *BooleanSchemaBuilder {
	b.meta.Description = desc
	return b
}

// ID sets the schema identifier.
func (b *BooleanSchemaBuilder) ID(id string) *BooleanSchemaBuilder {
	b.meta.ID = id
	return b
}

// Default sets the default value carried by the schema.
func (b *BooleanSchemaBuilder) Default(value any) *BooleanSchemaBuilder {
	b.meta.Default = value
	return b
}

// Build produces the immutable BooleanSchema.
func (b *BooleanSchemaBuilder) Build() (*BooleanSchema, error) {
	return &BooleanSchema{meta: b.meta}, nil
}

// Meta returns the schema metadata.
func (s *BooleanSchema) Meta() Meta {
	return s.meta
}

// Validate checks that value is a boolean.
func (s *BooleanSchema) Validate(value any) error {
	if _, ok := value.(bool); ok {
		return nil
	}
	v := newViolation(s, "type", fmt.Sprintf("expected boolean, got %s", jsonKind(value)))
	return aggregate(s, []*ValidationError{v})
}

// Equals reports whether other is a BooleanSchema with equal base metadata.
func (s *BooleanSchema) Equals(other Schema) bool {
	o, ok := other.(*BooleanSchema)
	if !ok {
		return false
	}
	return s.meta.equals(o.meta)
}

// Hash returns a hash consistent with Equals.
func (s *BooleanSchema) Hash() uint64 {
	d := xxhash.New()
	hashString(d, "boolean") // variant tag
	s.meta.writeHash(d)
	return d.Sum64()
}

// DescribeTo re-emits the canonical keyword form.
func (s *BooleanSchema) DescribeTo(p *Printer) {
	p.Object()
	s.meta.describeTo(p)
	p.Key("type").Value("boolean")
	p.EndObject()
}

// MarshalJSON serializes the node to its canonical JSON document form.
func (s *BooleanSchema) MarshalJSON() ([]byte, error) {
	return DescribeJSON(s)
}

// String returns the canonical JSON document form.
func (s *BooleanSchema) String() string {
	return describeString(s)
}
