package jsonschema

import (
	"fmt"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

// Schema is the contract shared by every constraint node variant.
//
// Implementations are immutable after construction and safe for concurrent
// use. The variant set is closed: StringSchema, NumberSchema, and
// BooleanSchema. Equality is variant-tagged, so a node of one variant never
// equals a node of another variant even when their fields coincide.
type Schema interface {
	// Validate checks value against every applicable constraint of this node.
	// It returns nil on success, or a *ValidationError carrying the complete
	// list of violations. It never stops at the first failure.
	Validate(value any) error

	// DescribeTo re-emits the node in canonical constraint-keyword form.
	// Absent constraints are omitted entirely, never written as null.
	DescribeTo(p *Printer)

	// Equals reports whether other is the same variant with equal constraint
	// fields and equal base metadata.
	Equals(other Schema) bool

	// Hash returns a hash consistent with Equals: equal nodes hash equal.
	Hash() uint64

	// Meta returns the cross-variant metadata carried by this node.
	Meta() Meta
}

// Meta carries the metadata fields common to every node variant. The
// validation engine treats them as opaque; they participate only in equality,
// hashing, and serialization.
type Meta struct {
	// Title is a short human-readable label for the schema.
	Title string

	// Description explains the purpose of the schema.
	Description string

	// ID is the schema identifier, emitted as "$id".
	ID string

	// Default is the default value suggested for instances, or nil.
	Default any
}

func (m Meta) equals(other Meta) bool {
	return m.Title == other.Title &&
		m.Description == other.Description &&
		m.ID == other.ID &&
		reflect.DeepEqual(m.Default, other.Default)
}

func (m Meta) writeHash(d *xxhash.Digest) {
	hashString(d, m.Title)
	hashString(d, m.Description)
	hashString(d, m.ID)
	if m.Default != nil {
		fmt.Fprintf(d, "%#v", m.Default)
	}
	d.Write([]byte{0})
}

func (m Meta) describeTo(p *Printer) {
	if m.Title != "" {
		p.Key("title").Value(m.Title)
	}
	if m.Description != "" {
		p.Key("description").Value(m.Description)
	}
	if m.ID != "" {
		p.Key("$id").Value(m.ID)
	}
	if m.Default != nil {
		p.Key("default").Value(m.Default)
	}
}

// hashString writes s followed by a separator byte, so that adjacent fields
// cannot collide by concatenation.
func hashString(d *xxhash.Digest, s string) {
	d.WriteString(s)
	d.Write([]byte{0})
}

func hashBool(d *xxhash.Digest, b bool) {
	if b {
		d.Write([]byte{1})
	} else {
		d.Write([]byte{0})
	}
}

func hashIntPtr(d *xxhash.Digest, n *int) {
	if n == nil {
		d.Write([]byte{0})
		return
	}
	fmt.Fprintf(d, "1%d", *n)
}

func hashFloatPtr(d *xxhash.Digest, f *float64) {
	if f == nil {
		d.Write([]byte{0})
		return
	}
	fmt.Fprintf(d, "1%g", *f)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func floatPtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// jsonKind names the JSON kind of a runtime value for type-mismatch messages.
func jsonKind(value any) string {
	if value == nil {
		return "null"
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Map, reflect.Struct:
		return "object"
	default:
		return fmt.Sprintf("%T", value)
	}
}

// DescribeJSON serializes a node to its canonical JSON document form.
func DescribeJSON(s Schema) ([]byte, error) {
	p := NewPrinter()
	s.DescribeTo(p)
	return p.Bytes()
}

func describeString(s Schema) string {
	data, err := DescribeJSON(s)
	if err != nil {
		return fmt.Sprintf("<invalid schema: %v>", err)
	}
	return string(data)
}
