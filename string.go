package jsonschema

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
	"github.com/skematic/jsonschema/format"
)

// StringSchema validates that a value is a string meeting length, pattern,
// and format constraints.
//
// Length bounds count Unicode code points, not UTF-16 or byte units: a string
// holding one astral-plane character has length 1. The pattern is matched as
// an unanchored substring search; callers wanting full-string semantics must
// anchor the pattern themselves ("^...$").
type StringSchema struct {
	meta           Meta
	minLength      *int
	maxLength      *int
	pattern        *regexp.Regexp
	requiresString bool
	format         format.Validator
}

// StringSchemaBuilder accumulates configuration for one StringSchema. The
// builder is mutable and not safe for concurrent use; Build is the single
// transition to an immutable node and the single fail-fast point for
// configuration errors.
type StringSchemaBuilder struct {
	meta           Meta
	minLength      *int
	maxLength      *int
	pattern        string
	hasPattern     bool
	requiresString bool
	format         format.Validator
	err            error
}

// NewStringSchema returns a builder with defaults: requiresString true and no
// length, pattern, or format constraints.
func NewStringSchema() *StringSchemaBuilder {
	return &StringSchemaBuilder{
		requiresString: true,
		format:         format.None,
	}
}

// Title sets the schema title.
func (b *StringSchemaBuilder) Title(title string) *StringSchemaBuilder {
	b.meta.Title = title
	return b
}

// Description sets the schema description.
func (b *StringSchemaBuilder) Description(desc string) *StringSchemaBuilder {
	b.meta.Description = desc
	return b
}

// ID sets the schema identifier.
func (b *StringSchemaBuilder) ID(id string) *StringSchemaBuilder {
	b.meta.ID = id
	return b
}

// Default sets the default value carried by the schema.
func (b *StringSchemaBuilder) Default(value any) *StringSchemaBuilder {
	b.meta.Default = value
	return b
}

// MinLength sets the lower bound on code-point count.
func (b *StringSchemaBuilder) MinLength(n int) *StringSchemaBuilder {
	b.minLength = &n
	return b
}

// MaxLength sets the upper bound on code-point count.
func (b *StringSchemaBuilder) MaxLength(n int) *StringSchemaBuilder {
	b.maxLength = &n
	return b
}

// Pattern sets the pattern source text. Compilation happens once, in Build;
// invalid source surfaces there as a KindSyntax error.
func (b *StringSchemaBuilder) Pattern(source string) *StringSchemaBuilder {
	b.pattern = source
	b.hasPattern = true
	return b
}

// RequiresString controls whether non-string values are a type violation.
// With false, non-string values are out of this node's jurisdiction and
// validate successfully, which lets a parent type union delegate them to a
// sibling variant.
func (b *StringSchemaBuilder) RequiresString(required bool) *StringSchemaBuilder {
	b.requiresString = required
	return b
}

// Format sets the format validator. Absence of a format constraint must be
// expressed with format.None; a nil validator is rejected and surfaces from
// Build as a KindNullArgument error.
func (b *StringSchemaBuilder) Format(v format.Validator) *StringSchemaBuilder {
	if v == nil {
		if b.err == nil {
			b.err = NewNullArgumentError("StringSchemaBuilder.Format", ErrNilFormatValidator)
		}
		return b
	}
	b.format = v
	return b
}

// Build compiles the configuration into an immutable StringSchema.
//
// The pattern, if set, is compiled here exactly once; a malformed source
// returns a KindSyntax error so an invalid node can never exist. The returned
// node is safe for concurrent use.
func (b *StringSchemaBuilder) Build() (*StringSchema, error) {
	if b.err != nil {
		return nil, b.err
	}

	s := &StringSchema{
		meta:           b.meta,
		minLength:      b.minLength,
		maxLength:      b.maxLength,
		requiresString: b.requiresString,
		format:         b.format,
	}

	if b.hasPattern {
		re, err := regexp.Compile(b.pattern)
		if err != nil {
			return nil, NewSyntaxError("StringSchemaBuilder.Build", err)
		}
		s.pattern = re
	}

	return s, nil
}

// Meta returns the schema metadata.
func (s *StringSchema) Meta() Meta {
	return s.meta
}

// MinLength returns the lower code-point bound, if one is set.
func (s *StringSchema) MinLength() (int, bool) {
	if s.minLength == nil {
		return 0, false
	}
	return *s.minLength, true
}

// MaxLength returns the upper code-point bound, if one is set.
func (s *StringSchema) MaxLength() (int, bool) {
	if s.maxLength == nil {
		return 0, false
	}
	return *s.maxLength, true
}

// Pattern returns the pattern source text, if a pattern is set.
func (s *StringSchema) Pattern() (string, bool) {
	if s.pattern == nil {
		return "", false
	}
	return s.pattern.String(), true
}

// RequiresString reports whether non-string values are a type violation.
func (s *StringSchema) RequiresString() bool {
	return s.requiresString
}

// Format returns the format validator, format.None when no format constraint
// is set.
func (s *StringSchema) Format() format.Validator {
	return s.format
}

// Validate checks value against every applicable constraint and accumulates
// all violations into a single *ValidationError.
//
// A non-string value short-circuits: with requiresString it is a single
// "type" violation and no further checks run, without it the node declines
// jurisdiction and returns nil.
func (s *StringSchema) Validate(value any) error {
	subject, ok := value.(string)
	if !ok {
		if !s.requiresString {
			return nil
		}
		v := newViolation(s, "type", fmt.Sprintf("expected string, got %s", jsonKind(value)))
		return aggregate(s, []*ValidationError{v})
	}

	var causes []*ValidationError
	causes = s.checkLength(subject, causes)
	causes = s.checkPattern(subject, causes)
	if msg := s.format.Validate(subject); msg != "" {
		causes = append(causes, newViolation(s, "format", msg))
	}
	return aggregate(s, causes)
}

func (s *StringSchema) checkLength(subject string, causes []*ValidationError) []*ValidationError {
	actual := utf8.RuneCountInString(subject)
	if s.minLength != nil && actual < *s.minLength {
		causes = append(causes, newViolation(s, "minLength",
			fmt.Sprintf("expected minLength: %d, actual: %d", *s.minLength, actual)))
	}
	if s.maxLength != nil && actual > *s.maxLength {
		causes = append(causes, newViolation(s, "maxLength",
			fmt.Sprintf("expected maxLength: %d, actual: %d", *s.maxLength, actual)))
	}
	return causes
}

func (s *StringSchema) checkPattern(subject string, causes []*ValidationError) []*ValidationError {
	if s.pattern != nil && s.pattern.FindStringIndex(subject) == nil {
		causes = append(causes, newViolation(s, "pattern",
			fmt.Sprintf("string [%s] does not match pattern %s", subject, s.pattern.String())))
	}
	return causes
}

// Equals reports whether other is a StringSchema with equal constraints,
// equal pattern source text (compiled-object identity is irrelevant), an
// equally-named format validator, and equal base metadata.
func (s *StringSchema) Equals(other Schema) bool {
	o, ok := other.(*StringSchema)
	if !ok {
		return false
	}
	return s.requiresString == o.requiresString &&
		intPtrEqual(s.minLength, o.minLength) &&
		intPtrEqual(s.maxLength, o.maxLength) &&
		patternSource(s.pattern) == patternSource(o.pattern) &&
		s.format.FormatName() == o.format.FormatName() &&
		s.meta.equals(o.meta)
}

// Hash returns a hash consistent with Equals.
func (s *StringSchema) Hash() uint64 {
	d := xxhash.New()
	hashString(d, "string") // variant tag
	s.meta.writeHash(d)
	hashBool(d, s.requiresString)
	hashIntPtr(d, s.minLength)
	hashIntPtr(d, s.maxLength)
	hashString(d, patternSource(s.pattern))
	hashString(d, s.format.FormatName())
	return d.Sum64()
}

// DescribeTo re-emits the canonical constraint keywords, each conditionally:
// "type" only when requiresString, length and pattern keywords only when
// present, "format" only when the validator is not format.None.
func (s *StringSchema) DescribeTo(p *Printer) {
	p.Object()
	s.meta.describeTo(p)
	if s.requiresString {
		p.Key("type").Value("string")
	}
	p.IfPresent("minLength", s.minLength)
	p.IfPresent("maxLength", s.maxLength)
	if s.pattern != nil {
		p.Key("pattern").Value(s.pattern.String())
	}
	if s.format != format.None {
		p.Key("format").Value(s.format.FormatName())
	}
	p.EndObject()
}

// MarshalJSON serializes the node to its canonical JSON document form.
func (s *StringSchema) MarshalJSON() ([]byte, error) {
	return DescribeJSON(s)
}

// String returns the canonical JSON document form.
func (s *StringSchema) String() string {
	return describeString(s)
}

func patternSource(re *regexp.Regexp) string {
	if re == nil {
		return ""
	}
	return re.String()
}
