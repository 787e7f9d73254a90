package format

// Validator is a pluggable semantic check on a string subject.
//
// Implementations must be immutable after construction and safe for
// concurrent use: a validator attached to a schema node is called from every
// goroutine that validates against that node.
type Validator interface {
	// FormatName returns the stable name of this format, as it appears in the
	// "format" keyword of a schema document.
	FormatName() string

	// Validate checks subject and returns a human-readable failure
	// description, or the empty string when subject conforms.
	Validate(subject string) string
}

// noneValidator accepts every subject. It is the null object behind None.
type noneValidator struct{}

func (noneValidator) FormatName() string { return "unformatted" }

func (noneValidator) Validate(string) string { return "" }

// None is the sentinel representing the absence of a format constraint. It
// always reports no failure, so validation code never needs a nil check, and
// its stable identity lets serialization skip the "format" keyword entirely.
var None Validator = noneValidator{}
