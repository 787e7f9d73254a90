// Package format provides pluggable semantic string checks used by string
// schema nodes beyond length and pattern constraints.
//
// A Validator checks one named format (e.g. "email", "date-time") and reports
// either no failure or a descriptive failure message. The None sentinel
// represents the absence of a format constraint, so schema nodes never hold a
// nil validator.
//
// Built-in validators for the common JSON Schema format names register
// themselves in a process-wide registry, which the loader package consults
// when compiling schema documents. Custom validators, including CEL-expression
// validators built with CEL, can be registered the same way:
//
//	ulid, err := format.CEL("ulid", `value.matches("^[0-9A-HJKMNP-TV-Z]{26}$")`)
//	if err != nil {
//		return err
//	}
//	format.Register(ulid)
package format
