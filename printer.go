package jsonschema

import (
	"bytes"
	"encoding/json"
	"reflect"
)

// Printer is a minimal JSON-emitting writer used by DescribeTo to serialize
// nodes back into canonical keyword form. It supports nested objects; inside
// an object, each Value call must follow a Key call.
//
// Encoding errors are sticky: the first error suppresses further output and
// is reported by Bytes or Err.
type Printer struct {
	buf bytes.Buffer
	// needsComma tracks, per open object, whether a separator is due before
	// the next key.
	needsComma []bool
	err        error
}

// NewPrinter returns an empty Printer.
func NewPrinter() *Printer {
	return &Printer{}
}

// Object opens a JSON object, either at the top level or as the value of the
// preceding Key.
func (p *Printer) Object() *Printer {
	if p.err != nil {
		return p
	}
	p.buf.WriteByte('{')
	p.needsComma = append(p.needsComma, false)
	return p
}

// EndObject closes the innermost open object.
func (p *Printer) EndObject() *Printer {
	if p.err != nil {
		return p
	}
	p.buf.WriteByte('}')
	if len(p.needsComma) > 0 {
		p.needsComma = p.needsComma[:len(p.needsComma)-1]
	}
	return p
}

// Key writes an object key. The next Value or Object call supplies its value.
func (p *Printer) Key(name string) *Printer {
	if p.err != nil {
		return p
	}
	top := len(p.needsComma) - 1
	if top >= 0 && p.needsComma[top] {
		p.buf.WriteByte(',')
	}
	if top >= 0 {
		p.needsComma[top] = true
	}
	p.writeJSON(name)
	p.buf.WriteByte(':')
	return p
}

// Value writes a JSON-encoded value. Pointers are dereferenced by the
// encoder, so optional fields can be passed as-is.
func (p *Printer) Value(v any) *Printer {
	if p.err != nil {
		return p
	}
	p.writeJSON(v)
	return p
}

// IfPresent writes key and value only when value is present: nil interfaces
// and nil typed pointers are skipped entirely, so absent constraints produce
// an omitted key rather than a null.
func (p *Printer) IfPresent(key string, value any) *Printer {
	if value == nil {
		return p
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return p
		}
	}
	return p.Key(key).Value(value)
}

// Bytes returns the emitted JSON, or the first encoding error encountered.
func (p *Printer) Bytes() ([]byte, error) {
	if p.err != nil {
		return nil, p.err
	}
	return p.buf.Bytes(), nil
}

// String returns the emitted JSON, or an empty string after an encoding
// error.
func (p *Printer) String() string {
	if p.err != nil {
		return ""
	}
	return p.buf.String()
}

// Err returns the first encoding error encountered, if any.
func (p *Printer) Err() error {
	return p.err
}

func (p *Printer) writeJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		p.err = NewInternalError("Printer.Value", err)
		return
	}
	p.buf.Write(data)
}
