package format

import (
	"fmt"
	"net/mail"
	"net/netip"
	"net/url"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// Built-in validators for the standard JSON Schema format names. All are
// stateless and registered in the package registry at init time.
var (
	Email    Validator = emailValidator{}
	DateTime Validator = dateTimeValidator{}
	UUID     Validator = uuidValidator{}
	Hostname Validator = hostnameValidator{}
	IPv4     Validator = ipv4Validator{}
	IPv6     Validator = ipv6Validator{}
	URI      Validator = uriValidator{}
)

func init() {
	for _, v := range []Validator{Email, DateTime, UUID, Hostname, IPv4, IPv6, URI} {
		Register(v)
	}
}

type emailValidator struct{}

func (emailValidator) FormatName() string { return "email" }

func (emailValidator) Validate(subject string) string {
	if _, err := mail.ParseAddress(subject); err != nil {
		return fmt.Sprintf("[%s] is not a valid email address", subject)
	}
	return ""
}

type dateTimeValidator struct{}

func (dateTimeValidator) FormatName() string { return "date-time" }

func (dateTimeValidator) Validate(subject string) string {
	// RFC3339Nano parses timestamps with and without fractional seconds.
	if _, err := time.Parse(time.RFC3339Nano, subject); err != nil {
		return fmt.Sprintf("[%s] is not a valid date-time", subject)
	}
	return ""
}

type uuidValidator struct{}

func (uuidValidator) FormatName() string { return "uuid" }

func (uuidValidator) Validate(subject string) string {
	if _, err := uuid.Parse(subject); err != nil {
		return fmt.Sprintf("[%s] is not a valid UUID", subject)
	}
	return ""
}

// hostnamePattern follows RFC 1034: dot-separated labels of letters, digits,
// and hyphens, neither starting nor ending with a hyphen.
var hostnamePattern = regexp.MustCompile(`^(?i)[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?(\.[a-z0-9]([a-z0-9-]{0,61}[a-z0-9])?)*$`)

type hostnameValidator struct{}

func (hostnameValidator) FormatName() string { return "hostname" }

func (hostnameValidator) Validate(subject string) string {
	if len(subject) > 253 || !hostnamePattern.MatchString(subject) {
		return fmt.Sprintf("[%s] is not a valid hostname", subject)
	}
	return ""
}

type ipv4Validator struct{}

func (ipv4Validator) FormatName() string { return "ipv4" }

func (ipv4Validator) Validate(subject string) string {
	addr, err := netip.ParseAddr(subject)
	if err != nil || !addr.Is4() {
		return fmt.Sprintf("[%s] is not a valid ipv4 address", subject)
	}
	return ""
}

type ipv6Validator struct{}

func (ipv6Validator) FormatName() string { return "ipv6" }

func (ipv6Validator) Validate(subject string) string {
	addr, err := netip.ParseAddr(subject)
	if err != nil || !addr.Is6() || addr.Is4In6() {
		return fmt.Sprintf("[%s] is not a valid ipv6 address", subject)
	}
	return ""
}

type uriValidator struct{}

func (uriValidator) FormatName() string { return "uri" }

func (uriValidator) Validate(subject string) string {
	u, err := url.Parse(subject)
	if err != nil || !u.IsAbs() {
		return fmt.Sprintf("[%s] is not a valid URI", subject)
	}
	return ""
}
