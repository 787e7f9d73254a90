package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNone(t *testing.T) {
	assert.Equal(t, "unformatted", None.FormatName())
	assert.Empty(t, None.Validate(""))
	assert.Empty(t, None.Validate("anything at all"))
}

func TestBuiltinValidators(t *testing.T) {
	tests := []struct {
		validator Validator
		wantName  string
		valid     []string
		invalid   []string
	}{
		{
			validator: Email,
			wantName:  "email",
			valid:     []string{"user@example.com", "First Last <first.last@example.com>"},
			invalid:   []string{"not-an-email", "@example.com", ""},
		},
		{
			validator: DateTime,
			wantName:  "date-time",
			valid:     []string{"2026-08-31T12:00:00Z", "2026-08-31T12:00:00.123+02:00"},
			invalid:   []string{"2026-08-31", "12:00:00", "yesterday"},
		},
		{
			validator: UUID,
			wantName:  "uuid",
			valid:     []string{"6ba7b810-9dad-11d1-80b4-00c04fd430c8"},
			invalid:   []string{"6ba7b810-9dad-11d1-80b4", "zz type uuid"},
		},
		{
			validator: Hostname,
			wantName:  "hostname",
			valid:     []string{"example.com", "a-b.c-d.example", "localhost"},
			invalid:   []string{"-leading.example", "trailing-.example", "exa mple.com", ""},
		},
		{
			validator: IPv4,
			wantName:  "ipv4",
			valid:     []string{"127.0.0.1", "192.168.1.254"},
			invalid:   []string{"256.0.0.1", "::1", "1.2.3"},
		},
		{
			validator: IPv6,
			wantName:  "ipv6",
			valid:     []string{"::1", "2001:db8::8a2e:370:7334"},
			invalid:   []string{"127.0.0.1", "2001:::1", "host"},
		},
		{
			validator: URI,
			wantName:  "uri",
			valid:     []string{"https://example.com/a?b=c", "urn:isbn:0451450523"},
			invalid:   []string{"//missing-scheme", "not a uri at all"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.wantName, func(t *testing.T) {
			assert.Equal(t, tt.wantName, tt.validator.FormatName())

			for _, subject := range tt.valid {
				assert.Empty(t, tt.validator.Validate(subject), "expected %q to be a valid %s", subject, tt.wantName)
			}
			for _, subject := range tt.invalid {
				msg := tt.validator.Validate(subject)
				assert.NotEmpty(t, msg, "expected %q to be an invalid %s", subject, tt.wantName)
			}
		})
	}
}

func TestBuiltinFailureMessagesNameTheSubject(t *testing.T) {
	msg := Email.Validate("bogus")
	assert.Equal(t, "[bogus] is not a valid email address", msg)

	msg = DateTime.Validate("bogus")
	assert.Equal(t, "[bogus] is not a valid date-time", msg)
}
