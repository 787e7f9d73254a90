package jsonschema

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that all sentinel errors are defined correctly.
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "ErrNilFormatValidator",
			err:  ErrNilFormatValidator,
			want: "format validator cannot be nil",
		},
		{
			name: "ErrUnknownType",
			err:  ErrUnknownType,
			want: "unknown schema type",
		},
		{
			name: "ErrUnknownFormat",
			err:  ErrUnknownFormat,
			want: "unknown format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err == nil {
				t.Fatalf("sentinel error %s is nil", tt.name)
			}
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("error message = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSchemaError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *SchemaError
		want []string
	}{
		{
			name: "with underlying error",
			err: &SchemaError{
				Op:   "StringSchemaBuilder.Build",
				Kind: KindSyntax,
				Err:  errors.New("missing closing ]"),
			},
			want: []string{"jsonschema:", "StringSchemaBuilder.Build", "syntax", "missing closing ]"},
		},
		{
			name: "without underlying error",
			err: &SchemaError{
				Op:   "loader.Compile",
				Kind: KindConfiguration,
			},
			want: []string{"jsonschema:", "loader.Compile", "configuration"},
		},
		{
			name: "with context",
			err: &SchemaError{
				Op:      "loader.Compile",
				Kind:    KindConfiguration,
				Err:     ErrUnknownFormat,
				Context: map[string]any{"format": "ulid"},
			},
			want: []string{"unknown format", "context", "ulid"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.want {
				if !strings.Contains(msg, want) {
					t.Errorf("Error() = %q, want it to contain %q", msg, want)
				}
			}
		})
	}
}

func TestSchemaError_Unwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := NewSyntaxError("op", underlying)

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should match the underlying error")
	}
	if errors.Unwrap(err) != underlying {
		t.Error("Unwrap should return the underlying error")
	}
}

func TestSchemaError_Is(t *testing.T) {
	err := NewSyntaxError("StringSchemaBuilder.Build", errors.New("bad pattern"))

	if !errors.Is(err, &SchemaError{Kind: KindSyntax}) {
		t.Error("should match on kind alone")
	}
	if !errors.Is(err, &SchemaError{Kind: KindSyntax, Op: "StringSchemaBuilder.Build"}) {
		t.Error("should match on kind and op")
	}
	if errors.Is(err, &SchemaError{Kind: KindNullArgument}) {
		t.Error("should not match a different kind")
	}
	if errors.Is(err, &SchemaError{Kind: KindSyntax, Op: "other.Op"}) {
		t.Error("should not match a different op")
	}
}

func TestSchemaError_WithContext(t *testing.T) {
	base := NewConfigurationError("loader.Compile", ErrUnknownFormat)
	withCtx := base.WithContext(map[string]any{"format": "ulid"})

	if base.Context != nil {
		t.Error("WithContext must not mutate the receiver")
	}
	if withCtx.Context["format"] != "ulid" {
		t.Error("context value missing")
	}
	if !errors.Is(withCtx, ErrUnknownFormat) {
		t.Error("wrapping must be preserved")
	}
}

func TestSchemaErrorConstructors(t *testing.T) {
	tests := []struct {
		name     string
		make     func(string, error) *SchemaError
		wantKind string
	}{
		{"syntax", NewSyntaxError, KindSyntax},
		{"null argument", NewNullArgumentError, KindNullArgument},
		{"configuration", NewConfigurationError, KindConfiguration},
		{"internal", NewInternalError, KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.make("some.Op", fmt.Errorf("cause"))
			if err.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", err.Kind, tt.wantKind)
			}
			if err.Op != "some.Op" {
				t.Errorf("Op = %q, want %q", err.Op, "some.Op")
			}
		})
	}
}
