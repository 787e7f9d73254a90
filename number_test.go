package jsonschema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberSchema_TypeMismatch(t *testing.T) {
	schema, err := NewNumberSchema().Minimum(0).Build()
	require.NoError(t, err)

	tests := []struct {
		name     string
		value    any
		wantKind string
	}{
		{name: "string", value: "42", wantKind: "string"},
		{name: "boolean", value: true, wantKind: "boolean"},
		{name: "null", value: nil, wantKind: "null"},
		{name: "array", value: []any{1}, wantKind: "array"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verr := mustValidationError(t, schema.Validate(tt.value))
			violations := verr.Flatten()
			require.Len(t, violations, 1)
			assert.Equal(t, "type", violations[0].Keyword)
			assert.Equal(t, "expected number, got "+tt.wantKind, violations[0].Message)
		})
	}
}

func TestNumberSchema_RequiresNumberFalse(t *testing.T) {
	schema, err := NewNumberSchema().Minimum(10).RequiresNumber(false).Build()
	require.NoError(t, err)

	assert.NoError(t, schema.Validate("not a number"))
	assert.Error(t, schema.Validate(5))
}

func TestNumberSchema_Bounds(t *testing.T) {
	tests := []struct {
		name         string
		build        func() (*NumberSchema, error)
		value        any
		wantKeywords []string
	}{
		{
			name:  "inclusive minimum ok",
			build: func() (*NumberSchema, error) { return NewNumberSchema().Minimum(5).Build() },
			value: 5,
		},
		{
			name:         "inclusive minimum violated",
			build:        func() (*NumberSchema, error) { return NewNumberSchema().Minimum(5).Build() },
			value:        4,
			wantKeywords: []string{"minimum"},
		},
		{
			name: "exclusive minimum violated at bound",
			build: func() (*NumberSchema, error) {
				return NewNumberSchema().Minimum(5).ExclusiveMinimum(true).Build()
			},
			value:        5,
			wantKeywords: []string{"exclusiveMinimum"},
		},
		{
			name:  "inclusive maximum ok",
			build: func() (*NumberSchema, error) { return NewNumberSchema().Maximum(5).Build() },
			value: 5,
		},
		{
			name:         "inclusive maximum violated",
			build:        func() (*NumberSchema, error) { return NewNumberSchema().Maximum(5).Build() },
			value:        5.5,
			wantKeywords: []string{"maximum"},
		},
		{
			name: "exclusive maximum violated at bound",
			build: func() (*NumberSchema, error) {
				return NewNumberSchema().Maximum(5).ExclusiveMaximum(true).Build()
			},
			value:        5,
			wantKeywords: []string{"exclusiveMaximum"},
		},
		{
			name:         "multipleOf violated",
			build:        func() (*NumberSchema, error) { return NewNumberSchema().MultipleOf(3).Build() },
			value:        10,
			wantKeywords: []string{"multipleOf"},
		},
		{
			name:  "multipleOf ok",
			build: func() (*NumberSchema, error) { return NewNumberSchema().MultipleOf(3).Build() },
			value: 9,
		},
		{
			name: "integer requirement violated",
			build: func() (*NumberSchema, error) {
				return NewNumberSchema().RequiresInteger(true).Build()
			},
			value:        3.5,
			wantKeywords: []string{"type"},
		},
		{
			name: "whole float satisfies integer requirement",
			build: func() (*NumberSchema, error) {
				return NewNumberSchema().RequiresInteger(true).Build()
			},
			value: 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := tt.build()
			require.NoError(t, err)

			err = schema.Validate(tt.value)
			if len(tt.wantKeywords) == 0 {
				assert.NoError(t, err)
				return
			}

			verr := mustValidationError(t, err)
			violations := verr.Flatten()
			require.Len(t, violations, len(tt.wantKeywords))
			for i, kw := range tt.wantKeywords {
				assert.Equal(t, kw, violations[i].Keyword)
			}
		})
	}
}

func TestNumberSchema_AccumulatesAllViolations(t *testing.T) {
	schema, err := NewNumberSchema().
		Minimum(10).
		MultipleOf(4).
		RequiresInteger(true).
		Build()
	require.NoError(t, err)

	verr := mustValidationError(t, schema.Validate(3.5))
	violations := verr.Flatten()
	require.Len(t, violations, 3)
	assert.Equal(t, "type", violations[0].Keyword)
	assert.Equal(t, "minimum", violations[1].Keyword)
	assert.Equal(t, "multipleOf", violations[2].Keyword)
}

func TestNumberSchema_AcceptsAllNumericKinds(t *testing.T) {
	schema, err := NewNumberSchema().Minimum(0).Maximum(100).Build()
	require.NoError(t, err)

	values := []any{
		int(42), int8(42), int16(42), int32(42), int64(42),
		uint(42), uint8(42), uint16(42), uint32(42), uint64(42),
		float32(42.5), float64(42.5),
	}
	for _, v := range values {
		assert.NoError(t, schema.Validate(v), "value %T(%v)", v, v)
	}
}

func TestNumberSchema_Equality(t *testing.T) {
	build := func() *NumberSchema {
		s, err := NewNumberSchema().
			Minimum(1).
			Maximum(9).
			ExclusiveMaximum(true).
			MultipleOf(2).
			Build()
		require.NoError(t, err)
		return s
	}

	a := build()
	b := build()
	assert.True(t, a.Equals(b))
	assert.Equal(t, a.Hash(), b.Hash())

	c, err := NewNumberSchema().Minimum(1).Maximum(9).MultipleOf(2).Build()
	require.NoError(t, err)
	assert.False(t, a.Equals(c), "exclusiveMaximum differs")

	boolean, err := NewBooleanSchema().Build()
	require.NoError(t, err)
	assert.False(t, a.Equals(boolean))
}

func TestNumberSchema_DescribeTo(t *testing.T) {
	t.Run("number keywords", func(t *testing.T) {
		schema, err := NewNumberSchema().
			Minimum(1).
			Maximum(10).
			ExclusiveMinimum(true).
			MultipleOf(0.5).
			Build()
		require.NoError(t, err)

		data, err := DescribeJSON(schema)
		require.NoError(t, err)
		assert.JSONEq(t,
			`{"type":"number","minimum":1,"maximum":10,"exclusiveMinimum":true,"multipleOf":0.5}`,
			string(data))
	})

	t.Run("integer type", func(t *testing.T) {
		schema, err := NewNumberSchema().RequiresInteger(true).Build()
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(schema.String()), &doc))
		assert.Equal(t, "integer", doc["type"])
	})

	t.Run("no type without requiresNumber", func(t *testing.T) {
		schema, err := NewNumberSchema().RequiresNumber(false).Minimum(1).Build()
		require.NoError(t, err)

		var doc map[string]any
		require.NoError(t, json.Unmarshal([]byte(schema.String()), &doc))
		assert.NotContains(t, doc, "type")
	})
}
