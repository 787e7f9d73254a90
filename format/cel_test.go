package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCEL_Matches(t *testing.T) {
	v, err := CEL("semver", `value.matches("^[0-9]+\\.[0-9]+\\.[0-9]+$")`)
	require.NoError(t, err)
	assert.Equal(t, "semver", v.FormatName())

	assert.Empty(t, v.Validate("1.2.3"))
	assert.Empty(t, v.Validate("10.20.30"))

	msg := v.Validate("1.2")
	assert.Equal(t, "[1.2] is not a valid semver", msg)
}

func TestCEL_StringFunctions(t *testing.T) {
	v, err := CEL("shouty", `value == value.upperAscii() && value.size() > 0`)
	require.NoError(t, err)

	assert.Empty(t, v.Validate("LOUD"))
	assert.NotEmpty(t, v.Validate("quiet"))
	assert.NotEmpty(t, v.Validate(""))
}

func TestCEL_CompileError(t *testing.T) {
	_, err := CEL("broken", `value.nonexistentFunction()`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestCEL_NonBooleanResult(t *testing.T) {
	v, err := CEL("identity", `value`)
	require.NoError(t, err)

	msg := v.Validate("x")
	assert.Contains(t, msg, "did not produce a boolean")
}

func TestCEL_RegisterAndLookup(t *testing.T) {
	v, err := CEL("test-cel-ulid", `value.matches("^[0-9A-HJKMNP-TV-Z]{26}$")`)
	require.NoError(t, err)
	Register(v)

	found, ok := Lookup("test-cel-ulid")
	require.True(t, ok)
	assert.Empty(t, found.Validate("01ARZ3NDEKTSV4RRFFQ69G5FAV"))
	assert.NotEmpty(t, found.Validate("not-a-ulid"))
}
