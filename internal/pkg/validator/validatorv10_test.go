package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(t *testing.T) *V10Validator {
	t.Helper()
	v, err := NewV10Validator()
	require.NoError(t, err)
	return v
}

func TestV10Validator_LooseEmail(t *testing.T) {
	v := newTestValidator(t)

	valid := []string{"ana@example.com", "a@b.c", "a..b@x..y.z", "weird+chars!@dom.tld"}
	for _, email := range valid {
		assert.NoError(t, v.Var(email, "looseemail"), email)
	}

	invalid := []string{"anaexample.com", "ana@example", "@example.com", "ana@@example.com", "ana@.", ""}
	for _, email := range invalid {
		err := v.Var(email, "looseemail")
		require.Error(t, err, email)

		var verr V10ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Values(), "looseemail")
	}
}

func TestV10Validator_MaxCountsRunes(t *testing.T) {
	v := newTestValidator(t)

	assert.NoError(t, v.Var(strings.Repeat("é", 80), "max=80"))
	assert.Error(t, v.Var(strings.Repeat("é", 81), "max=80"))
	assert.NoError(t, v.Var(strings.Repeat("a", 80), "max=80"))
}

func TestV10Validator_Struct(t *testing.T) {
	v := newTestValidator(t)

	type input struct {
		Name  string `validate:"required"`
		Email string `validate:"required"`
	}

	assert.NoError(t, v.Validate(input{Name: "Ana", Email: "ana@example.com"}))

	err := v.Validate(input{Name: "Ana"})
	var verr V10ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Email is a required field", verr.Values()["email"])
	assert.NotEmpty(t, err.Error())
}
