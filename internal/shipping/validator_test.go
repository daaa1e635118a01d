package shipping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateDimensions_AcceptsInRangeTriples(t *testing.T) {
	for _, dims := range []Dimensions{
		{Length: 0.1, Width: 0.1, Height: 0.1},
		{Length: 25, Width: 20, Height: 2},
		{Length: 200, Width: 200, Height: 200}, // upper bound is inclusive
	} {
		res := ValidateDimensions(dims)
		assert.True(t, res.IsValid, "expected %+v to be valid, errors: %v", dims, res.Errors)
		assert.Empty(t, res.Errors)
	}
}

func TestValidateDimensions_RejectsNonPositive(t *testing.T) {
	res := ValidateDimensions(Dimensions{Length: 0, Width: 20, Height: 2})
	require.False(t, res.IsValid)
	assert.Contains(t, res.Errors, ErrDimensionPositive)

	res = ValidateDimensions(Dimensions{Length: 25, Width: -3, Height: 2})
	require.False(t, res.IsValid)
	assert.Contains(t, res.Errors, ErrDimensionPositive)
}

func TestValidateDimensions_RejectsOver200(t *testing.T) {
	res := ValidateDimensions(Dimensions{Length: 200.1, Width: 20, Height: 2})
	require.False(t, res.IsValid)
	assert.Contains(t, res.Errors, ErrDimensionTooLarge)
}

func TestValidateDimensions_ErrorsAccumulate(t *testing.T) {
	res := ValidateDimensions(Dimensions{Length: -5, Width: 250, Height: 10})
	require.False(t, res.IsValid)
	assert.Equal(t, []string{ErrDimensionPositive, ErrDimensionTooLarge}, res.Errors)
}

func TestValidateRequest_AcceptsNumericBody(t *testing.T) {
	dims, res := ValidateRequest([]byte(`{"length":25,"width":20,"height":2}`))
	require.True(t, res.IsValid, "errors: %v", res.Errors)
	assert.Equal(t, Dimensions{Length: 25, Width: 20, Height: 2}, dims)
}

func TestValidateRequest_TypeCheckRunsBeforeRangeCheck(t *testing.T) {
	// The value is out of range AND the wrong type; only the type error may
	// surface.
	_, res := ValidateRequest([]byte(`{"length":"250","width":20,"height":2}`))
	require.False(t, res.IsValid)
	assert.Equal(t, []string{ErrDimensionsNumeric}, res.Errors)
}

func TestValidateRequest_RejectsNonNumericValues(t *testing.T) {
	for _, body := range []string{
		`{"length":"25","width":20,"height":2}`,
		`{"length":true,"width":20,"height":2}`,
		`{"length":25,"width":20}`,
		`{"length":null,"width":20,"height":2}`,
		`{}`,
	} {
		_, res := ValidateRequest([]byte(body))
		require.False(t, res.IsValid, "body %s", body)
		assert.Equal(t, []string{ErrDimensionsNumeric}, res.Errors, "body %s", body)
	}
}

func TestValidateRequest_RejectsEmptyAndMalformedBodies(t *testing.T) {
	_, res := ValidateRequest(nil)
	require.False(t, res.IsValid)
	assert.Equal(t, []string{ErrBodyRequired}, res.Errors)

	_, res = ValidateRequest([]byte(`{not json`))
	require.False(t, res.IsValid)
	assert.Equal(t, []string{ErrBodyInvalidJSON}, res.Errors)
}

func TestValidateRequest_RangeErrorsStillAccumulate(t *testing.T) {
	_, res := ValidateRequest([]byte(`{"length":-5,"width":250,"height":10}`))
	require.False(t, res.IsValid)
	assert.Equal(t, []string{ErrDimensionPositive, ErrDimensionTooLarge}, res.Errors)
}
