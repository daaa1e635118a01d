package shipping

import "encoding/json"

// MaxDimensionCm is the largest accepted value for any single side. The bound
// is inclusive: exactly 200cm is valid.
const MaxDimensionCm = 200

// Validation error strings. Kept as package-level constants so the HTTP
// boundary and tests refer to one source of truth.
const (
	ErrBodyRequired      = "request body is required"
	ErrBodyInvalidJSON   = "request body must be valid JSON"
	ErrDimensionsNumeric = "length, width and height must be numeric"
	ErrDimensionPositive = "each dimension must be greater than zero"
	ErrDimensionTooLarge = "each dimension must be 200cm or less"
)

// ValidationResult accumulates every failed check; it never short-circuits.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

// ValidateDimensions checks already-numeric dimensions against the domain
// bounds. Pure and deterministic; both rules are evaluated independently.
func ValidateDimensions(dims Dimensions) ValidationResult {
	var errs []string

	if dims.Length <= 0 || dims.Width <= 0 || dims.Height <= 0 {
		errs = append(errs, ErrDimensionPositive)
	}
	if dims.Length > MaxDimensionCm || dims.Width > MaxDimensionCm || dims.Height > MaxDimensionCm {
		errs = append(errs, ErrDimensionTooLarge)
	}

	return ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateRequest parses a raw request body and validates it. The numeric
// type check runs before any range check: a missing field or a non-number
// value yields ErrDimensionsNumeric and range validation is skipped.
func ValidateRequest(body []byte) (Dimensions, ValidationResult) {
	if len(body) == 0 {
		return Dimensions{}, ValidationResult{Errors: []string{ErrBodyRequired}}
	}

	var req struct {
		Length *float64 `json:"length"`
		Width  *float64 `json:"width"`
		Height *float64 `json:"height"`
	}
	if err := json.Unmarshal(body, &req); err != nil {
		// A type mismatch (string/bool where a number belongs) is a caller
		// mistake about the fields, not about the envelope.
		if _, ok := err.(*json.UnmarshalTypeError); ok {
			return Dimensions{}, ValidationResult{Errors: []string{ErrDimensionsNumeric}}
		}
		return Dimensions{}, ValidationResult{Errors: []string{ErrBodyInvalidJSON}}
	}
	if req.Length == nil || req.Width == nil || req.Height == nil {
		return Dimensions{}, ValidationResult{Errors: []string{ErrDimensionsNumeric}}
	}

	dims := Dimensions{Length: *req.Length, Width: *req.Width, Height: *req.Height}
	return dims, ValidateDimensions(dims)
}
