package validation_test

import (
	"testing"

	"recruitment-intake-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestMobileValidator(t *testing.T) {
	v := newValidator(t)
	type probe struct {
		Mobile string `validate:"mobile"`
	}

	tests := []struct {
		mobile string
		ok     bool
	}{
		{"09123456789", true},
		{"02112345678", true},
		{"", true}, // optional; require separately
		{"9123456789", false},
		{"091234567890", false},
		{"0912345678", false},
		{"0912345678a", false},
		{"+9891234567", false},
	}
	for _, tt := range tests {
		err := v.Struct(probe{Mobile: tt.mobile})
		if tt.ok {
			assert.NoError(t, err, "mobile %q", tt.mobile)
		} else {
			assert.Error(t, err, "mobile %q", tt.mobile)
		}
	}
}

func TestPostalCodeValidator(t *testing.T) {
	v := newValidator(t)
	type probe struct {
		PostalCode string `validate:"postal_code"`
	}

	tests := []struct {
		code string
		ok   bool
	}{
		{"1234567890", true},
		{"", true},
		{"123456789", false},
		{"12345678901", false},
		{"12345-6789", false},
	}
	for _, tt := range tests {
		err := v.Struct(probe{PostalCode: tt.code})
		if tt.ok {
			assert.NoError(t, err, "postal code %q", tt.code)
		} else {
			assert.Error(t, err, "postal code %q", tt.code)
		}
	}
}

func TestAdmissionScoreValidator(t *testing.T) {
	v := newValidator(t)
	type probe struct {
		Score float64 `validate:"admission_score"`
	}

	for _, score := range []float64{5.1, 5.2, 5.3, 5.4} {
		assert.NoError(t, v.Struct(probe{Score: score}), "score %v", score)
	}
	for _, score := range []float64{0, 5.0, 5.25, 5.5, 6.1, -5.1} {
		assert.Error(t, v.Struct(probe{Score: score}), "score %v", score)
	}
}
