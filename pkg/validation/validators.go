package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Mobile numbers are stored as 11-digit local numbers (e.g. 09123456789).
var mobileRegex = regexp.MustCompile(`^0[0-9]{10}$`)

// Postal codes are 10 digits.
var postalRegex = regexp.MustCompile(`^[0-9]{10}$`)

// Admission scores form a closed set; the DB cannot express it, so it is
// enforced at the schema boundary.
var allowedScores = map[float64]bool{5.1: true, 5.2: true, 5.3: true, 5.4: true}

// RegisterValidators registers custom validators to the validator instance.
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("mobile", Mobile)
	_ = v.RegisterValidation("postal_code", PostalCode)
	_ = v.RegisterValidation("admission_score", AdmissionScore)
}

// Mobile validates an 11-digit local mobile number.
func Mobile(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // optional, pair with required where needed
	}
	return mobileRegex.MatchString(val)
}

// PostalCode validates a 10-digit postal code.
func PostalCode(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return postalRegex.MatchString(val)
}

// AdmissionScore validates that a float field is one of the allowed
// admission score values.
func AdmissionScore(fl validator.FieldLevel) bool {
	return allowedScores[fl.Field().Float()]
}
