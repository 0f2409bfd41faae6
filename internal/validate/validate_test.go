package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type phoneSubject struct {
	Phone string `json:"phone" validate:"omitempty,intl_phone"`
}

type dniSubject struct {
	IdentityNumber string `json:"identity_number" validate:"omitempty,dni"`
}

type rateSubject struct {
	Rate int `json:"rate" validate:"gte=0,lte=5"`
}

type categorySubject struct {
	Category string `json:"category" validate:"omitempty,care_category"`
}

type genderSubject struct {
	Gender string `json:"gender" validate:"omitempty,gender"`
}

func TestValidator_IntlPhone(t *testing.T) {
	v := New()

	// "+1123456789012345" is the longest accepted form: plus sign, the
	// optional leading 1, then fifteen digits.
	valid := []string{"+34612345678", "+1123456789", "612345678", "123456789012345", "+1123456789012345", ""}
	for _, phone := range valid {
		assert.NoError(t, v.Struct(&phoneSubject{Phone: phone}), "phone %q should pass", phone)
	}

	invalid := []string{"abc", "+34 612 345 678", "12345678", "22345678901234567", "612345678x"}
	for _, phone := range invalid {
		err := v.Struct(&phoneSubject{Phone: phone})
		require.Error(t, err, "phone %q should fail", phone)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "phone")
	}
}

func TestValidator_DNI(t *testing.T) {
	v := New()

	valid := []string{"12345678Z", "00000000a", ""}
	for _, dni := range valid {
		assert.NoError(t, v.Struct(&dniSubject{IdentityNumber: dni}), "dni %q should pass", dni)
	}

	invalid := []string{"1234Z", "123456789", "12345678ZZ", "A2345678Z", "12345678-"}
	for _, dni := range invalid {
		err := v.Struct(&dniSubject{IdentityNumber: dni})
		require.Error(t, err, "dni %q should fail", dni)
	}
}

func TestValidator_RateBounds(t *testing.T) {
	v := New()

	for _, rate := range []int{0, 1, 5} {
		assert.NoError(t, v.Struct(&rateSubject{Rate: rate}), "rate %d should pass", rate)
	}

	for _, rate := range []int{-1, 6, 100} {
		err := v.Struct(&rateSubject{Rate: rate})
		require.Error(t, err, "rate %d should fail", rate)

		var validationErr *ValidationError
		require.ErrorAs(t, err, &validationErr)
		assert.Contains(t, validationErr.Fields, "rate")
	}
}

func TestValidator_CareCategory(t *testing.T) {
	v := New()

	valid := []string{
		"Cuidado parcial",
		"Cuidado completo",
		"Cuidado nocturno",
		"Cuidado hospitalario",
		"Recados",
		"Sin especificar",
		"",
	}
	for _, category := range valid {
		assert.NoError(t, v.Struct(&categorySubject{Category: category}), "category %q should pass", category)
	}

	invalid := []string{"Jardinería", "cuidado parcial", "Other"}
	for _, category := range invalid {
		err := v.Struct(&categorySubject{Category: category})
		require.Error(t, err, "category %q should fail", category)
	}
}

func TestValidator_Gender(t *testing.T) {
	v := New()

	for _, gender := range []string{"M", "H", "O", ""} {
		assert.NoError(t, v.Struct(&genderSubject{Gender: gender}), "gender %q should pass", gender)
	}

	for _, gender := range []string{"m", "X", "Mujer"} {
		err := v.Struct(&genderSubject{Gender: gender})
		require.Error(t, err, "gender %q should fail", gender)
	}
}

func TestValidationError_Message(t *testing.T) {
	v := New()

	err := v.Struct(&dniSubject{IdentityNumber: "nope"})
	require.Error(t, err)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Error(), "identity_number")
	assert.Equal(t, "VALIDATION_FAILED", validationErr.ErrorCode())
}
