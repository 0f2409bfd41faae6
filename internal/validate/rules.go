package validate

import (
	"log"
	"regexp"

	"cuida/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var (
	// phoneRegexp matches international phone numbers: optional plus sign,
	// optional leading 1, then 9 to 15 digits.
	phoneRegexp = regexp.MustCompile(`^\+?1?\d{9,15}$`)

	// dniRegexp matches national identity document numbers: exactly 8 digits
	// followed by a single letter.
	dniRegexp = regexp.MustCompile(`^\d{8}[A-Za-z]$`)
)

// registerCustomRules registers the schema-specific validation tags. A
// registration failure is a startup defect, so it aborts the process.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("intl_phone", validatePhone)
	mustRegister("dni", validateIdentityNumber)
	mustRegister("care_category", validateCategory)
	mustRegister("gender", validateGender)
	mustRegister("order_status", validateOrderStatus)
}

// Empty values pass every custom rule; absence is handled by 'required'.

func validatePhone(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	return phoneRegexp.MatchString(value)
}

func validateIdentityNumber(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	return dniRegexp.MatchString(value)
}

func validateCategory(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	return entity.Category(value).IsValid()
}

func validateGender(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	return entity.Gender(value).IsValid()
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}

	return entity.OrderStatus(value).IsValid()
}
