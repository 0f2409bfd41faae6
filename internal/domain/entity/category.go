// Package entity contains the core business objects of the project.
package entity

// Category represents the kind of care a service offers.
// The values are the canonical ones shared with the stored data; they are not
// display labels, presentation-layer translation happens outside this module.
type Category string

const (
	// CategoryPartialCare indicates part-time in-home care.
	CategoryPartialCare Category = "Cuidado parcial"
	// CategoryFullCare indicates full-time care.
	CategoryFullCare Category = "Cuidado completo"
	// CategoryNightCare indicates overnight care.
	CategoryNightCare Category = "Cuidado nocturno"
	// CategoryHospitalCare indicates care during a hospital stay.
	CategoryHospitalCare Category = "Cuidado hospitalario"
	// CategoryErrands indicates errand-running services.
	CategoryErrands Category = "Recados"
	// CategoryUnspecified is the fallback when no category was chosen.
	CategoryUnspecified Category = "Sin especificar"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// IsValid checks if the Category is one of the closed set of permitted values.
func (c Category) IsValid() bool {
	switch c {
	case CategoryPartialCare, CategoryFullCare, CategoryNightCare,
		CategoryHospitalCare, CategoryErrands, CategoryUnspecified:
		return true
	default:
		return false
	}
}

// Categories returns every permitted category value.
func Categories() []Category {
	return []Category{
		CategoryPartialCare,
		CategoryFullCare,
		CategoryNightCare,
		CategoryHospitalCare,
		CategoryErrands,
		CategoryUnspecified,
	}
}
