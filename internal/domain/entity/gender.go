// Package entity contains the core business objects of the project.
package entity

// Gender represents the declared gender on a user profile.
type Gender string

const (
	// GenderFemale ("Mujer").
	GenderFemale Gender = "M"
	// GenderMale ("Hombre").
	GenderMale Gender = "H"
	// GenderOther ("Otro").
	GenderOther Gender = "O"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther:
		return true
	default:
		return false
	}
}
