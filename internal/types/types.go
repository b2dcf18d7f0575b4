// Package types holds all shared data structures (models) used across
// the application. Keeping them in one place prevents import cycles:
// handlers, the service layer, and every storage backend can import types
// without depending on each other.
package types

// Gender is the closed set of values accepted for Student.Gender.
type Gender string

const (
	GenderMale   Gender = "MALE"
	GenderFemale Gender = "FEMALE"
)

// Valid reports whether g is one of the known Gender values.
func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale:
		return true
	default:
		return false
	}
}

// Student represents a student record in our system.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  controls how the field appears when encoded to JSON.
//
//  2. validate:"..." holds the rules checked by the go-playground/validator
//     package when a Student arrives in a request body. ID carries no rule
//     because the store assigns it on save.
//
// Email must be unique across all students. That rule needs the store, so
// it lives in the service layer rather than in a tag.
type Student struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"   validate:"required"`
	Email  string `json:"email"  validate:"required,email"`
	Gender Gender `json:"gender" validate:"required,oneof=MALE FEMALE"`
}
