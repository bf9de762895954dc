// Package validator wires the coordinate tags used by distress and
// presence request structs into go-playground validation.
package validator

import "github.com/go-playground/validator/v10"

var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("lat", inRange(-90, 90))
	v.RegisterValidation("lng", inRange(-180, 180))
	return v
}

// inRange builds an inclusive bounds check for float fields. Pointer
// fields reach the check already dereferenced, nil is caught by the
// required tag before this runs.
func inRange(min, max float64) validator.Func {
	return func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return v >= min && v <= max
	}
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
