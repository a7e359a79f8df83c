package utils

import (
	"reflect"
	"strconv"
	"strings"

	"clinic-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	validate.RegisterValidation("specialty", validateSpecialty)
	validate.RegisterValidation("office", validateOffice)
	validate.RegisterValidation("phone", validatePhone)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSpecialty(fl validator.FieldLevel) bool {
	return constvars.Specialties[fl.Field().String()]
}

// Offices are three-digit room codes, 100 to 999.
func validateOffice(fl validator.FieldLevel) bool {
	office := fl.Field().String()
	if len(office) != 3 {
		return false
	}
	room, err := strconv.Atoi(office)
	if err != nil {
		return false
	}
	return room >= 100 && room <= 999
}
