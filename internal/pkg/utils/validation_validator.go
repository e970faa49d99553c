package utils

import (
	"clinix-service/internal/pkg/constvars"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("object_id", validateObjectID)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// validateUserRole accepts only the self-registrable roles.
func validateUserRole(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == constvars.RolePatient || value == constvars.RoleDoctor
}

func validateObjectID(fl validator.FieldLevel) bool {
	return primitive.IsValidObjectID(fl.Field().String())
}
