package validator

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// В ошибках используем имена полей из json тегов
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	validate.RegisterValidation("pet_type", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "cat", "other":
			return true
		}
		return false
	})

	validate.RegisterValidation("pet_gender", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case "male", "female", "unknown":
			return true
		}
		return false
	})

	validate.RegisterValidation("date", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) != len("2006-01-02") {
			return false
		}
		return s[4] == '-' && s[7] == '-'
	})
}

// Validate проверяет структуру и возвращает ошибки по полям (nil, если все в порядке)
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return map[string]string{"_": err.Error()}
	}

	fieldErrors := make(map[string]string)
	for _, fe := range validationErrors {
		field := fe.Field()
		switch fe.Tag() {
		case "required":
			fieldErrors[field] = "field is required"
		case "min":
			fieldErrors[field] = "value is too short (min: " + fe.Param() + ")"
		case "max":
			fieldErrors[field] = "value is too long (max: " + fe.Param() + ")"
		case "gt":
			fieldErrors[field] = "value must be greater than " + fe.Param()
		case "gte":
			fieldErrors[field] = "value must be at least " + fe.Param()
		case "lte":
			fieldErrors[field] = "value must be at most " + fe.Param()
		case "oneof":
			fieldErrors[field] = "value must be one of: " + fe.Param()
		case "url":
			fieldErrors[field] = "invalid URL format"
		case "pet_type":
			fieldErrors[field] = "invalid pet type, must be: cat or other"
		case "pet_gender":
			fieldErrors[field] = "invalid gender, must be: male, female or unknown"
		case "date":
			fieldErrors[field] = "invalid date, expected YYYY-MM-DD"
		default:
			fieldErrors[field] = "invalid value"
		}
	}

	return fieldErrors
}

// Summary склеивает ошибки по полям в одну строку в стабильном порядке
func Summary(fieldErrors map[string]string) string {
	keys := make([]string, 0, len(fieldErrors))
	for k := range fieldErrors {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fieldErrors[k])
	}
	return strings.Join(parts, "; ")
}

// ValidateVar проверяет одно значение
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
