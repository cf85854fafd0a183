package utils

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/orris-inc/estatehub/internal/shared/errors"
	"github.com/orris-inc/estatehub/internal/shared/id"
)

var validate = newValidator()

func init() {
	// gin validates binding tags with its own engine before ValidateStruct runs
	if engine, ok := binding.Validator.Engine().(*validator.Validate); ok {
		registerValidations(engine)
	}
}

func newValidator() *validator.Validate {
	v := validator.New()
	// Request DTOs declare their rules in gin's binding tag
	v.SetTagName("binding")
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	registerValidations(v)
	return v
}

func registerValidations(v *validator.Validate) {
	// sid=lst accepts "lst_<base62>"
	if err := v.RegisterValidation("sid", func(fl validator.FieldLevel) bool {
		return id.ValidatePrefix(fl.Field().String(), fl.Param()) == nil
	}); err != nil {
		panic(err)
	}
}

// ValidateStruct returns a validation AppError whose details list every failed field.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errors.NewValidationError("Validation failed", err.Error())
	}

	messages := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		messages = append(messages, fieldMessage(fe))
	}
	return errors.NewValidationError("Validation failed", strings.Join(messages, "; "))
}

var fieldMessages = map[string]string{
	"required": "%s is required",
	"email":    "%s must be a valid email address",
	"gt":       "%s must be greater than %s",
	"gte":      "%s must be greater than or equal to %s",
	"lte":      "%s must be less than or equal to %s",
	"oneof":    "%s must be one of [%s]",
	"sid":      "%s must be an id with prefix %s_",
}

func fieldMessage(fe validator.FieldError) string {
	field, param := fe.Field(), fe.Param()

	switch tag := fe.Tag(); tag {
	case "min", "max":
		bound := "at least"
		if tag == "max" {
			bound = "at most"
		}
		wording := "%s must be " + bound + " %s"
		switch fe.Kind() {
		case reflect.String:
			wording += " characters long"
		case reflect.Map, reflect.Slice:
			wording += " entries"
		}
		return fmt.Sprintf(wording, field, param)
	default:
		format, ok := fieldMessages[tag]
		if !ok {
			return fmt.Sprintf("%s failed validation for '%s'", field, tag)
		}
		if strings.Count(format, "%s") == 1 {
			return fmt.Sprintf(format, field)
		}
		return fmt.Sprintf(format, field, param)
	}
}
