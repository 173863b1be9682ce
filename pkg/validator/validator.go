package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// UseJSONNames makes gin's validator report fields by their json tag, so
// error maps use the same keys clients send.
func UseJSONNames() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
}

// ParseError flattens validator errors into a field → message map.
func ParseError(err error) map[string]string {
	errors := make(map[string]string)
	if ve, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range ve {
			errors[fe.Field()] = message(fe)
		}
	} else if err != nil {
		errors["error"] = err.Error()
	}
	return errors
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("The %s field must not exceed %s.", fe.Field(), fe.Param())
	case "len":
		return fmt.Sprintf("The %s field must have exactly %s entries.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of the following: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "unique":
		return fmt.Sprintf("The %s field must not repeat a value.", fe.Field())
	case "nefield":
		return fmt.Sprintf("The %s field must differ from %s.", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", fe.Field(), fe.Tag())
}
