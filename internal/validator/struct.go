// Package validator wraps go-playground/validator with friendly messages
// keyed by the submitted field name.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)
}

// fieldName prefers the form tag, then the json tag, then the Go name.
func fieldName(f reflect.StructField) string {
	for _, key := range []string{"form", "json"} {
		name := strings.Split(f.Tag.Get(key), ",")[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// errorMessages maps languages to validation tags to message formats.
var errorMessages = map[string]map[string]string{
	"en": {
		"required": "The field '%s' is required.",
		"min":      "The field '%s' must be at least %s characters long.",
		"max":      "The field '%s' must be no longer than %s characters.",
		"oneof":    "The field '%s' must be one of: %s.",
		"datetime": "The field '%s' must be a valid date in the format %s.",
	},
	"zh": {
		"required": "字段 '%s' 为必填项。",
		"min":      "字段 '%s' 的长度不能少于 %s 个字符。",
		"max":      "字段 '%s' 的长度不能超过 %s 个字符。",
		"oneof":    "字段 '%s' 的值必须是 %s 之一。",
		"datetime": "字段 '%s' 必须是格式为 %s 的有效日期。",
	},
}

// FieldError is a single failed rule.
type FieldError struct {
	Field   string
	Tag     string
	Param   string
	Message string
}

// parseMessage builds a friendly message for a failed rule.
func parseMessage(field string, e validator.FieldError, lang ...string) string {
	msgLang := "en"
	if len(lang) > 0 && lang[0] != "" {
		msgLang = lang[0]
	}
	if msgs, exists := errorMessages[msgLang]; exists {
		if msg, exists := msgs[e.Tag()]; exists {
			switch strings.Count(msg, "%s") {
			case 1:
				return fmt.Sprintf(msg, field)
			case 2:
				param := e.Param()
				if e.Tag() == "oneof" {
					param = strings.Join(strings.Fields(param), ", ")
				}
				return fmt.Sprintf(msg, field, param)
			}
		}
	}
	return fmt.Sprintf("Field '%s' is invalid: %s", field, e.Tag())
}

// Validate checks s and returns the failed rules in struct field order.
func Validate(s any, lang ...string) []FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []FieldError{{Tag: "struct", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(validationErrs))
	for _, e := range validationErrs {
		out = append(out, FieldError{
			Field:   e.Field(),
			Tag:     e.Tag(),
			Param:   e.Param(),
			Message: parseMessage(e.Field(), e, lang...),
		})
	}
	return out
}
