package httputil

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors flattens validator.v10 errors into a field -> message map.
func FieldErrors(err error) map[string]string {
	out := map[string]string{}

	var verrs validator.ValidationErrors
	if ve, ok := err.(validator.ValidationErrors); ok {
		verrs = ve
	} else {
		out["_"] = "invalid input"
		return out
	}

	for _, fe := range verrs {
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			out[field] = field + " is required"
		case "email":
			out[field] = field + " must be a valid email address"
		case "min":
			out[field] = field + " must be at least " + fe.Param()
		case "oneof":
			out[field] = field + " must be one of: " + fe.Param()
		default:
			out[field] = field + " is invalid"
		}
	}
	return out
}
