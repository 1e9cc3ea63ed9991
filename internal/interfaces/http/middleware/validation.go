package middleware

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// codeIdentifierPattern matches identifiers safe to embed in a short-link
// path without escaping
var codeIdentifierPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// SetupValidator configures gin's binding validator with custom tags.
// Call once before routes are served.
func SetupValidator() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	// Report JSON field names in validation errors
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("codeident", func(fl validator.FieldLevel) bool {
		return codeIdentifierPattern.MatchString(fl.Field().String())
	})
}
