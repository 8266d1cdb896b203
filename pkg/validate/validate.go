// Package validate registers the custom binding rules used by request DTOs and
// renders binding failures as user-facing messages.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const UsernameRule = "Username must be 3-30 characters and contain only letters, numbers, and underscores"

var (
	usernamePattern = regexp.MustCompile(`^[A-Za-z0-9_]{3,30}$`)
	once            sync.Once
)

// Username reports whether s is a valid handle: 3-30 letters, digits or underscores.
func Username(s string) bool {
	return usernamePattern.MatchString(s)
}

// Register installs the "username" tag on gin's validator and reports fields
// by their json name. Safe to call repeatedly.
func Register() {
	once.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return Username(fl.Field().String())
		})
	})
}

// Message turns a binding error into a single readable sentence.
func Message(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Invalid request body"
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Invalid email address"
	case "username":
		return UsernameRule
	case "url":
		return fmt.Sprintf("%s must be a valid URL", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "min":
		if fe.Kind() == reflect.Int {
			return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
