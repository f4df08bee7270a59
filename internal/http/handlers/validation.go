package handlers

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
	}
}

// fieldError is one itemized validation failure
type fieldError struct {
	Path string `json:"path"`
	Msg  string `json:"msg"`
}

// Messages keyed by "<json field>.<validator tag>"; anything not listed
// falls back to a generic message.
var validationMessages = map[string]string{
	"username.required":        "Username is required",
	"username.min":             "Username must be between 3 and 30 characters",
	"username.max":             "Username must be between 3 and 30 characters",
	"username.username":        "Username can only contain letters, numbers, and underscores",
	"email.required":           "Email is required",
	"email.email":              "Please provide a valid email",
	"password.required":        "Password is required",
	"password.min":             "Password must be at least 6 characters long",
	"password.containsany":     "Password must contain at least one number",
	"confirmPassword.required": "Password confirmation is required",
	"confirmPassword.eqfield":  "Passwords do not match",
	"text.required":            "Text to translate is required",
	"text.max":                 "Text cannot exceed 5000 characters",
	"targetLanguage.required":  "Target language is required",
	"targetLanguage.min":       "Language code must be 2-5 characters",
	"targetLanguage.max":       "Language code must be 2-5 characters",
	"sourceLanguage.min":       "Source language code must be 2-5 characters",
	"sourceLanguage.max":       "Source language code must be 2-5 characters",
	"message.required":         "Message is required",
	"message.max":              "Message cannot exceed 1000 characters",
	"sessionId.required":       "Session ID is required",
}

// bindingErrors maps a gin binding failure to the itemized error list
// returned on every 400 validation response.
func bindingErrors(err error) []fieldError {
	var ve validator.ValidationErrors
	if ok := asValidationErrors(err, &ve); !ok {
		return []fieldError{{Path: "body", Msg: "Invalid request body"}}
	}

	out := make([]fieldError, 0, len(ve))
	for _, fe := range ve {
		msg, ok := validationMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fmt.Sprintf("%s is invalid", fe.Field())
		}
		out = append(out, fieldError{Path: fe.Field(), Msg: msg})
	}
	return out
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	ve, ok := err.(validator.ValidationErrors)
	if ok {
		*target = ve
	}
	return ok
}
