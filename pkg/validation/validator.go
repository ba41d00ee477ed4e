package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var initOnce sync.Once

// Init configures the global validator used by Gin's binding.
// Error field names follow the json tag, or the form tag for query structs.
func Init() {
	initOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			for _, key := range []string{"json", "form"} {
				name := strings.SplitN(fld.Tag.Get(key), ",", 2)[0]
				if name == "-" {
					return ""
				}
				if name != "" {
					return name
				}
			}
			return fld.Name
		})
		v.RegisterAlias("personname", "max=100")
	})
}

// ToDetails converts binding errors into a map[field]message for the error payload.
func ToDetails(err error) map[string]string {
	if err == nil {
		return nil
	}

	var se *json.SyntaxError
	var ute *json.UnmarshalTypeError
	if errors.As(err, &se) || errors.As(err, &ute) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return map[string]string{"payload": "invalid json"}
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			out[fe.Field()] = formatFieldError(fe)
		}
		return out
	}

	return map[string]string{"payload": "invalid payload"}
}

// MissingFields lists, sorted, the fields that failed a required check.
func MissingFields(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	var out []string
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			out = append(out, fe.Field())
		}
	}
	sort.Strings(out)
	return out
}

// Messages keyed by tag; %s receives the tag parameter.
var tagMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"oneof":    "must be one of: %s",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"numeric":  "must be numeric",
}

func formatFieldError(fe validator.FieldError) string {
	tag, param := fe.Tag(), fe.Param()
	if tag == "personname" {
		tag, param = "max", "100"
	}

	switch tag {
	case "min", "max":
		bound := map[string]string{"min": "at least", "max": "at most"}[tag]
		if isNumberKind(fe.Kind()) {
			return fmt.Sprintf("must be %s %s", bound, param)
		}
		return fmt.Sprintf("must be %s %s characters long", bound, param)
	case "oneof":
		param = strings.Join(strings.Fields(param), ", ")
	}

	if msg, ok := tagMessages[tag]; ok {
		if strings.Contains(msg, "%s") {
			return fmt.Sprintf(msg, param)
		}
		return msg
	}
	if param != "" {
		return fmt.Sprintf("failed on '%s=%s'", tag, param)
	}
	return fmt.Sprintf("failed on '%s'", tag)
}

func isNumberKind(k reflect.Kind) bool {
	return (k >= reflect.Int && k <= reflect.Uint64) || k == reflect.Float32 || k == reflect.Float64
}
