// Package validate holds the shared struct validator and turns its errors
// into VangoErrors.
package validate

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/vango-dev/vango-ui/internal/errors"
)

var (
	once sync.Once
	inst *validator.Validate

	apiVersionPattern = regexp.MustCompile(`^/api/v[0-9]+$`)
)

// Instance returns the process-wide validator. Besides the built-in tags
// it knows:
//
//	side         top, right, bottom, left or empty
//	align        start, center, end or empty
//	trigger      click, hover or empty
//	api_version  a path like /api/v1
func Instance() *validator.Validate {
	once.Do(func() {
		v := validator.New()

		// Report fields by their JSON names.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return f.Name
			}
			return name
		})

		_ = v.RegisterValidation("side", oneOf("", "top", "right", "bottom", "left"))
		_ = v.RegisterValidation("align", oneOf("", "start", "center", "end"))
		_ = v.RegisterValidation("trigger", oneOf("", "click", "hover"))
		_ = v.RegisterValidation("api_version", func(fl validator.FieldLevel) bool {
			return apiVersionPattern.MatchString(fl.Field().String())
		})

		inst = v
	})
	return inst
}

func oneOf(values ...string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := strings.ToLower(fl.Field().String())
		for _, v := range values {
			if s == v {
				return true
			}
		}
		return false
	}
}

// Struct validates s and converts the first failure into a VangoError with
// the given code.
func Struct(s any, code string) error {
	return Convert(Instance().Struct(s), code)
}

// Convert normalizes validator errors into a VangoError with the given
// code. The detail names the failing field by its JSON path.
func Convert(err error, code string) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		fe := ves[0]
		return errors.New(code).
			WithDetail(fmt.Sprintf("%s failed validation for tag '%s'", FieldName(fe), fe.Tag())).
			Wrap(err)
	}
	return errors.New(code).Wrap(err)
}

// FieldName returns the dotted JSON path of a failed field, without the
// top-level struct name.
func FieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}
