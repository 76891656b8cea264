package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Yinka-911/cervical-cancer-classifier/internal/model"
)

var registerOnce sync.Once

// RegisterJSONTagNames makes gin's validator report fields by their JSON
// name, so errors point at the keys callers actually sent.
func RegisterJSONTagNames() {
	registerOnce.Do(func() {
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
	})
}

var messages = map[string]string{
	"required": "field required",
}

// Translate turns a request binding error into per-field details. It
// understands validator errors, JSON type errors and JSON syntax errors.
func Translate(err error) []model.FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		details := make([]model.FieldError, 0, len(verrs))
		for _, e := range verrs {
			msg := messages[e.Tag()]
			if msg == "" {
				msg = e.Error()
			}
			typ := "value_error"
			if e.Tag() == "required" {
				typ = "missing"
			}
			details = append(details, model.FieldError{
				Loc:  []string{"body", e.Field()},
				Msg:  msg,
				Type: typ,
			})
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []model.FieldError{{
			Loc:  []string{"body", typeErr.Field},
			Msg:  fmt.Sprintf("value is not a valid float, got %s", typeErr.Value),
			Type: "float_parsing",
		}}
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) || errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return []model.FieldError{{
			Loc:  []string{"body"},
			Msg:  "JSON decode error",
			Type: "json_invalid",
		}}
	}

	return []model.FieldError{{
		Loc:  []string{"body"},
		Msg:  err.Error(),
		Type: "value_error",
	}}
}
