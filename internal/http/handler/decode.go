package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"campushub/internal/apperr"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON strictly decodes the request body into dst and runs struct validation.
// Unknown fields, trailing data and an empty body are validation errors.
func decodeJSON(c *fiber.Ctx, dst any) error {
	body := bytes.TrimSpace(c.Body())
	if len(body) == 0 {
		return apperr.Validation("request body must be a JSON object")
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return apperr.Wrap(err, apperr.ErrValidation.Code, apperr.ErrValidation.Status, "invalid JSON body: "+decodeMessage(err))
	}
	if dec.More() {
		return apperr.Validation("invalid JSON body: unexpected trailing data")
	}

	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

func decodeMessage(err error) string {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return fmt.Sprintf("field %q must be %s", typeErr.Field, typeErr.Type)
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return "malformed JSON"
	}
	// encoding/json reports unknown fields as `json: unknown field "x"`.
	return strings.TrimPrefix(err.Error(), "json: ")
}

func validationError(err error) error {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) || len(ves) == 0 {
		return apperr.Wrap(err, apperr.ErrValidation.Code, apperr.ErrValidation.Status, "invalid request")
	}
	fe := ves[0]
	field := fe.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	msg := fmt.Sprintf("%s failed %s", field, fe.Tag())
	if fe.Param() != "" {
		msg += "=" + fe.Param()
	}
	return apperr.Wrap(err, apperr.ErrValidation.Code, apperr.ErrValidation.Status, msg)
}
