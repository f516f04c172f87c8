package handler

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names instead of Go field names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// bindJSON decodes the request body into dst and validates its struct tags.
// Malformed JSON and failed validation are both 422 VALIDATION_ERROR.
func bindJSON(c *fiber.Ctx, dst any) error {
	if err := c.App().Config().JSONDecoder(c.Body(), dst); err != nil {
		return newAPIError(fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid JSON body: "+err.Error())
	}
	if err := validate.Struct(dst); err != nil {
		return newAPIError(fiber.StatusUnprocessableEntity, "VALIDATION_ERROR", validationMessage(err))
	}
	return nil
}

// validationMessage renders validator errors as "field: rule" pairs joined by "; ".
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s: %s=%s", fe.Field(), fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field(), fe.Tag()))
	}
	return strings.Join(parts, "; ")
}

// queryInt parses an optional integer query parameter. Absent means def; garbage is
// 400 INVALID_<KEY>.
func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, newAPIError(fiber.StatusBadRequest, "INVALID_"+strings.ToUpper(key), "invalid "+key)
	}
	return v, nil
}
