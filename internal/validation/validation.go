// Package validation turns binding failures into the field-keyed error map
// carried by the response envelope.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a gin binding error onto errors[field] = [messages].
// obj must be the bound struct; its form/json tags name the fields the
// way clients sent them.
func FieldErrors(obj any, err error) map[string][]string {
	out := map[string][]string{}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// A JSON type mismatch still names the offending field; form
		// binding strconv failures carry no field and stay envelope-level.
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			out[typeErr.Field] = []string{fmt.Sprintf(
				"The %s must be a %s.", typeErr.Field, jsonTypeName(typeErr.Type))}
			return out
		}
		out["request"] = []string{"The request body could not be parsed."}
		return out
	}

	t := reflect.TypeOf(obj)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	for _, fe := range verrs {
		field := wireName(t, fe.StructField())
		out[field] = append(out[field], message(field, fe))
	}

	return out
}

// Single builds the one-field error map used for uniqueness and other
// checks done against the store.
func Single(field, msg string) map[string][]string {
	return map[string][]string{field: {msg}}
}

func Taken(field string) map[string][]string {
	return Single(field, fmt.Sprintf("The %s has already been taken.", field))
}

func jsonTypeName(t reflect.Type) string {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.String:
		return "string"
	default:
		return t.String()
	}
}

func wireName(t reflect.Type, structField string) string {
	if t.Kind() != reflect.Struct {
		return strings.ToLower(structField)
	}
	f, ok := t.FieldByName(structField)
	if !ok {
		return strings.ToLower(structField)
	}
	for _, tag := range []string{"form", "json"} {
		if v := f.Tag.Get(tag); v != "" && v != "-" {
			return strings.Split(v, ",")[0]
		}
	}
	return strings.ToLower(structField)
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s must be a valid email address.", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s must be at least %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s must be at least %s.", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("The %s may not be greater than %s characters.", field, fe.Param())
		}
		return fmt.Sprintf("The %s may not be greater than %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "eqfield":
		return fmt.Sprintf("The %s confirmation does not match.", strings.TrimSuffix(field, "_confirmation"))
	case "datetime":
		return fmt.Sprintf("The %s does not match the format %s.", field, fe.Param())
	case "gte", "gt", "lte", "lt":
		return fmt.Sprintf("The %s is out of range.", field)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
