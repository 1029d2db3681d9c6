package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"reflect"
	"strings"
)

// The checkers below share one contract: they return (true, nil) when the value passes.
// When it does not, raise decides between returning a 422 *AppError (assert mode) and
// returning (false, nil) (query mode).

func unprocessable(t ErrorType, title, message string) *AppError {
	return newAppError(t, http.StatusUnprocessableEntity, title, message)
}

func fail(raise bool, err *AppError) (bool, error) {
	if raise {
		return false, err
	}
	return false, nil
}

// IsDefined fails on nil, empty strings and nil pointers.
func IsDefined(value any, name string, raise bool) (bool, error) {
	if !defined(value) {
		return fail(raise, unprocessable(ErrMissingData,
			fmt.Sprintf("%s is missing", name),
			fmt.Sprintf("%s is required. provide %s and try again.", name, name)))
	}
	return true, nil
}

func defined(value any) bool {
	if value == nil {
		return false
	}
	if s, ok := value.(string); ok {
		return len(s) != 0
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() == reflect.Ptr || rv.Kind() == reflect.Interface {
		return !rv.IsNil()
	}
	return true
}

// IsNumber accepts numeric kinds and strings that parse as a float.
func IsNumber(value any, name string, raise bool) (bool, error) {
	if _, ok := toFloat(value); ok {
		return true, nil
	}
	return fail(raise, unprocessable(ErrIncorrectData,
		fmt.Sprintf("%s: %v is not a number", name, value),
		fmt.Sprintf("the value of %s=%v is not a valid number. provide a valid number for %s and try again.", name, value, name)))
}

// IsPositiveNumber is IsNumber with the additional constraint value > 0.
func IsPositiveNumber(value any, name string, raise bool) (bool, error) {
	if f, ok := toFloat(value); ok && f > 0 {
		return true, nil
	}
	return fail(raise, unprocessable(ErrIncorrectData,
		fmt.Sprintf("%s: %v is not a positive number", name, value),
		fmt.Sprintf("the value of %s=%v is not a positive number. %s must be > 0", name, value, name)))
}

func toFloat(value any) (float64, bool) {
	if !defined(value) {
		return 0, false
	}
	rv := reflect.Indirect(reflect.ValueOf(value))
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return finite(rv.Float())
	case reflect.String:
		return ParseNumber(rv.String())
	}
	return 0, false
}

// finite rejects NaN and the infinities, which no column can store.
func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsArray accepts slices and arrays.
func IsArray(value any, name string, raise bool) (bool, error) {
	if value != nil {
		k := reflect.TypeOf(value).Kind()
		if k == reflect.Slice || k == reflect.Array {
			return true, nil
		}
	}
	return fail(raise, unprocessable(ErrIncorrectData,
		fmt.Sprintf("%s: %v is not an array", name, value),
		fmt.Sprintf("the value of %s=%v is not an array. provide a valid array for the variable %s", name, value, name)))
}

// IsParsableToArray accepts a string holding a JSON array.
func IsParsableToArray(value string, name string, raise bool) (bool, error) {
	var out []any
	if err := json.Unmarshal([]byte(value), &out); err == nil && out != nil {
		return true, nil
	}
	return fail(raise, unprocessable(ErrIncorrectData,
		fmt.Sprintf("%s: %s is not parsable to an array", name, value),
		fmt.Sprintf("the value of %s=%s is not parsable to an array. provide a string that is parsable to an array.", name, value)))
}

// IsObject accepts maps and structs.
func IsObject(value any, name string, raise bool) (bool, error) {
	if value != nil {
		k := reflect.Indirect(reflect.ValueOf(value)).Kind()
		if k == reflect.Map || k == reflect.Struct {
			return true, nil
		}
	}
	return fail(raise, unprocessable(ErrIncorrectData,
		fmt.Sprintf("%s: %v is not an object", name, value),
		fmt.Sprintf("the value of %s=%v is not an object. provide a valid object for the variable %s", name, value, name)))
}

// IsParsableToObject accepts a string holding a JSON object or array.
func IsParsableToObject(value string, name string, raise bool) (bool, error) {
	var out any
	if err := json.Unmarshal([]byte(value), &out); err == nil {
		switch out.(type) {
		case map[string]any, []any:
			return true, nil
		}
	}
	return fail(raise, unprocessable(ErrIncorrectData,
		fmt.Sprintf("%s: %s is not parsable to an object", name, value),
		fmt.Sprintf("the value of %s=%s is not parsable to an object. provide a string that is parsable to an object.", name, value)))
}

// IsDate accepts anything ToDate understands.
func IsDate(value string, name string, raise bool) (bool, error) {
	if _, ok := ToDate(value); ok {
		return true, nil
	}
	return fail(raise, unprocessable(ErrIncorrectData,
		fmt.Sprintf("%s: %s is not a date", name, value),
		fmt.Sprintf("the value of %s=%s is not a date. %s must be a valid date e.g YYYY-mm-DDTHH:MM:SS", name, value, name)))
}

// IsOneOf is the closed-set membership check behind the enum validators.
func IsOneOf(value string, allowed []string, name string, raise bool) (bool, error) {
	for _, a := range allowed {
		if value == a {
			return true, nil
		}
	}
	list := `["` + strings.Join(allowed, `" | "`) + `"]`
	return fail(raise, unprocessable(ErrIncorrectData,
		fmt.Sprintf("%s: %s is not a valid value", name, value),
		fmt.Sprintf("the value of %s=%s is not a valid value. %s must be one of the following %s", name, value, name, list)))
}

var PaymentModes = []string{"M-PESA", "CASH", "VISA", "CHEQUE"}

func IsValidPaymentMode(value string, name string, raise bool) (bool, error) {
	return IsOneOf(value, PaymentModes, name, raise)
}
