package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	mysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrorType is the category tag carried by every error envelope.
type ErrorType string

const (
	ErrMissingData     ErrorType = "MISSING_DATA"
	ErrIncorrectData   ErrorType = "INCORRECT_DATA"
	ErrInvalidData     ErrorType = "INVALID_DATA"
	ErrNotFound        ErrorType = "NOT_FOUND"
	ErrDuplicatedEntry ErrorType = "DUPLICATED_ENTRY"
	ErrUnauthorized    ErrorType = "UNAUTHORIZED"
	ErrUnauthenticated ErrorType = "UNAUTHENTICATED"
	ErrUnknown         ErrorType = "UNKNOWN"
)

// ErrorEntry describes one failing field when a request fails for several reasons at once.
type ErrorEntry struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Detail  any       `json:"detail,omitempty"`
}

// AppError is the error shape every handler reports. It is rendered as-is by
// middleware.ErrorHandler.
type AppError struct {
	Success    bool         `json:"success"`
	Type       ErrorType    `json:"type"`
	Title      string       `json:"title"`
	Message    string       `json:"message"`
	StatusCode int          `json:"statusCode"`
	More       any          `json:"more,omitempty"`
	Errors     []ErrorEntry `json:"errors,omitempty"`
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Type, e.StatusCode, e.Title)
}

// WithMore attaches extra detail to the error and returns it.
func (e *AppError) WithMore(more any) *AppError {
	e.More = more
	return e
}

func newAppError(t ErrorType, status int, title, message string) *AppError {
	return &AppError{Type: t, StatusCode: status, Title: title, Message: message}
}

func MissingData(name string) *AppError {
	return newAppError(ErrMissingData, http.StatusBadRequest,
		fmt.Sprintf("%s is missing", name),
		fmt.Sprintf("%s is required. provide %s and try again.", name, name))
}

func IncorrectData(title, message string) *AppError {
	return newAppError(ErrIncorrectData, http.StatusBadRequest, title, message)
}

func InvalidData(title, message string) *AppError {
	return newAppError(ErrInvalidData, http.StatusBadRequest, title, message)
}

// NotFound reports that no resource matched; filter describes what was searched for.
func NotFound(resource, filter string) *AppError {
	return newAppError(ErrNotFound, http.StatusNotFound,
		fmt.Sprintf("%s not found", resource),
		fmt.Sprintf("there is no %s with %s. check the value and try again.", resource, filter))
}

func Duplicated(detail string) *AppError {
	return newAppError(ErrDuplicatedEntry, http.StatusConflict,
		"duplicated entry",
		fmt.Sprintf("error because duplicated entry. %s already exists.", detail))
}

func Unauthorized(message string) *AppError {
	return newAppError(ErrUnauthorized, http.StatusUnauthorized, "unauthorized", message)
}

func Unauthenticated(message string) *AppError {
	return newAppError(ErrUnauthenticated, http.StatusUnauthorized, "invalid credential", message)
}

// Forbidden is raised when the caller is known but their role does not allow the action.
func Forbidden(message string) *AppError {
	return newAppError(ErrUnauthorized, http.StatusForbidden, "not allowed", message)
}

func Unknown(action string) *AppError {
	return newAppError(ErrUnknown, http.StatusInternalServerError,
		"unknown/unexpected error happened",
		fmt.Sprintf("unknown/unexpected error happened while %s. check your request or contact the admin!", action))
}

// IsDuplicateKey reports whether err is a unique constraint violation from any of the
// supported dialects.
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == 1062 {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}

// Normalize turns any error produced while serving a request into an AppError.
func Normalize(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := InvalidData("invalid request data", "one or more fields are missing or invalid. check errors for details.")
		for _, fe := range verrs {
			t := ErrInvalidData
			if fe.Tag() == "required" {
				t = ErrMissingData
			}
			out.Errors = append(out.Errors, ErrorEntry{
				Type:    t,
				Message: fmt.Sprintf("%s failed on the '%s' rule", fe.Field(), fe.Tag()),
				Detail:  map[string]any{"field": fe.Field(), "rule": fe.Tag(), "param": fe.Param()},
			})
		}
		return out
	}

	if errors.Is(err, io.EOF) {
		return MissingData("request body")
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return InvalidData(
			fmt.Sprintf("%s has the wrong type", typeErr.Field),
			fmt.Sprintf("the value of %s must be of type %s.", typeErr.Field, typeErr.Type))
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return InvalidData("malformed request body", "the request body is not valid JSON.")
	}

	if IsDuplicateKey(err) {
		return Duplicated(duplicateDetail(err))
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("record", "the provided filter")
	}

	return Unknown("processing the request")
}

func duplicateDetail(err error) string {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Message
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Detail != "" {
		return pgErr.Detail
	}
	msg := err.Error()
	if i := strings.Index(msg, "UNIQUE constraint failed: "); i >= 0 {
		return msg[i+len("UNIQUE constraint failed: "):]
	}
	return "the value"
}
