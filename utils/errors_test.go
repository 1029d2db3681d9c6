package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestNormalize(t *testing.T) {
	var syntaxErr error = &json.SyntaxError{}

	tests := []struct {
		name       string
		err        error
		wantType   ErrorType
		wantStatus int
	}{
		{"app error passes through", NotFound("room", "id=1"), ErrNotFound, http.StatusNotFound},
		{"wrapped app error", fmt.Errorf("ctx: %w", Forbidden("no")), ErrUnauthorized, http.StatusForbidden},
		{"empty body", io.EOF, ErrMissingData, http.StatusBadRequest},
		{"bad json", syntaxErr, ErrInvalidData, http.StatusBadRequest},
		{"gorm duplicate", gorm.ErrDuplicatedKey, ErrDuplicatedEntry, http.StatusConflict},
		{"mysql duplicate", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry '101' for key 'number'"}, ErrDuplicatedEntry, http.StatusConflict},
		{"postgres duplicate", &pgconn.PgError{Code: "23505"}, ErrDuplicatedEntry, http.StatusConflict},
		{"sqlite duplicate", errors.New("UNIQUE constraint failed: rooms.number"), ErrDuplicatedEntry, http.StatusConflict},
		{"record not found", gorm.ErrRecordNotFound, ErrNotFound, http.StatusNotFound},
		{"anything else", errors.New("boom"), ErrUnknown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.err)
			assert.Equal(t, tt.wantType, got.Type)
			assert.Equal(t, tt.wantStatus, got.StatusCode)
			assert.NotEmpty(t, got.Title)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestDuplicateDetail(t *testing.T) {
	got := Normalize(errors.New("constraint: UNIQUE constraint failed: guests.id_number"))
	assert.Contains(t, got.Message, "guests.id_number")
}
