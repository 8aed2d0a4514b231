package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestApiErr_KindMatching(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"not found", NewNotFoundError("user not found"), IsNotFound},
		{"entity not found", NewNotFound("project"), IsNotFound},
		{"bad request", NewBadRequestError("technology is required"), IsValidation},
		{"missing field", NewMissingRequiredFieldError("email"), IsValidation},
		{"unauthorized", NewInvalidCredentialsError(), IsUnauthorized},
		{"conflict", NewAlreadyExists("user"), IsConflict},
		{"internal", NewInternalError("boom"), IsInternal},
		{"wrapped", fmt.Errorf("service: %w", NewNotFound("about")), IsNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.check(tt.err))
		})
	}

	assert.False(t, IsNotFound(NewConflictError("x")))
	assert.True(t, errors.Is(NewTokenExpiredError(), ErrTokenExpired))
	assert.True(t, IsUnauthorized(NewTokenExpiredError()))
}

func TestApiErr_ErrorText(t *testing.T) {
	err := NewBadRequestErrorWithDetails("invalid category", "use one of languages, frontend")
	assert.Equal(t, "invalid category: use one of languages, frontend", err.Error())
	assert.Equal(t, "invalid category", err.Message())

	wrapped := NewInternalErrorWithCause("seed failed", NewNotFound("template user"))
	assert.Equal(t, "seed failed -> template user not found", wrapped.GetFullError())
}

func TestNewDatabaseError(t *testing.T) {
	nf := NewDatabaseError("find", "user", gorm.ErrRecordNotFound)
	assert.Equal(t, http.StatusNotFound, nf.StatusCode)
	assert.True(t, IsNotFound(nf))

	dup := NewDatabaseError("create", "user", gorm.ErrDuplicatedKey)
	assert.Equal(t, http.StatusConflict, dup.StatusCode)
	assert.True(t, errors.Is(dup, ErrAlreadyExists))

	sqliteDup := NewDatabaseError("create", "user", errors.New("UNIQUE constraint failed: users.email"))
	assert.Equal(t, http.StatusConflict, sqliteDup.StatusCode)

	generic := NewDatabaseError("list", "skills", errors.New("syntax error"))
	assert.Equal(t, http.StatusInternalServerError, generic.StatusCode)
	assert.True(t, errors.Is(generic, ErrDatabaseQuery))

	passthrough := NewNotFound("about")
	assert.Same(t, passthrough, NewDatabaseError("update", "about", passthrough))
}

func TestNewValidationError(t *testing.T) {
	verr := validation.Errors{
		"password":   errors.New("must be at least 6 characters"),
		"email":      errors.New("must be a valid email address"),
		"ctaButtons": validation.Errors{"contact": errors.New("cannot be blank")},
	}

	apiErr := NewValidationError(verr)
	require.NotNil(t, apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.True(t, IsValidation(apiErr))
	assert.Equal(t,
		"ctaButtons.contact: cannot be blank; email: must be a valid email address; password: must be at least 6 characters",
		apiErr.Details)

	single := NewValidationError(validation.Errors{"fullName": errors.New("cannot be blank")})
	assert.Equal(t, "fullName", single.Field)
}
