package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"omitempty,oneof=employee manager"`
	Pin   string `json:"pin" validate:"omitempty,min=4,max=6"`
}

func TestStruct_Valid(t *testing.T) {
	err := Struct(&signup{Name: "Ana", Email: "ana@example.com", Role: "manager"})
	assert.NoError(t, err)
}

func TestStruct_ReportsJSONFieldNames(t *testing.T) {
	err := Struct(&signup{Email: "not-an-email", Role: "owner", Pin: "12"})
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))

	got := errs.ToMap()
	assert.Equal(t, "name is required", got["name"])
	assert.Equal(t, "email must be a valid email address", got["email"])
	assert.Equal(t, "role must be one of: employee, manager", got["role"])
	assert.Equal(t, "pin must be at least 4 characters long", got["pin"])
}
