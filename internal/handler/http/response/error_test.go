package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cmlabs-hris/attendance-go/internal/domain/attendance"
	"github.com/cmlabs-hris/attendance-go/internal/domain/auth"
	"github.com/cmlabs-hris/attendance-go/internal/domain/employee"
	"github.com/cmlabs-hris/attendance-go/internal/domain/report"
	"github.com/cmlabs-hris/attendance-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{validator.ValidationErrors{{Field: "email", Message: "email is required"}}, http.StatusUnprocessableEntity, "VALIDATION_ERROR"},
		{fmt.Errorf("failed to create: %w", attendance.ErrDuplicateCheckIn), http.StatusConflict, "DUPLICATE_CHECK_IN"},
		{attendance.ErrNoActiveCheckIn, http.StatusConflict, "NO_ACTIVE_CHECK_IN"},
		{attendance.ErrAlreadyCheckedOut, http.StatusConflict, "ALREADY_CHECKED_OUT"},
		{attendance.ErrInvalidCheckOutTime, http.StatusConflict, "INVALID_CHECK_OUT_TIME"},
		{report.ErrEmptyReport, http.StatusNotFound, "EMPTY_REPORT"},
		{employee.ErrEmailExists, http.StatusConflict, "CONFLICT"},
		{employee.ErrEmployeeNotFound, http.StatusNotFound, "NOT_FOUND"},
		{auth.ErrManagerSignupDisabled, http.StatusForbidden, "FORBIDDEN"},
		{auth.ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHORIZED"},
		{errors.New("boom"), http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tc := range cases {
		w := httptest.NewRecorder()
		HandleError(w, tc.err)

		assert.Equal(t, tc.status, w.Code, tc.err.Error())

		var resp Response
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.False(t, resp.Success)
		require.NotNil(t, resp.Error)
		assert.Equal(t, tc.code, resp.Error.Code, tc.err.Error())
	}
}

func TestHandleError_ValidationDetails(t *testing.T) {
	w := httptest.NewRecorder()
	HandleError(w, validator.ValidationErrors{{Field: "from", Message: "from and to must be provided together"}})

	var resp Response
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "from and to must be provided together", resp.Error.Details["from"])
}
