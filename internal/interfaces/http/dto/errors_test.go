package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeAlreadyExists, http.StatusConflict},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeBusinessRule, http.StatusUnprocessableEntity},
		{ErrCodeConfiguration, http.StatusInternalServerError},
		{"SOMETHING_NOBODY_MAPPED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestNormalizeErrorCode(t *testing.T) {
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode("EMPLOYEE_NOT_FOUND"))
	assert.Equal(t, ErrCodeAlreadyExists, NormalizeErrorCode("PAYROLL_DUPLICATE"))
	assert.Equal(t, ErrCodeConfiguration, NormalizeErrorCode("CASH_ACCOUNT_MISSING"))
	assert.Equal(t, ErrCodeBusinessRule, NormalizeErrorCode("NEGATIVE_NET_PAY"))

	// unmapped INVALID_* codes collapse to invalid input
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("INVALID_PERIOD"))
	assert.Equal(t, ErrCodeInvalidInput, NormalizeErrorCode("INVALID_OVERTIME"))

	// already-normalized and unknown codes pass through
	assert.Equal(t, ErrCodeNotFound, NormalizeErrorCode(ErrCodeNotFound))
	assert.Equal(t, "CUSTOM_CODE", NormalizeErrorCode("CUSTOM_CODE"))
}

func TestNewSuccessResponseWithMeta(t *testing.T) {
	resp := NewSuccessResponseWithMeta([]string{"a"}, 45, 2, 20)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(45), resp.Meta.Total)
	assert.Equal(t, 3, resp.Meta.TotalPages)
}
