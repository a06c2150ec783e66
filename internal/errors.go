package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeInvalidDate      ErrorCode = "INVALID_DATE"

	ErrCodeEmployeeNotFound  ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeBadgeSequence     ErrorCode = "BADGE_SEQUENCE_FAILED"
	ErrCodeCredentialPrepare ErrorCode = "CREDENTIAL_PREPARE_FAILED"
	ErrCodeDuplicateBadgeID  ErrorCode = "DUPLICATE_BADGE_ID"

	ErrCodeApprovalNotFound      ErrorCode = "APPROVAL_NOT_FOUND"
	ErrCodeInvalidApprovalStatus ErrorCode = "INVALID_APPROVAL_STATUS"

	ErrCodeAssetNotFound ErrorCode = "ASSET_NOT_FOUND"

	ErrCodePayrollCycleNotFound ErrorCode = "PAYROLL_CYCLE_NOT_FOUND"
	ErrCodeInvalidCycleStatus   ErrorCode = "INVALID_CYCLE_STATUS"
	ErrCodeDuplicateCyclePeriod ErrorCode = "DUPLICATE_CYCLE_PERIOD"
	ErrCodeSalaryNotFound       ErrorCode = "SALARY_NOT_FOUND"

	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
)

type AppError struct {
	Type       ErrorType   `json:"type"`
	Code       ErrorCode   `json:"code"`
	Message    string      `json:"message"`
	Details    interface{} `json:"details,omitempty"`
	StatusCode int         `json:"-"`
	Cause      error       `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e *AppError) GetDetailedMessage() string {
	if e.Details != nil {
		if validationErrors, ok := e.Details.(ValidationErrors); ok {
			messages := make([]string, len(validationErrors.Errors))
			for i, err := range validationErrors.Errors {
				messages[i] = err.Message
			}
			if len(messages) > 0 {
				return strings.Join(messages, "; ")
			}
		}
	}
	return e.Message
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       "INTERNAL_ERROR",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrEmployeeNotFound = NewNotFoundError("Not found", ErrCodeEmployeeNotFound)
	// ErrBadgeSequence signals a misconfigured or missing employee number
	// sequence. It is a configuration fault, never retried.
	ErrBadgeSequence = &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeBadgeSequence,
		Message:    "failed to get sequence value (employee_number_seq)",
		StatusCode: http.StatusInternalServerError,
	}
	// ErrCredentialPrepare signals a temp-password hashing failure. The
	// plaintext is discarded regardless.
	ErrCredentialPrepare = &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeCredentialPrepare,
		Message:    "failed to hash temporary password",
		StatusCode: http.StatusInternalServerError,
	}

	ErrApprovalNotFound      = NewNotFoundError("Approval not found", ErrCodeApprovalNotFound)
	ErrInvalidApprovalStatus = NewValidationError("approval is not pending", ErrCodeInvalidApprovalStatus)

	ErrAssetNotFound = NewNotFoundError("Asset not found", ErrCodeAssetNotFound)

	ErrPayrollCycleNotFound = NewNotFoundError("Payroll cycle not found", ErrCodePayrollCycleNotFound)
	ErrInvalidCycleStatus   = NewValidationError("payroll cycle is not pending", ErrCodeInvalidCycleStatus)
	ErrDuplicateCyclePeriod = NewConflictError("a payroll cycle for this period already exists", ErrCodeDuplicateCyclePeriod)
	ErrSalaryNotFound       = NewNotFoundError("Salary not found", ErrCodeSalaryNotFound)

	ErrInvalidCredentials = NewUnauthorizedError("Invalid email or password", ErrCodeInvalidCredentials)
	ErrInvalidToken       = NewUnauthorizedError("Invalid token", ErrCodeInvalidToken)
	ErrTokenExpired       = NewUnauthorizedError("Token has expired", ErrCodeTokenExpired)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

type Response struct {
	Error *AppError `json:"error"`
}

func (e *AppError) ToHTTPResponse() (int, interface{}) {
	return e.StatusCode, Response{Error: e}
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType   `json:"type"`
		Code    ErrorCode   `json:"code"`
		Message string      `json:"message"`
		Details interface{} `json:"details,omitempty"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
	})
}
