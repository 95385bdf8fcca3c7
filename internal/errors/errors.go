// Package errors provides custom error types for the Bucketwise API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// Authentication & authorization errors.
var (
	ErrUnauthorized       = &AppError{Code: "UNAUTHORIZED", Message: "Authentication required", StatusCode: http.StatusUnauthorized}
	ErrInvalidCredentials = &AppError{Code: "INVALID_CREDENTIALS", Message: "Invalid email or password", StatusCode: http.StatusUnauthorized}
	// ErrCrossTeamAccess deliberately does not say whether the target
	// exists; a foreign entity and a missing one read the same.
	ErrCrossTeamAccess = &AppError{Code: "CROSS_TEAM_ACCESS", Message: "You are not allowed to access this resource", StatusCode: http.StatusForbidden}
	ErrNoTeam          = &AppError{Code: "NO_TEAM", Message: "You must belong to a team to perform this action", StatusCode: http.StatusBadRequest}
)

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Resource not found", StatusCode: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// User and team errors.
var (
	ErrUserNotFound   = &AppError{Code: "USER_NOT_FOUND", Message: "User not found", StatusCode: http.StatusNotFound}
	ErrDuplicateEmail = &AppError{Code: "DUPLICATE_EMAIL", Message: "A user with this email already exists", StatusCode: http.StatusConflict}
	ErrTeamNotFound   = &AppError{Code: "TEAM_NOT_FOUND", Message: "Team not found", StatusCode: http.StatusNotFound}
	ErrAlreadyInTeam  = &AppError{Code: "ALREADY_IN_TEAM", Message: "You already belong to a team", StatusCode: http.StatusConflict}
)

// Budget plan errors.
var (
	ErrPlanNotFound      = &AppError{Code: "PLAN_NOT_FOUND", Message: "Budget plan not found", StatusCode: http.StatusNotFound}
	ErrPlanAlreadyExists = &AppError{Code: "PLAN_ALREADY_EXISTS", Message: "A budget plan already exists for this period", StatusCode: http.StatusConflict}
	ErrNoPriorPlan       = &AppError{Code: "NO_PRIOR_PLAN", Message: "No previous plan found to copy from", StatusCode: http.StatusConflict}
	ErrInvalidPeriod     = &AppError{Code: "INVALID_PERIOD", Message: "Period must be in YYYY-MM format", StatusCode: http.StatusBadRequest}
)

// Allocation errors.
var (
	ErrPercentageExceeded = &AppError{Code: "PERCENTAGE_EXCEEDED", Message: "The total percentage cannot exceed 100%", StatusCode: http.StatusBadRequest}
	ErrBucketNotFound     = &AppError{Code: "BUCKET_NOT_FOUND", Message: "Bucket not found", StatusCode: http.StatusNotFound}
	ErrLineItemNotFound   = &AppError{Code: "LINE_ITEM_NOT_FOUND", Message: "Line item not found", StatusCode: http.StatusNotFound}
)

// Income and expense errors.
var (
	ErrIncomeSourceNotFound = &AppError{Code: "INCOME_SOURCE_NOT_FOUND", Message: "Income source not found", StatusCode: http.StatusNotFound}
	ErrExpenseNotFound      = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
)
