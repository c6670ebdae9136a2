package errors

import (
	"errors"
	"fmt"
)

// ErrorCategory represents the classes of failure a backtest run can hit.
type ErrorCategory string

const (
	// Fatal to the affected run; the rolling runner records these as gaps.
	ErrorCategoryInsufficientHistory ErrorCategory = "INSUFFICIENT_HISTORY"
	ErrorCategoryScheduleExhausted   ErrorCategory = "SCHEDULE_EXHAUSTED"

	// Fatal to the whole invocation.
	ErrorCategoryConfiguration ErrorCategory = "CONFIG"
	ErrorCategoryData          ErrorCategory = "DATA"
)

// BacktestError is a categorized error with component and operation context.
type BacktestError struct {
	Category   ErrorCategory
	Component  string
	Operation  string
	Message    string
	Underlying error
	Context    map[string]interface{}
}

// Error implements the error interface.
func (e *BacktestError) Error() string {
	if e.Underlying != nil {
		return fmt.Sprintf("[%s:%s] %s: %s: %v", e.Category, e.Component, e.Operation, e.Message, e.Underlying)
	}
	return fmt.Sprintf("[%s:%s] %s: %s", e.Category, e.Component, e.Operation, e.Message)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *BacktestError) Unwrap() error {
	return e.Underlying
}

// IsWindowFatal reports whether the error aborts only the affected
// run/window rather than the whole sweep.
func (e *BacktestError) IsWindowFatal() bool {
	return e.Category == ErrorCategoryInsufficientHistory ||
		e.Category == ErrorCategoryScheduleExhausted
}

// WithContext attaches context information to the error.
func (e *BacktestError) WithContext(key string, value interface{}) *BacktestError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewBacktestError creates a new categorized error.
func NewBacktestError(category ErrorCategory, component, operation, message string) *BacktestError {
	return &BacktestError{
		Category:  category,
		Component: component,
		Operation: operation,
		Message:   message,
		Context:   make(map[string]interface{}),
	}
}

// WrapError wraps an existing error with backtest error context.
func WrapError(err error, category ErrorCategory, component, operation string) *BacktestError {
	if err == nil {
		return nil
	}
	return &BacktestError{
		Category:   category,
		Component:  component,
		Operation:  operation,
		Message:    "operation failed",
		Underlying: err,
		Context:    make(map[string]interface{}),
	}
}

// NewInsufficientHistoryError signals a window falling outside the available
// price data. The window must fail loudly rather than be silently clipped,
// otherwise metrics stop being comparable across runs.
func NewInsufficientHistoryError(component, message string) *BacktestError {
	return NewBacktestError(ErrorCategoryInsufficientHistory, component, "window_check", message)
}

// NewScheduleExhaustedError signals a DCA installment with no trading date
// left in the series to snap to.
func NewScheduleExhaustedError(component, message string) *BacktestError {
	return NewBacktestError(ErrorCategoryScheduleExhausted, component, "schedule", message)
}

// NewConfigurationError signals invalid run parameters.
func NewConfigurationError(component, operation, message string) *BacktestError {
	return NewBacktestError(ErrorCategoryConfiguration, component, operation, message)
}

// NewDataError wraps a data loading or validation failure.
func NewDataError(component, operation string, err error) *BacktestError {
	return WrapError(err, ErrorCategoryData, component, operation)
}

// IsCategory reports whether err (or anything it wraps) is a BacktestError
// of the given category.
func IsCategory(err error, category ErrorCategory) bool {
	var be *BacktestError
	if errors.As(err, &be) {
		return be.Category == category
	}
	return false
}

// IsInsufficientHistory reports whether err is an insufficient-history error.
func IsInsufficientHistory(err error) bool {
	return IsCategory(err, ErrorCategoryInsufficientHistory)
}

// IsScheduleExhausted reports whether err is a schedule-exhausted error.
func IsScheduleExhausted(err error) bool {
	return IsCategory(err, ErrorCategoryScheduleExhausted)
}
