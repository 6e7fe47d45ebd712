package errors

import (
	"errors"
	"fmt"
)

type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// NotFoundError covers both a row that does not exist and a row owned by
// another user. Callers get the same answer in both cases.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

func IsNotFoundError(err error) bool {
	var notFoundError *NotFoundError
	ok := errors.As(err, &notFoundError)
	return ok
}

type ConflictError struct {
	Msg string
}

func (e *ConflictError) Error() string {
	return e.Msg
}

func NewConflictError(msg string) error {
	return &ConflictError{Msg: msg}
}

func IsConflictError(err error) bool {
	var conflictError *ConflictError
	ok := errors.As(err, &conflictError)
	return ok
}

var ErrInvalidCategory = NewValidationError("Invalid category")
var ErrDuplicateCategoryName = NewConflictError("A category with this name already exists")
var ErrDuplicateBudgetPeriod = NewConflictError("A budget for this category and period already exists")

// NewCategoryInUseError reports how many rows block a category delete.
func NewCategoryInUseError(transactions, budgets int) error {
	return &ConflictError{Msg: fmt.Sprintf(
		"Category cannot be deleted: %d transaction(s) and %d budget(s) are linked to it",
		transactions, budgets,
	)}
}
