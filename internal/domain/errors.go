package domain

import "fmt"

// InvalidInputError - нарушено ограничение на входные данные.
// Index равен -1, если ошибка не относится к конкретной строке.
type InvalidInputError struct {
	Index  int
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("invalid input: row %d: %s: %s", e.Index, e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid input: %s: %s", e.Field, e.Reason)
}

// NewInvalidRow создает ошибку для строки с индексом index
func NewInvalidRow(index int, field, reason string) *InvalidInputError {
	return &InvalidInputError{Index: index, Field: field, Reason: reason}
}

// NewInvalidField создает ошибку, не привязанную к строке
func NewInvalidField(field, reason string) *InvalidInputError {
	return &InvalidInputError{Index: -1, Field: field, Reason: reason}
}

// EmptyInputError - нет ни одной строки там, где нужна хотя бы одна
type EmptyInputError struct {
	What string
}

func (e *EmptyInputError) Error() string {
	return "empty input: " + e.What
}
