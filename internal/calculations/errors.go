package calculations

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput неположительные или неконечные параметры расчета
	ErrInvalidInput = errors.New("некорректные параметры расчета")

	// ErrUnreachable цель не достигается за допустимое число месяцев
	ErrUnreachable = errors.New("цель недостижима за допустимый срок")
)

// InputError описывает конкретный некорректный параметр.
// errors.Is(err, ErrInvalidInput) для него истинно.
type InputError struct {
	Field  string
	Value  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s (получено %s)", e.Field, e.Reason, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

func invalid(field string, value float64, reason string) *InputError {
	return &InputError{Field: field, Value: fmt.Sprintf("%v", value), Reason: reason}
}
