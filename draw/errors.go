package draw

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is matched by every *InvalidInputError.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInsufficientRange is matched by every *InsufficientRangeError.
	ErrInsufficientRange = errors.New("insufficient range")
	// ErrQuantityLimit is matched by every *QuantityLimitError.
	ErrQuantityLimit = errors.New("quantity limit exceeded")
	// ErrDrawInProgress is returned when a draw is requested mid-animation.
	ErrDrawInProgress = errors.New("draw already in progress")
)

// Field names one of the two input fields.
type Field int

const (
	FieldMaxNumber Field = iota
	FieldQuantity
)

func (f Field) String() string {
	switch f {
	case FieldMaxNumber:
		return "max number"
	case FieldQuantity:
		return "quantity"
	}
	return "unknown field"
}

// InvalidInputError reports a field that is empty, non-numeric or not positive.
type InvalidInputError struct {
	Field Field
	Text  string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s %q: must be a positive integer", e.Field, e.Text)
}

func (e *InvalidInputError) Unwrap() error {
	return ErrInvalidInput
}

// InsufficientRangeError reports a quantity larger than the range it is drawn from.
type InsufficientRangeError struct {
	MaxNumber int
	Quantity  int
}

func (e *InsufficientRangeError) Error() string {
	return fmt.Sprintf("cannot draw %d unique numbers from 1..%d", e.Quantity, e.MaxNumber)
}

func (e *InsufficientRangeError) Unwrap() error {
	return ErrInsufficientRange
}

// QuantityLimitError reports a quantity above the configured per-draw limit.
type QuantityLimitError struct {
	Quantity int
	Limit    int
}

func (e *QuantityLimitError) Error() string {
	return fmt.Sprintf("cannot draw %d numbers at once, the limit is %d", e.Quantity, e.Limit)
}

func (e *QuantityLimitError) Unwrap() error {
	return ErrQuantityLimit
}
