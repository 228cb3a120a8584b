package draw

import "strconv"

// Configuration is a validated pair of inputs for one draw.
type Configuration struct {
	MaxNumber int
	Quantity  int
}

// TryParseInteger parses text made only of ASCII decimal digits. Signs,
// spaces and values that overflow int are rejected.
func TryParseInteger(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return n, true
}

// IsValidField reports whether text holds a positive integer.
func IsValidField(text string) bool {
	n, ok := TryParseInteger(text)
	return ok && n > 0
}

// IsReady reports whether the draw action may be enabled. It has no side
// effects and is called on every keystroke and at the end of every draw.
func IsReady(maxText, quantityText string, animating bool) bool {
	if animating {
		return false
	}
	return IsValidField(maxText) && IsValidField(quantityText)
}

// ParseConfiguration turns the raw field texts into a Configuration or
// returns *InvalidInputError, *InsufficientRangeError or, for a quantity
// above maxQuantity, *QuantityLimitError.
func ParseConfiguration(maxText, quantityText string, maxQuantity int) (Configuration, error) {
	maxNumber, ok := TryParseInteger(maxText)
	if !ok || maxNumber <= 0 {
		return Configuration{}, &InvalidInputError{Field: FieldMaxNumber, Text: maxText}
	}
	quantity, ok := TryParseInteger(quantityText)
	if !ok || quantity <= 0 {
		return Configuration{}, &InvalidInputError{Field: FieldQuantity, Text: quantityText}
	}
	if quantity > maxNumber {
		return Configuration{}, &InsufficientRangeError{MaxNumber: maxNumber, Quantity: quantity}
	}
	if quantity > maxQuantity {
		return Configuration{}, &QuantityLimitError{Quantity: quantity, Limit: maxQuantity}
	}
	return Configuration{MaxNumber: maxNumber, Quantity: quantity}, nil
}
