package domain

import "assistant/pkg/serrors"

// PhoneLength is the exact number of digits a phone number must have.
const PhoneLength = 10

// Phone is a phone number made of exactly PhoneLength decimal digits.
// Construct it with NewPhone to enforce the invariant.
type Phone string

// NewPhone validates value and returns it as a Phone.
func NewPhone(value string) (Phone, error) {
	if !IsValidPhone(value) {
		return "", serrors.With(serrors.ErrInvalidFormat, "invalid phone format %q, should be %d digits", value, PhoneLength)
	}

	return Phone(value), nil
}

// IsValidPhone reports whether value consists of exactly PhoneLength ASCII digits.
func IsValidPhone(value string) bool {
	if len(value) != PhoneLength {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}

	return true
}

func (p Phone) String() string { return string(p) }
