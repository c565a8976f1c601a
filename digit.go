package denary

// Digit is a single decimal digit.
type Digit = uint8

// Base is the radix of the representation.
const Base = 10

// CheckDigit returns true if d is a valid decimal digit.
func CheckDigit(d Digit) bool {
	return d < Base
}
