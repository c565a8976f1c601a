package denary

import "github.com/calebcase/oops"

var (
	ErrOverflow           = Error.New("overflow")
	ErrUnsupportedOperand = Error.New("unsupported operand")
)

// AddAt adds the single digit d to the digit at index i, propagating
// carries toward the most significant end until none remains. Adding a
// zero digit is a no-op.
//
// The end of the carry chain is found before the first write, so a
// failing call leaves the buffer untouched: a fixed buffer fails with
// ErrIndexOutOfRange when i is outside [0, Cap) and with ErrOverflow
// when the carry would run past the top slot. A growable buffer
// reallocates to hold the final carry digit instead.
func (b *Buffer) AddAt(i int, d Digit) (err error) {
	if !CheckDigit(d) {
		return oops.Trace(ErrInvalidDigit)
	}

	if i < 0 || (b.fixed && i >= len(b.digits)) {
		return oops.Trace(ErrIndexOutOfRange)
	}

	if d == 0 {
		return nil
	}

	// The chain ends at the first position that absorbs the carry.
	// Digits above it are untouched.
	end := i
	if int(b.ReadAt(i))+int(d) >= Base {
		end = i + 1
		for b.ReadAt(end) == Base-1 {
			end++
		}
	}

	if b.fixed && end >= len(b.digits) {
		return oops.Trace(ErrOverflow)
	}

	err = b.grow(end + 1)
	if err != nil {
		return err
	}

	carry := int(d)
	for pos := i; carry != 0; pos++ {
		sum := int(b.digits[pos]) + carry
		carry = sum / Base
		b.digits[pos] = Digit(sum % Base)

		if pos >= b.length {
			b.length = pos + 1
		}
	}

	return nil
}

// Add adds a non-negative value by decomposing it into decimal digits
// and applying AddAt at offsets 0, 1, 2, and so on. Negative values
// fail with ErrUnsupportedOperand; this representation has no sign.
//
// The addition is staged on a scratch copy and committed at the end, so
// a failure on a fixed buffer leaves the receiver unchanged.
func (b *Buffer) Add(value int64) (err error) {
	if value < 0 {
		return oops.Trace(ErrUnsupportedOperand)
	}

	if value == 0 {
		return nil
	}

	scratch := b.Clone()

	for i := 0; value > 0; i++ {
		d := Digit(value % Base)
		value /= Base

		if d == 0 {
			continue
		}

		err = scratch.AddAt(i, d)
		if err != nil {
			return err
		}
	}

	*b = *scratch

	return nil
}
