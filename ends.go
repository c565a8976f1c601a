package denary

import "github.com/calebcase/oops"

// PushLeft appends d as the new most significant digit.
//
//  Conceptually: 1234         -> 51234
//  Internally:   {4, 3, 2, 1} -> {4, 3, 2, 1, 5}
func (b *Buffer) PushLeft(d Digit) (err error) {
	if !CheckDigit(d) {
		return oops.Trace(ErrInvalidDigit)
	}

	err = b.grow(b.length + 1)
	if err != nil {
		return err
	}

	b.digits[b.length] = d
	b.length++

	return nil
}

// PopLeft removes and returns the most significant digit. An empty
// buffer returns 0 unchanged.
//
//  Conceptually: 1234         -> 234
//  Internally:   {4, 3, 2, 1} -> {4, 3, 2}
func (b *Buffer) PopLeft() Digit {
	if b.length == 0 {
		return 0
	}

	i := b.length - 1
	d := b.digits[i]

	// Keep the slack zeroed.
	b.digits[i] = 0
	b.length--

	return d
}

// ShiftLeft multiplies the value by 10 by moving every digit one
// position toward the most significant end and placing a zero at
// index 0.
//
//  Conceptually: 1234         -> 12340
//  Internally:   {4, 3, 2, 1} -> {0, 4, 3, 2, 1}
func (b *Buffer) ShiftLeft() (err error) {
	err = b.grow(b.length + 1)
	if err != nil {
		return err
	}

	copy(b.digits[1:b.length+1], b.digits[:b.length])
	b.digits[0] = 0
	b.length++

	return nil
}

// PushRight inserts d as the new least significant digit.
//
//  Conceptually: 1234         -> 12345
//  Internally:   {4, 3, 2, 1} -> {5, 4, 3, 2, 1}
func (b *Buffer) PushRight(d Digit) (err error) {
	if !CheckDigit(d) {
		return oops.Trace(ErrInvalidDigit)
	}

	err = b.ShiftLeft()
	if err != nil {
		return err
	}

	b.digits[0] = d

	return nil
}

// PopRight removes and returns the least significant digit. An empty
// buffer returns 0 unchanged.
//
//  Conceptually: 1234         -> 123
//  Internally:   {4, 3, 2, 1} -> {3, 2, 1}
func (b *Buffer) PopRight() Digit {
	if b.length == 0 {
		return 0
	}

	d := b.digits[0]
	b.ShiftRight()

	return d
}

// ShiftRight divides the value by 10, discarding the least significant
// digit. An empty buffer is left unchanged.
//
//  Conceptually: 1234         -> 123
//  Internally:   {4, 3, 2, 1} -> {3, 2, 1}
func (b *Buffer) ShiftRight() {
	if b.length == 0 {
		return
	}

	copy(b.digits[:b.length-1], b.digits[1:b.length])

	// Keep the slack zeroed.
	b.digits[b.length-1] = 0
	b.length--
}
