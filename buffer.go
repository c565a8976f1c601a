package denary

import "github.com/calebcase/oops"

var (
	ErrInvalidDigit     = Error.New("invalid digit")
	ErrIndexOutOfRange  = Error.New("index out of range")
	ErrCapacityExceeded = Error.New("capacity exceeded")
)

// minCapacity is the smallest allocation made by a growable buffer.
const minCapacity = 8

// Buffer is a sequence of decimal digits stored least significant first.
//
// The zero value is not usable; construct with New, NewFixed, or
// FromString.
type Buffer struct {
	// digits holds every allocated slot. Slots at index >= length are
	// zero.
	digits []Digit
	length int
	fixed  bool
}

// New returns an empty buffer that grows on demand.
func New() *Buffer {
	return &Buffer{
		digits: make([]Digit, minCapacity),
	}
}

// NewFixed returns an empty buffer with a hard capacity. Operations that
// would need more than capacity slots fail instead of reallocating.
func NewFixed(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}

	return &Buffer{
		digits: make([]Digit, capacity),
		fixed:  true,
	}
}

// Len returns the number of active digits. A zero value buffer has
// length 0.
func (b *Buffer) Len() int {
	return b.length
}

// Cap returns the number of allocated digit slots.
func (b *Buffer) Cap() int {
	return len(b.digits)
}

func nextPowerOf2(x int) int {
	n := minCapacity
	for n < x {
		n *= 2
	}

	return n
}

// grow ensures at least size slots are allocated. New slots are zero.
func (b *Buffer) grow(size int) (err error) {
	if size <= len(b.digits) {
		return nil
	}

	if b.fixed {
		return oops.Trace(ErrCapacityExceeded)
	}

	resized := make([]Digit, nextPowerOf2(size))
	copy(resized, b.digits[:b.length])
	b.digits = resized

	return nil
}

// ReadAt returns the digit at index i. Indexes outside the allocated
// range read as the conceptual leading zero; reads never fail.
func (b *Buffer) ReadAt(i int) Digit {
	if i < 0 || i >= len(b.digits) {
		return 0
	}

	return b.digits[i]
}

// WriteAt sets the digit at index i. Writing at or above the active
// length extends it to i+1; the slots in between were already zero.
//
// A growable buffer reallocates to fit i. A fixed buffer fails with
// ErrIndexOutOfRange when i is outside [0, Cap).
func (b *Buffer) WriteAt(i int, d Digit) (err error) {
	if !CheckDigit(d) {
		return oops.Trace(ErrInvalidDigit)
	}

	if i < 0 || (b.fixed && i >= len(b.digits)) {
		return oops.Trace(ErrIndexOutOfRange)
	}

	err = b.grow(i + 1)
	if err != nil {
		return err
	}

	b.digits[i] = d

	if i >= b.length {
		b.length = i + 1
	}

	return nil
}

// Reset clears the buffer to the zero value keeping its allocation and
// mode.
func (b *Buffer) Reset() {
	for i := 0; i < b.length; i++ {
		b.digits[i] = 0
	}

	b.length = 0
}

// Clone returns a deep copy of the buffer, including its mode and
// capacity.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		digits: make([]Digit, len(b.digits)),
		length: b.length,
		fixed:  b.fixed,
	}
	copy(c.digits, b.digits)

	return c
}

// Digits returns a copy of the active digits, least significant first.
func (b *Buffer) Digits() []Digit {
	ds := make([]Digit, b.length)
	copy(ds, b.digits[:b.length])

	return ds
}
