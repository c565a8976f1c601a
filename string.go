package denary

import (
	"strings"

	"github.com/calebcase/oops"
)

var ErrInvalidCharacter = Error.New("invalid character")

// FromString parses a decimal string into a growable buffer. The text
// is scanned right to left so digits land least significant first.
// ASCII whitespace and underscore separators are skipped; any other
// non-digit fails with ErrInvalidCharacter. Insignificant leading zeros
// are trimmed, so "001234" and "1234" parse to the same buffer and an
// empty or all-zero input yields the zero value.
func FromString(text string) (_ *Buffer, err error) {
	b := New()

	for i := len(text) - 1; i >= 0; i-- {
		c := text[i]

		switch c {
		case ' ', '\t', '\n', '\v', '\f', '\r', '_':
			continue
		}

		if c < '0' || c > '9' {
			return nil, oops.Trace(ErrInvalidCharacter)
		}

		err = b.PushLeft(c - '0')
		if err != nil {
			return nil, err
		}
	}

	for b.length > 0 && b.digits[b.length-1] == 0 {
		b.length--
	}

	return b, nil
}

// String renders the digits most significant first. The zero value
// renders as "0". No trimming happens here beyond what the length
// already encodes, so a buffer holding exposed leading zeros prints
// them.
func (b *Buffer) String() string {
	if b.length == 0 {
		return "0"
	}

	sb := &strings.Builder{}
	sb.Grow(b.length)

	for i := b.length - 1; i >= 0; i-- {
		sb.WriteByte('0' + b.digits[i])
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (b *Buffer) MarshalText() (text []byte, err error) {
	return []byte(b.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. A growable
// receiver is replaced wholesale; a fixed receiver keeps its mode and
// capacity and fails with ErrCapacityExceeded when the parsed value
// does not fit, leaving its previous state intact.
func (b *Buffer) UnmarshalText(text []byte) (err error) {
	parsed, err := FromString(string(text))
	if err != nil {
		return err
	}

	if b.fixed {
		if parsed.length > len(b.digits) {
			return oops.Trace(ErrCapacityExceeded)
		}

		b.Reset()
		copy(b.digits, parsed.digits[:parsed.length])
		b.length = parsed.length

		return nil
	}

	*b = *parsed

	return nil
}
