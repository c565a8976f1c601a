// Package integer converts digit buffers to and from big integers.
//
// It is the arbitrary precision boundary of the module: embedding code
// that already holds a math/big value uses FromBig and Big to cross into
// and out of the digit representation, and Add to apply a big value to a
// buffer digit by digit.
//
// The digit representation is unsigned, so negative values are rejected
// with ErrNegative on the way in.
package integer
