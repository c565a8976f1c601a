// Package denary provides a growable buffer of base-10 digits.
//
// A Buffer stores one decimal digit per slot, least significant digit
// first. Reading it back most significant digit first yields the usual
// written form of the number:
//
//  Conceptually: 1234
//  Internally:   {4, 3, 2, 1}
//
// Digit Order
//
// Index 0 always holds the least significant digit. "Left" refers to the
// most significant end and "right" to the least significant end, matching
// the written form rather than the storage order:
//
//  PushLeft(5):  1234 -> 51234    {4, 3, 2, 1} -> {4, 3, 2, 1, 5}
//  PushRight(5): 1234 -> 12345    {4, 3, 2, 1} -> {5, 4, 3, 2, 1}
//  ShiftLeft:    1234 -> 12340    {4, 3, 2, 1} -> {0, 4, 3, 2, 1}
//  ShiftRight:   1234 -> 123      {4, 3, 2, 1} -> {3, 2, 1}
//
// Length and Capacity
//
// A Buffer tracks the number of active digits (Len) separately from the
// number of allocated slots (Cap). Slots at or above Len are always zero,
// so extending the active region never exposes stale digits. Reads above
// Cap return zero rather than failing: conceptually 1234 and 00001234 are
// the same number, so every buffer behaves as if it were zero padded
// without bound.
//
// Buffers from New grow on demand by reallocating to the next power of
// two. Buffers from NewFixed never reallocate; operations that would need
// more room fail with ErrCapacityExceeded (or ErrOverflow, when a carry
// chain runs past the top slot) and leave the buffer exactly as it was.
//
// Popping the most significant digit keeps the structural length of what
// remains, so it may expose leading zeros; only FromString trims them.
//
// A Buffer is owned by a single caller. Concurrent use of one Buffer from
// multiple goroutines must be serialized by the caller.
package denary
