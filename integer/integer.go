package integer

import (
	"math/big"

	"github.com/calebcase/oops"
	"github.com/zeebo/errs"

	"github.com/denary/denary"
)

// Error is the class of all errors returned by this package.
var Error = errs.Class("denary: integer")

var ErrNegative = Error.New("negative value")

var base = big.NewInt(denary.Base)

// Big returns the value of b as a big integer.
func Big(b *denary.Buffer) *big.Int {
	x := new(big.Int)
	d := new(big.Int)

	for i := b.Len() - 1; i >= 0; i-- {
		x.Mul(x, base)
		d.SetUint64(uint64(b.ReadAt(i)))
		x.Add(x, d)
	}

	return x
}

// FromBig returns a growable buffer holding the value of x. Negative
// values fail with ErrNegative; the buffer representation has no sign.
func FromBig(x *big.Int) (_ *denary.Buffer, err error) {
	if x.Sign() < 0 {
		return nil, oops.Trace(ErrNegative)
	}

	b := denary.New()

	v := new(big.Int).Set(x)
	mod := new(big.Int)

	for i := 0; v.Sign() > 0; i++ {
		v.DivMod(v, base, mod)

		err = b.WriteAt(i, denary.Digit(mod.Uint64()))
		if err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Add adds a non-negative big integer to b by decomposing it into
// decimal digits and applying AddAt at increasing offsets. The addition
// is staged on a scratch copy, so a failure on a fixed buffer leaves b
// unchanged.
func Add(b *denary.Buffer, x *big.Int) (err error) {
	if x.Sign() < 0 {
		return oops.Trace(ErrNegative)
	}

	scratch := b.Clone()

	v := new(big.Int).Set(x)
	mod := new(big.Int)

	for i := 0; v.Sign() > 0; i++ {
		v.DivMod(v, base, mod)

		d := denary.Digit(mod.Uint64())
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
