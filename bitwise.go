package uint128

import (
	"math/big"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bits"
	"github.com/consensys/gnark/std/math/bitslice"
	"github.com/consensys/gnark/std/math/uints"
)

// Bitwise operations have no closed form in the field, so each limb is cast
// into the bytewise binary field, combined there with lookup tables and
// recomposed. The casts are checked: the recomposition of the bytes is
// asserted to equal the original limb.

// And returns the bitwise AND of a and b.
func (u *U128API) And(a, b U128) U128 {
	return u.perLimb(a, b, u.binaryField().And)
}

// Or returns the bitwise OR of a and b.
func (u *U128API) Or(a, b U128) U128 {
	return u.perLimb(a, b, u.binaryField().Or)
}

// Xor returns the bitwise XOR of a and b.
func (u *U128API) Xor(a, b U128) U128 {
	return u.perLimb(a, b, u.binaryField().Xor)
}

// Not returns the bitwise complement of a.
func (u *U128API) Not(a U128) U128 {
	bf := u.binaryField()
	return U128{
		Lo: bf.ToValue(bf.Not(bf.ValueOf(a.Lo))),
		Hi: bf.ToValue(bf.Not(bf.ValueOf(a.Hi))),
	}
}

func (u *U128API) perLimb(a, b U128, op func(...uints.U64) uints.U64) U128 {
	bf := u.binaryField()
	return U128{
		Lo: bf.ToValue(op(bf.ValueOf(a.Lo), bf.ValueOf(b.Lo))),
		Hi: bf.ToValue(op(bf.ValueOf(a.Hi), bf.ValueOf(b.Hi))),
	}
}

// Lsh returns a shifted left by k bits, discarding bits shifted beyond bit
// 127. Shift amounts of 128 or more are unsatisfiable.
func (u *U128API) Lsh(a, k U128) U128 {
	return u.MulWrapping(a, u.pow2(k))
}

// Rsh returns a shifted right by k bits. Shift amounts of 128 or more are
// unsatisfiable.
func (u *U128API) Rsh(a, k U128) U128 {
	return u.Div(a, u.pow2(k))
}

// pow2 computes 2^k as a [U128]. There is no native shift over variables, so
// the power is synthesized by square-and-multiply over the 7 low-order bits
// of the shift amount: the accumulator picks up r = 2^(2^i) for every set bit
// i. The 7-bit decomposition doubles as the shift-overflow check, together
// with the zero high limb it enforces k < 128.
func (u *U128API) pow2(k U128) U128 {
	u.api.AssertIsEqual(k.Hi, 0)
	kbits := bits.ToBinary(u.api, k.Lo, bits.WithNbDigits(7))
	y := frontend.Variable(1)
	r := frontend.Variable(2)
	for i := range kbits {
		y = u.api.Select(kbits[i], u.api.Mul(y, r), y)
		r = u.api.Mul(r, r)
	}
	lo, hi := bitslice.Partition(u.api, y, limbBits, bitslice.WithNbDigits(2*limbBits))
	return U128{Lo: lo, Hi: hi}
}

// LshConst returns a shifted left by a shift amount known at compile time,
// discarding bits shifted beyond bit 127. It is cheaper than [U128API.Lsh] as
// the limbs are only repartitioned. It panics if k is out of [0, 128).
func (u *U128API) LshConst(a U128, k int) U128 {
	switch {
	case k == 0:
		return a
	case k < limbBits:
		loLow, loHigh := bitslice.Partition(u.api, a.Lo, uint(limbBits-k), bitslice.WithNbDigits(limbBits))
		hiLow, _ := bitslice.Partition(u.api, a.Hi, uint(limbBits-k), bitslice.WithNbDigits(limbBits))
		mul := new(big.Int).Lsh(big.NewInt(1), uint(k))
		return U128{
			Lo: u.api.Mul(loLow, mul),
			Hi: u.api.Add(u.api.Mul(hiLow, mul), loHigh),
		}
	case k == limbBits:
		return U128{Lo: 0, Hi: a.Lo}
	case k < 2*limbBits:
		loLow, _ := bitslice.Partition(u.api, a.Lo, uint(2*limbBits-k), bitslice.WithNbDigits(limbBits))
		mul := new(big.Int).Lsh(big.NewInt(1), uint(k-limbBits))
		return U128{Lo: 0, Hi: u.api.Mul(loLow, mul)}
	default:
		panic("shift amount must be in [0, 128)")
	}
}

// RshConst returns a shifted right by a shift amount known at compile time.
// It panics if k is out of [0, 128).
func (u *U128API) RshConst(a U128, k int) U128 {
	switch {
	case k == 0:
		return a
	case k < limbBits:
		_, loHigh := bitslice.Partition(u.api, a.Lo, uint(k), bitslice.WithNbDigits(limbBits))
		hiLow, hiHigh := bitslice.Partition(u.api, a.Hi, uint(k), bitslice.WithNbDigits(limbBits))
		mul := new(big.Int).Lsh(big.NewInt(1), uint(limbBits-k))
		return U128{
			Lo: u.api.Add(loHigh, u.api.Mul(hiLow, mul)),
			Hi: hiHigh,
		}
	case k == limbBits:
		return U128{Lo: a.Hi, Hi: 0}
	case k < 2*limbBits:
		_, hiHigh := bitslice.Partition(u.api, a.Hi, uint(k-limbBits), bitslice.WithNbDigits(limbBits))
		return U128{Lo: hiHigh, Hi: 0}
	default:
		panic("shift amount must be in [0, 128)")
	}
}
