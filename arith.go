package uint128

import (
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/std/math/bitslice"
)

// All checked operations follow the same pattern: combine limbs in the native
// field where the intermediate result may exceed 64 bits, split it at bit 64
// into a canonical limb and an exact carry (or borrow) term, propagate the
// carry into the other limb and range check the final high limb to 64 bits.
// The range check is the overflow assertion: a result that does not fit in
// 128 bits makes the constraint system unsatisfiable.

// Add returns a + b. Overflow beyond 128 bits is unsatisfiable.
func (u *U128API) Add(a, b U128) U128 {
	// low < 2^65, so the carry is a single bit.
	low := u.api.Add(a.Lo, b.Lo)
	lo, carry := bitslice.Partition(u.api, low, limbBits, bitslice.WithNbDigits(limbBits+1))
	high := u.api.Add(a.Hi, b.Hi, carry)
	u.rchecker.Check(high, limbBits)
	return U128{Lo: lo, Hi: high}
}

// Sub returns a - b. Underflow is unsatisfiable.
func (u *U128API) Sub(a, b U128) U128 {
	// Bias the low difference by 2^64 so it stays in [1, 2^65). The upper
	// part of the partition is then 1 exactly when a.Lo >= b.Lo, i.e. no
	// borrow was taken.
	low := u.api.Add(u.api.Sub(a.Lo, b.Lo), twoPow64)
	lo, noBorrow := bitslice.Partition(u.api, low, limbBits, bitslice.WithNbDigits(limbBits+1))
	borrow := u.api.Sub(1, noBorrow)
	high := u.api.Sub(u.api.Sub(a.Hi, b.Hi), borrow)
	// a negative high limb wraps to a near-modulus field element and fails
	// the range check
	u.rchecker.Check(high, limbBits)
	return U128{Lo: lo, Hi: high}
}

// Mul returns a * b. The operation is unsatisfiable when the product does not
// fit in 128 bits, and, structurally, whenever both operands have a nonzero
// high limb (such a product never fits).
func (u *U128API) Mul(a, b U128) U128 {
	u.api.AssertIsEqual(u.api.Mul(a.Hi, b.Hi), 0)
	lo, carry := u.mulLow(a, b)
	var high frontend.Variable
	if u.api.Compiler().FieldBitLen() > 196 {
		// with enough headroom a single wide product covers both cross
		// terms: (aLo+aHi)*(bLo+bHi) = low + aLo*bHi + aHi*bLo since
		// aHi*bHi == 0
		wide := u.api.Mul(u.api.Add(a.Lo, a.Hi), u.api.Add(b.Lo, b.Hi))
		high = u.api.Add(u.api.Sub(wide, u.api.Mul(a.Lo, b.Lo)), carry)
	} else {
		high = u.api.Add(u.api.Mul(a.Lo, b.Hi), u.api.Mul(a.Hi, b.Lo), carry)
	}
	u.rchecker.Check(high, limbBits)
	return U128{Lo: lo, Hi: high}
}

// MulWrapping returns a * b truncated to 128 bits, without any overflow
// assertion. It is used by [U128API.Lsh] where the bits shifted out beyond
// bit 127 are discarded rather than rejected.
func (u *U128API) MulWrapping(a, b U128) U128 {
	lo, carry := u.mulLow(a, b)
	// aHi*bHi contributes only above bit 128 and is dropped entirely. The
	// cross-term sum is below 2^130.
	high := u.api.Add(u.api.Mul(a.Lo, b.Hi), u.api.Mul(a.Hi, b.Lo), carry)
	hi, _ := bitslice.Partition(u.api, high, limbBits, bitslice.WithNbDigits(2*limbBits+2))
	return U128{Lo: lo, Hi: hi}
}

// mulLow computes the low partial product aLo*bLo and splits it into the
// canonical low limb and the carry into the high limb.
func (u *U128API) mulLow(a, b U128) (lo, carry frontend.Variable) {
	low := u.api.Mul(a.Lo, b.Lo)
	return bitslice.Partition(u.api, low, limbBits, bitslice.WithNbDigits(2*limbBits))
}
