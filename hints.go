package uint128

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark/constraint/solver"
)

func init() {
	solver.RegisterHint(GetHints()...)
}

// GetHints returns all hint functions used in this package. This method is
// useful for registering all hints in the solver.
func GetHints() []solver.Hint {
	return []solver.Hint{divRemHint}
}

// divRemHint computes the candidate quotient and remainder for
// [U128API.Div] and [U128API.Rem]. Inputs are the limbs (aLo, aHi, bLo, bHi)
// and outputs are the limbs (qLo, qHi, rLo, rHi). The outputs are not trusted
// by the circuit: they are range checked and validated by reconstructing the
// dividend.
func divRemHint(_ *big.Int, inputs, outputs []*big.Int) error {
	if len(inputs) != 4 {
		return errors.New("input must be 4 elements")
	}
	if len(outputs) != 4 {
		return errors.New("output must be 4 elements")
	}
	for i := range inputs {
		if !inputs[i].IsUint64() {
			return errors.New("input limb must be uint64")
		}
	}
	a := recompose(inputs[0], inputs[1])
	b := recompose(inputs[2], inputs[3])
	if b.Sign() == 0 {
		return errors.New("division by zero")
	}
	q, r := divRem(a, b)
	outputs[1].QuoRem(q, twoPow64, outputs[0])
	outputs[3].QuoRem(r, twoPow64, outputs[2])
	return nil
}

// recompose packs two 64-bit limbs into lo + hi*2^64.
func recompose(lo, hi *big.Int) *big.Int {
	v := new(big.Int).Mul(hi, twoPow64)
	return v.Add(v, lo)
}

// divRem performs binary long division by repeated doubling: the divisor is
// doubled recursively until it would exceed the dividend, then on the way
// back the quotient is doubled at each level and incremented whenever the
// running remainder still covers the divisor. It maintains a = q*b + r with
// r < b. The divisor must be nonzero.
func divRem(a, b *big.Int) (q, r *big.Int) {
	if a.Cmp(b) < 0 {
		return big.NewInt(0), new(big.Int).Set(a)
	}
	q, r = divRem(a, new(big.Int).Lsh(b, 1))
	q.Lsh(q, 1)
	if r.Cmp(b) >= 0 {
		q.Add(q, big.NewInt(1))
		r.Sub(r, b)
	}
	return q, r
}
