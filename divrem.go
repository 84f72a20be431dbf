package uint128

import "fmt"

// Div returns the quotient a / b (integer division). A zero divisor is
// unsatisfiable.
//
// There is no closed field-arithmetic formula for integer division, so the
// quotient and remainder are produced by an unconstrained hint and then
// validated in-circuit: the dividend is reconstructed as b*q + r with the
// checked operations and the remainder is asserted to be below the divisor.
func (u *U128API) Div(a, b U128) U128 {
	q, _ := u.divRem(a, b)
	return q
}

// Rem returns the remainder a % b. A zero divisor is unsatisfiable.
func (u *U128API) Rem(a, b U128) U128 {
	_, r := u.divRem(a, b)
	return r
}

func (u *U128API) divRem(a, b U128) (q, r U128) {
	res, err := u.api.Compiler().NewHint(divRemHint, 4, a.Lo, a.Hi, b.Lo, b.Hi)
	if err != nil {
		panic(fmt.Sprintf("error in calling divRemHint: %v", err))
	}
	// hint outputs are unconstrained, bring them back to canonical limbs
	q = u.ValueOfLimbsLE(res[0], res[1])
	r = u.ValueOfLimbsLE(res[2], res[3])

	// b*q + r == a, with checked operations so that b*q cannot wrap
	u.AssertIsEqual(u.Add(u.Mul(b, q), r), a)
	u.AssertIsLess(r, b)
	return q, r
}
