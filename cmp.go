package uint128

import "github.com/consensys/gnark/frontend"

// IsZero returns 1 if a == 0 and 0 otherwise.
func (u *U128API) IsZero(a U128) frontend.Variable {
	return u.api.Mul(u.api.IsZero(a.Lo), u.api.IsZero(a.Hi))
}

// IsEqual returns 1 if a == b and 0 otherwise. Limb equality is sufficient as
// both operands carry canonical 64-bit limbs.
func (u *U128API) IsEqual(a, b U128) frontend.Variable {
	loEq := u.api.IsZero(u.api.Sub(a.Lo, b.Lo))
	hiEq := u.api.IsZero(u.api.Sub(a.Hi, b.Hi))
	return u.api.Mul(loEq, hiEq)
}

// AssertIsEqual enforces a == b.
func (u *U128API) AssertIsEqual(a, b U128) {
	u.api.AssertIsEqual(a.Lo, b.Lo)
	u.api.AssertIsEqual(a.Hi, b.Hi)
}

// AssertIsDifferent enforces a != b.
func (u *U128API) AssertIsDifferent(a, b U128) {
	u.api.AssertIsEqual(u.IsEqual(a, b), 0)
}

// IsLess returns 1 if a < b and 0 otherwise. The order is lexicographic on
// (Hi, Lo): the high limbs decide unless they are equal.
func (u *U128API) IsLess(a, b U128) frontend.Variable {
	hiLess := u.cmp64.IsLess(a.Hi, b.Hi)
	hiEq := u.api.IsZero(u.api.Sub(a.Hi, b.Hi))
	loLess := u.cmp64.IsLess(a.Lo, b.Lo)
	// hiLess and hiEq are never set together, so the sum stays boolean
	return u.api.Add(hiLess, u.api.Mul(hiEq, loLess))
}

// IsLessOrEqual returns 1 if a <= b and 0 otherwise.
func (u *U128API) IsLessOrEqual(a, b U128) frontend.Variable {
	return u.api.Sub(1, u.IsLess(b, a))
}

// AssertIsLess enforces a < b.
func (u *U128API) AssertIsLess(a, b U128) {
	u.api.AssertIsEqual(u.IsLess(a, b), 1)
}

// AssertIsLessOrEqual enforces a <= b.
func (u *U128API) AssertIsLessOrEqual(a, b U128) {
	u.api.AssertIsEqual(u.IsLess(b, a), 0)
}

// Cmp returns 1 if a > b, 0 if a == b and -1 (as a field element) if a < b,
// following the convention of [frontend.API.Cmp].
func (u *U128API) Cmp(a, b U128) frontend.Variable {
	return u.api.Sub(u.IsLess(b, a), u.IsLess(a, b))
}

// Min returns the smaller of a and b.
func (u *U128API) Min(a, b U128) U128 {
	return u.Select(u.IsLess(a, b), a, b)
}

// Max returns the larger of a and b.
func (u *U128API) Max(a, b U128) U128 {
	return u.Select(u.IsLess(a, b), b, a)
}
