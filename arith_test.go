package uint128

import (
	"math/big"
	"math/bits"
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/test"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type addCircuit struct {
	A, B, Expected U128
}

func (c *addCircuit) Define(api frontend.API) error {
	u, err := New(api)
	if err != nil {
		return err
	}
	u.AssertIsEqual(u.Add(c.A, c.B), c.Expected)
	return nil
}

func TestAdd(t *testing.T) {
	assert := test.NewAssert(t)
	maxU64 := ^uint64(0)
	assert.CheckCircuit(&addCircuit{},
		test.WithValidAssignment(&addCircuit{A: NewU128FromLimbs(1, 0), B: NewU128FromLimbs(2, 0), Expected: NewU128FromLimbs(3, 0)}),
		// carry propagates into the high limb
		test.WithValidAssignment(&addCircuit{A: NewU128FromLimbs(maxU64, 0), B: NewU128FromLimbs(1, 0), Expected: NewU128FromLimbs(0, 1)}),
		test.WithValidAssignment(&addCircuit{A: NewU128FromLimbs(maxU64, 1), B: NewU128FromLimbs(maxU64, 2), Expected: NewU128FromLimbs(maxU64-1, 4)}),
		// 2^128 - 1 + 1 overflows
		test.WithInvalidAssignment(&addCircuit{A: NewU128FromLimbs(maxU64, maxU64), B: NewU128FromLimbs(1, 0), Expected: NewU128FromLimbs(0, 0)}),
	)
}

type subCircuit struct {
	A, B, Expected U128
}

func (c *subCircuit) Define(api frontend.API) error {
	u, err := New(api)
	if err != nil {
		return err
	}
	u.AssertIsEqual(u.Sub(c.A, c.B), c.Expected)
	return nil
}

func TestSub(t *testing.T) {
	assert := test.NewAssert(t)
	maxU64 := ^uint64(0)
	assert.CheckCircuit(&subCircuit{},
		test.WithValidAssignment(&subCircuit{A: NewU128FromLimbs(3, 0), B: NewU128FromLimbs(1, 0), Expected: NewU128FromLimbs(2, 0)}),
		// borrow from the high limb: 2^64 - 1 = 2^64-1
		test.WithValidAssignment(&subCircuit{A: NewU128FromLimbs(0, 1), B: NewU128FromLimbs(1, 0), Expected: NewU128FromLimbs(maxU64, 0)}),
		test.WithValidAssignment(&subCircuit{A: NewU128FromLimbs(5, 5), B: NewU128FromLimbs(5, 5), Expected: NewU128FromLimbs(0, 0)}),
		// 0 - 1 underflows
		test.WithInvalidAssignment(&subCircuit{A: NewU128FromLimbs(0, 0), B: NewU128FromLimbs(1, 0), Expected: NewU128FromLimbs(maxU64, maxU64)}),
	)
}

type mulCircuit struct {
	A, B, Expected U128
}

func (c *mulCircuit) Define(api frontend.API) error {
	u, err := New(api)
	if err != nil {
		return err
	}
	u.AssertIsEqual(u.Mul(c.A, c.B), c.Expected)
	return nil
}

func TestMul(t *testing.T) {
	assert := test.NewAssert(t)
	hi, lo := bits.Mul64(0x0123456789abcdef, 0xfedcba9876543210)
	assert.CheckCircuit(&mulCircuit{},
		test.WithValidAssignment(&mulCircuit{A: NewU128FromLimbs(3, 0), B: NewU128FromLimbs(5, 0), Expected: NewU128FromLimbs(15, 0)}),
		// low partial product carries into the high limb
		test.WithValidAssignment(&mulCircuit{A: NewU128FromLimbs(0x0123456789abcdef, 0), B: NewU128FromLimbs(0xfedcba9876543210, 0), Expected: NewU128FromLimbs(lo, hi)}),
		// cross term: (2^64 + 1) * 3
		test.WithValidAssignment(&mulCircuit{A: NewU128FromLimbs(1, 1), B: NewU128FromLimbs(3, 0), Expected: NewU128FromLimbs(3, 3)}),
		// both high limbs nonzero is always rejected
		test.WithInvalidAssignment(&mulCircuit{A: NewU128FromLimbs(0, 1), B: NewU128FromLimbs(0, 1), Expected: NewU128FromLimbs(0, 0)}),
		// product exceeds 128 bits
		test.WithInvalidAssignment(&mulCircuit{A: NewU128FromLimbs(0, ^uint64(0)), B: NewU128FromLimbs(2, 0), Expected: NewU128FromLimbs(0, 0)}),
	)
}

type mulWrappingCircuit struct {
	A, B, Expected U128
}

func (c *mulWrappingCircuit) Define(api frontend.API) error {
	u, err := New(api)
	if err != nil {
		return err
	}
	u.AssertIsEqual(u.MulWrapping(c.A, c.B), c.Expected)
	return nil
}

func TestMulWrapping(t *testing.T) {
	assert := test.NewAssert(t)
	assert.CheckCircuit(&mulWrappingCircuit{},
		test.WithValidAssignment(&mulWrappingCircuit{A: NewU128FromLimbs(3, 0), B: NewU128FromLimbs(5, 0), Expected: NewU128FromLimbs(15, 0)}),
		// 2^64 * 2^64 wraps to zero
		test.WithValidAssignment(&mulWrappingCircuit{A: NewU128FromLimbs(0, 1), B: NewU128FromLimbs(0, 1), Expected: NewU128FromLimbs(0, 0)}),
		// (2^127) * 2 wraps to zero
		test.WithValidAssignment(&mulWrappingCircuit{A: NewU128FromLimbs(0, 1<<63), B: NewU128FromLimbs(2, 0), Expected: NewU128FromLimbs(0, 0)}),
		// (2^64+1)*(2^64-1) = 2^128-1, both high limbs used, no truncation yet
		test.WithValidAssignment(&mulWrappingCircuit{A: NewU128FromLimbs(1, 1), B: NewU128FromLimbs(^uint64(0), 0), Expected: NewU128FromLimbs(^uint64(0), ^uint64(0))}),
	)
}

type addSubInverseCircuit struct {
	A, B U128
}

func (c *addSubInverseCircuit) Define(api frontend.API) error {
	u, err := New(api)
	if err != nil {
		return err
	}
	// requires a >= b so that the inner subtraction does not underflow
	u.AssertIsEqual(u.Add(u.Sub(c.A, c.B), c.B), c.A)
	return nil
}

func TestAddSubInverseProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)
	properties.Property("(a - b) + b == a for a >= b", prop.ForAll(
		func(aLo, aHi, bLo, bHi uint64) bool {
			a := valueOfLimbs(aLo, aHi)
			b := valueOfLimbs(bLo, bHi)
			if a.Cmp(b) < 0 {
				a, b = b, a
			}
			witness := &addSubInverseCircuit{A: NewU128(a), B: NewU128(b)}
			return test.IsSolved(&addSubInverseCircuit{}, witness, ecc.BN254.ScalarField()) == nil
		},
		gen.UInt64(), gen.UInt64(), gen.UInt64(), gen.UInt64(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

// valueOfLimbs assembles a 128-bit test value lo + hi*2^64.
func valueOfLimbs(lo, hi uint64) *big.Int {
	v := new(big.Int).Lsh(new(big.Int).SetUint64(hi), 64)
	return v.Add(v, new(big.Int).SetUint64(lo))
}
