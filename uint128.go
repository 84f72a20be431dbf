// Package uint128 implements a 128-bit unsigned integer type for circuits.
//
// Circuit arithmetic is performed in the native field, which is of prime
// order, so there is no built-in notion of a fixed-width integer: no
// wraparound, no carry, no bit operations. This package emulates a 128-bit
// unsigned integer on top of the native field by storing it as two 64-bit
// limbs and re-deriving integer semantics (overflow detection, ordering,
// division, bitwise logic, shifting) from field arithmetic, range checks and
// equality assertions.
//
// Values are immutable: every operation returns a fresh [U128]. Overflows,
// underflows and out-of-range shift amounts are not recoverable errors but
// unsatisfiable constraints, i.e. the witness solver (and hence proving)
// fails. This mirrors the behaviour of checked integer arithmetic where any
// violation aborts the computation.
//
// The package requires the native field modulus to be strictly wider than 128
// bits so that a two-limb product of 64-bit quantities fits in the field
// before reduction.
package uint128

import (
	"errors"
	"math/big"
	"sync"

	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/logger"
	"github.com/consensys/gnark/std/math/bitslice"
	"github.com/consensys/gnark/std/math/cmp"
	"github.com/consensys/gnark/std/math/uints"
	"github.com/consensys/gnark/std/rangecheck"
	"github.com/rs/zerolog"
)

// limbBits is the width of a single limb. A [U128] is always a pair of limbs
// of this width.
const limbBits = 64

// twoPow64 = 2^64, the weight of the high limb.
var twoPow64 = new(big.Int).Lsh(big.NewInt(1), limbBits)

// U128 represents a 128-bit unsigned integer in-circuit as a pair of 64-bit
// limbs stored in native field elements. The represented value is
//
//	Lo + Hi * 2^64.
//
// For any U128 produced by the constructors or operations of [U128API] both
// limbs are canonical, i.e. strictly less than 2^64. Users should not
// assemble a U128 from raw variables directly, but rather use [NewU128] (for
// witness assignment or in-circuit constants) or [U128API.ValueOfLimbsLE]
// (for in-circuit variable initialization, which range checks the limbs).
type U128 struct {
	Lo, Hi frontend.Variable
}

// NewU128 creates a new [U128] from a big integer. It can both be used
// in-circuit to initialize a constant or as a witness assignment. It panics
// if v is negative or does not fit in 128 bits.
func NewU128(v *big.Int) U128 {
	if v.Sign() < 0 || v.BitLen() > 2*limbBits {
		panic("value does not fit in 128 bits")
	}
	lo, hi := new(big.Int), new(big.Int)
	hi.QuoRem(v, twoPow64, lo)
	return U128{Lo: lo, Hi: hi}
}

// NewU128FromLimbs creates a new [U128] from its little-endian 64-bit limbs.
// It can both be used in-circuit to initialize a constant or as a witness
// assignment.
func NewU128FromLimbs(lo, hi uint64) U128 {
	return U128{Lo: lo, Hi: hi}
}

// U128API defines methods for manipulating [U128] values in-circuit. Use
// [New] to initialize.
type U128API struct {
	api      frontend.API
	rchecker frontend.Rangechecker
	// cmp64 compares canonical 64-bit limbs. The absolute difference of two
	// limbs is bounded by 2^64-1, which is a valid bound for any field wider
	// than 128 bits.
	cmp64 *cmp.BoundedComparator

	// the binary field for bytewise operations is built lazily as its lookup
	// tables are only needed by the bitwise methods.
	bfOnce sync.Once
	bf     *uints.BinaryField[uints.U64]

	log zerolog.Logger
}

// New returns a new [U128API] for manipulating 128-bit unsigned integers over
// the given native API. It errors if the native field modulus is not strictly
// wider than 128 bits, as the limb products computed by [U128API.Mul] need
// headroom in the field before reduction.
func New(api frontend.API) (*U128API, error) {
	if api.Compiler().FieldBitLen() <= 2*limbBits {
		return nil, errors.New("field modulus must be wider than 128 bits")
	}
	maxLimbDiff := new(big.Int).Sub(twoPow64, big.NewInt(1))
	return &U128API{
		api:      api,
		rchecker: rangecheck.New(api),
		cmp64:    cmp.NewBoundedComparator(api, maxLimbDiff, false),
		log:      logger.Logger(),
	}, nil
}

// binaryField returns the bytewise operation tables, building them on first
// use.
func (u *U128API) binaryField() *uints.BinaryField[uints.U64] {
	u.bfOnce.Do(func() {
		bf, err := uints.NewBinaryField[uints.U64](u.api)
		if err != nil {
			u.log.Error().Err(err).Msg("building bytewise tables")
			panic(err)
		}
		u.bf = bf
	})
	return u.bf
}

// ValueOfLimbsLE initializes a [U128] from its little-endian 64-bit limbs
// given as in-circuit variables. Both limbs are range checked to be canonical
// 64-bit values.
func (u *U128API) ValueOfLimbsLE(lo, hi frontend.Variable) U128 {
	u.rchecker.Check(lo, limbBits)
	u.rchecker.Check(hi, limbBits)
	return U128{Lo: lo, Hi: hi}
}

// ValueOfLimbsBE is [U128API.ValueOfLimbsLE] with the argument order swapped.
func (u *U128API) ValueOfLimbsBE(hi, lo frontend.Variable) U128 {
	return u.ValueOfLimbsLE(lo, hi)
}

// ValueOf initializes a [U128] from a single native variable. It enforces
// that v fits in 128 bits and splits it into canonical limbs as
//
//	v = Lo + Hi * 2^64.
func (u *U128API) ValueOf(v frontend.Variable) U128 {
	lo, hi := bitslice.Partition(u.api, v, limbBits, bitslice.WithNbDigits(2*limbBits))
	return U128{Lo: lo, Hi: hi}
}

// ToVariable packs a [U128] back into a single native variable Lo + Hi*2^64.
// The result is exact since the field is wider than 128 bits.
func (u *U128API) ToVariable(a U128) frontend.Variable {
	return u.api.Add(a.Lo, u.api.Mul(a.Hi, twoPow64))
}

// Select returns a if s == 1 and b if s == 0. The selector s must be boolean.
func (u *U128API) Select(s frontend.Variable, a, b U128) U128 {
	return U128{
		Lo: u.api.Select(s, a.Lo, b.Lo),
		Hi: u.api.Select(s, a.Hi, b.Hi),
	}
}
