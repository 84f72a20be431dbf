package uint128

import "github.com/consensys/gnark/std/math/uints"

// The 16-byte little-endian layout is the canonical serialized form of a
// 128-bit integer: bytes 0-7 compose the low limb and bytes 8-15 the high
// limb, least significant byte first.

// FromLEBytes initializes a [U128] from its 16-byte little-endian
// representation.
func (u *U128API) FromLEBytes(bts [16]uints.U8) U128 {
	bf := u.binaryField()
	return U128{
		Lo: bf.ToValue(bf.PackLSB(bts[:8]...)),
		Hi: bf.ToValue(bf.PackLSB(bts[8:]...)),
	}
}

// ToLEBytes decomposes a [U128] into its 16-byte little-endian
// representation. The decomposition of each limb is produced by a hint and
// verified by recomposition.
func (u *U128API) ToLEBytes(a U128) [16]uints.U8 {
	bf := u.binaryField()
	lo := bf.UnpackLSB(bf.ValueOf(a.Lo))
	hi := bf.UnpackLSB(bf.ValueOf(a.Hi))
	var bts [16]uints.U8
	copy(bts[:8], lo)
	copy(bts[8:], hi)
	return bts
}
