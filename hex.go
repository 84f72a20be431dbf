package uint128

import "fmt"

// NewU128FromHex creates a new [U128] from a hexadecimal literal of the form
// "0x" followed by up to 32 hex digits. It can both be used in-circuit to
// initialize a constant or as a witness assignment.
//
// The rightmost 16 digits form the low limb and any remaining leading digits
// form the high limb. Both uppercase and lowercase digits are accepted. It
// panics on a missing "0x" prefix, on a payload wider than 128 bits or on a
// character that is not a hex digit.
func NewU128FromHex(s string) U128 {
	if len(s) < 2 || s[0] != '0' || s[1] != 'x' {
		panic("hex literal must start with 0x")
	}
	if len(s) >= 35 {
		panic("hex literal does not fit in 128 bits")
	}
	digits := s[2:]
	split := 0
	if len(digits) > 16 {
		split = len(digits) - 16
	}
	var lo, hi uint64
	for i := 0; i < split; i++ {
		hi = hi<<4 | uint64(hexDigit(digits[i]))
	}
	for i := split; i < len(digits); i++ {
		lo = lo<<4 | uint64(hexDigit(digits[i]))
	}
	return U128{Lo: lo, Hi: hi}
}

func hexDigit(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - 48
	case c >= 'A' && c <= 'F':
		return c - 55
	case c >= 'a' && c <= 'f':
		return c - 87
	default:
		panic(fmt.Sprintf("invalid hex digit %q", c))
	}
}
