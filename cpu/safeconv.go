package cpu

import (
	"fmt"
	"math"
)

// Safe numeric conversions for values narrowed or reinterpreted across a
// width or signed/unsigned boundary: image lengths in the loader, address
// flags and signed display in cmd/vaxcore, and PFNs in the MMU's PTE code.

// SafeIntToUint32 safely converts int to uint32
// Returns error if value is negative or exceeds uint32 range
func SafeIntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("cannot convert negative int %d to uint32", v)
	}
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("int value %d exceeds uint32 maximum", v)
	}
	return uint32(v), nil
}

// AsInt32 converts uint32 to int32 for display purposes
// This is intentional for showing the signed interpretation of a uint32 value
// No error checking as the bit pattern is preserved
func AsInt32(v uint32) int32 {
	//nolint:gosec // G115: Intentional conversion for signed display
	return int32(v)
}

// SafeUint64ToUint32 safely converts uint64 to uint32
// Returns error if value exceeds uint32 range
func SafeUint64ToUint32(v uint64) (uint32, error) {
	if v > math.MaxUint32 {
		return 0, fmt.Errorf("uint64 value %d exceeds uint32 maximum", v)
	}
	return uint32(v), nil
}

// SafeUint32ToPFN validates that v fits the 21-bit page frame number field
// of a PTE (bits 0-20). Returns error if any higher bit is set.
func SafeUint32ToPFN(v uint32) (uint32, error) {
	if v > 0x1FFFFF {
		return 0, fmt.Errorf("value 0x%X exceeds 21-bit PFN range", v)
	}
	return v, nil
}
