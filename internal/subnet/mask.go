package subnet

import (
	"math/bits"
	"strconv"
	"strings"
)

// MaskFromPrefix returns the 32-bit mask with the high p bits set.
// p=0 yields 0 and p=32 yields all ones.
func MaskFromPrefix(p int) uint32 {
	if p <= 0 {
		return 0
	}
	if p >= 32 {
		return 0xFFFFFFFF
	}
	return 0xFFFFFFFF << (32 - p)
}

// PrefixFromMask returns the prefix length of a contiguous subnet mask.
// Masks with interleaved zero bits are rejected.
func PrefixFromMask(m uint32) (int, error) {
	p := bits.LeadingZeros32(^m)
	if MaskFromPrefix(p) != m {
		return 0, &FormatError{Input: Addr(m).String(), Reason: "subnet mask bits are not contiguous"}
	}
	return p, nil
}

// ParsePrefix parses a prefix length given as "N", "/N" or a dotted-decimal
// subnet mask such as "255.255.255.0".
func ParsePrefix(s string) (int, error) {
	text := strings.TrimSpace(s)
	text = strings.TrimPrefix(text, "/")

	if strings.Contains(text, ".") {
		mask, err := ParseAddr(text)
		if err != nil {
			return 0, err
		}
		return PrefixFromMask(uint32(mask))
	}

	p, err := strconv.Atoi(text)
	if err != nil {
		return 0, &FormatError{Input: s, Reason: "prefix length is not a number"}
	}
	if p < 0 || p > 32 {
		return 0, &RangeError{What: "prefix", Value: text, Allowed: "0-32"}
	}
	return p, nil
}
