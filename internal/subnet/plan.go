package subnet

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"

	"github.com/martinsuchenak/subnetcalc/internal/model"
)

// BitsNeeded returns the smallest b such that 2^b >= n.
func BitsNeeded(n int) (int, error) {
	if n <= 0 {
		return 0, &RangeError{What: "subnet count", Value: strconv.Itoa(n), Allowed: ">= 1"}
	}
	return bits.Len(uint(n - 1)), nil
}

// HostsPerPrefix returns the usable host count for a prefix length.
// /31 point-to-point links use both addresses and /32 is a host route.
func HostsPerPrefix(p int) int {
	switch {
	case p >= 32:
		return 1
	case p == 31:
		return 2
	default:
		return (1 << (32 - p)) - 2
	}
}

// NewPlan derives the plan for carving the desired number of subnets out of
// a network with the given prefix length. The subnet count is rounded up to
// the next power of two.
func NewPlan(prefix, desired int) (model.Plan, error) {
	if prefix < 0 || prefix > 32 {
		return model.Plan{}, &RangeError{What: "prefix", Value: strconv.Itoa(prefix), Allowed: "0-32"}
	}

	borrow, err := BitsNeeded(desired)
	if err != nil {
		return model.Plan{}, err
	}

	newPrefix := prefix + borrow
	if newPrefix > 32 {
		return model.Plan{}, fmt.Errorf("cannot create %d subnets from /%d: %w", desired, prefix,
			&RangeError{What: "new prefix", Value: "/" + strconv.Itoa(newPrefix), Allowed: "0-32"})
	}

	return model.Plan{
		NewPrefix:      newPrefix,
		BitsBorrowed:   borrow,
		SubnetsCreated: 1 << borrow,
		HostsPerSubnet: HostsPerPrefix(newPrefix),
	}, nil
}

// ParseCount parses a desired subnet count. Range checks happen when the
// count is turned into a plan.
func ParseCount(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &FormatError{Input: s, Reason: "subnet count is not a number"}
	}
	return n, nil
}
