package subnet

import (
	"net/netip"

	"github.com/martinsuchenak/subnetcalc/internal/model"
	"go4.org/netipx"
)

// Enumerate lists count subnets of prefix length p starting at base. The
// base address must be aligned to a boundary at least as coarse as p; the
// subnets then tile the address space without gaps.
func Enumerate(base Addr, p, count int) []model.Subnet {
	shift := uint(32 - p)

	subnets := make([]model.Subnet, 0, count)
	for i := 0; i < count; i++ {
		network := base + Addr(uint32(i)<<shift)
		r := netipx.RangeOfPrefix(netip.PrefixFrom(network.Netip(), p))

		s := model.Subnet{
			Index:     i + 1,
			Network:   r.From().String(),
			Broadcast: r.To().String(),
		}
		// /31 and /32 networks have no distinct host range.
		if p < 31 {
			s.FirstHost = r.From().Next().String()
			s.LastHost = r.To().Prev().String()
		}
		subnets = append(subnets, s)
	}
	return subnets
}
