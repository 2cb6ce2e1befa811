package subnet

import (
	"encoding/binary"
	"fmt"
	"net/netip"
	"strconv"
	"strings"
)

// Addr is an IPv4 address held as a 32-bit unsigned integer.
type Addr uint32

// ParseAddr parses a dotted-decimal IPv4 address, e.g. "192.168.1.10".
// Surrounding whitespace is ignored.
func ParseAddr(s string) (Addr, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 4 {
		return 0, &FormatError{Input: s, Reason: "an IPv4 address must have exactly four octets"}
	}

	var v uint32
	for _, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, &FormatError{Input: s, Reason: fmt.Sprintf("octet %q is not a number", part)}
		}
		if n < 0 || n > 255 {
			return 0, &RangeError{What: "octet", Value: part, Allowed: "0-255"}
		}
		v = v<<8 | uint32(n)
	}
	return Addr(v), nil
}

// String renders the address in dotted-decimal form.
func (a Addr) String() string {
	o := a.octets()
	return fmt.Sprintf("%d.%d.%d.%d", o[0], o[1], o[2], o[3])
}

// Binary renders the address as four dot-separated 8-bit binary groups,
// e.g. "11000000.10101000.00000001.00000000".
func (a Addr) Binary() string {
	o := a.octets()
	return fmt.Sprintf("%08b.%08b.%08b.%08b", o[0], o[1], o[2], o[3])
}

// Network returns the network address of a under a prefix of length p.
func (a Addr) Network(p int) Addr {
	return a & Addr(MaskFromPrefix(p))
}

// Broadcast returns the broadcast address of a under a prefix of length p.
func (a Addr) Broadcast(p int) Addr {
	return a | ^Addr(MaskFromPrefix(p))
}

// Netip converts a to a net/netip address.
func (a Addr) Netip() netip.Addr {
	return netip.AddrFrom4(a.octets())
}

// AddrFromNetip converts a net/netip IPv4 address to an Addr.
func AddrFromNetip(ip netip.Addr) Addr {
	b := ip.As4()
	return Addr(binary.BigEndian.Uint32(b[:]))
}

func (a Addr) octets() [4]byte {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(a))
	return b
}
