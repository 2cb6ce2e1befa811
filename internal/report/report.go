package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/martinsuchenak/subnetcalc/internal/model"
	"github.com/martinsuchenak/subnetcalc/internal/subnet"
)

// Build runs the full calculation pipeline for a request. The base network
// is derived from the input address with the original prefix, so the input
// may be any address inside the network.
func Build(req model.Request) (model.Report, error) {
	addr, err := subnet.ParseAddr(req.Address)
	if err != nil {
		return model.Report{}, err
	}

	plan, err := subnet.NewPlan(req.Prefix, req.Desired)
	if err != nil {
		return model.Report{}, err
	}

	base := addr.Network(req.Prefix)

	return model.Report{
		OriginalIP:        addr.String(),
		OriginalPrefix:    req.Prefix,
		OriginalMask:      subnet.Addr(subnet.MaskFromPrefix(req.Prefix)).String(),
		BaseNetwork:       base.String(),
		BaseNetworkBinary: base.Binary(),
		DesiredSubnets:    req.Desired,
		NewPrefix:         plan.NewPrefix,
		NewMask:           subnet.Addr(subnet.MaskFromPrefix(plan.NewPrefix)).String(),
		BitsBorrowed:      plan.BitsBorrowed,
		SubnetsCreated:    plan.SubnetsCreated,
		HostsPerSubnet:    plan.HostsPerSubnet,
		Subnets:           subnet.Enumerate(base, plan.NewPrefix, plan.SubnetsCreated),
	}, nil
}

// Inspect describes the network that contains the given address.
func Inspect(addr subnet.Addr, prefix int) model.Network {
	mask := subnet.Addr(subnet.MaskFromPrefix(prefix))
	base := addr.Network(prefix)
	broadcast := addr.Broadcast(prefix)

	n := model.Network{
		Address:       addr.String(),
		Prefix:        prefix,
		Mask:          mask.String(),
		MaskBinary:    mask.Binary(),
		Network:       base.String(),
		NetworkBinary: base.Binary(),
		Broadcast:     broadcast.String(),
		Hosts:         subnet.HostsPerPrefix(prefix),
	}
	if prefix < 31 {
		n.FirstHost = (base + 1).String()
		n.LastHost = (broadcast - 1).String()
	}
	return n
}

// Render writes the report in the classic results layout.
func Render(w io.Writer, r model.Report) {
	fmt.Fprintln(w, "========================== RESULTS ==========================")
	fmt.Fprintf(w, "Original IP:                %s\n", r.OriginalIP)
	fmt.Fprintf(w, "Original CIDR:              /%d (%s)\n", r.OriginalPrefix, r.OriginalMask)
	fmt.Fprintf(w, "Base Network (Dotted):      %s\n", r.BaseNetwork)
	fmt.Fprintf(w, "Base Network (Binary):      %s\n", r.BaseNetworkBinary)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Desired Subnets:            %d\n", r.DesiredSubnets)
	fmt.Fprintf(w, "New Mask (CIDR):            /%d (%s)\n", r.NewPrefix, r.NewMask)
	fmt.Fprintf(w, "Bits Borrowed:              %d\n", r.BitsBorrowed)
	fmt.Fprintf(w, "Total Subnets Created:      %d\n", r.SubnetsCreated)
	fmt.Fprintf(w, "Hosts per Subnet:           %d  (with /%d)\n", r.HostsPerSubnet, r.NewPrefix)
	fmt.Fprintln(w, "=============================================================")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "------- Subnet Ranges -------")
	for _, s := range r.Subnets {
		first, last := s.FirstHost, s.LastHost
		if first == "" {
			first, last = "N/A", "N/A"
		}
		fmt.Fprintf(w, "Subnet #%d => Network: %s/%d\n", s.Index, s.Network, r.NewPrefix)
		fmt.Fprintf(w, "  Broadcast: %s\n", s.Broadcast)
		fmt.Fprintf(w, "  First Host: %s   Last Host: %s\n", first, last)
		fmt.Fprintln(w, "-------------------------------------------------------------")
	}
}

// RenderNetwork writes the single-network view produced by the info command.
func RenderNetwork(w io.Writer, n model.Network) {
	fmt.Fprintf(w, "Address:            %s/%d\n", n.Address, n.Prefix)
	fmt.Fprintf(w, "Mask:               %s\n", n.Mask)
	fmt.Fprintf(w, "Mask (Binary):      %s\n", n.MaskBinary)
	fmt.Fprintf(w, "Network:            %s\n", n.Network)
	fmt.Fprintf(w, "Network (Binary):   %s\n", n.NetworkBinary)
	fmt.Fprintf(w, "Broadcast:          %s\n", n.Broadcast)
	if n.FirstHost != "" {
		fmt.Fprintf(w, "Host Range:         %s - %s\n", n.FirstHost, n.LastHost)
	} else {
		fmt.Fprintf(w, "Host Range:         N/A\n")
	}
	fmt.Fprintf(w, "Usable Hosts:       %d\n", n.Hosts)
}

// RenderJSON writes v as indented JSON.
func RenderJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
