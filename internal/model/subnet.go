package model

// Request holds the inputs of a single subnet calculation
type Request struct {
	Address string `json:"address"`
	Prefix  int    `json:"prefix"`
	Desired int    `json:"desired_subnets"`
}

// Plan describes how a network is split to satisfy a request. SubnetsCreated
// is the desired count rounded up to the next power of two.
type Plan struct {
	NewPrefix      int `json:"new_prefix"`
	BitsBorrowed   int `json:"bits_borrowed"`
	SubnetsCreated int `json:"subnets_created"`
	HostsPerSubnet int `json:"hosts_per_subnet"`
}

// Subnet is one enumerated subnet range. FirstHost and LastHost are empty
// for /31 and /32 networks, which have no usable host range.
type Subnet struct {
	Index     int    `json:"index"`
	Network   string `json:"network"`
	Broadcast string `json:"broadcast"`
	FirstHost string `json:"first_host,omitempty"`
	LastHost  string `json:"last_host,omitempty"`
}

// Report is everything the calculator prints for one request
type Report struct {
	OriginalIP        string   `json:"original_ip"`
	OriginalPrefix    int      `json:"original_prefix"`
	OriginalMask      string   `json:"original_mask"`
	BaseNetwork       string   `json:"base_network"`
	BaseNetworkBinary string   `json:"base_network_binary"`
	DesiredSubnets    int      `json:"desired_subnets"`
	NewPrefix         int      `json:"new_prefix"`
	NewMask           string   `json:"new_mask"`
	BitsBorrowed      int      `json:"bits_borrowed"`
	SubnetsCreated    int      `json:"subnets_created"`
	HostsPerSubnet    int      `json:"hosts_per_subnet"`
	Subnets           []Subnet `json:"subnets"`
}

// Network is the single-network view produced by the info command
type Network struct {
	Address       string `json:"address"`
	Prefix        int    `json:"prefix"`
	Mask          string `json:"mask"`
	MaskBinary    string `json:"mask_binary"`
	Network       string `json:"network"`
	NetworkBinary string `json:"network_binary"`
	Broadcast     string `json:"broadcast"`
	FirstHost     string `json:"first_host,omitempty"`
	LastHost      string `json:"last_host,omitempty"`
	Hosts         int    `json:"hosts"`
}
