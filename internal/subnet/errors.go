package subnet

import "fmt"

// FormatError reports input text that does not have the shape of an IPv4
// address, subnet mask, or count.
type FormatError struct {
	Input  string
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format %q: %s", e.Input, e.Reason)
}

// RangeError reports a value that parsed cleanly but falls outside its
// allowed range.
type RangeError struct {
	What    string
	Value   string
	Allowed string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("%s %s is out of range, allowed %s", e.What, e.Value, e.Allowed)
}
