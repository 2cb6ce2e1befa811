package plan

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithFlags(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader(""), &out, "192.168.1.0", "/24", "4", "text")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Total Subnets Created:      4")
	assert.Contains(t, out.String(), "Subnet #1 => Network: 192.168.1.0/26")
}

func TestRunPromptsForMissingValues(t *testing.T) {
	in := strings.NewReader("192.168.1.0\n24\n4\n")
	var out bytes.Buffer
	err := run(in, &out, "", "", "", "text")
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Enter IPv4 Address (e.g. 10.10.10.10): ")
	assert.Contains(t, out.String(), "Enter the number of desired subnets: ")
	assert.Contains(t, out.String(), "New Mask (CIDR):            /26 (255.255.255.192)")
}

func TestRunDottedMask(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader(""), &out, "192.168.1.0", "255.255.255.0", "4", "text")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Original CIDR:              /24 (255.255.255.0)")
}

func TestRunJSONOutput(t *testing.T) {
	var out bytes.Buffer
	err := run(strings.NewReader(""), &out, "192.168.1.0", "/24", "4", "json")
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"new_prefix": 26`)
	assert.Contains(t, out.String(), `"hosts_per_subnet": 62`)
}

func TestRunInvalidInput(t *testing.T) {
	var out bytes.Buffer

	err := run(strings.NewReader(""), &out, "999.1.1.1", "/24", "4", "text")
	require.Error(t, err)

	err = run(strings.NewReader(""), &out, "10.0.0.0", "/40", "4", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid subnet mask")

	err = run(strings.NewReader(""), &out, "10.0.0.0", "/24", "zero", "text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid subnet count")

	err = run(strings.NewReader(""), &out, "10.0.0.0", "/30", "8", "text")
	require.Error(t, err)
}
