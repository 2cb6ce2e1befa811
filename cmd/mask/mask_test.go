package mask

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPrefix(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, "/24")
	require.NoError(t, err)

	s := out.String()
	assert.Contains(t, s, "Prefix:   /24")
	assert.Contains(t, s, "Mask:     255.255.255.0")
	assert.Contains(t, s, "Binary:   11111111.11111111.11111111.00000000")
}

func TestRunDottedMask(t *testing.T) {
	var out bytes.Buffer
	err := run(&out, "255.255.255.192")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Prefix:   /26")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer

	require.Error(t, run(&out, ""))
	require.Error(t, run(&out, "255.0.255.0"))
	require.Error(t, run(&out, "33"))
}
