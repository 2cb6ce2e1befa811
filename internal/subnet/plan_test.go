package subnet

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsNeeded(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 0},
		{2, 1},
		{3, 2},
		{4, 2},
		{5, 3},
		{8, 3},
		{9, 4},
		{1024, 10},
	}
	for _, c := range cases {
		got, err := BitsNeeded(c.n)
		require.NoError(t, err, "n=%d", c.n)
		assert.Equal(t, c.want, got, "n=%d", c.n)
	}
}

func TestBitsNeededNonPositive(t *testing.T) {
	for _, n := range []int{0, -1} {
		_, err := BitsNeeded(n)
		require.Error(t, err)
		var re *RangeError
		assert.True(t, errors.As(err, &re), "n=%d", n)
	}
}

func TestHostsPerPrefix(t *testing.T) {
	assert.Equal(t, 254, HostsPerPrefix(24))
	assert.Equal(t, 62, HostsPerPrefix(26))
	assert.Equal(t, 2, HostsPerPrefix(30))
	assert.Equal(t, 2, HostsPerPrefix(31))
	assert.Equal(t, 1, HostsPerPrefix(32))
}

func TestNewPlan(t *testing.T) {
	p, err := NewPlan(24, 4)
	require.NoError(t, err)
	assert.Equal(t, 26, p.NewPrefix)
	assert.Equal(t, 2, p.BitsBorrowed)
	assert.Equal(t, 4, p.SubnetsCreated)
	assert.Equal(t, 62, p.HostsPerSubnet)
}

func TestNewPlanRoundsUp(t *testing.T) {
	p, err := NewPlan(24, 5)
	require.NoError(t, err)
	assert.Equal(t, 27, p.NewPrefix)
	assert.Equal(t, 3, p.BitsBorrowed)
	assert.Equal(t, 8, p.SubnetsCreated)
	assert.Equal(t, 30, p.HostsPerSubnet)
}

func TestNewPlanPrefixOverflow(t *testing.T) {
	_, err := NewPlan(30, 8)
	require.Error(t, err)
	var re *RangeError
	assert.True(t, errors.As(err, &re))
}

func TestNewPlanInvalidPrefix(t *testing.T) {
	for _, prefix := range []int{-1, 33} {
		_, err := NewPlan(prefix, 2)
		require.Error(t, err)
		var re *RangeError
		assert.True(t, errors.As(err, &re), "prefix=%d", prefix)
	}
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount(" 12 ")
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = ParseCount("four")
	require.Error(t, err)
	var fe *FormatError
	assert.True(t, errors.As(err, &fe))
}
