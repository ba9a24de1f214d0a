//go:build fixedbuf
// +build fixedbuf

package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimestampFixed(t *testing.T) {
	require.True(t, Bounded)

	ts := Unix(1445470140, 123456)
	require.Equal(t, MaxLen, ts.Len())
	require.Equal(t, "2015-10-21T23:29:00.123456Z", ts.String())

	// Wider renderings keep what fits
	require.Equal(t, "10000-01-01T00:00:00.000000", Unix(253402300800, 0).String())
	require.Equal(t, "1970-01-01T00:00:00.1000000", Unix(0, 1000000).String())
}
