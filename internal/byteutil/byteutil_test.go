package byteutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatBitrate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		bps      int
		expected string
	}{
		{0, ""},
		{-1, ""},
		{512, "512bps"},
		{1000, "1Kbps"},
		{128_000, "128Kbps"},
		{128_500, "129Kbps"},
		{1_000_000, "1.0Mbps"},
		{5_000_000, "5.0Mbps"},
		{5_250_000, "5.2Mbps"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, FormatBitrate(tc.bps))
	}
}

func TestFormatSize(t *testing.T) {
	t.Parallel()

	cases := []struct {
		n        int64
		expected string
	}{
		{0, ""},
		{512, "512 B"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.00 MB"},
		{3 * 1024 * 1024 * 1024, "3.00 GB"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, FormatSize(tc.n))
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		seconds  float64
		expected string
	}{
		{0, ""},
		{-5, ""},
		{45, "45s"},
		{60, "1m"},
		{330, "5m 30s"},
		{3600, "1h"},
		{8100, "2h 15m"},
		{3661, "1h 1m"},
	}

	for _, tc := range cases {
		require.Equal(t, tc.expected, FormatDuration(tc.seconds))
	}
}
