package byteutil

import (
	"fmt"
	"math"
)

// FormatBitrate renders bits-per-second the way players display it:
// "5.0Mbps", "800Kbps", "512bps". Unknown (<= 0) renders empty.
func FormatBitrate(bps int) string {
	switch {
	case bps <= 0:
		return ""
	case bps >= 1_000_000:
		return fmt.Sprintf("%.1fMbps", float64(bps)/1_000_000)
	case bps >= 1000:
		return fmt.Sprintf("%dKbps", int(math.Round(float64(bps)/1000)))
	default:
		return fmt.Sprintf("%dbps", bps)
	}
}

// FormatSize renders a byte count with fixed precision per unit:
// "512 B", "1.5 KB", "12.34 MB", "1.20 GB". Unknown (<= 0) renders empty.
func FormatSize(n int64) string {
	switch {
	case n <= 0:
		return ""
	case n < 1024:
		return fmt.Sprintf("%d B", n)
	case n < 1024*1024:
		return fmt.Sprintf("%.1f KB", float64(n)/1024)
	case n < 1024*1024*1024:
		return fmt.Sprintf("%.2f MB", float64(n)/(1024*1024))
	default:
		return fmt.Sprintf("%.2f GB", float64(n)/(1024*1024*1024))
	}
}

// FormatDuration renders seconds as "2h 15m", "5m 30s" or "45s". Zero
// components on the right are omitted ("2h", "5m"). Unknown (<= 0)
// renders empty.
func FormatDuration(seconds float64) string {
	if seconds <= 0 {
		return ""
	}

	total := int(seconds)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60

	switch {
	case h > 0:
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	case m > 0:
		if s == 0 {
			return fmt.Sprintf("%dm", m)
		}
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
