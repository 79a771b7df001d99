package m3u8

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/mediasniff/mediasniff/internal/byteutil"
)

type Segment struct {
	URL      string
	Duration float64
}

type MediaPlaylist struct {
	Version        int
	TargetDuration float64
	Segments       []Segment
}

// TotalDuration sums segment durations in seconds.
func (mp MediaPlaylist) TotalDuration() float64 {
	var total float64
	for _, seg := range mp.Segments {
		total += seg.Duration
	}
	return total
}

// ParseMedia extracts segments and their durations from a media playlist.
func ParseMedia(raw string) MediaPlaylist {
	var mp MediaPlaylist

	scanner := bufio.NewScanner(strings.NewReader(raw))
	pendingDuration := -1.0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "#EXT-X-VERSION:"):
			mp.Version, _ = strconv.Atoi(strings.TrimPrefix(line, "#EXT-X-VERSION:"))
		case strings.HasPrefix(line, "#EXT-X-TARGETDURATION:"):
			mp.TargetDuration, _ = strconv.ParseFloat(strings.TrimPrefix(line, "#EXT-X-TARGETDURATION:"), 64)
		case strings.HasPrefix(line, "#EXTINF:"):
			pendingDuration = extinfSeconds(line)
		case strings.HasPrefix(line, "#"):
			// other tags are irrelevant here
		default:
			if pendingDuration >= 0 {
				mp.Segments = append(mp.Segments, Segment{URL: line, Duration: pendingDuration})
				pendingDuration = -1
			}
		}
	}

	return mp
}

// EstimateDuration sums segment durations from raw media playlist text.
// Returns 0 when the text has no parseable segments, meaning the duration
// is unknown rather than zero-length.
func EstimateDuration(raw string) float64 {
	return ParseMedia(raw).TotalDuration()
}

// EstimateVariantSizes derives estimatedSize = duration * bandwidth / 8 for
// every variant with a known bandwidth. Variants without bandwidth pass
// through unchanged. The input slice is not mutated.
func EstimateVariantSizes(variants []Variant, duration float64) []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)

	if duration <= 0 {
		return out
	}

	for i := range out {
		if out[i].Bandwidth <= 0 {
			continue
		}
		out[i].EstimatedSize = int64(duration * float64(out[i].Bandwidth) / 8)
		out[i].EstimatedSizeFormatted = byteutil.FormatSize(out[i].EstimatedSize)
	}

	return out
}

// extinfSeconds parses the leading duration of an #EXTINF tag, e.g.
// "#EXTINF:10.000," -> 10. Returns -1 when unparseable.
func extinfSeconds(line string) float64 {
	v := strings.TrimPrefix(line, "#EXTINF:")
	if i := strings.IndexByte(v, ','); i >= 0 {
		v = v[:i]
	}
	secs, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return -1
	}
	return secs
}
