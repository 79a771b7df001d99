// Package m3u8 parses HLS playlists: master playlists into quality
// variants, media playlists into segments and durations. Parsing is best
// effort and never fails hard; malformed input degrades to "not a master
// playlist".
package m3u8

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/mediasniff/mediasniff/internal/byteutil"
)

type Variant struct {
	URL                    string   `json:"url"`
	Bandwidth              int      `json:"bandwidth,omitempty"`
	Bitrate                string   `json:"bitrate,omitempty"`
	Resolution             string   `json:"resolution,omitempty"`
	Codec                  string   `json:"codec,omitempty"`
	AudioCodec             string   `json:"audioCodec,omitempty"`
	Codecs                 string   `json:"codecs,omitempty"`
	FrameRate              float64  `json:"frameRate,omitempty"`
	VideoGroup             string   `json:"-"`
	audioGroup             string
	AudioLanguages         []string `json:"audioLanguages,omitempty"`
	Name                   string   `json:"name"`
	EstimatedSize          int64    `json:"estimatedSize,omitempty"`
	EstimatedSizeFormatted string   `json:"estimatedSizeFormatted,omitempty"`
}

type MasterPlaylist struct {
	IsMaster bool      `json:"isMasterPlaylist"`
	Variants []Variant `json:"variants"`
	Err      error     `json:"-"`
}

// ParseMaster decides whether raw is a master playlist and, if so, extracts
// its variants sorted by bandwidth descending (unknown bandwidth last,
// stable on ties). Relative variant URLs are resolved against baseURL.
func ParseMaster(baseURL, raw string) MasterPlaylist {
	lines := trimmedLines(raw)

	if !hasStreamInf(lines) {
		return MasterPlaylist{IsMaster: false, Variants: []Variant{}}
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		return MasterPlaylist{
			IsMaster: false,
			Variants: []Variant{},
			Err:      fmt.Errorf("invalid base url %q: %w", baseURL, err),
		}
	}

	// Audio groups first: #EXT-X-MEDIA tags may appear after the variants
	// that reference them.
	audioGroups := parseAudioGroups(lines)

	var variants []Variant
	var pending *Variant

	for _, line := range lines {
		if strings.HasPrefix(line, "#EXT-X-STREAM-INF") {
			v := parseStreamInf(line)
			pending = &v
			continue
		}
		if strings.HasPrefix(line, "#") || pending == nil {
			continue
		}

		ref, err := url.Parse(line)
		if err != nil {
			pending = nil
			continue
		}

		v := *pending
		v.URL = base.ResolveReference(ref).String()
		v.Bitrate = byteutil.FormatBitrate(v.Bandwidth)
		v.Codec = VideoCodecName(v.Codecs)
		v.AudioCodec = AudioCodecName(v.Codecs)
		if v.audioGroup != "" {
			v.AudioLanguages = audioGroups[v.audioGroup]
		}
		v.Name = variantName(v)

		variants = append(variants, v)
		pending = nil
	}

	sort.SliceStable(variants, func(i, j int) bool {
		bi, bj := variants[i].Bandwidth, variants[j].Bandwidth
		if (bi > 0) != (bj > 0) {
			return bi > 0
		}
		return bi > bj
	})

	if variants == nil {
		variants = []Variant{}
	}

	return MasterPlaylist{IsMaster: true, Variants: variants}
}

// parseStreamInf extracts the attributes of one #EXT-X-STREAM-INF line into
// a pending variant. The playlist URL arrives on a later line.
func parseStreamInf(line string) Variant {
	return Variant{
		Bandwidth:  attrBandwidth(line),
		Resolution: attrResolutionHeight(line),
		Codecs:     attrCodecs(line),
		FrameRate:  attrFrameRate(line),
		VideoGroup: attrVideoGroup(line),
		audioGroup: attrAudioGroup(line),
	}
}

// parseAudioGroups maps AUDIO GROUP-IDs to their ordered language tags,
// preferring LANGUAGE over NAME, with "unknown" as the last resort.
func parseAudioGroups(lines []string) map[string][]string {
	groups := make(map[string][]string)

	for _, line := range lines {
		if !strings.HasPrefix(line, "#EXT-X-MEDIA:") {
			continue
		}
		if m := mediaTypeRe.FindStringSubmatch(line); m == nil || m[1] != "AUDIO" {
			continue
		}

		gid := ""
		if m := groupIDRe.FindStringSubmatch(line); m != nil {
			gid = m[1]
		}
		if gid == "" {
			continue
		}

		tag := "unknown"
		if m := languageRe.FindStringSubmatch(line); m != nil {
			tag = m[1]
		} else if m := nameRe.FindStringSubmatch(line); m != nil {
			tag = m[1]
		}

		groups[gid] = append(groups[gid], tag)
	}

	return groups
}

// variantName builds the display label: "1080p · H264 · 5.0Mbps". A plain
// AAC/Opus codec is not a distinguishing feature, so it stays out of the
// label. With nothing to show the variant is just "Default".
func variantName(v Variant) string {
	var parts []string
	if v.Resolution != "" {
		parts = append(parts, v.Resolution)
	}
	if v.Codec != "" && v.Codec != "AAC" && v.Codec != "Opus" {
		parts = append(parts, v.Codec)
	}
	if v.Bitrate != "" {
		parts = append(parts, v.Bitrate)
	}
	if len(parts) == 0 {
		return "Default"
	}
	return strings.Join(parts, " · ")
}

func hasStreamInf(lines []string) bool {
	for _, line := range lines {
		if strings.HasPrefix(line, "#EXT-X-STREAM-INF") {
			return true
		}
	}
	return false
}

func trimmedLines(raw string) []string {
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
