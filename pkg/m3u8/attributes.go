package m3u8

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	bandwidthRe  = regexp.MustCompile(`(?:^|[:,])BANDWIDTH=(\d+)`)
	resolutionRe = regexp.MustCompile(`RESOLUTION=(\d+)x(\d+)`)
	codecsRe     = regexp.MustCompile(`CODECS="([^"]+)"`)
	frameRateRe  = regexp.MustCompile(`FRAME-RATE=([\d.]+)`)
	audioGroupRe = regexp.MustCompile(`AUDIO="([^"]+)"`)
	videoGroupRe = regexp.MustCompile(`VIDEO="([^"]+)"`)

	mediaTypeRe = regexp.MustCompile(`TYPE=([A-Z-]+)`)
	groupIDRe   = regexp.MustCompile(`GROUP-ID="([^"]+)"`)
	languageRe  = regexp.MustCompile(`LANGUAGE="([^"]+)"`)
	nameRe      = regexp.MustCompile(`NAME="([^"]+)"`)
)

func attrBandwidth(line string) int {
	m := bandwidthRe.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	bw, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return bw
}

// attrResolutionHeight keeps only the height of a WxH attribute, formatted
// as the familiar "1080p" label.
func attrResolutionHeight(line string) string {
	m := resolutionRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[2] + "p"
}

func attrCodecs(line string) string {
	m := codecsRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

func attrFrameRate(line string) float64 {
	m := frameRateRe.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	fr, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0
	}
	return fr
}

func attrAudioGroup(line string) string {
	m := audioGroupRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

func attrVideoGroup(line string) string {
	m := videoGroupRe.FindStringSubmatch(line)
	if m == nil {
		return ""
	}
	return m[1]
}

type codecRule struct {
	markers []string
	name    string
}

// Ordered by precedence. Video markers first, then audio fallbacks: a
// CODECS string with no video token intentionally resolves to its audio
// codec name, since downstream labels lean on that to avoid printing a
// default AAC/Opus tag.
var videoCodecRules = []codecRule{
	{markers: []string{"hvc1", "hev1", "hevc"}, name: "H265"},
	{markers: []string{"avc1", "avc3"}, name: "H264"},
	{markers: []string{"vp09", "vp9"}, name: "VP9"},
	{markers: []string{"av01"}, name: "AV1"},
	{markers: []string{"mp4a.40.34"}, name: "MP3"},
	{markers: []string{"mp4a"}, name: "AAC"},
	{markers: []string{"opus"}, name: "Opus"},
	{markers: []string{"mp3"}, name: "MP3"},
}

// Audio-only markers. "mp4a.40.34" and "eac3" must match before their
// shorter substrings.
var audioCodecRules = []codecRule{
	{markers: []string{"mp4a.40.34"}, name: "MP3"},
	{markers: []string{"mp4a"}, name: "AAC"},
	{markers: []string{"opus"}, name: "Opus"},
	{markers: []string{"mp3"}, name: "MP3"},
	{markers: []string{"ec-3", "ec3", "eac3"}, name: "EAC3"},
	{markers: []string{"ac-3", "ac3"}, name: "AC3"},
	{markers: []string{"flac"}, name: "FLAC"},
	{markers: []string{"dts"}, name: "DTS"},
}

func matchCodec(codecs string, rules []codecRule) string {
	lower := strings.ToLower(codecs)
	for _, rule := range rules {
		for _, marker := range rule.markers {
			if strings.Contains(lower, marker) {
				return rule.name
			}
		}
	}
	return ""
}

// VideoCodecName resolves a raw CODECS attribute to a display name like
// "H264". If the string carries no video codec token, the first audio
// token wins instead.
func VideoCodecName(codecs string) string {
	return matchCodec(codecs, videoCodecRules)
}

// AudioCodecName resolves the audio codec token of a raw CODECS attribute,
// or "" when none is present.
func AudioCodecName(codecs string) string {
	return matchCodec(codecs, audioCodecRules)
}
