package media

import (
	"mime"
	"net/url"
	"path"
	"strings"
)

// Classification is the outcome of sniffing one response.
type Classification struct {
	Kind      Kind
	Format    string
	MediaType Type
}

var hlsMIMETypes = map[string]bool{
	"application/vnd.apple.mpegurl": true,
	"application/x-mpegurl":         true,
}

var dashMIMETypes = map[string]bool{
	"application/dash+xml":          true,
	"application/vnd.mpeg.dash.mpd": true,
}

var videoMIMETypes = map[string]bool{
	"video/mp4":        true,
	"video/webm":       true,
	"video/ogg":        true,
	"video/x-matroska": true,
	"video/quicktime":  true,
	"video/x-msvideo":  true,
	"video/x-flv":      true,
	"video/mpeg":       true,
	"video/mp2t":       true,
	"video/3gpp":       true,
	"video/x-ms-wmv":   true,
}

var videoExtensions = map[string]bool{
	"mp4": true, "m4v": true, "webm": true, "mkv": true, "mov": true,
	"avi": true, "flv": true, "wmv": true, "mpg": true, "mpeg": true,
	"ts": true, "3gp": true, "ogv": true,
}

// Subtitle MIME types that pin the format on their own.
var subtitleMIMETypes = map[string]string{
	"text/vtt":            "vtt",
	"text/srt":            "srt",
	"application/x-subrip": "srt",
	"application/ttml+xml": "ttml",
}

// Ambiguous MIME types that only count as subtitles when the URL extension
// agrees.
var ambiguousSubtitleMIMETypes = map[string]bool{
	"text/plain":               true,
	"text/xml":                 true,
	"application/xml":          true,
	"application/octet-stream": true,
}

var subtitleExtensions = map[string]bool{
	"vtt": true, "srt": true, "ass": true, "ssa": true, "sub": true,
	"ttml": true, "dfxp": true, "smi": true, "sbv": true,
}

// Classify decides what a response is from its Content-Type and URL
// extension. The check order matters: manifests first (their MIME types
// overlap with generic text/xml ones), then direct video, then subtitles.
// Returns nil for anything not worth tracking.
func Classify(rawURL, contentType, ext string) *Classification {
	ct := normalizeContentType(contentType)

	if hlsMIMETypes[ct] || ext == "m3u8" || ext == "m3u" {
		return &Classification{Kind: KindStream, Format: "m3u8", MediaType: TypeHLS}
	}

	if dashMIMETypes[ct] || ext == "mpd" {
		return &Classification{Kind: KindStream, Format: "mpd", MediaType: TypeDASH}
	}

	if videoMIMETypes[ct] || videoExtensions[ext] {
		format := ext
		if !videoExtensions[format] {
			if _, subtype, ok := strings.Cut(ct, "/"); ok {
				format = subtype
			}
		}
		return &Classification{Kind: KindStream, Format: format, MediaType: TypeVideo}
	}

	if format, ok := subtitleMIMETypes[ct]; ok {
		return &Classification{Kind: KindSubtitle, Format: format, MediaType: TypeNone}
	}
	if ambiguousSubtitleMIMETypes[ct] && subtitleExtensions[ext] {
		return &Classification{Kind: KindSubtitle, Format: ext, MediaType: TypeNone}
	}
	if subtitleExtensions[ext] {
		return &Classification{Kind: KindSubtitle, Format: ext, MediaType: TypeNone}
	}

	return nil
}

// Eligible is the pre-filter applied before classification: only replayable
// successful http(s) responses from a real tab are candidates. POST bodies
// are not refetchable, so those responses never qualify.
func Eligible(rawURL string, tabID, statusCode int, method string) bool {
	if tabID < 0 {
		return false
	}
	if statusCode < 200 || statusCode > 299 {
		return false
	}
	if strings.EqualFold(method, "POST") {
		return false
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

// ExtensionFromURL pulls the lowercased extension out of the URL path,
// e.g. "https://cdn/v/a.M3U8?x=1" -> "m3u8". Returns "" when the path has
// no dot. A slash after the last dot means the dot belonged to a parent
// segment, so only the part before the slash counts.
func ExtensionFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	p := u.Path
	i := strings.LastIndexByte(p, '.')
	if i < 0 {
		return ""
	}

	ext := strings.ToLower(p[i+1:])
	if j := strings.IndexByte(ext, '/'); j >= 0 {
		ext = ext[:j]
	}
	return ext
}

// DisplayName derives the filename to show for a capture: the
// Content-Disposition filename when the server sent one, otherwise the
// last URL path segment.
func DisplayName(rawURL, contentDisposition string) string {
	if contentDisposition != "" {
		if _, params, err := mime.ParseMediaType(contentDisposition); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	if base := path.Base(u.Path); base != "." && base != "/" {
		return base
	}
	return u.Host
}

func normalizeContentType(contentType string) string {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return ct
}
