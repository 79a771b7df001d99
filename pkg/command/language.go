package command

import (
	"regexp"
	"strings"
)

// ISO 639-1 (plus a few locale tags) to the ISO 639-2 codes ffmpeg expects
// in language metadata.
var iso639_2 = map[string]string{
	"ar":    "ara",
	"cs":    "cze",
	"da":    "dan",
	"de":    "ger",
	"el":    "gre",
	"en":    "eng",
	"es":    "spa",
	"fa":    "per",
	"fi":    "fin",
	"fr":    "fre",
	"he":    "heb",
	"hi":    "hin",
	"hu":    "hun",
	"id":    "ind",
	"it":    "ita",
	"ja":    "jpn",
	"ko":    "kor",
	"nl":    "dut",
	"no":    "nor",
	"pl":    "pol",
	"pt":    "por",
	"pt-br": "por",
	"ro":    "rum",
	"ru":    "rus",
	"sv":    "swe",
	"th":    "tha",
	"tr":    "tur",
	"uk":    "ukr",
	"vi":    "vie",
	"zh":    "chi",
	"zh-cn": "chi",
	"zh-tw": "chi",
}

var languageNames = map[string]string{
	"ar":    "Arabic",
	"cs":    "Czech",
	"da":    "Danish",
	"de":    "German",
	"el":    "Greek",
	"en":    "English",
	"es":    "Spanish",
	"fa":    "Persian",
	"fi":    "Finnish",
	"fr":    "French",
	"he":    "Hebrew",
	"hi":    "Hindi",
	"hu":    "Hungarian",
	"id":    "Indonesian",
	"it":    "Italian",
	"ja":    "Japanese",
	"ko":    "Korean",
	"nl":    "Dutch",
	"no":    "Norwegian",
	"pl":    "Polish",
	"pt":    "Portuguese",
	"pt-br": "Portuguese (Brazil)",
	"ro":    "Romanian",
	"ru":    "Russian",
	"sv":    "Swedish",
	"th":    "Thai",
	"tr":    "Turkish",
	"uk":    "Ukrainian",
	"vi":    "Vietnamese",
	"zh":    "Chinese",
	"zh-cn": "Chinese (Simplified)",
	"zh-tw": "Chinese (Traditional)",
}

// ISO6392 maps a 2-letter or locale code ("en", "pt-br") to its ISO 639-2
// form. The full tag is tried first, then the base language. Unmapped
// codes pass through unmodified.
func ISO6392(code string) string {
	lower := strings.ToLower(code)
	if mapped, ok := iso639_2[lower]; ok {
		return mapped
	}
	if base, _, ok := strings.Cut(lower, "-"); ok {
		if mapped, ok := iso639_2[base]; ok {
			return mapped
		}
	}
	return code
}

// LanguageName returns the human name for a language code, trying the full
// tag before the base language. Returns "" when unknown.
func LanguageName(code string) string {
	lower := strings.ToLower(code)
	if name, ok := languageNames[lower]; ok {
		return name
	}
	if base, _, ok := strings.Cut(lower, "-"); ok {
		if name, ok := languageNames[base]; ok {
			return name
		}
	}
	return ""
}

// Subtitle filenames commonly embed a language tag right before the
// extension: "show.en.vtt", "show_pt-BR.srt".
var subtitleLangRe = regexp.MustCompile(`(?i)[._-]([a-z]{2}(?:-[a-z]{2,4})?)\.(?:vtt|srt|ass|ssa|sub|ttml|dfxp|smi|sbv)$`)

// DetectLanguage extracts a language tag from a subtitle URL, lowercased.
// Returns "" when no tag is recognizable.
func DetectLanguage(rawURL string) string {
	u := rawURL
	if i := strings.IndexByte(u, '?'); i >= 0 {
		u = u[:i]
	}

	m := subtitleLangRe.FindStringSubmatch(u)
	if m == nil {
		return ""
	}

	tag := strings.ToLower(m[1])
	// the match could be a random two-letter word; only accept tags we
	// can actually name
	if LanguageName(tag) == "" {
		return ""
	}
	return tag
}
