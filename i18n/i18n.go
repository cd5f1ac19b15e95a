// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

const (
	English  = "en"
	Sinhala  = "si"
	Default  = English
	fallback = English
)

// Supported lists the languages in matcher priority order.
var Supported = []string{English, Sinhala}

var matcher = language.NewMatcher([]language.Tag{language.English, language.MustParse(Sinhala)})

// DetermineLanguage picks the response language. An explicit query value
// wins over the Accept-Language header; anything unsupported falls back
// to English.
func DetermineLanguage(queryLang, acceptLanguage string) string {
	if l, ok := normalize(queryLang); ok {
		return l
	}

	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, i, conf := matcher.Match(tags...)
	if conf == language.No {
		return Default
	}
	return Supported[i]
}

// normalize reduces a tag such as "si-LK" to its supported base language.
func normalize(lang string) (string, bool) {
	if lang == "" {
		return "", false
	}
	tag, err := language.Parse(lang)
	if err != nil {
		return "", false
	}
	base, _ := tag.Base()
	for _, s := range Supported {
		if base.String() == s {
			return s, true
		}
	}
	return "", false
}

var quadrantLabels = map[string]map[string]string{
	English: {
		"libertarian-left":    "Libertarian Socialist",
		"libertarian-right":   "Libertarian Capitalist",
		"authoritarian-left":  "Authoritarian Socialist",
		"authoritarian-right": "Authoritarian Capitalist",
		"centrist":            "Centrist",
	},
	Sinhala: {
		"libertarian-left":    "NPP ජෙප්පෙක්",
		"libertarian-right":   "ටොයියෙක්",
		"authoritarian-left":  "පරණ ජෙප්පෙක්",
		"authoritarian-right": "බයියෙක්",
		"centrist":            "මධ්‍යස්ථවාදී පොරක්",
	},
}

// Older stored rows use these names.
var legacyQuadrants = map[string]string{
	"liberal-left":        "libertarian-left",
	"liberal-right":       "libertarian-right",
	"conservative-left":   "authoritarian-left",
	"conservative-right":  "authoritarian-right",
	"authoritative-left":  "authoritarian-left",
	"authoritative-right": "authoritarian-right",
}

// QuadrantLabel returns the display name of a quadrant. Unknown values
// are returned unchanged.
func QuadrantLabel(quadrant, lang string) string {
	if canonical, ok := legacyQuadrants[quadrant]; ok {
		quadrant = canonical
	}
	labels, ok := quadrantLabels[lang]
	if !ok {
		labels = quadrantLabels[fallback]
	}
	if v, ok := labels[quadrant]; ok {
		return v
	}
	return quadrant
}

// FormatScore renders a score with one decimal and an explicit plus sign
// for positive values.
func FormatScore(score float64) string {
	if score > 0 {
		return fmt.Sprintf("+%.1f", score)
	}
	if score == 0 {
		score = 0 // drop the sign of -0
	}
	return fmt.Sprintf("%.1f", score)
}

var messages = map[string]map[string]string{
	English: {
		"health.ok":           "OK",
		"result.saved":        "Result saved successfully",
		"suggestion.created":  "Suggestion created successfully with your automatic vote!",
		"suggestion.voted":    "Vote recorded successfully",
		"error.rate_limited":  "Too many requests, please slow down",
		"error.already_voted": "You have already voted on this suggestion",
	},
	Sinhala: {
		"health.ok":           "හරි",
		"result.saved":        "ප්‍රතිඵලය සාර්ථකව සුරකින ලදී",
		"suggestion.created":  "යෝජනාව සාර්ථකව එක් කරන ලදී",
		"suggestion.voted":    "ඡන්දය සාර්ථකව සටහන් කරන ලදී",
		"error.rate_limited":  "ඉල්ලීම් වැඩියි, කරුණාකර මඳක් රැඳී සිටින්න",
		"error.already_voted": "ඔබ දැනටමත් මෙම යෝජනාවට ඡන්දය දී ඇත",
	},
}

// T returns the message for key in lang, falling back to English and then
// to the key itself.
func T(lang, key string) string {
	if m, ok := messages[lang]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if v, ok := messages[fallback][key]; ok {
		return v
	}
	return key
}
