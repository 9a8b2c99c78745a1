package shamela

import (
	"regexp"
	"strings"
)

var (
	controlCharsRe  = regexp.MustCompile(`[\x{00}-\x{08}\x{0B}\x{0C}\x{0E}-\x{1F}\x{7F}-\x{9F}]`)
	blankLinesRe    = regexp.MustCompile(`\n{3,}`)
	digitsRe        = regexp.MustCompile(`[0-9\x{0660}-\x{0669}\x{06F0}-\x{06F9}]+`)
	parentheticalRe = regexp.MustCompile(`\([^)]*\)`)
)

// CleanText normalizes extracted body text: it removes control characters,
// replaces the ellipsis glyph with three periods, collapses runs of three or
// more newlines into a single blank line and trims surrounding whitespace.
// CleanText is idempotent.
func CleanText(text string) string {
	text = controlCharsRe.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, "…", "...")
	text = blankLinesRe.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}

// FirstNumber returns the first run of digits in s with Arabic-Indic digits
// converted to ASCII. It reports false if s contains no digits.
func FirstNumber(s string) (string, bool) {
	run := digitsRe.FindString(s)
	if run == "" {
		return "", false
	}
	return strings.Map(asciiDigit, run), true
}

func asciiDigit(r rune) rune {
	switch {
	case r >= '٠' && r <= '٩':
		return '0' + (r - '٠')
	case r >= '۰' && r <= '۹':
		return '0' + (r - '۰')
	}
	return r
}

// StripParentheticals removes every parenthesized group from s and trims
// the result.
func StripParentheticals(s string) string {
	return strings.TrimSpace(parentheticalRe.ReplaceAllString(s, ""))
}
