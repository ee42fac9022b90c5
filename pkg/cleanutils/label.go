package cleanutils

import (
	"regexp"
	"strings"
)

var boundsRegex = regexp.MustCompile(`(?i)\b(north|south|east|west)\s?bound\b`)

var whitespaceRegex = regexp.MustCompile(`\s+`)
var emptyParenthesesRegex = regexp.MustCompile(`\(\s*\)`)
var spaceBeforePunctuationRegex = regexp.MustCompile(`\s+([,.;:)])`)
var spaceAfterParenthesisRegex = regexp.MustCompile(`\(\s+`)
var repeatedSeparatorRegex = regexp.MustCompile(`([,;:])(?:\s*[,;:])+`)

const labelEdgeCutset = " -/,;:&"

// CleanBounds removes direction boilerplate such as "Northbound" or "south bound"
func CleanBounds(s string) string {
	return boundsRegex.ReplaceAllString(s, " ")
}

// NewWordPattern matches word case-insensitively as a standalone word
func NewWordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
}

// CleanWords replaces every match of the given word patterns with a single space
func CleanWords(s string, patterns ...*regexp.Regexp) string {
	for _, pattern := range patterns {
		s = pattern.ReplaceAllString(s, " ")
	}

	return s
}

// CleanLabel is the final pass on any presentable label.
// Passes repeat until the label stops changing so nested brackets collapse fully.
func CleanLabel(s string) string {
	for {
		cleaned := cleanLabelPass(s)
		if cleaned == s {
			return cleaned
		}
		s = cleaned
	}
}

func cleanLabelPass(s string) string {
	s = spaceAfterParenthesisRegex.ReplaceAllString(s, "(")
	s = emptyParenthesesRegex.ReplaceAllString(s, " ")
	s = spaceBeforePunctuationRegex.ReplaceAllString(s, "$1")
	s = repeatedSeparatorRegex.ReplaceAllString(s, "$1")
	s = whitespaceRegex.ReplaceAllString(s, " ")

	return strings.Trim(s, labelEdgeCutset)
}
