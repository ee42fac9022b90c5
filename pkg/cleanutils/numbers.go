package cleanutils

import (
	"regexp"
	"strconv"
)

var ordinalWords = map[string]string{
	"first":   "1st",
	"second":  "2nd",
	"third":   "3rd",
	"fourth":  "4th",
	"fifth":   "5th",
	"sixth":   "6th",
	"seventh": "7th",
	"eighth":  "8th",
	"ninth":   "9th",
	"tenth":   "10th",
}

var ordinalWordsRegex = regexp.MustCompile(`(?i)\b(first|second|third|fourth|fifth|sixth|seventh|eighth|ninth|tenth)\b`)
var ordinalSuffixRegex = regexp.MustCompile(`(?i)\b(\d+)(st|nd|rd|th)\b`)
var leadingZerosRegex = regexp.MustCompile(`(^|\s)0+(\d)`)

// CleanNumbers normalizes numeric tokens: ordinal words become 1st, 2nd..., ordinal
// suffixes are lowercased and corrected, and leading zeros are dropped.
func CleanNumbers(s string) string {
	s = ordinalWordsRegex.ReplaceAllStringFunc(s, func(word string) string {
		return ordinalWords[ToLower(word)]
	})

	s = leadingZerosRegex.ReplaceAllString(s, "${1}${2}")

	s = ordinalSuffixRegex.ReplaceAllStringFunc(s, func(token string) string {
		digits := ordinalSuffixRegex.FindStringSubmatch(token)[1]
		return digits + OrdinalSuffix(digits)
	})

	return s
}

// OrdinalSuffix returns the English ordinal suffix for a run of decimal digits
func OrdinalSuffix(digits string) string {
	if len(digits) > 2 {
		digits = digits[len(digits)-2:]
	}

	n, err := strconv.Atoi(digits)
	if err != nil {
		return "th"
	}

	if n%100 >= 11 && n%100 <= 13 {
		return "th"
	}

	switch n % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}
