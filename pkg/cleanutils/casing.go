package cleanutils

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label rules assume English tokenization so casing never follows the host locale.
var labelLanguage = language.English

// ToTitle capitalizes the first letter of every word and lowercases the rest
func ToTitle(s string) string {
	return cases.Title(labelLanguage).String(s)
}

func ToLower(s string) string {
	return cases.Lower(labelLanguage).String(s)
}
