package cleanutils

import "regexp"

type replacement struct {
	pattern *regexp.Regexp
	value   string
	// keep is a submatch index; when that group matched the text is left as is
	keep int
}

func (r replacement) apply(s string) string {
	if r.keep == 0 {
		return r.pattern.ReplaceAllString(s, r.value)
	}

	return r.pattern.ReplaceAllStringFunc(s, func(match string) string {
		if r.pattern.FindStringSubmatch(match)[r.keep] != "" {
			return match
		}

		return r.value
	})
}

func wordReplacement(pattern string, value string) replacement {
	return replacement{
		pattern: regexp.MustCompile(`(?i)\b(` + pattern + `)\b\.?`),
		value:   value,
	}
}

// Abbreviation patterns never match their own canonical form
var streetTypes = []replacement{
	wordReplacement("ave|av|avenu", "Avenue"),
	wordReplacement("blvd|boul", "Boulevard"),
	wordReplacement("cir|circ", "Circle"),
	wordReplacement("cres|cr", "Crescent"),
	wordReplacement("ct|crt", "Court"),
	wordReplacement("dr|drv", "Drive"),
	wordReplacement("expy|expwy", "Expressway"),
	wordReplacement("hwy|hway", "Highway"),
	wordReplacement("ln", "Lane"),
	wordReplacement("pkwy|pky", "Parkway"),
	wordReplacement("pl", "Place"),
	wordReplacement("rd", "Road"),
	wordReplacement("sq", "Square"),
	// "St." in front of a name is Saint, as in "St. George"
	{
		pattern: regexp.MustCompile(`(?i)\b(st|str)\b(?:(\.\s+\pL)|\.?)`),
		value:   "Street",
		keep:    2,
	},
	wordReplacement("ter|terr", "Terrace"),
}

// CleanStreetTypes expands street type abbreviations to their canonical long form
func CleanStreetTypes(s string) string {
	for _, streetType := range streetTypes {
		s = streetType.apply(s)
	}

	return s
}
