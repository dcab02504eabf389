package decode

import (
	"strings"
	"unicode"
)

// conditionNames maps upstream weather phenomena to English, order defines output order
var conditionNames = []struct{ ro, en string }{
	{"CER SENIN", "Clear Sky"},
	{"CER VARIABIL", "Partly Cloudy"},
	{"CER PARTIAL NOROS", "Partly Cloudy"},
	{"CER MAI MULT NOROS", "Mostly Cloudy"},
	{"CER NOROS", "Cloudy"},
	{"INNORAT", "Overcast"},
	{"PLOAIE SLABA", "Light Rain"},
	{"PLOAIE", "Rain"},
	{"PLOAIE MODERATA", "Moderate Rain"},
	{"PLOI", "Rainy"},
	{"AVERSE", "Showers"},
	{"FURTUNA", "Thunderstorm"},
	{"NINSOARE SLABA", "Light Snow"},
	{"NINSOARE", "Snow"},
	{"NINSOARE MODERATA", "Moderate Snow"},
	{"LAPOVITA", "Sleet"},
	{"CEATA", "Fog"},
	{"BURNITA", "Drizzle"},
}

// diacritics folds Romanian letters to ASCII, both cedilla and comma-below forms
var diacritics = strings.NewReplacer(
	"Ă", "A", "Â", "A", "Î", "I", "Ș", "S", "Ş", "S", "Ț", "T", "Ţ", "T",
	"ă", "a", "â", "a", "î", "i", "ș", "s", "ş", "s", "ț", "t", "ţ", "t",
)

// TranslateCondition converts a phenomenon description into English.
// Compound descriptions produce a comma-separated list, unknown text is title-cased.
func TranslateCondition(ro string) string {
	ro = strings.TrimSpace(ro)
	if ro == "" {
		return "Unknown"
	}

	upper := strings.ToUpper(diacritics.Replace(ro))
	var parts []string
	seen := map[string]bool{}
	for _, c := range conditionNames {
		if strings.Contains(upper, c.ro) && !seen[c.en] {
			parts = append(parts, c.en)
			seen[c.en] = true
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, ", ")
	}
	return titleCase(ro)
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
