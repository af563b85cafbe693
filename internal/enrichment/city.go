package enrichment

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// CityAlias maps one spelling of a city to the asset key of its image.
type CityAlias struct {
	Alias    string `json:"alias"`
	AssetKey string `json:"asset_key"`
}

var letterRun = regexp.MustCompile(`\p{L}+`)

const minTokenLength = 3

// DefaultCityAliases is the built-in alias table. Order matters: earlier
// entries win on both passes.
func DefaultCityAliases() []CityAlias {
	return []CityAlias{
		{"istanbul", "istanbul"},
		{"constantinople", "istanbul"},
		{"sultanahmet", "istanbul"},
		{"ankara", "ankara"},
		{"izmir", "izmir"},
		{"antalya", "antalya"},
		{"kapadokya", "cappadocia"},
		{"cappadocia", "cappadocia"},
		{"göreme", "cappadocia"},
		{"bodrum", "bodrum"},
		{"trabzon", "trabzon"},
		{"paris", "paris"},
		{"london", "london"},
		{"londra", "london"},
		{"rome", "rome"},
		{"roma", "rome"},
		{"barcelona", "barcelona"},
		{"amsterdam", "amsterdam"},
		{"berlin", "berlin"},
		{"prague", "prague"},
		{"prag", "prague"},
		{"vienna", "vienna"},
		{"viyana", "vienna"},
		{"athens", "athens"},
		{"atina", "athens"},
		{"dubai", "dubai"},
		{"tokyo", "tokyo"},
		{"new york", "new-york"},
		{"bangkok", "bangkok"},
	}
}

type foldedAlias struct {
	folded string
	key    string
}

// CityImageDetector resolves activity text to a city asset key using an
// ordered alias table, first by substring and then by edit distance.
// It is safe for concurrent use.
type CityImageDetector struct {
	aliases []foldedAlias
}

// NewCityImageDetector folds the aliases once. Entries with an empty alias
// or asset key are ignored.
func NewCityImageDetector(aliases []CityAlias) *CityImageDetector {
	d := &CityImageDetector{aliases: make([]foldedAlias, 0, len(aliases))}
	for _, a := range aliases {
		folded := Fold(strings.TrimSpace(a.Alias))
		if folded == "" || a.AssetKey == "" {
			continue
		}
		d.aliases = append(d.aliases, foldedAlias{folded: folded, key: a.AssetKey})
	}
	return d
}

// Len is the number of usable aliases.
func (d *CityImageDetector) Len() int {
	return len(d.aliases)
}

// Detect returns the asset key for the combined title and location text.
func (d *CityImageDetector) Detect(title, location string) (string, bool) {
	combined := strings.TrimSpace(title + " " + location)
	if combined == "" {
		return "", false
	}
	lower := strings.ToLower(combined)
	folded := Fold(combined)

	for _, a := range d.aliases {
		if strings.Contains(lower, a.folded) || strings.Contains(folded, a.folded) {
			return a.key, true
		}
	}

	var tokens []string
	for _, tok := range letterRun.FindAllString(folded, -1) {
		if utf8.RuneCountInString(tok) >= minTokenLength {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return "", false
	}

	for _, a := range d.aliases {
		limit := FuzzyThreshold(a.folded)
		for _, tok := range tokens {
			if Levenshtein(tok, a.folded) <= limit {
				return a.key, true
			}
		}
	}
	return "", false
}
