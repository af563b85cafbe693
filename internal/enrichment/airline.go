package enrichment

import "strings"

// AirlineBrand identifies a carrier that has a logo asset.
type AirlineBrand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

var (
	BrandTHY     = AirlineBrand{ID: "thy", Name: "Turkish Airlines"}
	BrandAJet    = AirlineBrand{ID: "ajet", Name: "AJet"}
	BrandPegasus = AirlineBrand{ID: "pegasus", Name: "Pegasus"}
)

// markers are checked in order, first hit wins.
var airlineMarkers = []struct {
	marker string
	brand  AirlineBrand
}{
	{"thy", BrandTHY},
	{"ajet", BrandAJet},
	{"pegasus", BrandPegasus},
}

// DetectAirlineBrand looks for a known carrier marker in a flight blurb.
// It returns nil when none is present.
func DetectAirlineBrand(text string) *AirlineBrand {
	if text == "" {
		return nil
	}
	s := strings.ToLower(text)
	for _, m := range airlineMarkers {
		if strings.Contains(s, m.marker) {
			brand := m.brand
			return &brand
		}
	}
	return nil
}
