package distance

import "strings"

// areaEstimate is a static fallback estimate for a known suburb or
// neighborhood, used when the mapping provider is unavailable.
type areaEstimate struct {
	Keyword         string
	Miles           float64
	DurationMinutes int
}

// knownAreas maps neighborhood/suburb keywords to rough driving
// estimates from the service-center origin. Ordered most-specific first;
// the first substring match wins.
var knownAreas = []areaEstimate{
	{Keyword: "irving park", Miles: 2.1, DurationMinutes: 10},
	{Keyword: "avondale", Miles: 1.4, DurationMinutes: 8},
	{Keyword: "logan square", Miles: 3.2, DurationMinutes: 14},
	{Keyword: "lincoln park", Miles: 6.0, DurationMinutes: 22},
	{Keyword: "lakeview", Miles: 4.8, DurationMinutes: 19},
	{Keyword: "wicker park", Miles: 4.5, DurationMinutes: 18},
	{Keyword: "downtown", Miles: 7.5, DurationMinutes: 28},
	{Keyword: "the loop", Miles: 7.8, DurationMinutes: 30},
	{Keyword: "chicago", Miles: 6.0, DurationMinutes: 24},
	{Keyword: "evanston", Miles: 10.5, DurationMinutes: 30},
	{Keyword: "skokie", Miles: 8.2, DurationMinutes: 24},
	{Keyword: "oak park", Miles: 9.0, DurationMinutes: 26},
	{Keyword: "cicero", Miles: 10.3, DurationMinutes: 29},
	{Keyword: "schaumburg", Miles: 23.5, DurationMinutes: 38},
	{Keyword: "naperville", Miles: 31.0, DurationMinutes: 45},
	{Keyword: "aurora", Miles: 38.0, DurationMinutes: 55},
	{Keyword: "joliet", Miles: 42.0, DurationMinutes: 58},
}

// Default estimate for addresses matching no known area. Placed just
// inside the extended zone so unrecognized local addresses are not
// rejected outright; the warning marks the number as a guess.
const (
	defaultEstimateMiles   = 12.0
	defaultEstimateMinutes = 30
)

// estimateByKeyword resolves an address against the known-area table.
func estimateByKeyword(address string) (float64, int, bool) {
	needle := strings.ToLower(address)
	for _, area := range knownAreas {
		if strings.Contains(needle, area.Keyword) {
			return area.Miles, area.DurationMinutes, true
		}
	}
	return defaultEstimateMiles, defaultEstimateMinutes, false
}
