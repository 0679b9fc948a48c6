package googlemaps

import "time"

// DriveEstimate is a raw driving estimate from the provider.
type DriveEstimate struct {
	Meters   int
	Duration time.Duration
}

const metersPerMile = 1609.344

// Miles converts the estimate to miles, rounded to one decimal.
func (e DriveEstimate) Miles() float64 {
	miles := float64(e.Meters) / metersPerMile
	return float64(int(miles*10+0.5)) / 10
}

// Minutes converts the estimate duration to whole minutes, rounding up.
func (e DriveEstimate) Minutes() int {
	return int((e.Duration + time.Minute - 1) / time.Minute)
}
