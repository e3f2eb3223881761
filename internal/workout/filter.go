package workout

import (
	"backend-runcity/internal/shared/geo"
)

const (
	maxHorizontalAccuracyM = 20.0
	minSampleGapM          = 3.0
	minRouteGapM           = 5.0
	minRouteSpeedMps       = 0.5
	maxRouteSpeedMps       = 10.0

	// Increments outside (0, maxIncrementM) are sensor glitches and never
	// advance the distance total.
	maxIncrementM = 100.0
)

// Decision is the filter verdict for one raw sample.
type Decision struct {
	Accept     bool
	AddToRoute bool
}

// EvaluateSample applies the accuracy and jitter rules against the previous
// accepted sample, then the route-inclusion sub-rule against the last sample
// retained into the route. Pure function of its inputs.
func EvaluateSample(prev, lastRoute *LocationSample, cand LocationSample, routeLen int) Decision {
	if cand.HorizontalAccuracyM > maxHorizontalAccuracyM {
		return Decision{}
	}
	if prev != nil {
		gap := geo.DistanceMeters(prev.Latitude, prev.Longitude, cand.Latitude, cand.Longitude)
		if gap < minSampleGapM {
			return Decision{}
		}
	}

	d := Decision{Accept: true}
	if routeLen < 2 || lastRoute == nil {
		d.AddToRoute = true
		return d
	}

	gap := geo.DistanceMeters(lastRoute.Latitude, lastRoute.Longitude, cand.Latitude, cand.Longitude)
	elapsed := cand.Timestamp.Sub(lastRoute.Timestamp).Seconds()
	if gap >= minRouteGapM && elapsed > 0 {
		speed := gap / elapsed
		if speed >= minRouteSpeedMps && speed <= maxRouteSpeedMps {
			d.AddToRoute = true
		}
	}
	return d
}

// distanceIncrement returns the accumulator delta for an accepted sample,
// or zero when the increment is out of the trusted range.
func distanceIncrement(prev *LocationSample, cand LocationSample) float64 {
	if prev == nil {
		return 0
	}
	inc := geo.DistanceMeters(prev.Latitude, prev.Longitude, cand.Latitude, cand.Longitude)
	if inc <= 0 || inc >= maxIncrementM {
		return 0
	}
	return inc
}
