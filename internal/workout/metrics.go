package workout

import "fmt"

func caloriesPerMinute(t Type) float64 {
	switch t {
	case TypeRunning:
		return 12.0
	case TypeWalking:
		return 6.0
	case TypeCycling:
		return 8.0
	default:
		return 10.0
	}
}

// Snapshot is the derived-metrics view of an active session at one tick.
type Snapshot struct {
	SessionID       string  `json:"session_id"`
	State           State   `json:"state"`
	Type            Type    `json:"workout_type"`
	ElapsedSeconds  int     `json:"elapsed_seconds"`
	DistanceM       float64 `json:"distance_m"`
	Calories        int     `json:"calories"`
	PaceSecPerKm    float64 `json:"pace_sec_per_km"`
	AvgPaceSecPerKm float64 `json:"avg_pace_sec_per_km"`
	HasPace         bool    `json:"has_pace"`
	RoutePoints     int     `json:"route_points"`
}

// PaceString renders pace as mm:ss per km, or the no-pace sentinel before
// any distance has accumulated.
func (s Snapshot) PaceString() string {
	if !s.HasPace {
		return "--:--"
	}
	total := int(s.PaceSecPerKm)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// paceSecPerKm is undefined until some distance has accumulated.
func paceSecPerKm(elapsedSeconds, distanceM float64) (float64, bool) {
	if distanceM <= 0 {
		return 0, false
	}
	return elapsedSeconds / (distanceM / 1000), true
}
