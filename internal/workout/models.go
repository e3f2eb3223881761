package workout

import "time"

// Type is the kind of workout being tracked.
type Type string

const (
	TypeRunning Type = "running"
	TypeWalking Type = "walking"
	TypeCycling Type = "cycling"
	TypeCardio  Type = "cardio"
)

func (t Type) Valid() bool {
	switch t {
	case TypeRunning, TypeWalking, TypeCycling, TypeCardio:
		return true
	}
	return false
}

// Category is assigned exactly once, when a session completes.
type Category string

const (
	CategorySprint      Category = "sprint"
	CategoryShortRun    Category = "shortRun"
	CategoryMediumRun   Category = "mediumRun"
	CategoryLongRun     Category = "longRun"
	CategoryRecoveryRun Category = "recoveryRun"
	CategoryTempoRun    Category = "tempoRun"
	CategoryEasyRun     Category = "easyRun"
)

// LocationSample is one raw GPS fix as reported by the client device.
type LocationSample struct {
	Latitude            float64   `json:"lat"`
	Longitude           float64   `json:"lng"`
	Altitude            float64   `json:"altitude"`
	HorizontalAccuracyM float64   `json:"horizontal_accuracy_m"`
	SpeedMps            float64   `json:"speed_mps"`
	CourseDegrees       float64   `json:"course_degrees"`
	Timestamp           time.Time `json:"timestamp"`
}

type RoutePoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Session is one contiguous workout from start to end. While active it is
// owned exclusively by a Tracker; once completed it is frozen and handed to
// the history store.
type Session struct {
	ID              string       `json:"id"`
	UserID          string       `json:"user_id"`
	Type            Type         `json:"workout_type"`
	StartedAt       time.Time    `json:"started_at"`
	EndedAt         time.Time    `json:"ended_at,omitempty"`
	DurationSeconds int          `json:"duration_seconds"`
	DistanceM       float64      `json:"distance_m"`
	Calories        int          `json:"calories"`
	AvgHeartRate    int          `json:"avg_heart_rate,omitempty"`
	MaxHeartRate    int          `json:"max_heart_rate,omitempty"`
	Route           []RoutePoint `json:"route,omitempty"`
	Category        Category     `json:"run_category,omitempty"`
	IsCompleted     bool         `json:"is_completed"`
}
