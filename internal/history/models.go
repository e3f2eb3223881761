package history

// Stats is the aggregate view over a user's completed workouts, recomputed
// from the history rows on every request.
type Stats struct {
	CurrentStreak        int     `json:"current_streak"`
	LongestStreak        int     `json:"longest_streak"`
	TotalWorkouts        int     `json:"total_workouts"`
	TotalDistanceM       float64 `json:"total_distance_m"`
	TotalCalories        int     `json:"total_calories"`
	TotalDurationSeconds int     `json:"total_duration_seconds"`
}

// CityProgress maps workout volume onto the city-building game layer.
type CityProgress struct {
	Level               int `json:"level"`
	BuildingsUnlocked   int `json:"buildings_unlocked"`
	WorkoutsToNextLevel int `json:"workouts_to_next_level"`
}

const workoutsPerCityLevel = 5

// CityFor derives city progress from the completed workout count.
func CityFor(totalWorkouts int) CityProgress {
	return CityProgress{
		Level:               totalWorkouts/workoutsPerCityLevel + 1,
		BuildingsUnlocked:   totalWorkouts,
		WorkoutsToNextLevel: workoutsPerCityLevel - totalWorkouts%workoutsPerCityLevel,
	}
}
