package history

import (
	"testing"
	"time"

	"backend-runcity/internal/workout"
)

var base = time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

func sessionOn(t time.Time) workout.Session {
	return workout.Session{StartedAt: t, IsCompleted: true}
}

func TestCurrentStreakConsecutiveDays(t *testing.T) {
	sessions := []workout.Session{
		sessionOn(base),
		sessionOn(base.AddDate(0, 0, -1)),
		sessionOn(base.AddDate(0, 0, -2)),
	}
	if got := CurrentStreak(sessions, base); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestCurrentStreakGapYesterday(t *testing.T) {
	sessions := []workout.Session{
		sessionOn(base),
		sessionOn(base.AddDate(0, 0, -2)),
	}
	if got := CurrentStreak(sessions, base); got != 1 {
		t.Fatalf("expected streak 1, got %d", got)
	}
}

func TestCurrentStreakRestDayToday(t *testing.T) {
	sessions := []workout.Session{
		sessionOn(base.AddDate(0, 0, -1)),
		sessionOn(base.AddDate(0, 0, -2)),
	}
	if got := CurrentStreak(sessions, base); got != 0 {
		t.Fatalf("expected streak 0 without a session today, got %d", got)
	}
}

func TestCurrentStreakEmpty(t *testing.T) {
	if got := CurrentStreak(nil, base); got != 0 {
		t.Fatalf("expected streak 0, got %d", got)
	}
}

func TestCurrentStreakIgnoresIncomplete(t *testing.T) {
	sessions := []workout.Session{
		{StartedAt: base, IsCompleted: false},
	}
	if got := CurrentStreak(sessions, base); got != 0 {
		t.Fatalf("incomplete sessions must not count, got %d", got)
	}
}

func TestLongestStreak(t *testing.T) {
	sessions := []workout.Session{
		sessionOn(base),
		sessionOn(base.AddDate(0, 0, 1)),
		sessionOn(base.AddDate(0, 0, 2)),
		sessionOn(base.AddDate(0, 0, 4)),
		sessionOn(base.AddDate(0, 0, 5)),
	}
	if got := LongestStreak(sessions); got != 3 {
		t.Fatalf("expected longest 3, got %d", got)
	}
}

// Two sessions on one day count as a single day and must not break the run.
func TestLongestStreakSameDaySessions(t *testing.T) {
	sessions := []workout.Session{
		sessionOn(base),
		sessionOn(base.Add(2 * time.Hour)),
		sessionOn(base.AddDate(0, 0, 1)),
	}
	if got := LongestStreak(sessions); got != 2 {
		t.Fatalf("expected longest 2 with same-day dedupe, got %d", got)
	}
}

func TestLongestStreakSingleDay(t *testing.T) {
	if got := LongestStreak([]workout.Session{sessionOn(base)}); got != 1 {
		t.Fatalf("expected longest 1, got %d", got)
	}
	if got := LongestStreak(nil); got != 0 {
		t.Fatalf("expected longest 0, got %d", got)
	}
}

func TestTotalCompleted(t *testing.T) {
	sessions := []workout.Session{
		sessionOn(base),
		{StartedAt: base, IsCompleted: false},
		sessionOn(base.AddDate(0, 0, -3)),
	}
	if got := TotalCompleted(sessions); got != 2 {
		t.Fatalf("expected 2 completed, got %d", got)
	}
}

func TestCityFor(t *testing.T) {
	city := CityFor(0)
	if city.Level != 1 || city.BuildingsUnlocked != 0 || city.WorkoutsToNextLevel != 5 {
		t.Fatalf("unexpected city progress: %+v", city)
	}
	city = CityFor(12)
	if city.Level != 3 || city.BuildingsUnlocked != 12 || city.WorkoutsToNextLevel != 3 {
		t.Fatalf("unexpected city progress: %+v", city)
	}
}
