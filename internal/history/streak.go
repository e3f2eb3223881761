package history

import (
	"sort"
	"time"

	"backend-runcity/internal/workout"
)

const dayFormat = "2006-01-02"

// CurrentStreak walks backward one calendar day at a time starting at today,
// counting days with at least one completed session, and stops at the first
// empty day. A rest day today yields zero.
func CurrentStreak(sessions []workout.Session, today time.Time) int {
	days := completedDays(sessions)
	if len(days) == 0 {
		return 0
	}

	streak := 0
	for d := dayOf(today); days[d.Format(dayFormat)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// LongestStreak measures the longest run of consecutive calendar days with
// at least one completed session. Sessions are deduplicated to distinct
// days first, so a second workout on the same day extends nothing and
// breaks nothing.
func LongestStreak(sessions []workout.Session) int {
	daySet := completedDays(sessions)
	if len(daySet) == 0 {
		return 0
	}

	days := make([]string, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Strings(days)

	longest, run := 1, 1
	prev, _ := time.Parse(dayFormat, days[0])
	for _, key := range days[1:] {
		day, _ := time.Parse(dayFormat, key)
		if day.Sub(prev) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = day
	}
	return longest
}

// TotalCompleted counts completed sessions.
func TotalCompleted(sessions []workout.Session) int {
	n := 0
	for _, s := range sessions {
		if s.IsCompleted {
			n++
		}
	}
	return n
}

func completedDays(sessions []workout.Session) map[string]bool {
	days := map[string]bool{}
	for _, s := range sessions {
		if s.IsCompleted {
			days[dayOf(s.StartedAt).Format(dayFormat)] = true
		}
	}
	return days
}

func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
