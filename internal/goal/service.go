package goal

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// DailyGoalSeconds is the fixed 15-minute daily activity target.
const DailyGoalSeconds = 15 * 60

const dayFormat = "2006-01-02"

// Progress is the per-user daily goal state. It resets to zero whenever it
// is loaded on a different calendar day than it was last written.
type Progress struct {
	AccumulatedSeconds int    `json:"accumulated_seconds"`
	LastReset          string `json:"last_reset"`
}

// Ratio reports goal completion in [0, 1].
func (p Progress) Ratio() float64 {
	r := float64(p.AccumulatedSeconds) / DailyGoalSeconds
	if r > 1 {
		return 1
	}
	return r
}

type Service struct {
	redis *redis.Client
	now   func() time.Time
}

func NewService(redisClient *redis.Client) *Service {
	return &Service{redis: redisClient, now: time.Now}
}

// Load returns today's progress. Missing or unreadable state is treated as
// no prior data, never as an error.
func (s *Service) Load(ctx context.Context, userID string) Progress {
	today := s.now().Format(dayFormat)
	empty := Progress{LastReset: today}
	if s.redis == nil {
		return empty
	}

	val, err := s.redis.Get(ctx, key(userID)).Result()
	if err != nil {
		return empty
	}

	var p Progress
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return empty
	}
	if p.LastReset != today {
		return empty
	}
	return p
}

// Credit adds workout seconds to today's total and persists best-effort.
func (s *Service) Credit(ctx context.Context, userID string, seconds int) (Progress, error) {
	p := s.Load(ctx, userID)
	p.AccumulatedSeconds += seconds
	p.LastReset = s.now().Format(dayFormat)

	if s.redis == nil {
		return p, nil
	}

	payload, err := json.Marshal(p)
	if err != nil {
		return p, err
	}
	// state is only meaningful for the current day; expire stale keys
	if err := s.redis.Set(ctx, key(userID), payload, 48*time.Hour).Err(); err != nil {
		return p, err
	}
	return p, nil
}

func key(userID string) string {
	return "goal:" + userID + ":daily"
}
