package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"
)

const streakChannel = "notifications:streaks"

// StreakNotification is the payload picked up by the push delivery worker.
type StreakNotification struct {
	UserID  string `json:"user_id"`
	Streak  int    `json:"streak"`
	Message string `json:"message"`
}

type Service struct {
	redis *redis.Client
}

func NewService(redisClient *redis.Client) *Service {
	return &Service{redis: redisClient}
}

// StreakReminder publishes a motivational notification for the user's
// current streak. Fire-and-forget: failures are logged, never returned.
func (s *Service) StreakReminder(ctx context.Context, userID string, streak int) {
	payload, err := json.Marshal(StreakNotification{
		UserID:  userID,
		Streak:  streak,
		Message: messageFor(streak),
	})
	if err != nil {
		log.Printf("streak notification marshal error: %v", err)
		return
	}

	if s.redis == nil {
		log.Printf("streak notification (no redis): %s", payload)
		return
	}
	if err := s.redis.Publish(ctx, streakChannel, payload).Err(); err != nil {
		log.Printf("streak notification publish error: %v", err)
	}
}

func messageFor(streak int) string {
	switch {
	case streak >= 30:
		return fmt.Sprintf("%d days strong. Your city is thriving!", streak)
	case streak >= 7:
		return fmt.Sprintf("One week and counting - %d day streak. Keep building!", streak)
	case streak > 1:
		return fmt.Sprintf("%d days in a row. A new building awaits!", streak)
	default:
		return "Great workout! Come back tomorrow to grow your streak."
	}
}
