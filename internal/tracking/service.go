package tracking

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"backend-runcity/internal/goal"
	"backend-runcity/internal/history"
	"backend-runcity/internal/notify"
	"backend-runcity/internal/stream"
	"backend-runcity/internal/workout"
)

// Service owns one workout tracker per user (a single active session at a
// time) and fans completed sessions out to history, the daily goal, and
// the notifier.
type Service struct {
	mu       sync.Mutex
	trackers map[string]*workout.Tracker

	history  *history.Service
	goals    *goal.Service
	notifier *notify.Service
	hub      *stream.Hub

	trackerOpts workout.Options
}

func NewService(historySvc *history.Service, goals *goal.Service, notifier *notify.Service, hub *stream.Hub) *Service {
	return &Service{
		trackers: map[string]*workout.Tracker{},
		history:  historySvc,
		goals:    goals,
		notifier: notifier,
		hub:      hub,
	}
}

func (s *Service) trackerFor(userID string) *workout.Tracker {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tr, ok := s.trackers[userID]; ok {
		return tr
	}
	opts := s.trackerOpts
	opts.OnTick = func(snap workout.Snapshot) {
		s.broadcast(userID, snap)
	}
	tr := workout.NewTracker(opts)
	s.trackers[userID] = tr
	return tr
}

// Start begins a workout for the user. Returns the session and whether a
// new one was created; an already-running session is returned unchanged.
func (s *Service) Start(userID string, typ workout.Type) (workout.Session, bool) {
	return s.trackerFor(userID).Start(userID, typ)
}

func (s *Service) Pause(userID string) (workout.Snapshot, bool) {
	tr := s.trackerFor(userID)
	ok := tr.Pause()
	return tr.Snapshot(), ok
}

func (s *Service) Resume(userID string) (workout.Snapshot, bool) {
	tr := s.trackerFor(userID)
	ok := tr.Resume()
	return tr.Snapshot(), ok
}

func (s *Service) Current(userID string) (workout.Snapshot, bool) {
	snap := s.trackerFor(userID).Snapshot()
	return snap, snap.State != workout.StateIdle
}

// Ingest feeds one raw location fix into the user's active tracker and
// broadcasts the updated metrics when the sample is accepted.
func (s *Service) Ingest(userID string, sample workout.LocationSample) (bool, workout.Snapshot) {
	accepted, snap := s.trackerFor(userID).Ingest(sample)
	if accepted {
		s.broadcast(userID, snap)
	}
	return accepted, snap
}

// End completes the user's session. Persistence and notification are
// best-effort: failures are logged and never lose the completed record.
func (s *Service) End(ctx context.Context, userID string, avgHeartRate, maxHeartRate int) (workout.Session, bool) {
	done, ok := s.trackerFor(userID).End(avgHeartRate, maxHeartRate)
	if !ok {
		return workout.Session{}, false
	}

	if err := s.history.Insert(ctx, done); err != nil {
		log.Printf("history insert failed for session %s: %v", done.ID, err)
	}
	if _, err := s.goals.Credit(ctx, userID, done.DurationSeconds); err != nil {
		log.Printf("daily goal credit failed for %s: %v", userID, err)
	}

	if sessions, err := s.history.List(ctx, userID); err == nil {
		s.notifier.StreakReminder(ctx, userID, history.CurrentStreak(sessions, time.Now()))
	} else {
		log.Printf("streak recompute failed for %s: %v", userID, err)
	}

	s.broadcastCompleted(userID, done)
	return done, true
}

func (s *Service) broadcast(userID string, snap workout.Snapshot) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(snap)
	if err != nil {
		return
	}
	s.hub.Broadcast(userID, payload)
}

func (s *Service) broadcastCompleted(userID string, session workout.Session) {
	if s.hub == nil {
		return
	}
	payload, err := json.Marshal(struct {
		Event   string          `json:"event"`
		Session workout.Session `json:"session"`
	}{Event: "completed", Session: session})
	if err != nil {
		return
	}
	s.hub.Broadcast(userID, payload)
}
