package history

import (
	"context"
	"time"

	"backend-runcity/internal/db"
	"backend-runcity/internal/workout"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

// Insert appends a completed session and its simplified route to history.
func (s *Service) Insert(ctx context.Context, session workout.Session) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO workout_sessions
			(id, user_id, workout_type, run_category, started_at, ended_at,
			 duration_seconds, distance_m, calories, avg_heart_rate, max_heart_rate, is_completed)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, session.ID, session.UserID, string(session.Type), string(session.Category),
		session.StartedAt, session.EndedAt, session.DurationSeconds, session.DistanceM,
		session.Calories, session.AvgHeartRate, session.MaxHeartRate, session.IsCompleted)
	if err != nil {
		return err
	}

	for i, p := range session.Route {
		_, err := s.db.Exec(ctx, `
			INSERT INTO workout_route_points (session_id, seq, lat, lng)
			VALUES ($1,$2,$3,$4)
		`, session.ID, i, p.Lat, p.Lng)
		if err != nil {
			return err
		}
	}
	return nil
}

// List returns the user's completed sessions ordered by start time. Routes
// are loaded separately via Route.
func (s *Service) List(ctx context.Context, userID string) ([]workout.Session, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, workout_type, run_category, started_at, ended_at,
		       duration_seconds, distance_m, calories,
		       COALESCE(avg_heart_rate,0), COALESCE(max_heart_rate,0), is_completed
		FROM workout_sessions
		WHERE user_id=$1
		ORDER BY started_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []workout.Session
	for rows.Next() {
		var sess workout.Session
		var typ, cat string
		if err := rows.Scan(&sess.ID, &sess.UserID, &typ, &cat, &sess.StartedAt, &sess.EndedAt,
			&sess.DurationSeconds, &sess.DistanceM, &sess.Calories,
			&sess.AvgHeartRate, &sess.MaxHeartRate, &sess.IsCompleted); err != nil {
			return nil, err
		}
		sess.Type = workout.Type(typ)
		sess.Category = workout.Category(cat)
		sessions = append(sessions, sess)
	}
	return sessions, nil
}

// Route returns the retained polyline for one session.
func (s *Service) Route(ctx context.Context, sessionID string) ([]workout.RoutePoint, error) {
	rows, err := s.db.Query(ctx, `
		SELECT lat, lng
		FROM workout_route_points
		WHERE session_id=$1
		ORDER BY seq
	`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var route []workout.RoutePoint
	for rows.Next() {
		var p workout.RoutePoint
		if err := rows.Scan(&p.Lat, &p.Lng); err != nil {
			return nil, err
		}
		route = append(route, p)
	}
	return route, nil
}

// Stats recomputes streaks and totals from the history rows.
func (s *Service) Stats(ctx context.Context, userID string, now time.Time) (Stats, error) {
	sessions, err := s.List(ctx, userID)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{
		CurrentStreak: CurrentStreak(sessions, now),
		LongestStreak: LongestStreak(sessions),
		TotalWorkouts: TotalCompleted(sessions),
	}
	for _, sess := range sessions {
		if !sess.IsCompleted {
			continue
		}
		stats.TotalDistanceM += sess.DistanceM
		stats.TotalCalories += sess.Calories
		stats.TotalDurationSeconds += sess.DurationSeconds
	}
	return stats, nil
}
