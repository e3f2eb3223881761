package profile

import (
	"context"

	"backend-runcity/internal/db"
)

type Service struct {
	db db.Querier
}

func NewService(db db.Querier) *Service {
	return &Service{db: db}
}

func (s *Service) CreateProfile(ctx context.Context, input Profile) (Profile, error) {
	row := s.db.QueryRow(ctx, `
		INSERT INTO user_profiles (user_id, display_name, weight_kg, preferred_workout, notifications_enabled)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING created_at, updated_at
	`, input.UserID, input.DisplayName, input.WeightKg, input.PreferredWorkout, input.NotificationsEnabled)
	if err := row.Scan(&input.CreatedAt, &input.UpdatedAt); err != nil {
		return Profile{}, err
	}
	return input, nil
}

func (s *Service) GetProfile(ctx context.Context, userID string) (Profile, error) {
	row := s.db.QueryRow(ctx, `
		SELECT user_id, display_name, COALESCE(weight_kg,0), COALESCE(preferred_workout,''),
		       notifications_enabled, created_at, updated_at
		FROM user_profiles WHERE user_id=$1
	`, userID)
	var p Profile
	if err := row.Scan(&p.UserID, &p.DisplayName, &p.WeightKg, &p.PreferredWorkout,
		&p.NotificationsEnabled, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, patch UpdateParams) (Profile, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	if patch.DisplayName != nil {
		p.DisplayName = *patch.DisplayName
	}
	if patch.WeightKg != nil {
		p.WeightKg = *patch.WeightKg
	}
	if patch.PreferredWorkout != nil {
		p.PreferredWorkout = *patch.PreferredWorkout
	}
	if patch.NotificationsEnabled != nil {
		p.NotificationsEnabled = *patch.NotificationsEnabled
	}

	row := s.db.QueryRow(ctx, `
		UPDATE user_profiles
		SET display_name=$2, weight_kg=$3, preferred_workout=$4,
		    notifications_enabled=$5, updated_at=now()
		WHERE user_id=$1
		RETURNING updated_at
	`, p.UserID, p.DisplayName, p.WeightKg, p.PreferredWorkout, p.NotificationsEnabled)
	if err := row.Scan(&p.UpdatedAt); err != nil {
		return Profile{}, err
	}
	return p, nil
}

func (s *Service) DeleteProfile(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM user_profiles WHERE user_id=$1`, userID)
	return err
}
