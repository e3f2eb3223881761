package profile

import "time"

type Profile struct {
	UserID               string    `json:"user_id"`
	DisplayName          string    `json:"display_name"`
	WeightKg             float64   `json:"weight_kg"`
	PreferredWorkout     string    `json:"preferred_workout"`
	NotificationsEnabled bool      `json:"notifications_enabled"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// UpdateParams carries one optional field per updatable attribute.
// A nil field leaves the stored value untouched.
type UpdateParams struct {
	DisplayName          *string  `json:"display_name"`
	WeightKg             *float64 `json:"weight_kg"`
	PreferredWorkout     *string  `json:"preferred_workout"`
	NotificationsEnabled *bool    `json:"notifications_enabled"`
}

func (p UpdateParams) Empty() bool {
	return p.DisplayName == nil && p.WeightKg == nil &&
		p.PreferredWorkout == nil && p.NotificationsEnabled == nil
}
