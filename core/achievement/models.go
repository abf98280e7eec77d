package achievement

import "time"

type Achievement struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Criteria    string    `json:"criteria"` // opaque
	CreatedAt   time.Time `json:"created_at"` // UTC
}

// UserAchievement records that a user earned an achievement; earn events are
// not revocable.
type UserAchievement struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	AchievementID string    `json:"achievement_id"`
	EarnedAt      time.Time `json:"earned_at"` // UTC
}

// Earned is the joined view returned to clients.
type Earned struct {
	UserAchievement
	Title       string `json:"title"`
	Description string `json:"description"`
}
