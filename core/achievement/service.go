package achievement

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("achievement not found")

type (
	Repository interface {
		CreateAchievement(ctx context.Context, ach Achievement) (Achievement, error)
		QueryAchievements(ctx context.Context) ([]Achievement, error)
		Award(ctx context.Context, ua UserAchievement) (UserAchievement, error)
		// QueryEarnedByUser returns the user's earned achievements, most recent first.
		QueryEarnedByUser(ctx context.Context, userID string) ([]Earned, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, title, description, criteria string) (Achievement, error) {
	ach := Achievement{
		Title:       title,
		Description: description,
		Criteria:    criteria,
		CreatedAt:   time.Now().UTC(),
	}
	return svc.repo.CreateAchievement(ctx, ach)
}

func (svc *Service) All(ctx context.Context) ([]Achievement, error) {
	return svc.repo.QueryAchievements(ctx)
}

// Award records an earn event for the user.
func (svc *Service) Award(ctx context.Context, userID, achievementID string) (UserAchievement, error) {
	ua := UserAchievement{
		UserID:        userID,
		AchievementID: achievementID,
		EarnedAt:      time.Now().UTC(),
	}
	return svc.repo.Award(ctx, ua)
}

func (svc *Service) EarnedByUser(ctx context.Context, userID string) ([]Earned, error) {
	return svc.repo.QueryEarnedByUser(ctx, userID)
}
