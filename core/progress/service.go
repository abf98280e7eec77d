package progress

import (
	"context"
	"time"
)

type (
	Repository interface {
		// UpsertProgress inserts or, on (user, lesson) conflict, overwrites the
		// completion state with the incoming row (last-write-wins).
		UpsertProgress(ctx context.Context, prg UserProgress) (UserProgress, error)
		// QueryProgressByUser returns the user's rows, most recently updated first.
		QueryProgressByUser(ctx context.Context, userID string) ([]UserProgress, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record upserts a progress row for the given user.
func (svc *Service) Record(ctx context.Context, userID string, up UpsertProgress) (UserProgress, error) {
	now := time.Now().UTC()
	prg := UserProgress{
		UserID:        userID,
		LessonID:      up.LessonID,
		CourseID:      up.CourseID,
		Completed:     up.Completed,
		CompletionPct: up.CompletionPct,
		TimeSpent:     up.TimeSpent,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if prg.Completed {
		if prg.CompletionPct == 0 {
			prg.CompletionPct = 100
		}
		prg.CompletedAt = &now
	}
	return svc.repo.UpsertProgress(ctx, prg)
}

func (svc *Service) ListByUser(ctx context.Context, userID string) ([]UserProgress, error) {
	return svc.repo.QueryProgressByUser(ctx, userID)
}
