package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/reubenc-bit/WiseEdu-sub001/core/progress"
)

type progressRepository struct {
	db *DB
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *DB) *progressRepository {
	return &progressRepository{db: db}
}

func (repo *progressRepository) UpsertProgress(ctx context.Context, prg progress.UserProgress) (progress.UserProgress, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	key := pairKey(prg.UserID, prg.LessonID)
	if existing, ok := repo.db.progress[key]; ok {
		// last-write-wins on the completion state; identity fields stay put
		prg.ID = existing.ID
		prg.CreatedAt = existing.CreatedAt
	} else {
		prg.ID = uuid.New().String()
	}
	repo.db.progress[key] = &prg
	return prg, nil
}

func (repo *progressRepository) QueryProgressByUser(ctx context.Context, userID string) ([]progress.UserProgress, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	prgs := make([]progress.UserProgress, 0)
	for _, prg := range repo.db.progress {
		if prg.UserID == userID {
			prgs = append(prgs, *prg)
		}
	}
	sort.Slice(prgs, func(i, j int) bool { return prgs[i].UpdatedAt.After(prgs[j].UpdatedAt) })
	return prgs, nil
}
