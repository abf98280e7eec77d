package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/reubenc-bit/WiseEdu-sub001/core/achievement"
)

type achievementRepository struct {
	db *DB
}

var _ achievement.Repository = (*achievementRepository)(nil) // interface compliance check

func NewAchievementRepository(db *DB) *achievementRepository {
	return &achievementRepository{db: db}
}

func (repo *achievementRepository) CreateAchievement(ctx context.Context, ach achievement.Achievement) (achievement.Achievement, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	ach.ID = uuid.New().String()
	repo.db.achievements[ach.ID] = &ach
	return ach, nil
}

func (repo *achievementRepository) QueryAchievements(ctx context.Context) ([]achievement.Achievement, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	achs := make([]achievement.Achievement, 0, len(repo.db.achievements))
	for _, ach := range repo.db.achievements {
		achs = append(achs, *ach)
	}
	sort.Slice(achs, func(i, j int) bool { return achs[i].CreatedAt.Before(achs[j].CreatedAt) })
	return achs, nil
}

func (repo *achievementRepository) Award(ctx context.Context, ua achievement.UserAchievement) (achievement.UserAchievement, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	key := pairKey(ua.UserID, ua.AchievementID)
	if existing, ok := repo.db.userAchievements[key]; ok {
		// earn events are not revocable; keep the original earn date
		return *existing, nil
	}
	ua.ID = uuid.New().String()
	repo.db.userAchievements[key] = &ua
	return ua, nil
}

func (repo *achievementRepository) QueryEarnedByUser(ctx context.Context, userID string) ([]achievement.Earned, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	earned := make([]achievement.Earned, 0)
	for _, ua := range repo.db.userAchievements {
		if ua.UserID != userID {
			continue
		}
		e := achievement.Earned{UserAchievement: *ua}
		if ach, ok := repo.db.achievements[ua.AchievementID]; ok {
			e.Title = ach.Title
			e.Description = ach.Description
		}
		earned = append(earned, e)
	}
	sort.Slice(earned, func(i, j int) bool { return earned[i].EarnedAt.After(earned[j].EarnedAt) })
	return earned, nil
}
