package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core/achievement"
)

type achievementRow struct {
	ID          string    `db:"id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	Criteria    string    `db:"criteria"`
	CreatedAt   time.Time `db:"created_at"`
}

type userAchievementRow struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	AchievementID string    `db:"achievement_id"`
	EarnedAt      time.Time `db:"earned_at"`
}

type earnedRow struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	AchievementID string    `db:"achievement_id"`
	EarnedAt      time.Time `db:"earned_at"`
	Title         string    `db:"title"`
	Description   string    `db:"description"`
}

type achievementRepository struct {
	db *sqlx.DB
}

var _ achievement.Repository = (*achievementRepository)(nil) // interface compliance check

func NewAchievementRepository(db *sqlx.DB) *achievementRepository {
	return &achievementRepository{db: db}
}

func (repo achievementRepository) CreateAchievement(ctx context.Context, ach achievement.Achievement) (achievement.Achievement, error) {
	ach.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO achievement (id, title, description, criteria, created_at)
		VALUES ($1, $2, $3, $4, $5)`,
		ach.ID, ach.Title, ach.Description, ach.Criteria, ach.CreatedAt.UTC(),
	)
	if err != nil {
		return achievement.Achievement{}, errors.Wrap(err, "inserting achievement")
	}
	return ach, nil
}

func (repo achievementRepository) QueryAchievements(ctx context.Context) ([]achievement.Achievement, error) {
	var rows []achievementRow
	err := repo.db.SelectContext(ctx, &rows, `SELECT * FROM achievement ORDER BY created_at`)
	if err != nil {
		return nil, errors.Wrap(err, "querying achievements")
	}

	achs := make([]achievement.Achievement, 0, len(rows))
	for _, r := range rows {
		achs = append(achs, achievement.Achievement{
			ID:          r.ID,
			Title:       r.Title,
			Description: r.Description,
			Criteria:    r.Criteria,
			CreatedAt:   r.CreatedAt,
		})
	}
	return achs, nil
}

func (repo achievementRepository) Award(ctx context.Context, ua achievement.UserAchievement) (achievement.UserAchievement, error) {
	ua.ID = uuid.New().String()
	// earn events are not revocable; re-awarding returns the original earn row
	var row userAchievementRow
	err := repo.db.GetContext(ctx, &row, `
		INSERT INTO user_achievement (id, user_id, achievement_id, earned_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, achievement_id) DO NOTHING
		RETURNING id, user_id, achievement_id, earned_at`,
		ua.ID, ua.UserID, ua.AchievementID, ua.EarnedAt.UTC(),
	)
	if err == sql.ErrNoRows {
		err = repo.db.GetContext(ctx, &row, `
			SELECT id, user_id, achievement_id, earned_at FROM user_achievement
			WHERE user_id = $1 AND achievement_id = $2`,
			ua.UserID, ua.AchievementID,
		)
	}
	if err != nil {
		return achievement.UserAchievement{}, errors.Wrap(err, "awarding achievement")
	}
	return achievement.UserAchievement{
		ID:            row.ID,
		UserID:        row.UserID,
		AchievementID: row.AchievementID,
		EarnedAt:      row.EarnedAt,
	}, nil
}

func (repo achievementRepository) QueryEarnedByUser(ctx context.Context, userID string) ([]achievement.Earned, error) {
	var rows []earnedRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT ua.id, ua.user_id, ua.achievement_id, ua.earned_at, a.title, a.description
		FROM user_achievement ua
		JOIN achievement a ON a.id = ua.achievement_id
		WHERE ua.user_id = $1
		ORDER BY ua.earned_at DESC`,
		userID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying earned achievements")
	}

	earned := make([]achievement.Earned, 0, len(rows))
	for _, r := range rows {
		earned = append(earned, achievement.Earned{
			UserAchievement: achievement.UserAchievement{
				ID:            r.ID,
				UserID:        r.UserID,
				AchievementID: r.AchievementID,
				EarnedAt:      r.EarnedAt,
			},
			Title:       r.Title,
			Description: r.Description,
		})
	}
	return earned, nil
}
