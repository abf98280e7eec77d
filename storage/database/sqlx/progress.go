package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/progress"
)

var progressOrdering = core.DBOrdering{Field: "updated_at"} // most recent activity first

type progressRow struct {
	ID            string       `db:"id"`
	UserID        string       `db:"user_id"`
	LessonID      string       `db:"lesson_id"`
	CourseID      string       `db:"course_id"`
	Completed     bool         `db:"completed"`
	CompletionPct int          `db:"completion_pct"`
	TimeSpent     int          `db:"time_spent"`
	CompletedAt   sql.NullTime `db:"completed_at"`
	CreatedAt     time.Time    `db:"created_at"`
	UpdatedAt     time.Time    `db:"updated_at"`
}

func (r progressRow) unrow() progress.UserProgress {
	prg := progress.UserProgress{
		ID:            r.ID,
		UserID:        r.UserID,
		LessonID:      r.LessonID,
		CourseID:      r.CourseID,
		Completed:     r.Completed,
		CompletionPct: r.CompletionPct,
		TimeSpent:     r.TimeSpent,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
	if r.CompletedAt.Valid {
		t := r.CompletedAt.Time
		prg.CompletedAt = &t
	}
	return prg
}

type progressRepository struct {
	db *sqlx.DB
}

var _ progress.Repository = (*progressRepository)(nil) // interface compliance check

func NewProgressRepository(db *sqlx.DB) *progressRepository {
	return &progressRepository{db: db}
}

// UpsertProgress relies on the (user_id, lesson_id) unique constraint;
// concurrent writers race with last-write-wins semantics, which is acceptable
// for a completion percentage.
func (repo progressRepository) UpsertProgress(ctx context.Context, prg progress.UserProgress) (progress.UserProgress, error) {
	var completedAt sql.NullTime
	if prg.CompletedAt != nil {
		completedAt = sql.NullTime{Time: prg.CompletedAt.UTC(), Valid: true}
	}

	var row progressRow
	err := repo.db.GetContext(ctx, &row, `
		INSERT INTO user_progress (id, user_id, lesson_id, course_id, completed, completion_pct, time_spent, completed_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (user_id, lesson_id) DO UPDATE SET
			completed      = EXCLUDED.completed,
			completion_pct = EXCLUDED.completion_pct,
			time_spent     = EXCLUDED.time_spent,
			completed_at   = EXCLUDED.completed_at,
			updated_at     = EXCLUDED.updated_at
		RETURNING *`,
		uuid.New().String(), prg.UserID, prg.LessonID, prg.CourseID, prg.Completed, prg.CompletionPct,
		prg.TimeSpent, completedAt, prg.CreatedAt.UTC(), prg.UpdatedAt.UTC(),
	)
	if err != nil {
		return progress.UserProgress{}, errors.Wrap(err, "upserting progress")
	}
	return row.unrow(), nil
}

func (repo progressRepository) QueryProgressByUser(ctx context.Context, userID string) ([]progress.UserProgress, error) {
	var rows []progressRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM user_progress WHERE user_id = $1 ORDER BY `+progressOrdering.String(), userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying progress")
	}

	prgs := make([]progress.UserProgress, 0, len(rows))
	for _, r := range rows {
		prgs = append(prgs, r.unrow())
	}
	return prgs, nil
}
