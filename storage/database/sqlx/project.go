package sqlxrepos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core/project"
)

type projectRow struct {
	ID          string    `db:"id"`
	UserID      string    `db:"user_id"`
	Title       string    `db:"title"`
	Description string    `db:"description"`
	CodeContent string    `db:"code_content"`
	Language    string    `db:"language"`
	IsPublic    bool      `db:"is_public"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func (r projectRow) unrow() project.Project {
	return project.Project{
		ID:          r.ID,
		UserID:      r.UserID,
		Title:       r.Title,
		Description: r.Description,
		CodeContent: r.CodeContent,
		Language:    r.Language,
		IsPublic:    r.IsPublic,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type projectRepository struct {
	db *sqlx.DB
}

var _ project.Repository = (*projectRepository)(nil) // interface compliance check

func NewProjectRepository(db *sqlx.DB) *projectRepository {
	return &projectRepository{db: db}
}

func (repo projectRepository) CreateProject(ctx context.Context, prj project.Project) (project.Project, error) {
	prj.ID = uuid.New().String()
	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO project (id, user_id, title, description, code_content, language, is_public, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		prj.ID, prj.UserID, prj.Title, prj.Description, prj.CodeContent, prj.Language, prj.IsPublic,
		prj.CreatedAt.UTC(), prj.UpdatedAt.UTC(),
	)
	if err != nil {
		return project.Project{}, errors.Wrap(err, "inserting project")
	}
	return prj, nil
}

func (repo projectRepository) QueryProjectsByUser(ctx context.Context, userID string) ([]project.Project, error) {
	var rows []projectRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM project WHERE user_id = $1 ORDER BY updated_at DESC`, userID)
	if err != nil {
		return nil, errors.Wrap(err, "querying projects")
	}

	prjs := make([]project.Project, 0, len(rows))
	for _, r := range rows {
		prjs = append(prjs, r.unrow())
	}
	return prjs, nil
}

func (repo projectRepository) GetProjectByID(ctx context.Context, id string) (project.Project, error) {
	var row projectRow
	err := repo.db.GetContext(ctx, &row, `SELECT * FROM project WHERE id = $1`, id)
	if err != nil {
		return project.Project{}, trapNoRowsErr(err, project.ErrNotFound, "finding project by id")
	}
	return row.unrow(), nil
}

func (repo projectRepository) UpdateProject(ctx context.Context, prj project.Project) (project.Project, error) {
	res, err := repo.db.ExecContext(ctx, `
		UPDATE project
		SET title = $1, description = $2, code_content = $3, language = $4, is_public = $5, updated_at = $6
		WHERE id = $7`,
		prj.Title, prj.Description, prj.CodeContent, prj.Language, prj.IsPublic, prj.UpdatedAt.UTC(), prj.ID,
	)
	if err != nil {
		return project.Project{}, errors.Wrap(err, "updating project")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return project.Project{}, project.ErrNotFound
	}
	return prj, nil
}
