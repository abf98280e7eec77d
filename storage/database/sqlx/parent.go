package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core/parent"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

type relationshipRow struct {
	ID               string    `db:"id"`
	ParentID         string    `db:"parent_id"`
	ChildID          string    `db:"child_id"`
	RelationshipType string    `db:"relationship_type"`
	CreatedAt        time.Time `db:"created_at"`
}

func (r relationshipRow) unrow() parent.Relationship {
	return parent.Relationship{
		ID:               r.ID,
		ParentID:         r.ParentID,
		ChildID:          r.ChildID,
		RelationshipType: r.RelationshipType,
		CreatedAt:        r.CreatedAt,
	}
}

type parentRepository struct {
	db *sqlx.DB
}

var _ parent.Repository = (*parentRepository)(nil) // interface compliance check

func NewParentRepository(db *sqlx.DB) *parentRepository {
	return &parentRepository{db: db}
}

func (repo parentRepository) CreateRelationship(ctx context.Context, rel parent.Relationship) (parent.Relationship, error) {
	rel.ID = uuid.New().String()
	// a child can only be linked to a given parent once; relinking returns the stored row
	var row relationshipRow
	err := repo.db.GetContext(ctx, &row, `
		INSERT INTO parent_child_relationship (id, parent_id, child_id, relationship_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (parent_id, child_id) DO NOTHING
		RETURNING id, parent_id, child_id, relationship_type, created_at`,
		rel.ID, rel.ParentID, rel.ChildID, rel.RelationshipType, rel.CreatedAt.UTC(),
	)
	if err == sql.ErrNoRows {
		err = repo.db.GetContext(ctx, &row, `
			SELECT id, parent_id, child_id, relationship_type, created_at FROM parent_child_relationship
			WHERE parent_id = $1 AND child_id = $2`,
			rel.ParentID, rel.ChildID,
		)
	}
	if err != nil {
		return parent.Relationship{}, errors.Wrap(err, "inserting relationship")
	}
	return row.unrow(), nil
}

func (repo parentRepository) QueryChildrenByParent(ctx context.Context, parentID string) ([]user.User, error) {
	var rows []userRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT u.*
		FROM "user" u
		JOIN parent_child_relationship pcr ON pcr.child_id = u.id
		WHERE pcr.parent_id = $1
		ORDER BY u.first_name, u.last_name`,
		parentID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying children")
	}

	children := make([]user.User, 0, len(rows))
	for _, r := range rows {
		children = append(children, r.unrow())
	}
	return children, nil
}
