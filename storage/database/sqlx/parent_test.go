package sqlxrepos

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/reubenc-bit/WiseEdu-sub001/core/parent"
)

func TestParentRepository_CreateRelationship_duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewParentRepository(db)

	now := time.Now().UTC()
	stored := now.Add(-24 * time.Hour)

	mock.ExpectQuery(`INSERT INTO parent_child_relationship`).
		WithArgs(sqlmock.AnyArg(), "p1", "c1", "parent", now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "parent_id", "child_id", "relationship_type", "created_at"}))
	mock.ExpectQuery(`SELECT id, parent_id, child_id, relationship_type, created_at FROM parent_child_relationship`).
		WithArgs("p1", "c1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "parent_id", "child_id", "relationship_type", "created_at"}).
			AddRow("r1", "p1", "c1", "guardian", stored))

	got, err := repo.CreateRelationship(context.Background(), parent.Relationship{
		ParentID: "p1", ChildID: "c1", RelationshipType: "parent", CreatedAt: now,
	})
	if err != nil {
		t.Fatalf("CreateRelationship() error = %v", err)
	}
	if got.ID != "r1" || got.RelationshipType != "guardian" {
		t.Errorf("CreateRelationship() = %+v, want the stored r1/guardian row", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
