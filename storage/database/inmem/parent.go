package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/reubenc-bit/WiseEdu-sub001/core/parent"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

type parentRepository struct {
	db *DB
}

var _ parent.Repository = (*parentRepository)(nil) // interface compliance check

func NewParentRepository(db *DB) *parentRepository {
	return &parentRepository{db: db}
}

func (repo *parentRepository) CreateRelationship(ctx context.Context, rel parent.Relationship) (parent.Relationship, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	key := pairKey(rel.ParentID, rel.ChildID)
	if existing, ok := repo.db.relationships[key]; ok {
		return *existing, nil
	}
	rel.ID = uuid.New().String()
	repo.db.relationships[key] = &rel
	return rel, nil
}

func (repo *parentRepository) QueryChildrenByParent(ctx context.Context, parentID string) ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	children := make([]user.User, 0)
	for _, rel := range repo.db.relationships {
		if rel.ParentID != parentID {
			continue
		}
		if usr, ok := repo.db.users[rel.ChildID]; ok {
			children = append(children, *usr)
		}
	}
	sort.Slice(children, func(i, j int) bool { return children[i].FullName() < children[j].FullName() })
	return children, nil
}
