package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/reubenc-bit/WiseEdu-sub001/core/project"
)

type projectRepository struct {
	db *DB
}

var _ project.Repository = (*projectRepository)(nil) // interface compliance check

func NewProjectRepository(db *DB) *projectRepository {
	return &projectRepository{db: db}
}

func (repo *projectRepository) CreateProject(ctx context.Context, prj project.Project) (project.Project, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	prj.ID = uuid.New().String()
	repo.db.projects[prj.ID] = &prj
	return prj, nil
}

func (repo *projectRepository) QueryProjectsByUser(ctx context.Context, userID string) ([]project.Project, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	prjs := make([]project.Project, 0)
	for _, prj := range repo.db.projects {
		if prj.UserID == userID {
			prjs = append(prjs, *prj)
		}
	}
	sort.Slice(prjs, func(i, j int) bool { return prjs[i].UpdatedAt.After(prjs[j].UpdatedAt) })
	return prjs, nil
}

func (repo *projectRepository) GetProjectByID(ctx context.Context, id string) (project.Project, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	if prj, ok := repo.db.projects[id]; ok {
		return *prj, nil
	}
	return project.Project{}, project.ErrNotFound
}

func (repo *projectRepository) UpdateProject(ctx context.Context, prj project.Project) (project.Project, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	if _, ok := repo.db.projects[prj.ID]; !ok {
		return project.Project{}, project.ErrNotFound
	}
	repo.db.projects[prj.ID] = &prj
	return prj, nil
}
