package project

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("project not found")

type (
	Repository interface {
		CreateProject(ctx context.Context, prj Project) (Project, error)
		// QueryProjectsByUser returns the user's projects, most recent first.
		QueryProjectsByUser(ctx context.Context, userID string) ([]Project, error)
		GetProjectByID(ctx context.Context, id string) (Project, error)
		UpdateProject(ctx context.Context, prj Project) (Project, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, userID string, np NewProject) (Project, error) {
	now := time.Now().UTC()
	prj := Project{
		UserID:      userID,
		Title:       np.Title,
		Description: np.Description,
		CodeContent: np.CodeContent,
		Language:    np.Language,
		IsPublic:    np.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateProject(ctx, prj)
}

func (svc *Service) ListByUser(ctx context.Context, userID string) ([]Project, error) {
	return svc.repo.QueryProjectsByUser(ctx, userID)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Project, error) {
	return svc.repo.GetProjectByID(ctx, id)
}

func (svc *Service) Update(ctx context.Context, orig Project, up UpdateProject) (Project, error) {
	orig.Title = up.Title
	orig.Description = up.Description
	orig.CodeContent = up.CodeContent
	orig.Language = up.Language
	orig.IsPublic = *up.IsPublic
	orig.UpdatedAt = time.Now().UTC()
	return svc.repo.UpdateProject(ctx, orig)
}
