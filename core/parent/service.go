package parent

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

var ErrChildNotFound = errors.New("child account not found")

type (
	Repository interface {
		CreateRelationship(ctx context.Context, rel Relationship) (Relationship, error)
		// QueryChildrenByParent returns the linked child accounts.
		QueryChildrenByParent(ctx context.Context, parentID string) ([]user.User, error)
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
	}
)

func NewService(repo Repository, usrRepo user.Repository) *Service {
	return &Service{repo: repo, usrRepo: usrRepo}
}

// LinkChild resolves the child account by email and records the relationship.
func (svc *Service) LinkChild(ctx context.Context, parentID string, nl NewChildLink) (Relationship, error) {
	child, err := svc.usrRepo.GetUserByEmail(ctx, nl.ChildEmail)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return Relationship{}, ErrChildNotFound
		}
		return Relationship{}, errors.Wrap(err, "finding child by email")
	}
	if !child.IsStudent() {
		return Relationship{}, core.NewValidationError(nil, core.FieldError{
			Field: "childEmail",
			Error: "the linked account must be a student account",
		})
	}

	rel := Relationship{
		ParentID:         parentID,
		ChildID:          child.ID,
		RelationshipType: nl.RelationshipType,
		CreatedAt:        time.Now().UTC(),
	}
	return svc.repo.CreateRelationship(ctx, rel)
}

func (svc *Service) Children(ctx context.Context, parentID string) ([]user.User, error) {
	return svc.repo.QueryChildrenByParent(ctx, parentID)
}
