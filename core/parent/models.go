package parent

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

// Relationship links a parent user to a child user.
type Relationship struct {
	ID               string    `json:"id"`
	ParentID         string    `json:"parent_id"`
	ChildID          string    `json:"child_id"`
	RelationshipType string    `json:"relationship_type"`
	CreatedAt        time.Time `json:"created_at"` // UTC
}

// NewChildLink contains information needed to link a child account.
type NewChildLink struct {
	ChildEmail       string `json:"childEmail" validate:"required,email"`
	RelationshipType string `json:"relationshipType"`
}

func (nl *NewChildLink) Validate(validate *validator.Validate) error {
	nl.ChildEmail = core.CleanString(nl.ChildEmail, true /* lower */)
	nl.RelationshipType = core.CleanString(nl.RelationshipType, true /* lower */)
	if nl.RelationshipType == "" {
		nl.RelationshipType = "parent"
	}
	return validate.Struct(nl)
}
