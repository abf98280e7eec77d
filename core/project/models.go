package project

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

type Project struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CodeContent string    `json:"code_content"` // opaque text
	Language    string    `json:"language"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

// NewProject contains information needed to create a new Project.
type NewProject struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	CodeContent string `json:"codeContent"`
	Language    string `json:"language"`
	IsPublic    bool   `json:"isPublic"`
}

func (np *NewProject) Validate(validate *validator.Validate) error {
	np.Title = core.CleanString(np.Title)
	np.Language = core.CleanString(np.Language, true /* lower */)
	return validate.Struct(np)
}

// UpdateProject defines what may be modified on an existing Project;
// empty fields keep their current value.
type UpdateProject struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	CodeContent string `json:"codeContent"`
	Language    string `json:"language"`
	IsPublic    *bool  `json:"isPublic"`
}

func (up *UpdateProject) Validate(validate *validator.Validate, orig Project) error {
	if title := core.CleanString(up.Title); title != "" {
		up.Title = title
	} else {
		up.Title = orig.Title
	}
	if up.Description == "" {
		up.Description = orig.Description
	}
	if up.CodeContent == "" {
		up.CodeContent = orig.CodeContent
	}
	if lang := core.CleanString(up.Language, true /* lower */); lang != "" {
		up.Language = lang
	} else {
		up.Language = orig.Language
	}
	if up.IsPublic == nil {
		up.IsPublic = &orig.IsPublic
	}
	return validate.Struct(up)
}
