package course

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

// Difficulties
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

var Difficulties = []string{DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced}

// DifficultyRank orders courses from beginner to advanced.
func DifficultyRank(difficulty string) int {
	switch difficulty {
	case DifficultyBeginner:
		return 0
	case DifficultyIntermediate:
		return 1
	case DifficultyAdvanced:
		return 2
	}
	return 3
}

type Course struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Market      string    `json:"market"`
	AgeGroup    string    `json:"age_group"` // free-form bucket, e.g. "6-11"
	Difficulty  string    `json:"difficulty"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

type Lesson struct {
	ID          string    `json:"id"`
	CourseID    string    `json:"course_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"` // opaque structured text
	Position    int       `json:"position"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"` // UTC
	UpdatedAt   time.Time `json:"updated_at"` // UTC
}

// NewCourse contains information needed to create a new Course.
type NewCourse struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Market      string `json:"market" validate:"omitempty,market"`
	AgeGroup    string `json:"ageGroup" validate:"required"`
	Difficulty  string `json:"difficulty" validate:"required,difficulty"`
	IsPublished bool   `json:"isPublished"`
}

func (nc *NewCourse) Validate(validate *validator.Validate) error {
	nc.Title = core.CleanString(nc.Title)
	nc.Description = core.CleanString(nc.Description)
	nc.Market = core.CleanString(nc.Market, true /* lower */)
	nc.AgeGroup = core.CleanString(nc.AgeGroup)
	nc.Difficulty = core.CleanString(nc.Difficulty, true /* lower */)
	return validate.Struct(nc)
}

// NewLesson contains information needed to add a Lesson to a Course.
type NewLesson struct {
	Title       string `json:"title" validate:"required"`
	Content     string `json:"content"`
	Position    int    `json:"position" validate:"gte=0"`
	IsPublished bool   `json:"isPublished"`
}

func (nl *NewLesson) Validate(validate *validator.Validate) error {
	nl.Title = core.CleanString(nl.Title)
	return validate.Struct(nl)
}

// QueryFilter narrows course listings; zero values are ignored.
type QueryFilter struct {
	Market             string `query:"market"`
	AgeGroup           string `query:"ageGroup"`
	Difficulty         string `query:"difficulty"`
	IncludeUnpublished bool   `query:"-"` // admin only, never bound from the request
}

func (qf *QueryFilter) Clean() {
	qf.Market = core.CleanString(qf.Market, true /* lower */)
	qf.AgeGroup = core.CleanString(qf.AgeGroup)
	qf.Difficulty = core.CleanString(qf.Difficulty, true /* lower */)
	if qf.Market == "" {
		qf.Market = core.DefaultMarket
	}
}
