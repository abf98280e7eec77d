package course

import (
	"context"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

var (
	// errors
	ErrNotFound       = errors.New("course not found")
	ErrLessonNotFound = errors.New("lesson not found")
	ErrPositionTaken  = errors.New("lesson position already taken")
)

type (
	Repository interface {
		CreateCourse(ctx context.Context, crs Course) (Course, error)
		QueryCourses(ctx context.Context, filter QueryFilter) ([]Course, error)
		GetCourseByID(ctx context.Context, id string) (Course, error)
		CreateLesson(ctx context.Context, lsn Lesson) (Lesson, error)
		// QueryLessonsByCourse returns the course's lessons ordered by position.
		QueryLessonsByCourse(ctx context.Context, courseID string) ([]Lesson, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) Create(ctx context.Context, nc NewCourse) (Course, error) {
	now := time.Now().UTC()
	crs := Course{
		Title:       nc.Title,
		Description: nc.Description,
		Market:      nc.Market,
		AgeGroup:    nc.AgeGroup,
		Difficulty:  nc.Difficulty,
		IsPublished: nc.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if crs.Market == "" {
		crs.Market = core.DefaultMarket
	}
	return svc.repo.CreateCourse(ctx, crs)
}

// Query lists courses for a market, beginner first then by recency.
func (svc *Service) Query(ctx context.Context, filter QueryFilter) ([]Course, error) {
	filter.Clean()
	return svc.repo.QueryCourses(ctx, filter)
}

func (svc *Service) GetByID(ctx context.Context, id string) (Course, error) {
	return svc.repo.GetCourseByID(ctx, id)
}

// AddLesson appends a lesson to an existing course.
func (svc *Service) AddLesson(ctx context.Context, courseID string, nl NewLesson) (Lesson, error) {
	if _, err := svc.repo.GetCourseByID(ctx, courseID); err != nil {
		return Lesson{}, err
	}
	now := time.Now().UTC()
	lsn := Lesson{
		CourseID:    courseID,
		Title:       nl.Title,
		Content:     nl.Content,
		Position:    nl.Position,
		IsPublished: nl.IsPublished,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return svc.repo.CreateLesson(ctx, lsn)
}

func (svc *Service) Lessons(ctx context.Context, courseID string) ([]Lesson, error) {
	if _, err := svc.repo.GetCourseByID(ctx, courseID); err != nil {
		return nil, err
	}
	return svc.repo.QueryLessonsByCourse(ctx, courseID)
}

var (
	difficultyTag  = "difficulty"
	difficultyText = "invalid difficulty"
)

// InitValidators registers the course package's custom validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(difficultyTag, difficultyValidation)
	core.RegisterCustomTranslation(validate, translator, difficultyTag, difficultyText)
}

func difficultyValidation(fl validator.FieldLevel) bool {
	difficulty := fl.Field().String()
	for _, d := range Difficulties {
		if d == difficulty {
			return true
		}
	}
	return false
}
