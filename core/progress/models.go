package progress

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

// UserProgress ties one user to one lesson within one course.
// At most one row exists per (user, lesson) pair; writes upsert.
type UserProgress struct {
	ID            string     `json:"id"`
	UserID        string     `json:"user_id"`
	LessonID      string     `json:"lesson_id"`
	CourseID      string     `json:"course_id"`
	Completed     bool       `json:"completed"`
	CompletionPct int        `json:"completion_pct"`
	TimeSpent     int        `json:"time_spent"` // seconds
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"` // UTC
	UpdatedAt     time.Time  `json:"updated_at"` // UTC
}

// UpsertProgress is the write payload; the acting user comes from the session.
type UpsertProgress struct {
	UserID        string `json:"userId"` // optional; must match the session unless admin
	LessonID      string `json:"lessonId" validate:"required"`
	CourseID      string `json:"courseId" validate:"required"`
	Completed     bool   `json:"completed"`
	CompletionPct int    `json:"completionPct" validate:"gte=0,lte=100"`
	TimeSpent     int    `json:"timeSpent" validate:"gte=0"`
}

func (up *UpsertProgress) Validate(validate *validator.Validate) error {
	up.UserID = core.CleanString(up.UserID)
	up.LessonID = core.CleanString(up.LessonID)
	up.CourseID = core.CleanString(up.CourseID)
	return validate.Struct(up)
}
