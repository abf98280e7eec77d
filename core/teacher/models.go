package teacher

import (
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
)

// Certification statuses
const (
	StatusActive  = "active"
	StatusExpired = "expired"
	StatusRevoked = "revoked"
)

type Certification struct {
	ID         string     `json:"id"`
	TeacherID  string     `json:"teacher_id"`
	Name       string     `json:"name"`
	IssuingOrg string     `json:"issuing_org"`
	IssueDate  time.Time  `json:"issue_date"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"` // UTC
	UpdatedAt  time.Time  `json:"updated_at"` // UTC
}

// NewCertification contains information needed to record a Certification.
type NewCertification struct {
	Name       string     `json:"name" validate:"required"`
	IssuingOrg string     `json:"issuingOrg" validate:"required"`
	IssueDate  time.Time  `json:"issueDate" validate:"required"`
	ExpiryDate *time.Time `json:"expiryDate"`
	Status     string     `json:"status" validate:"omitempty,oneof=active expired revoked"`
}

func (nc *NewCertification) Validate(validate *validator.Validate) error {
	nc.Name = core.CleanString(nc.Name)
	nc.IssuingOrg = core.CleanString(nc.IssuingOrg)
	nc.Status = core.CleanString(nc.Status, true /* lower */)
	return validate.Struct(nc)
}

// Enrollment links a teacher, a student and a course.
type Enrollment struct {
	ID        string    `json:"id"`
	TeacherID string    `json:"teacher_id"`
	StudentID string    `json:"student_id"`
	CourseID  string    `json:"course_id"`
	CreatedAt time.Time `json:"created_at"` // UTC
}

// NewEnrollment contains information needed to enroll a student in a class.
type NewEnrollment struct {
	StudentID string `json:"studentId" validate:"required"`
	CourseID  string `json:"courseId" validate:"required"`
}

func (ne *NewEnrollment) Validate(validate *validator.Validate) error {
	ne.StudentID = core.CleanString(ne.StudentID)
	ne.CourseID = core.CleanString(ne.CourseID)
	return validate.Struct(ne)
}
