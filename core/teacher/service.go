package teacher

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

var ErrStudentNotFound = errors.New("student not found")

type (
	Repository interface {
		CreateCertification(ctx context.Context, cert Certification) (Certification, error)
		// QueryCertificationsByTeacher returns certifications ordered by issue date, newest first.
		QueryCertificationsByTeacher(ctx context.Context, teacherID string) ([]Certification, error)
		// CreateEnrollment inserts the (teacher, student, course) link; a
		// duplicate link is returned unchanged rather than erroring.
		CreateEnrollment(ctx context.Context, enr Enrollment) (Enrollment, error)
		// QueryStudentsByTeacher returns the distinct students enrolled in any
		// of the teacher's classes.
		QueryStudentsByTeacher(ctx context.Context, teacherID string) ([]user.User, error)
	}

	Service struct {
		repo    Repository
		usrRepo user.Repository
	}
)

func NewService(repo Repository, usrRepo user.Repository) *Service {
	return &Service{repo: repo, usrRepo: usrRepo}
}

func (svc *Service) AddCertification(ctx context.Context, teacherID string, nc NewCertification) (Certification, error) {
	now := time.Now().UTC()
	cert := Certification{
		TeacherID:  teacherID,
		Name:       nc.Name,
		IssuingOrg: nc.IssuingOrg,
		IssueDate:  nc.IssueDate,
		ExpiryDate: nc.ExpiryDate,
		Status:     nc.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if cert.Status == "" {
		cert.Status = StatusActive
	}
	return svc.repo.CreateCertification(ctx, cert)
}

func (svc *Service) Certifications(ctx context.Context, teacherID string) ([]Certification, error) {
	return svc.repo.QueryCertificationsByTeacher(ctx, teacherID)
}

// Enroll links a student to one of the teacher's classes.
func (svc *Service) Enroll(ctx context.Context, teacherID string, ne NewEnrollment) (Enrollment, error) {
	student, err := svc.usrRepo.GetUserByID(ctx, ne.StudentID)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return Enrollment{}, ErrStudentNotFound
		}
		return Enrollment{}, errors.Wrap(err, "finding student")
	}
	if !student.IsStudent() {
		return Enrollment{}, ErrStudentNotFound
	}

	enr := Enrollment{
		TeacherID: teacherID,
		StudentID: student.ID,
		CourseID:  ne.CourseID,
		CreatedAt: time.Now().UTC(),
	}
	return svc.repo.CreateEnrollment(ctx, enr)
}

func (svc *Service) Students(ctx context.Context, teacherID string) ([]user.User, error) {
	return svc.repo.QueryStudentsByTeacher(ctx, teacherID)
}
