package sqlxrepos

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core/teacher"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

type certificationRow struct {
	ID         string       `db:"id"`
	TeacherID  string       `db:"teacher_id"`
	Name       string       `db:"name"`
	IssuingOrg string       `db:"issuing_org"`
	IssueDate  time.Time    `db:"issue_date"`
	ExpiryDate sql.NullTime `db:"expiry_date"`
	Status     string       `db:"status"`
	CreatedAt  time.Time    `db:"created_at"`
	UpdatedAt  time.Time    `db:"updated_at"`
}

func (r certificationRow) unrow() teacher.Certification {
	cert := teacher.Certification{
		ID:         r.ID,
		TeacherID:  r.TeacherID,
		Name:       r.Name,
		IssuingOrg: r.IssuingOrg,
		IssueDate:  r.IssueDate,
		Status:     r.Status,
		CreatedAt:  r.CreatedAt,
		UpdatedAt:  r.UpdatedAt,
	}
	if r.ExpiryDate.Valid {
		t := r.ExpiryDate.Time
		cert.ExpiryDate = &t
	}
	return cert
}

type enrollmentRow struct {
	ID        string    `db:"id"`
	TeacherID string    `db:"teacher_id"`
	StudentID string    `db:"student_id"`
	CourseID  string    `db:"course_id"`
	CreatedAt time.Time `db:"created_at"`
}

func (r enrollmentRow) unrow() teacher.Enrollment {
	return teacher.Enrollment{
		ID:        r.ID,
		TeacherID: r.TeacherID,
		StudentID: r.StudentID,
		CourseID:  r.CourseID,
		CreatedAt: r.CreatedAt,
	}
}

type teacherRepository struct {
	db *sqlx.DB
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *sqlx.DB) *teacherRepository {
	return &teacherRepository{db: db}
}

func (repo teacherRepository) CreateCertification(ctx context.Context, cert teacher.Certification) (teacher.Certification, error) {
	cert.ID = uuid.New().String()
	var expiry sql.NullTime
	if cert.ExpiryDate != nil {
		expiry = sql.NullTime{Time: cert.ExpiryDate.UTC(), Valid: true}
	}

	_, err := repo.db.ExecContext(ctx, `
		INSERT INTO teacher_certification (id, teacher_id, name, issuing_org, issue_date, expiry_date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		cert.ID, cert.TeacherID, cert.Name, cert.IssuingOrg, cert.IssueDate.UTC(), expiry, cert.Status,
		cert.CreatedAt.UTC(), cert.UpdatedAt.UTC(),
	)
	if err != nil {
		return teacher.Certification{}, errors.Wrap(err, "inserting certification")
	}
	return cert, nil
}

func (repo teacherRepository) QueryCertificationsByTeacher(ctx context.Context, teacherID string) ([]teacher.Certification, error) {
	var rows []certificationRow
	err := repo.db.SelectContext(ctx, &rows,
		`SELECT * FROM teacher_certification WHERE teacher_id = $1 ORDER BY issue_date DESC`, teacherID)
	if err != nil {
		return nil, errors.Wrap(err, "querying certifications")
	}

	certs := make([]teacher.Certification, 0, len(rows))
	for _, r := range rows {
		certs = append(certs, r.unrow())
	}
	return certs, nil
}

func (repo teacherRepository) CreateEnrollment(ctx context.Context, enr teacher.Enrollment) (teacher.Enrollment, error) {
	enr.ID = uuid.New().String()
	// a duplicate (teacher, student, course) link is a no-op returning the stored row
	var row enrollmentRow
	err := repo.db.GetContext(ctx, &row, `
		INSERT INTO class_enrollment (id, teacher_id, student_id, course_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (teacher_id, student_id, course_id) DO NOTHING
		RETURNING id, teacher_id, student_id, course_id, created_at`,
		enr.ID, enr.TeacherID, enr.StudentID, enr.CourseID, enr.CreatedAt.UTC(),
	)
	if err == sql.ErrNoRows {
		err = repo.db.GetContext(ctx, &row, `
			SELECT id, teacher_id, student_id, course_id, created_at FROM class_enrollment
			WHERE teacher_id = $1 AND student_id = $2 AND course_id = $3`,
			enr.TeacherID, enr.StudentID, enr.CourseID,
		)
	}
	if err != nil {
		return teacher.Enrollment{}, errors.Wrap(err, "inserting enrollment")
	}
	return row.unrow(), nil
}

func (repo teacherRepository) QueryStudentsByTeacher(ctx context.Context, teacherID string) ([]user.User, error) {
	var rows []userRow
	err := repo.db.SelectContext(ctx, &rows, `
		SELECT DISTINCT u.*
		FROM "user" u
		JOIN class_enrollment ce ON ce.student_id = u.id
		WHERE ce.teacher_id = $1
		ORDER BY u.first_name, u.last_name`,
		teacherID,
	)
	if err != nil {
		return nil, errors.Wrap(err, "querying enrolled students")
	}

	students := make([]user.User, 0, len(rows))
	for _, r := range rows {
		students = append(students, r.unrow())
	}
	return students, nil
}
