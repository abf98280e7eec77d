package inmemdb

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/reubenc-bit/WiseEdu-sub001/core/teacher"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

type teacherRepository struct {
	db *DB
}

var _ teacher.Repository = (*teacherRepository)(nil) // interface compliance check

func NewTeacherRepository(db *DB) *teacherRepository {
	return &teacherRepository{db: db}
}

func (repo *teacherRepository) CreateCertification(ctx context.Context, cert teacher.Certification) (teacher.Certification, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	cert.ID = uuid.New().String()
	repo.db.certifications[cert.ID] = &cert
	return cert, nil
}

func (repo *teacherRepository) QueryCertificationsByTeacher(ctx context.Context, teacherID string) ([]teacher.Certification, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	certs := make([]teacher.Certification, 0)
	for _, cert := range repo.db.certifications {
		if cert.TeacherID == teacherID {
			certs = append(certs, *cert)
		}
	}
	sort.Slice(certs, func(i, j int) bool { return certs[i].IssueDate.After(certs[j].IssueDate) })
	return certs, nil
}

func (repo *teacherRepository) CreateEnrollment(ctx context.Context, enr teacher.Enrollment) (teacher.Enrollment, error) {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()

	key := tripleKey(enr.TeacherID, enr.StudentID, enr.CourseID)
	if existing, ok := repo.db.enrollments[key]; ok {
		return *existing, nil
	}
	enr.ID = uuid.New().String()
	repo.db.enrollments[key] = &enr
	return enr, nil
}

func (repo *teacherRepository) QueryStudentsByTeacher(ctx context.Context, teacherID string) ([]user.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()

	seen := make(map[string]bool)
	students := make([]user.User, 0)
	for _, enr := range repo.db.enrollments {
		if enr.TeacherID != teacherID || seen[enr.StudentID] {
			continue
		}
		seen[enr.StudentID] = true
		if usr, ok := repo.db.users[enr.StudentID]; ok {
			students = append(students, *usr)
		}
	}
	sort.Slice(students, func(i, j int) bool { return students[i].FullName() < students[j].FullName() })
	return students, nil
}
