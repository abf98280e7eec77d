package echoapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/course"
	"github.com/reubenc-bit/WiseEdu-sub001/core/teacher"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

func Test_teacherApi_roleRequired(t *testing.T) {
	app := newTestApp(t, nil)
	student := app.createUser(t, "Sipho", "Dube", "sipho@test.co.za", user.RoleStudent, true)
	parentUsr := app.createUser(t, "Mary", "Dube", "mary@test.co.za", user.RoleParent, true)

	paths := []string{"/api/teacher/students", "/api/teacher/certifications"}
	for _, path := range paths {
		for _, usr := range []user.User{student, parentUsr} {
			t.Run(fmt.Sprintf("%s as %s", path, usr.Role), func(t *testing.T) {
				tt := httpTest{path: path, token: app.getToken(t, usr), wantCode: http.StatusForbidden, wantData: marchallObj(t, errForbidden)}
				checkCodeAndData(t, tt, app.do(t, tt))
			})
		}
		t.Run(path+" anonymous", func(t *testing.T) {
			tt := httpTest{path: path, wantCode: http.StatusUnauthorized, wantData: marchallObj(t, errMissingToken)}
			checkCodeAndData(t, tt, app.do(t, tt))
		})
	}
}

func Test_teacherApi_enrollAndListStudents(t *testing.T) {
	app := newTestApp(t, nil)
	tchr := app.createUser(t, "Nomsa", "Khumalo", "nomsa@test.co.za", user.RoleTeacher, true)
	alice := app.createUser(t, "Alice", "Banda", "alice@test.co.za", user.RoleStudent, true)
	zanele := app.createUser(t, "Zanele", "Moyo", "zanele@test.co.za", user.RoleStudent, true)
	parentUsr := app.createUser(t, "Mary", "Dube", "mary@test.co.za", user.RoleParent, true)
	crs := app.createCourse(t, "Python Basics", core.MarketSouthAfrica, "12-17", course.DifficultyBeginner, true)
	token := app.getToken(t, tchr)

	enroll := func(studentID string) httpTest {
		return httpTest{
			method: http.MethodPost, path: "/api/teacher/enrollments", token: token,
			body: []byte(fmt.Sprintf(`{"studentId":%q,"courseId":%q}`, studentID, crs.ID)),
		}
	}

	// empty roster first
	tt := httpTest{path: "/api/teacher/students", token: token, wantData: []byte(`[]`)}
	checkCodeAndData(t, tt, app.do(t, tt))

	rec := app.do(t, enroll(alice.ID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	rec = app.do(t, enroll(zanele.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	// duplicate enrollment is a no-op
	rec = app.do(t, enroll(alice.ID))
	require.Equal(t, http.StatusCreated, rec.Code)

	// enrolling a non-student fails validation
	rec = app.do(t, enroll(parentUsr.ID))
	require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())

	// distinct students, ordered by name
	tt = httpTest{path: "/api/teacher/students", token: token, wantData: marchallList(t, alice, zanele)}
	checkCodeAndData(t, tt, app.do(t, tt))
}

func Test_teacherApi_certifications(t *testing.T) {
	app := newTestApp(t, nil)
	tchr := app.createUser(t, "Nomsa", "Khumalo", "nomsa@test.co.za", user.RoleTeacher, true)
	token := app.getToken(t, tchr)

	rec := app.do(t, httpTest{
		method: http.MethodPost, path: "/api/teacher/certifications", token: token,
		body: []byte(`{"name":"Scratch Educator","issuingOrg":"CodeOrg","issueDate":"2024-05-01T00:00:00Z"}`),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var older teacher.Certification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &older))
	assert.Equal(t, tchr.ID, older.TeacherID)
	assert.Equal(t, teacher.StatusActive, older.Status) // defaulted

	rec = app.do(t, httpTest{
		method: http.MethodPost, path: "/api/teacher/certifications", token: token,
		body: []byte(`{"name":"Python Educator","issuingOrg":"CodeOrg","issueDate":"2025-01-15T00:00:00Z","status":"active"}`),
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	var newer teacher.Certification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &newer))

	// newest issue date first
	tt := httpTest{path: "/api/teacher/certifications", token: token, wantData: marchallList(t, newer, older)}
	checkCodeAndData(t, tt, app.do(t, tt))

	// name is required
	rec = app.do(t, httpTest{
		method: http.MethodPost, path: "/api/teacher/certifications", token: token,
		body: []byte(`{"issuingOrg":"CodeOrg","issueDate":"2025-01-15T00:00:00Z"}`),
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
