package echoapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/mail"
	"reflect"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/achievement"
	"github.com/reubenc-bit/WiseEdu-sub001/core/course"
	"github.com/reubenc-bit/WiseEdu-sub001/core/parent"
	"github.com/reubenc-bit/WiseEdu-sub001/core/progress"
	"github.com/reubenc-bit/WiseEdu-sub001/core/project"
	"github.com/reubenc-bit/WiseEdu-sub001/core/teacher"
	"github.com/reubenc-bit/WiseEdu-sub001/core/tutor"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
	completionsvc "github.com/reubenc-bit/WiseEdu-sub001/services/completion"
	emailsvc "github.com/reubenc-bit/WiseEdu-sub001/services/email"
	logsvc "github.com/reubenc-bit/WiseEdu-sub001/services/logger"
	inmemdb "github.com/reubenc-bit/WiseEdu-sub001/storage/database/inmem"
)

var (
	errMissingToken = httpErr{Message: "missing or malformed jwt"}
	errForbidden    = httpErr{Message: "permission denied"}
	errNotFound     = httpErr{Message: "not found"}
)

type testApp struct {
	server *Server
	conf   *core.Config
	db     *inmemdb.DB

	usrRepo         user.Repository
	courseRepo      course.Repository
	progressRepo    progress.Repository
	projectRepo     project.Repository
	achievementRepo achievement.Repository
	teacherRepo     teacher.Repository
	parentRepo      parent.Repository
}

func newTestConfig() *core.Config {
	return &core.Config{
		Env:              "TEST",
		TestMode:         true,
		Build:            "test",
		AppName:          "CodewiseHub",
		SecretKey:        "test-secret",
		FrontendBaseURL:  "http://localhost:3000",
		DefaultFromEmail: mail.Address{Name: "CodewiseHub", Address: "noreply@codewisehub.co.za"},
		Server: core.ServerConfig{
			JWTExpirationDelta: 24 * time.Hour,
			ShutdownTimeout:    5 * time.Second,
		},
	}
}

func newTestApp(t *testing.T, completion core.CompletionService) *testApp {
	t.Helper()

	conf := newTestConfig()
	logger := logsvc.NewStdLogger(log.New(io.Discard, "", 0))

	db := inmemdb.Open()
	app := &testApp{
		conf:            conf,
		db:              db,
		usrRepo:         inmemdb.NewUserRepository(db),
		courseRepo:      inmemdb.NewCourseRepository(db),
		progressRepo:    inmemdb.NewProgressRepository(db),
		projectRepo:     inmemdb.NewProjectRepository(db),
		achievementRepo: inmemdb.NewAchievementRepository(db),
		teacherRepo:     inmemdb.NewTeacherRepository(db),
		parentRepo:      inmemdb.NewParentRepository(db),
	}

	validate := validator.New()
	translator := newTestTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)
	core.ParseEmailTemplates(logger)

	mailSvc := emailsvc.NewConsoleServiceMock(conf)
	if completion == nil {
		completion = completionsvc.NewServiceMock(false, "", nil)
	}

	app.server = NewServer("", ServerDeps{
		Conf:           conf,
		Logger:         logger,
		UserSvc:        user.NewService(app.usrRepo, mailSvc, conf),
		CourseSvc:      course.NewService(app.courseRepo),
		ProgressSvc:    progress.NewService(app.progressRepo),
		ProjectSvc:     project.NewService(app.projectRepo),
		AchievementSvc: achievement.NewService(app.achievementRepo),
		TeacherSvc:     teacher.NewService(app.teacherRepo, app.usrRepo),
		ParentSvc:      parent.NewService(app.parentRepo, app.usrRepo),
		TutorSvc:       tutor.NewService(completion, logger),
		Validate:       validate,
		Translator:     translator,
	})
	return app
}

func newTestTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func (app *testApp) createUser(t *testing.T, first, last, email, role string, active bool) user.User {
	t.Helper()

	usr := user.User{
		Email:     email,
		FirstName: first,
		LastName:  last,
		Role:      role,
		Market:    core.DefaultMarket,
		IsActive:  active,
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	if err := usr.SetPassword("Str0ng#Pass"); err != nil {
		t.Fatalf("createUser(): %v", err)
	}
	usr, err := app.usrRepo.CreateUser(context.Background(), usr)
	if err != nil {
		t.Fatalf("createUser(): %v", err)
	}
	return usr
}

func (app *testApp) createCourse(t *testing.T, title, market, ageGroup, difficulty string, published bool) course.Course {
	t.Helper()

	crs, err := app.courseRepo.CreateCourse(context.Background(), course.Course{
		Title:       title,
		Market:      market,
		AgeGroup:    ageGroup,
		Difficulty:  difficulty,
		IsPublished: published,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("createCourse(): %v", err)
	}
	return crs
}

func (app *testApp) createLesson(t *testing.T, courseID, title string, position int, published bool) course.Lesson {
	t.Helper()

	lsn, err := app.courseRepo.CreateLesson(context.Background(), course.Lesson{
		CourseID:    courseID,
		Title:       title,
		Position:    position,
		IsPublished: published,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	})
	if err != nil {
		t.Fatalf("createLesson(): %v", err)
	}
	return lsn
}

func (app *testApp) getToken(t *testing.T, usr user.User) string {
	t.Helper()

	token, err := GenerateToken(app.conf, GetUserClaims(app.conf, usr))
	if err != nil {
		t.Fatalf("getToken(): %v", err)
	}
	return token
}

type httpErr struct {
	Message string `json:"message"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

func (app *testApp) do(t *testing.T, tt httpTest) *httptest.ResponseRecorder {
	t.Helper()

	method := tt.method
	if method == "" {
		method = http.MethodGet
	}
	req := httptest.NewRequest(method, tt.path, bytes.NewReader(tt.body))
	req.Header.Set("Content-Type", "application/json")
	if tt.token != "" {
		req.Header.Set("Authorization", "Bearer "+tt.token)
	}
	rec := httptest.NewRecorder()
	app.server.ServeHTTP(rec, req)
	return rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func marchallList(t *testing.T, objs ...interface{}) []byte {
	t.Helper()

	data, err := json.Marshal(objs)
	if err != nil {
		t.Fatalf("marchallList(): %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	t.Helper()

	wantCode := tt.wantCode
	if wantCode == 0 {
		wantCode = http.StatusOK
	}
	if rec.Code != wantCode {
		t.Errorf("failed! code = %v; wantCode %v; body %s", rec.Code, wantCode, rec.Body.String())
	}
	if tt.wantData == nil {
		return
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
