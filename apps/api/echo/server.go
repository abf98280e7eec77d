package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/achievement"
	"github.com/reubenc-bit/WiseEdu-sub001/core/course"
	"github.com/reubenc-bit/WiseEdu-sub001/core/parent"
	"github.com/reubenc-bit/WiseEdu-sub001/core/progress"
	"github.com/reubenc-bit/WiseEdu-sub001/core/project"
	"github.com/reubenc-bit/WiseEdu-sub001/core/teacher"
	"github.com/reubenc-bit/WiseEdu-sub001/core/tutor"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

type (
	// ServerDeps lists all the Server dependencies.
	ServerDeps struct {
		Conf           *core.Config
		Logger         core.Logger
		UserSvc        *user.Service
		CourseSvc      *course.Service
		ProgressSvc    *progress.Service
		ProjectSvc     *project.Service
		AchievementSvc *achievement.Service
		TeacherSvc     *teacher.Service
		ParentSvc      *parent.Service
		TutorSvc       *tutor.Service
		Validate       *validator.Validate
		Translator     ut.Translator
	}

	Server struct {
		addr       string
		deps       ServerDeps
		app        *echo.Echo
		errCh      chan error
		shutdownCh chan os.Signal
	}
)

func NewServer(addr string, deps ServerDeps) *Server {
	s := &Server{
		addr:       addr,
		deps:       deps,
		app:        echo.New(),
		errCh:      make(chan error, 1),
		shutdownCh: make(chan os.Signal, 1),
	}
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.deps.Translator, s.signalShutdown)
	s.app.HideBanner = true
	s.app.Debug = conf.Debug

	s.app.GET("/", home)
	s.app.GET("/health", health)

	api := s.app.Group("/api")
	jwt := echo.MiddlewareFunc(s.jwtMiddleware)

	s.registerAuthAPI(api, jwt)
	s.registerCourseAPI(api, jwt)
	s.registerProgressAPI(api, jwt)
	s.registerProjectAPI(api, jwt)
	s.registerAchievementAPI(api, jwt)
	s.registerTeacherAPI(api, jwt)
	s.registerParentAPI(api, jwt)
	s.registerTutorAPI(api, jwt)
}

// Start starts the server and notifies shutdownCh on SIGINT/SIGTERM.
func (s *Server) Start() {
	signal.Notify(s.shutdownCh, os.Interrupt, syscall.SIGTERM)
	if err := s.app.Start(s.addr); err != nil && err != http.ErrServerClosed {
		s.errCh <- err
	}
}

// Errors reports fatal server errors.
func (s *Server) Errors() <-chan error {
	return s.errCh
}

// ShutdownSignal reports OS or internal shutdown requests.
func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdownCh
}

func (s *Server) signalShutdown() {
	s.shutdownCh <- syscall.SIGTERM
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Welcome to CodewiseHub API!")
}

func health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}
