package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	echoapi "github.com/reubenc-bit/WiseEdu-sub001/apps/api/echo"
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
	"github.com/reubenc-bit/WiseEdu-sub001/storage/database"
	sqlxrepos "github.com/reubenc-bit/WiseEdu-sub001/storage/database/sqlx"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf := core.NewConfig()

	// set up loggers
	var logger core.Logger
	if conf.RollbarToken != "" {
		logger = logsvc.NewRollbarLogger(
			log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
			conf,
		)
		logger.Enable(!conf.Debug)
	} else {
		logger = logsvc.NewStdLogger(
			log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		)
	}

	// set up DB
	db, err := setUpDB(conf)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}
	defer func() {
		if err = db.Close(); err != nil {
			logger.Error("closing database", err)
		}
	}()

	// set up repos
	usrRepo := sqlxrepos.NewUserRepository(db)

	// set up services
	var mailSvc core.EmailService
	if conf.Debug {
		mailSvc = emailsvc.NewConsoleService(conf)
	} else {
		mailSvc = emailsvc.NewSendgridService(conf, logger)
	}
	completionSvc := completionsvc.NewOpenAIService(conf, logger)

	usrSvc := user.NewService(usrRepo, mailSvc, conf)
	courseSvc := course.NewService(sqlxrepos.NewCourseRepository(db))
	progressSvc := progress.NewService(sqlxrepos.NewProgressRepository(db))
	projectSvc := project.NewService(sqlxrepos.NewProjectRepository(db))
	achievementSvc := achievement.NewService(sqlxrepos.NewAchievementRepository(db))
	teacherSvc := teacher.NewService(sqlxrepos.NewTeacherRepository(db), usrRepo)
	parentSvc := parent.NewService(sqlxrepos.NewParentRepository(db), usrRepo)
	tutorSvc := tutor.NewService(completionSvc, logger)

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)
	user.InitValidators(validate, translator)
	course.InitValidators(validate, translator)

	core.ParseEmailTemplates(logger)

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		conf.Server.Address(),
		echoapi.ServerDeps{
			Conf:           conf,
			Logger:         logger,
			UserSvc:        usrSvc,
			CourseSvc:      courseSvc,
			ProgressSvc:    progressSvc,
			ProjectSvc:     projectSvc,
			AchievementSvc: achievementSvc,
			TeacherSvc:     teacherSvc,
			ParentSvc:      parentSvc,
			TutorSvc:       tutorSvc,
			Validate:       validate,
			Translator:     translator,
		},
	)

	go server.Start()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}

func setUpDB(conf *core.Config) (*sqlx.DB, error) {
	if err := database.CreateIfNotExist(conf); err != nil {
		return nil, err
	}

	db, err := database.Open(conf)
	if err != nil {
		return nil, err
	}

	if err = database.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}
