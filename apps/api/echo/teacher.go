package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/teacher"
)

type teacherApi struct {
	validate *validator.Validate
	service  *teacher.Service
}

func (s *Server) registerTeacherAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	api := teacherApi{validate: s.deps.Validate, service: s.deps.TeacherSvc}

	tg := g.Group("/teacher", jwt, teacherMiddleware())
	tg.GET("/students", api.studentQuery)
	tg.GET("/certifications", api.certificationQuery)
	tg.POST("/certifications", api.certificationCreate)
	tg.POST("/enrollments", api.enrollmentCreate)
}

func (api *teacherApi) studentQuery(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	students, err := api.service.Students(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *teacherApi) certificationQuery(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	certs, err := api.service.Certifications(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, certs)
}

func (api *teacherApi) certificationCreate(ctx echo.Context) error {
	data := new(teacher.NewCertification)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	cert, err := api.service.AddCertification(ctx.Request().Context(), claims.Subject, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, cert)
}

func (api *teacherApi) enrollmentCreate(ctx echo.Context) error {
	data := new(teacher.NewEnrollment)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	enr, err := api.service.Enroll(ctx.Request().Context(), claims.Subject, *data)
	if err != nil {
		if errors.Cause(err) == teacher.ErrStudentNotFound {
			return core.NewValidationError(nil, core.FieldError{
				Field: "studentId",
				Error: "the enrolled account must be a student account",
			})
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, enr)
}
