package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/course"
)

type courseApi struct {
	validate *validator.Validate
	service  *course.Service
}

func (s *Server) registerCourseAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	api := courseApi{validate: s.deps.Validate, service: s.deps.CourseSvc}

	// the catalog is public; a valid token only widens it for admins
	cg := g.Group("/courses", echo.MiddlewareFunc(s.optionalJWTMiddleware))
	cg.GET("", api.courseQuery)
	cg.GET("/:id", api.courseRetrieve)
	cg.GET("/:id/lessons", api.courseLessons)

	cg.POST("", api.courseCreate, jwt, adminMiddleware())
	cg.POST("/:id/lessons", api.lessonCreate, jwt, adminMiddleware())
}

func (api *courseApi) courseQuery(ctx echo.Context) error {
	filter := new(course.QueryFilter)
	if err := ctx.Bind(filter); err != nil {
		return err
	}
	if claims, err := getContextClaims(ctx); err == nil {
		filter.IncludeUnpublished = claims.IsAdmin
	}

	courses, err := api.service.Query(ctx.Request().Context(), *filter)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) courseRetrieve(ctx echo.Context) error {
	crs, err := api.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, crs)
}

func (api *courseApi) courseLessons(ctx echo.Context) error {
	lessons, err := api.service.Lessons(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	return ctx.JSON(http.StatusOK, lessons)
}

func (api *courseApi) courseCreate(ctx echo.Context) error {
	data := new(course.NewCourse)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.service.Create(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api *courseApi) lessonCreate(ctx echo.Context) error {
	data := new(course.NewLesson)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	lesson, err := api.service.AddLesson(ctx.Request().Context(), ctx.Param("id"), *data)
	if err != nil {
		switch errors.Cause(err) {
		case course.ErrNotFound:
			return errHttpNotFound
		case course.ErrPositionTaken:
			return core.NewValidationError(nil, core.FieldError{
				Field: "position",
				Error: "this position is already taken in the course",
			})
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, lesson)
}
