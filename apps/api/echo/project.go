package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core/project"
)

type projectApi struct {
	validate *validator.Validate
	service  *project.Service
}

func (s *Server) registerProjectAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	api := projectApi{validate: s.deps.Validate, service: s.deps.ProjectSvc}

	pg := g.Group("/projects", jwt)
	pg.GET("", api.projectQuery)
	pg.POST("", api.projectCreate)
	pg.PUT("/:id", api.projectUpdate)
}

func (api *projectApi) projectQuery(ctx echo.Context) error {
	userID, err := sessionUserID(ctx, ctx.QueryParam("userId"))
	if err != nil {
		return err
	}

	projects, err := api.service.ListByUser(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, projects)
}

func (api *projectApi) projectCreate(ctx echo.Context) error {
	data := new(project.NewProject)
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

	proj, err := api.service.Create(ctx.Request().Context(), claims.Subject, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, proj)
}

func (api *projectApi) projectUpdate(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	proj, err := api.service.GetByID(ctx.Request().Context(), ctx.Param("id"))
	if err != nil {
		if errors.Cause(err) == project.ErrNotFound {
			return errHttpNotFound
		}
		return err
	}
	if proj.UserID != claims.Subject && !claims.IsAdmin {
		return errHttpForbidden
	}

	data := new(project.UpdateProject)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	if err = data.Validate(api.validate, proj); err != nil {
		return err
	}

	proj, err = api.service.Update(ctx.Request().Context(), proj, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, proj)
}
