package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/parent"
)

type parentApi struct {
	validate *validator.Validate
	service  *parent.Service
}

func (s *Server) registerParentAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	api := parentApi{validate: s.deps.Validate, service: s.deps.ParentSvc}

	pg := g.Group("/parent", jwt, parentMiddleware())
	pg.GET("/children", api.childQuery)
	pg.POST("/children", api.childLink)
}

func (api *parentApi) childQuery(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	children, err := api.service.Children(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, children)
}

func (api *parentApi) childLink(ctx echo.Context) error {
	data := new(parent.NewChildLink)
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

	rel, err := api.service.LinkChild(ctx.Request().Context(), claims.Subject, *data)
	if err != nil {
		if errors.Cause(err) == parent.ErrChildNotFound {
			return core.NewValidationError(nil, core.FieldError{
				Field: "childEmail",
				Error: "no account found for this email",
			})
		}
		return err
	}
	return ctx.JSON(http.StatusCreated, rel)
}
