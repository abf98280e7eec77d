package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core/progress"
)

type progressApi struct {
	validate *validator.Validate
	service  *progress.Service
}

func (s *Server) registerProgressAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	api := progressApi{validate: s.deps.Validate, service: s.deps.ProgressSvc}

	pg := g.Group("/progress", jwt)
	pg.GET("", api.progressQuery)
	pg.POST("", api.progressRecord)
}

func (api *progressApi) progressQuery(ctx echo.Context) error {
	userID, err := sessionUserID(ctx, ctx.QueryParam("userId"))
	if err != nil {
		return err
	}

	rows, err := api.service.ListByUser(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, rows)
}

func (api *progressApi) progressRecord(ctx echo.Context) error {
	data := new(progress.UpsertProgress)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	userID, err := sessionUserID(ctx, data.UserID)
	if err != nil {
		return err
	}

	row, err := api.service.Record(ctx.Request().Context(), userID, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, row)
}

// sessionUserID resolves the acting user id from the verified claims. A
// client-supplied id is untrusted input: it must match the session identity
// unless the caller is an admin.
func sessionUserID(ctx echo.Context, supplied string) (string, error) {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return "", errors.Wrap(err, "getting context claims")
	}
	if supplied == "" || supplied == claims.Subject {
		return claims.Subject, nil
	}
	if claims.IsAdmin {
		return supplied, nil
	}
	return "", errHttpForbidden
}
