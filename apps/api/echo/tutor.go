package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/reubenc-bit/WiseEdu-sub001/core/tutor"
)

type tutorApi struct {
	validate *validator.Validate
	service  *tutor.Service
}

func (s *Server) registerTutorAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	api := tutorApi{validate: s.deps.Validate, service: s.deps.TutorSvc}

	// open to anonymous callers; the landing page demo hits it pre-signup
	g.POST("/ai-tutor", api.tutorRespond, echo.MiddlewareFunc(s.optionalJWTMiddleware))
}

func (api *tutorApi) tutorRespond(ctx echo.Context) error {
	data := new(tutor.Request)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	reply := api.service.Respond(ctx.Request().Context(), *data)
	return ctx.JSON(http.StatusOK, TutorResponse{Success: true, Response: reply})
}

type TutorResponse struct {
	Success  bool        `json:"success"`
	Response tutor.Reply `json:"response"`
}
