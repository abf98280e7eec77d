package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/reubenc-bit/WiseEdu-sub001/core/achievement"
)

type achievementApi struct {
	service *achievement.Service
}

func (s *Server) registerAchievementAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	api := achievementApi{service: s.deps.AchievementSvc}

	ag := g.Group("/achievements", jwt)
	ag.GET("", api.achievementQuery)
}

// achievementQuery lists the session user's earned achievements, newest first.
func (api *achievementApi) achievementQuery(ctx echo.Context) error {
	userID, err := sessionUserID(ctx, ctx.QueryParam("userId"))
	if err != nil {
		return err
	}

	earned, err := api.service.EarnedByUser(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, earned)
}
