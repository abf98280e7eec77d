package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/reubenc-bit/WiseEdu-sub001/core"
	"github.com/reubenc-bit/WiseEdu-sub001/core/user"
)

type authApi struct {
	conf     *core.Config
	validate *validator.Validate
	service  *user.Service
}

func (s *Server) registerAuthAPI(g *echo.Group, jwt echo.MiddlewareFunc) {
	api := authApi{conf: s.deps.Conf, validate: s.deps.Validate, service: s.deps.UserSvc}

	ag := g.Group("/auth")

	// un-authed endpoints
	ag.POST("/signup", api.signup)
	ag.POST("/signin", api.signin)
	ag.POST("/logout", api.logout)

	// token optional; absent or invalid degrades to anonymous
	ag.GET("/user", api.authUser, echo.MiddlewareFunc(s.optionalJWTMiddleware))

	// authed endpoints
	ag.PUT("/user", api.userUpdate, jwt)
}

func (api *authApi) signup(ctx echo.Context) error {
	data := new(user.NewUser)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate, api.service); err != nil {
		return err
	}

	usr, err := api.service.Register(ctx.Request().Context(), *data)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, SignupResponse{User: usr})
}

func (api *authApi) signin(ctx echo.Context) error {
	data := new(SigninRequest)
	if err := ctx.Bind(data); err != nil {
		return err
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	usr, err := api.service.Authenticate(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		switch errors.Cause(err) {
		case user.ErrInvalidCredentials:
			return errAuthenticationFailed
		case user.ErrAccountDeactivated:
			return errAccountDeactivated
		}
		return err
	}

	token, err := GenerateToken(api.conf, GetUserClaims(api.conf, usr))
	if err != nil {
		return err
	}

	ctx.SetCookie(newAuthCookie(api.conf, token))
	return ctx.JSON(http.StatusOK, SigninResponse{User: usr, Token: token})
}

// authUser returns the session user, or null for anonymous callers.
func (api *authApi) authUser(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return ctx.JSON(http.StatusOK, nil)
	}

	usr, err := api.service.GetByID(ctx.Request().Context(), claims.Subject)
	if err != nil {
		if errors.Cause(err) == user.ErrNotFound {
			return ctx.JSON(http.StatusOK, nil)
		}
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *authApi) userUpdate(ctx echo.Context) error {
	claims, err := getContextClaims(ctx)
	if err != nil {
		return errors.Wrap(err, "getting context claims")
	}

	usr, err := api.service.GetByID(ctx.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}

	data := new(user.UpdateUser)
	if err = ctx.Bind(data); err != nil {
		return err
	}
	if err = data.Validate(api.validate, usr); err != nil {
		return err
	}

	usr, err = api.service.Update(ctx.Request().Context(), usr.ID, *data)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *authApi) logout(ctx echo.Context) error {
	ctx.SetCookie(expiredAuthCookie())
	return ctx.JSON(http.StatusOK, echo.Map{"message": "signed out"})
}

type (
	SigninRequest struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	SignupResponse struct {
		User user.User `json:"user"`
	}

	SigninResponse struct {
		User  user.User `json:"user"`
		Token string    `json:"token"`
	}
)

func (sr *SigninRequest) Validate(validate *validator.Validate) error {
	sr.Email = core.CleanString(sr.Email, true)
	return validate.Struct(sr)
}
