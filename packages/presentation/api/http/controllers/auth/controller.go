package authcontroller

import (
	"hobbes/packages/infrastructure/auth/authn"
	"hobbes/packages/infrastructure/token"
	controller "hobbes/packages/presentation/api/http/controllers"
	"hobbes/packages/presentation/api/http/request"
	"hobbes/packages/presentation/api/http/response"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Controller struct {
	authenticator authn.Authenticator
	issuer        *token.Issuer
}

func New(authenticator authn.Authenticator, issuer *token.Issuer) *Controller {
	return &Controller{
		authenticator: authenticator,
		issuer:        issuer,
	}
}

// @Summary 		Login
// @Description 	Authenticates user and returns bearer access token. Accepts form data, not JSON.
// @ID 				authenticate
// @Tags			Authentication
// @Accept			x-www-form-urlencoded
// @Produce			json
// @Param 			username formData string true "Username"
// @Param 			password formData string true "Password"
// @Success			200 {object} response.Token
// @Failure			401,429,500,503 {object} response.Error
// @Router			/auth/token [post]
func (c *Controller) Login(ctx echo.Context) error {
	username := ctx.FormValue("username")
	password := ctx.FormValue("password")

	reqMeta := request.GetMetadata(ctx)

	controller.Logger.Info("Authenticating user '"+username+"'...", reqMeta)

	scopes, err := c.authenticator.Authenticate(ctx.Request().Context(), username, password)
	if err != nil {
		if err == authn.InvalidAuthCreditinals {
			ctx.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		}
		controller.Logger.Info("Failed to authenticate user '"+username+"': "+err.Error(), reqMeta)
		return err
	}

	accessToken, err := c.issuer.New(username, scopes)
	if err != nil {
		return err
	}

	controller.Logger.Info("Authenticating user '"+username+"': OK", reqMeta)

	return ctx.JSON(http.StatusOK, response.Token{
		AccessToken: accessToken.String(),
		TokenType:   "bearer",
		ExpiresIn:   int(accessToken.TTL() / 1000),
	})
}
