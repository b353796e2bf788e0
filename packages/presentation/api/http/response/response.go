package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type Status struct {
	Status string `json:"status" example:"ok"`
}

var OK = Status{Status: "ok"}

// Body of all error responses
type Error struct {
	Error   string `json:"error" example:"Bad Request"`
	Message string `json:"message" example:"invalid filter for field 'age' (\"abc\")"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type" example:"bearer"`
	// Seconds
	ExpiresIn int `json:"expires_in" example:"10800"`
}

var FailedToReadRequestBody = echo.NewHTTPError(
	http.StatusBadRequest,
	"Failed to read request body",
)

var FailedToDecodeRequestBody = echo.NewHTTPError(
	http.StatusBadRequest,
	"Failed to decode request body",
)
