package router

import (
	"hobbes/packages/presentation/api/http/response"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Renders responses via jsoniter.
type serializer struct{}

func (serializer) Serialize(ctx echo.Context, v any, indent string) error {
	enc := json.NewEncoder(ctx.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(v)
}

func (serializer) Deserialize(ctx echo.Context, v any) error {
	if err := json.NewDecoder(ctx.Request().Body).Decode(v); err != nil {
		return response.FailedToDecodeRequestBody
	}
	return nil
}

// Binds JSON body only. Path and query params aren't bound,
// controllers read them explicitly.
type binder struct{}

func (binder) Bind(i any, ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return response.FailedToReadRequestBody
	}

	if err := json.Unmarshal(body, i); err != nil {
		return response.FailedToDecodeRequestBody
	}

	return nil
}
