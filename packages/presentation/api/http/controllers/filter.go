package controller

import (
	"bytes"
	stdjson "encoding/json"
	"errors"
	"hobbes/packages/common/metrics"
	"hobbes/packages/core/filter"
	"hobbes/packages/presentation/api/http/request"
	"hobbes/packages/presentation/api/http/response"
	"io"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

var filterJSON = jsoniter.Config{
	UseNumber:              true,
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

var invalidFilterBody = echo.NewHTTPError(
	http.StatusBadRequest,
	"Filter must be a JSON object",
)

// Reads filter object from request body.
// Strings are taken as is, numbers and booleans are converted into strings,
// null values are dropped. Empty body is the same as empty object.
func BindFilter(ctx echo.Context) (filter.Request, error) {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return nil, response.FailedToReadRequestBody
	}

	req := filter.Request{}

	if len(bytes.TrimSpace(body)) == 0 {
		return req, nil
	}

	var raw map[string]any
	if err := filterJSON.Unmarshal(body, &raw); err != nil || raw == nil {
		return nil, invalidFilterBody
	}

	for field, value := range raw {
		switch v := value.(type) {
		case nil:
			continue
		case string:
			req[field] = v
		case stdjson.Number:
			req[field] = v.String()
		case bool:
			req[field] = strconv.FormatBool(v)
		default:
			return nil, echo.NewHTTPError(
				http.StatusBadRequest,
				"Filter value of '"+field+"' must be a string, number or boolean",
			)
		}
	}

	return req, nil
}

// Binds filter from request body and compiles it for entity.
// Operands that can't be coerced into the column type result in 400.
func BuildFilter(ctx echo.Context, introspector filter.Introspector, entity string) (filter.Conjunction, error) {
	req, err := BindFilter(ctx)
	if err != nil {
		return nil, err
	}

	conjunction, err := filter.BuildFilterSet(introspector, entity, req)
	if err != nil {
		var coercionErr *filter.CoercionError
		if errors.As(err, &coercionErr) {
			metrics.FilterRejectedTotal.WithLabelValues(entity, coercionErr.Field).Inc()
		}

		Logger.Trace("Filter rejected: "+err.Error(), request.GetMetadata(ctx))

		return nil, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	Logger.Trace("Filter: "+conjunction.String(), request.GetMetadata(ctx))

	return conjunction, nil
}
