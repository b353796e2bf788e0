package controller

import (
	"hobbes/packages/core/filter"
	"hobbes/packages/core/schema"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(body string) echo.Context {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func TestBindFilter(t *testing.T) {
	cases := []struct {
		name string
		body string
		want filter.Request
	}{
		{"empty body", "", filter.Request{}},
		{"whitespace body", " \n", filter.Request{}},
		{"empty object", "{}", filter.Request{}},
		{"strings", `{"title":"Dune","genre":"!romance"}`, filter.Request{"title": "Dune", "genre": "!romance"}},
		{"numbers", `{"age":15,"id":9007199254740993}`, filter.Request{"age": "15", "id": "9007199254740993"}},
		{"booleans", `{"flag":true}`, filter.Request{"flag": "true"}},
		{"nulls dropped", `{"title":null,"genre":"drama"}`, filter.Request{"genre": "drama"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req, err := BindFilter(newContext(c.body))
			require.NoError(t, err)
			assert.Equal(t, c.want, req)
		})
	}

	for _, body := range []string{`[]`, `"title"`, `null`, `{"title":`, `{"title":["a"]}`, `{"title":{"eq":"a"}}`} {
		t.Run("rejects "+body, func(t *testing.T) {
			_, err := BindFilter(newContext(body))

			var httpErr *echo.HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		})
	}
}

func TestBuildFilter(t *testing.T) {
	t.Run("compiles known fields", func(t *testing.T) {
		conj, err := BuildFilter(newContext(`{"age":">=18","unknown":"x"}`), schema.Registry, "hero")
		require.NoError(t, err)
		require.Len(t, conj, 1)
		assert.Equal(t, "age", conj[0].Column.Name)
		assert.Equal(t, filter.GreaterOrEqual, conj[0].Cond)
		assert.Equal(t, []any{int64(18)}, conj[0].Values)
	})

	t.Run("coercion failure is bad request", func(t *testing.T) {
		_, err := BuildFilter(newContext(`{"create_datetimestamp":"2024-13-01T00:00:00Z"}`), schema.Registry, "book")

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
		assert.Contains(t, httpErr.Message, "create_datetimestamp")
	})
}
