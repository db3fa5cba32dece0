// Copyright 2025 Arcade Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpx "github.com/go-arcade/console/pkg/http"
	"github.com/go-arcade/console/pkg/http/jwt"
)

const secret = "middleware-test-secret"

func newApp() *fiber.App {
	app := fiber.New()
	app.Use(ExceptionMiddleware, RequestMiddleware(), UnifiedResponseMiddleware())
	return app
}

func decode(t *testing.T, body io.Reader) httpx.Response {
	t.Helper()
	raw, err := io.ReadAll(body)
	require.NoError(t, err)
	var rep httpx.Response
	require.NoError(t, sonic.Unmarshal(raw, &rep))
	return rep
}

func TestUnifiedResponse_Detail(t *testing.T) {
	app := newApp()
	app.Get("/detail", func(c *fiber.Ctx) error {
		c.Locals(DETAIL, map[string]string{"k": "v"})
		return nil
	})
	app.Post("/op", func(c *fiber.Ctx) error {
		c.Locals(OPERATION, "")
		return nil
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/detail", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	rep := decode(t, resp.Body)
	assert.Equal(t, httpx.Success.Code, rep.Code)
	assert.Equal(t, map[string]any{"k": "v"}, rep.Detail)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodPost, "/op", nil))
	require.NoError(t, err)
	rep = decode(t, resp.Body)
	assert.Equal(t, httpx.Success.Msg, rep.Msg)
	assert.Nil(t, rep.Detail)
}

func TestUnifiedResponse_KeepsErrorBody(t *testing.T) {
	app := newApp()
	app.Get("/missing", func(c *fiber.Ctx) error {
		c.Locals(DETAIL, "ignored")
		return httpx.WithRepErr(c, fiber.StatusNotFound, httpx.SessionNotFound, c.Path())
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	rep := decode(t, resp.Body)
	assert.Equal(t, httpx.SessionNotFound.Code, rep.Code)
	assert.Equal(t, map[string]any{"path": "/missing"}, rep.Detail)
}

func TestExceptionMiddleware(t *testing.T) {
	app := newApp()
	app.Get("/panic", func(c *fiber.Ctx) error {
		panic("boom")
	})

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/panic", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, httpx.InternalError.Code, decode(t, resp.Body).Code)
}

func TestRequestMiddleware(t *testing.T) {
	app := newApp()
	app.Get("/id", func(c *fiber.Ctx) error {
		c.Locals(DETAIL, c.Locals(httpx.RequestIdKey))
		return nil
	})

	const upstream = "8d3c5f0e6a1b4c2d9e7f0a1b2c3d4e5f"
	req := httptest.NewRequest(fiber.MethodGet, "/id", nil)
	req.Header.Set(HeaderRequestId, upstream)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, upstream, resp.Header.Get(HeaderRequestId))
	assert.Equal(t, upstream, decode(t, resp.Body).Detail)

	resp, err = app.Test(httptest.NewRequest(fiber.MethodGet, "/id", nil))
	require.NoError(t, err)
	assert.Len(t, resp.Header.Get(HeaderRequestId), 36)

	// 非 uuid 的请求 id 不进入日志
	req = httptest.NewRequest(fiber.MethodGet, "/id", nil)
	req.Header.Set(HeaderRequestId, "req-1")
	resp, err = app.Test(req)
	require.NoError(t, err)
	got := resp.Header.Get(HeaderRequestId)
	assert.NotEqual(t, "req-1", got)
	assert.Len(t, got, 36)
}

func TestAuthorizationMiddleware(t *testing.T) {
	app := newApp()
	app.Get("/me", AuthorizationMiddleware(secret), func(c *fiber.Ctx) error {
		claims, ok := Claims(c)
		require.True(t, ok)
		c.Locals(DETAIL, map[string]any{"userId": claims.UserId, "token": c.Locals(TokenKey)})
		return nil
	})

	token, err := jwt.GenToken(jwt.AuthClaims{UserId: "u1", Roles: []string{"admin"}}, []byte(secret), "", 10)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		status int
		code   int
	}{
		{"missing header", "", fiber.StatusUnauthorized, httpx.TokenBeEmpty.Code},
		{"wrong scheme", "Basic abc", fiber.StatusUnauthorized, httpx.AuthorizationIncorrect.Code},
		{"invalid token", "Bearer nope", fiber.StatusUnauthorized, httpx.InvalidToken.Code},
		{"valid token", "Bearer " + token, fiber.StatusOK, httpx.Success.Code},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)
			rep := decode(t, resp.Body)
			assert.Equal(t, tc.code, rep.Code)
			if tc.status == fiber.StatusOK {
				assert.Equal(t, map[string]any{"userId": "u1", "token": token}, rep.Detail)
			}
		})
	}
}
