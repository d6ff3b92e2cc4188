// Package auth carries the authenticated requester identity. Session
// handling lives upstream; the gateway forwards identity in trusted
// headers which are copied into the request context here.
package auth

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"

	RoleAdmin = "admin"
)

type ctxKey int

const (
	userNameKey ctxKey = iota
	userRoleKey
)

func SetAuthContext(ctx context.Context, userName, role string) context.Context {
	ctx = context.WithValue(ctx, userNameKey, userName)
	return context.WithValue(ctx, userRoleKey, role)
}

func UserName(ctx context.Context) (string, error) {
	name, ok := ctx.Value(userNameKey).(string)
	if !ok || name == "" {
		return "", errors.New("username is required")
	}
	return name, nil
}

func Role(ctx context.Context) string {
	role, _ := ctx.Value(userRoleKey).(string)
	return role
}

// AuthContext copies the identity headers into the request context and
// rejects requests without a username.
func AuthContext(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		userName := req.Header.Get(XUserNameHeader)
		if userName == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "user-name is empty")
		}
		ctx := SetAuthContext(req.Context(), userName, req.Header.Get(XUserRoleHeader))
		c.SetRequest(req.WithContext(ctx))
		return next(c)
	}
}

// AdminOnly guards administrative endpoints.
func AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if Role(c.Request().Context()) != RoleAdmin {
			return echo.NewHTTPError(http.StatusForbidden, "admin role required")
		}
		return next(c)
	}
}
