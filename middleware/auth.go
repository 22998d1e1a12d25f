package middleware

import (
	"context"
	"strings"

	"github.com/bennett39/stocktrader/biz/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

// SessionAuth resolves the session token (cookie or bearer header) to an
// account id and stores it on the request context. Unauthenticated requests
// are rejected with 401.
func SessionAuth() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		token := string(c.Cookie("session"))
		if token == "" {
			auth := string(c.GetHeader("Authorization"))
			token = strings.TrimPrefix(auth, "Bearer ")
		}
		if token == "" {
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{"error": "not logged in"})
			c.Abort()
			return
		}
		accountID, err := service.LookupSession(ctx, token)
		if err != nil {
			hlog.Warnf("session lookup failed: %v", err)
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{"error": "session expired"})
			c.Abort()
			return
		}
		c.Set("account_id", accountID)
		c.Next(ctx)
	}
}
