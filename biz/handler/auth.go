package handler

import (
	"context"

	"github.com/bennett39/stocktrader/biz/service"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new account with the default starting cash.
func Register(ctx context.Context, c *app.RequestContext) {
	var req credentialsRequest
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	if req.Username == "" || req.Password == "" {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{"error": "missing username or password"})
		return
	}
	acct, err := service.RegisterAccount(req.Username, req.Password)
	if err != nil {
		c.JSON(consts.StatusConflict, map[string]interface{}{"error": "username already taken"})
		return
	}
	c.JSON(consts.StatusOK, map[string]interface{}{
		"account_id": acct.ID,
		"username":   acct.Username,
		"cash":       acct.Cash,
	})
}

// Login checks credentials and issues a session cookie.
func Login(ctx context.Context, c *app.RequestContext) {
	var req credentialsRequest
	if err := c.BindAndValidate(&req); err != nil {
		c.JSON(consts.StatusBadRequest, map[string]interface{}{"error": err.Error()})
		return
	}
	acct, err := service.Authenticate(req.Username, req.Password)
	if err != nil {
		c.JSON(consts.StatusUnauthorized, map[string]interface{}{"error": "invalid username or password"})
		return
	}
	token, err := service.CreateSession(ctx, acct.ID)
	if err != nil {
		c.JSON(consts.StatusInternalServerError, map[string]interface{}{"error": err.Error()})
		return
	}
	c.SetCookie("session", token, 0, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	c.JSON(consts.StatusOK, map[string]interface{}{"account_id": acct.ID, "token": token})
}

// Logout destroys the current session.
func Logout(ctx context.Context, c *app.RequestContext) {
	token := string(c.Cookie("session"))
	if token != "" {
		_ = service.DestroySession(ctx, token)
	}
	c.SetCookie("session", "", -1, "/", "", protocol.CookieSameSiteLaxMode, false, true)
	c.JSON(consts.StatusOK, map[string]interface{}{"status": "logged out"})
}
