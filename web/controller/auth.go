// Package controller maps HTTP verbs and paths to store operations and
// translates their results into JSON responses.
package controller

import (
	"net/http"

	"github.com/affaneka/portal/logger"
	"github.com/affaneka/portal/util/crypto"
	"github.com/affaneka/portal/web/entity"
	"github.com/affaneka/portal/web/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	accountService service.AccountService
}

func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	g.POST("/login", a.login)
	g.POST("/register", a.register)
	g.POST("/change-password", a.changePassword)
	return a
}

type loginForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *AuthController) login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" || form.Password == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "username and password are required")
		return
	}
	account := a.accountService.CheckCredentials(form.Username, form.Password)
	if account == nil {
		// wrong credentials are a normal response, not an HTTP error
		c.JSON(http.StatusOK, entity.LoginResult{
			Success: false,
			Message: "wrong username or password",
		})
		return
	}
	logger.Infof("%s logged in", account.Username)
	c.JSON(http.StatusOK, entity.LoginResult{
		Success: true,
		Role:    account.Role,
		Message: "login successful",
	})
}

type registerForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (a *AuthController) register(c *gin.Context) {
	var form registerForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" || form.Password == "" || form.Role == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "username, password and role are required")
		return
	}
	hash, err := crypto.HashPasswordAsBcrypt(form.Password)
	if err != nil {
		jsonMsg(c, "hash password", err)
		return
	}
	if err := a.accountService.Create(form.Username, hash, form.Role); err != nil {
		// conflict and store failure are deliberately indistinguishable here
		logger.Warning("register failed:", err)
		pureJsonMsg(c, http.StatusInternalServerError, false, "account exists or server error")
		return
	}
	pureJsonMsg(c, http.StatusOK, true, "account created")
}

type changePasswordForm struct {
	Username    string `json:"username"`
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

func (a *AuthController) changePassword(c *gin.Context) {
	var form changePasswordForm
	if err := c.ShouldBindJSON(&form); err != nil || form.Username == "" || form.OldPassword == "" || form.NewPassword == "" {
		pureJsonMsg(c, http.StatusBadRequest, false, "username, oldPassword and newPassword are required")
		return
	}
	ok, err := a.accountService.ChangePassword(form.Username, form.OldPassword, form.NewPassword)
	if err != nil {
		jsonMsg(c, "change password", err)
		return
	}
	if !ok {
		pureJsonMsg(c, http.StatusOK, false, "wrong username or password")
		return
	}
	pureJsonMsg(c, http.StatusOK, true, "password changed")
}
