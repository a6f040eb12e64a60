package controller

import (
	"net/http"

	"github.com/affaneka/portal/database"
	"github.com/affaneka/portal/util/crypto"
	"github.com/affaneka/portal/web/service"

	"github.com/gin-gonic/gin"
)

type AccountController struct {
	accountService service.AccountService
}

func NewAccountController(g *gin.RouterGroup) *AccountController {
	a := &AccountController{}
	g.GET("/accounts", a.list)
	g.GET("/accounts/:username", a.get)
	g.PUT("/accounts/:username", a.update)
	g.DELETE("/accounts/:username", a.delete)
	return a
}

func (a *AccountController) list(c *gin.Context) {
	views, err := a.accountService.List()
	if err != nil {
		jsonMsg(c, "list accounts", err)
		return
	}
	c.JSON(http.StatusOK, views)
}

func (a *AccountController) get(c *gin.Context) {
	account, err := a.accountService.GetByUsername(c.Param("username"))
	if database.IsNotFound(err) {
		pureJsonMsg(c, http.StatusNotFound, false, "account not found")
		return
	} else if err != nil {
		jsonMsg(c, "get account", err)
		return
	}
	c.JSON(http.StatusOK, service.AccountView{
		Username: account.Username,
		Role:     account.Role,
		Active:   account.Active,
	})
}

type accountUpdateForm struct {
	Password string `json:"password"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

// update applies role/active and, when a password is sent, a fresh hash.
// An unknown username still answers success: the store update matching zero
// rows is not an error.
func (a *AccountController) update(c *gin.Context) {
	var form accountUpdateForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid request body")
		return
	}
	hash := ""
	if form.Password != "" {
		var err error
		hash, err = crypto.HashPasswordAsBcrypt(form.Password)
		if err != nil {
			jsonMsg(c, "hash password", err)
			return
		}
	}
	err := a.accountService.Update(c.Param("username"), hash, form.Role, form.Active)
	jsonMsg(c, "", err)
}

func (a *AccountController) delete(c *gin.Context) {
	err := a.accountService.SoftDelete(c.Param("username"))
	jsonMsg(c, "", err)
}
