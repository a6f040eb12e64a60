package controller

import (
	"net/http"

	"github.com/affaneka/portal/web/service"

	"github.com/gin-gonic/gin"
)

type ServerController struct {
	serverService service.ServerService
}

func NewServerController(g *gin.RouterGroup) *ServerController {
	a := &ServerController{}
	g.GET("/status", a.status)
	return a
}

func (a *ServerController) status(c *gin.Context) {
	c.JSON(http.StatusOK, a.serverService.GetStatus())
}
