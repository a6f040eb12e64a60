package controller

import (
	"net/http"

	"github.com/affaneka/portal/logger"
	"github.com/affaneka/portal/web/entity"

	"github.com/gin-gonic/gin"
)

// jsonMsg sends the standard envelope. Store failures become a 500 carrying
// the underlying message.
func jsonMsg(c *gin.Context, msg string, err error) {
	jsonMsgObj(c, msg, nil, err)
}

func jsonMsgObj(c *gin.Context, msg string, obj any, err error) {
	m := entity.Msg{Obj: obj}
	if err == nil {
		m.Success = true
		m.Msg = msg
		c.JSON(http.StatusOK, m)
		return
	}
	m.Success = false
	if msg != "" {
		m.Msg = msg + " (" + err.Error() + ")"
	} else {
		m.Msg = err.Error()
	}
	logger.Warning(msg+" failed:", err)
	c.JSON(http.StatusInternalServerError, m)
}

// pureJsonMsg sends a plain envelope with a custom status code.
func pureJsonMsg(c *gin.Context, statusCode int, success bool, msg string) {
	c.JSON(statusCode, entity.Msg{
		Success: success,
		Msg:     msg,
	})
}
