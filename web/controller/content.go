package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/affaneka/portal/database"
	"github.com/affaneka/portal/web/entity"
	"github.com/affaneka/portal/web/service"

	"github.com/gin-gonic/gin"
)

// ContentController serves one titled-record resource. It is mounted twice,
// for /prestasi and /karya.
type ContentController struct {
	contentService *service.ContentService
}

func NewContentController(g *gin.RouterGroup, path string, table string) *ContentController {
	a := &ContentController{contentService: service.NewContentService(table)}
	g.GET("/"+path, a.list)
	g.POST("/"+path, a.create)
	g.GET("/"+path+"/:id", a.get)
	g.PUT("/"+path+"/:id", a.update)
	g.DELETE("/"+path+"/:id", a.delete)
	return a
}

type contentForm struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (a *ContentController) list(c *gin.Context) {
	items, err := a.contentService.List()
	if err != nil {
		jsonMsg(c, "list items", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (a *ContentController) create(c *gin.Context) {
	var form contentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid request body")
		return
	}
	id, err := a.contentService.Create(form.Title, form.Description)
	if errors.Is(err, service.ErrContentFields) {
		pureJsonMsg(c, http.StatusBadRequest, false, err.Error())
		return
	} else if err != nil {
		jsonMsg(c, "create item", err)
		return
	}
	c.JSON(http.StatusOK, entity.CreateResult{Success: true, Id: id})
}

func (a *ContentController) get(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	item, err := a.contentService.Get(id)
	if database.IsNotFound(err) {
		pureJsonMsg(c, http.StatusNotFound, false, "item not found")
		return
	} else if err != nil {
		jsonMsg(c, "get item", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (a *ContentController) update(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	var form contentForm
	if err := c.ShouldBindJSON(&form); err != nil {
		pureJsonMsg(c, http.StatusBadRequest, false, "invalid request body")
		return
	}
	err := a.contentService.Update(id, form.Title, form.Description)
	jsonMsg(c, "", err)
}

func (a *ContentController) delete(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	err := a.contentService.Delete(id)
	jsonMsg(c, "", err)
}
