package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yoshida28/sekkot/internal/shared/server/respond"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/products", h.list)
	rg.GET("/products/categories", h.listCategories)
}

func (h *Handler) list(c *gin.Context) {
	category := c.Query("category")
	term := c.Query("q")
	respond.JSON(c, http.StatusOK, gin.H{
		"products": Filter(category, term),
	})
}

func (h *Handler) listCategories(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{
		"categories": Categories(),
	})
}
