package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Yoshida28/sekkot/internal/shared/server/respond"
)

type Handler struct {
	ContactEmail string
}

func NewHandler(contactEmail string) *Handler {
	return &Handler{ContactEmail: contactEmail}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/site/nav", h.nav)
	rg.GET("/site/contact", h.contact)
}

func (h *Handler) nav(c *gin.Context) {
	respond.JSON(c, http.StatusOK, gin.H{
		"entries": Nav(c.Query("path")),
	})
}

func (h *Handler) contact(c *gin.Context) {
	respond.JSON(c, http.StatusOK, ContactFor(h.ContactEmail))
}
