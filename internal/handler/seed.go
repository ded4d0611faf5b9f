package handler

import (
	"net/http"

	"github.com/IgnacioMorard/AppServerTest/internal/service"

	"github.com/gin-gonic/gin"
)

type SeedHandler struct{ svc service.SeedService }

func NewSeedHandler(svc service.SeedService) *SeedHandler { return &SeedHandler{svc: svc} }

// Populate seeds demo data inside one transaction. Disabled in production.
func (h *SeedHandler) Populate(c *gin.Context) {
	if err := h.svc.Populate(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Test data populated successfully"})
}
