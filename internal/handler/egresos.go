package handler

import (
	"net/http"

	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/service"

	"github.com/gin-gonic/gin"
)

type EgresosHandler struct{ svc service.EgresoService }

func NewEgresosHandler(svc service.EgresoService) *EgresosHandler {
	return &EgresosHandler{svc: svc}
}

// Agregar godoc
// @Summary Registra un egreso de caja
// @Tags egresos
// @Accept json
// @Produce json
// @Param body body dto.AddEgresoRequest true "Datos del egreso"
// @Success 200 {object} dto.AddEgresoResponse
// @Failure 400 {object} apierror.Error
// @Router /add-egreso [post]
func (h *EgresosHandler) Agregar(c *gin.Context) {
	var req dto.AddEgresoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Agregar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar serves GET /expenses; the window defaults to today.
func (h *EgresosHandler) Listar(c *gin.Context) {
	var f dto.RangoFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	resp, err := h.svc.ListarPorRango(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
