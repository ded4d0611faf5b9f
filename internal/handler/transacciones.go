package handler

import (
	"net/http"

	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/service"

	"github.com/gin-gonic/gin"
)

type TransaccionesHandler struct {
	svc      service.TransaccionService
	reportes service.ReporteService
}

func NewTransaccionesHandler(svc service.TransaccionService, reportes service.ReporteService) *TransaccionesHandler {
	return &TransaccionesHandler{svc: svc, reportes: reportes}
}

// Registrar godoc
// @Summary Registra una transaccion de venta
// @Tags transacciones
// @Accept json
// @Produce json
// @Param body body dto.RegisterTransaccionRequest true "Datos de la transaccion"
// @Success 200 {object} dto.RegisterTransaccionResponse
// @Failure 400 {object} apierror.Error
// @Router /registerTransaction [post]
func (h *TransaccionesHandler) Registrar(c *gin.Context) {
	var req dto.RegisterTransaccionRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Registrar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// RegistrarInventario tolerates numeric strings in the payload and rejects
// anything that fails integer coercion with a 400.
func (h *TransaccionesHandler) RegistrarInventario(c *gin.Context) {
	var req dto.RegisterInventarioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.RegistrarInventario(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Listar serves GET /transactions; the window defaults to today.
func (h *TransaccionesHandler) Listar(c *gin.Context) {
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

// ListarInventario serves GET /inventory — the raw lines of transactions
// inside the window.
func (h *TransaccionesHandler) ListarInventario(c *gin.Context) {
	var f dto.RangoFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	resp, err := h.svc.ListarInventario(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResumenInventario serves GET /inventory-summary — units per product.
func (h *TransaccionesHandler) ResumenInventario(c *gin.Context) {
	var f dto.RangoFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	resp, err := h.reportes.ResumenInventario(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
