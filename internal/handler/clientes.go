package handler

import (
	"net/http"

	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/service"

	"github.com/gin-gonic/gin"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra un nuevo cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param body body dto.RegisterClienteRequest true "Datos del cliente"
// @Success 200 {object} dto.RegisterClienteResponse
// @Failure 400 {object} apierror.Error
// @Router /register-client [post]
func (h *ClientesHandler) Registrar(c *gin.Context) {
	var req dto.RegisterClienteRequest
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

func (h *ClientesHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Buscar runs a substring search against one of the whitelisted columns.
func (h *ClientesHandler) Buscar(c *gin.Context) {
	var req dto.SearchClientesRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Buscar(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateSaldo godoc
// @Summary Descuenta una deuda del saldo del cliente
// @Tags clientes
// @Accept json
// @Produce json
// @Param body body dto.UpdateSaldoRequest true "Ajuste de saldo"
// @Success 200 {object} dto.UpdateSaldoResponse
// @Failure 404 {object} apierror.Error
// @Router /updateSaldo [post]
func (h *ClientesHandler) UpdateSaldo(c *gin.Context) {
	var req dto.UpdateSaldoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	nuevo, err := h.svc.AjustarSaldo(c.Request.Context(), req.ClientID, *req.Deuda)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.UpdateSaldoResponse{Message: "Saldo updated successfully", NewSaldo: nuevo})
}

func (h *ClientesHandler) UltimaUbicacion(c *gin.Context) {
	var req dto.ClienteIDRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.UltimaUbicacion(c.Request.Context(), req.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Obtener serves POST /getClientData — the full client record by id.
func (h *ClientesHandler) Obtener(c *gin.Context) {
	var req dto.ClienteIDRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Obtener(c.Request.Context(), req.ClientID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ActualizarPorID serves PUT /clients/:id.
func (h *ClientesHandler) ActualizarPorID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client data updated successfully"})
}

// ActualizarData serves POST /updateClientData, the original envelope with
// the id in the body.
func (h *ClientesHandler) ActualizarData(c *gin.Context) {
	var req dto.UpdateClienteDataRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), req.ClientID, req.UpdatedData); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client data updated successfully"})
}

func (h *ClientesHandler) ActualizarStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateClienteStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client status updated successfully"})
}
