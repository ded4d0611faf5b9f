package handler

import (
	"net/http"

	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/service"

	"github.com/gin-gonic/gin"
)

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

// Registrar godoc
// @Summary Registra un producto o servicio
// @Tags productos
// @Accept json
// @Produce json
// @Param body body dto.RegisterProductoRequest true "Datos del producto"
// @Success 200 {object} dto.RegisterProductoResponse
// @Failure 400 {object} apierror.Error
// @Router /register-product [post]
func (h *ProductosHandler) Registrar(c *gin.Context) {
	var req dto.RegisterProductoRequest
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

// ListarActivos serves GET /products — only the Active catalog.
func (h *ProductosHandler) ListarActivos(c *gin.Context) {
	resp, err := h.svc.ListarActivos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListarTodos serves GET /products/all, including Inactive rows.
func (h *ProductosHandler) ListarTodos(c *gin.Context) {
	resp, err := h.svc.ListarTodos(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Actualizar godoc
// @Summary Actualiza descripcion y/o precio de un producto
// @Tags productos
// @Accept json
// @Produce json
// @Param id path int true "Srvc_Prod_ID"
// @Param body body dto.UpdateProductoRequest true "Campos a actualizar"
// @Success 200 {object} map[string]string
// @Failure 404 {object} apierror.Error
// @Router /update-product/{id} [patch]
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.Actualizar(c.Request.Context(), id, req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully"})
}

func (h *ProductosHandler) ActualizarStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req dto.UpdateProductoStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	if err := h.svc.ActualizarStatus(c.Request.Context(), id, req.Status); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product status updated successfully"})
}
