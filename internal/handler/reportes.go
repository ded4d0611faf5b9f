package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// ReportesHandler serves the aggregate financial report and the
// consolidated view. Report responses are cached best-effort in Redis: the
// aggregate touches four tables and the owner dashboards poll it.
type ReportesHandler struct {
	reportes    service.ReporteService
	consolidado service.ConsolidadoService
	rdb         *redis.Client
	cacheTTL    time.Duration
}

func NewReportesHandler(reportes service.ReporteService, consolidado service.ConsolidadoService, rdb *redis.Client, cacheTTL time.Duration) *ReportesHandler {
	return &ReportesHandler{reportes: reportes, consolidado: consolidado, rdb: rdb, cacheTTL: cacheTTL}
}

// Reporte godoc
// @Summary Reporte financiero por rango de fechas
// @Tags reportes
// @Produce json
// @Param range query string false "today | week | month"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param UserID query int false "Filtro por usuario"
// @Success 200 {object} dto.ReporteResponse
// @Failure 400 {object} apierror.Error
// @Router /report [get]
func (h *ReportesHandler) Reporte(c *gin.Context) {
	keyword := c.Query("range")
	var f dto.RangoFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	ctx := c.Request.Context()
	cacheKey := fmt.Sprintf("reporte:%s:%s:%s:%d", keyword, f.StartDate, f.EndDate, f.UserID)

	if cached, err := h.rdb.Get(ctx, cacheKey).Bytes(); err == nil {
		var resp dto.ReporteResponse
		if jsonErr := json.Unmarshal(cached, &resp); jsonErr == nil {
			c.JSON(http.StatusOK, resp)
			return
		}
	}

	resp, err := h.reportes.Generar(ctx, keyword, f)
	if err != nil {
		respondError(c, err)
		return
	}

	// Populate cache — best effort, ignore errors
	if b, jsonErr := json.Marshal(resp); jsonErr == nil {
		_ = h.rdb.Set(context.Background(), cacheKey, b, h.cacheTTL).Err()
	}

	c.JSON(http.StatusOK, resp)
}

// Consolidado godoc
// @Summary Vista consolidada de transacciones, items, egresos y clientes
// @Tags reportes
// @Produce json
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Param UserID query int false "Filtro por usuario"
// @Success 200 {object} dto.ConsolidadoResponse
// @Failure 400 {object} apierror.Error
// @Router /consolidated-report [get]
func (h *ReportesHandler) Consolidado(c *gin.Context) {
	var f dto.RangoFilter
	if !bindQueryAndValidate(c, &f) {
		return
	}
	resp, err := h.consolidado.Generar(c.Request.Context(), f)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
