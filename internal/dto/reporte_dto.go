package dto

import "github.com/shopspring/decimal"

// ─── Financial report (GET /report) ──────────────────────────────────────────

// ReporteUsuarioEntry is the per-user breakdown: the user's own egresos are
// subtracted from the metrics of the transactions that user owns.
type ReporteUsuarioEntry struct {
	UserID   uint            `json:"user_id"`
	Nombre   string          `json:"nombre"`
	Caja     decimal.Decimal `json:"caja"`
	Ingresos decimal.Decimal `json:"ingresos"`
}

type EgresoClaseEntry struct {
	Clase string          `json:"clase"`
	Total decimal.Decimal `json:"total"`
}

// ReporteResponse is the canonical report contract. Caja = cash payments
// minus expenses; Ingresos additionally counts electronic (MP) payments.
// Pago_BOT is excluded from every total. Collections default to empty
// slices, never null.
type ReporteResponse struct {
	StartDate      string                `json:"start_date"`
	EndDate        string                `json:"end_date"`
	TotalCaja      decimal.Decimal       `json:"total_caja"`
	TotalIngresos  decimal.Decimal       `json:"total_ingresos"`
	TotalUnidades  int64                 `json:"total_unidades"`
	PorUsuario     []ReporteUsuarioEntry `json:"por_usuario"`
	EgresosPorClase []EgresoClaseEntry   `json:"egresos_por_clase"`
	Egresos        []EgresoResponse      `json:"egresos"`
}

// ─── Consolidated report (GET /consolidated-report) ──────────────────────────

// TransaccionConsolidada is a transaction with its inventory line items and
// the client's display name attached in memory.
type TransaccionConsolidada struct {
	TransaccionResponse
	ClienteNombre string                   `json:"cliente_nombre"`
	Items         []ItemInventarioResponse `json:"items"`
}

type ConsolidadoResponse struct {
	StartDate     string                   `json:"start_date"`
	EndDate       string                   `json:"end_date"`
	Transacciones []TransaccionConsolidada `json:"transacciones"`
	Egresos       []EgresoResponse         `json:"egresos"`
	TotalCaja     decimal.Decimal          `json:"total_caja"`
	TotalGanancia decimal.Decimal          `json:"total_ganancia"`
}
