package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type AddEgresoRequest struct {
	UserID      uint             `json:"userId"      validate:"required"`
	Clase       string           `json:"clase"       validate:"required,min=1"`
	Descripcion string           `json:"descripcion" validate:"required,min=1"`
	Monto       *decimal.Decimal `json:"monto"       validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// EgresoResponse carries the spending user's display name resolved via join.
type EgresoResponse struct {
	EgresoID    uint            `json:"EgresoID"`
	UserID      uint            `json:"UserID"`
	Usuario     string          `json:"Usuario"`
	Fecha       string          `json:"Fecha"`
	Clase       string          `json:"Clase"`
	Descripcion string          `json:"Descripcion"`
	Monto       decimal.Decimal `json:"Monto"`
}

type AddEgresoResponse struct {
	Message  string `json:"message"`
	EgresoID uint   `json:"egresoId"`
}
