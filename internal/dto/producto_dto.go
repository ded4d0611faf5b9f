package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterProductoRequest struct {
	Descript string           `json:"Descript" validate:"required,min=1"`
	Valor    *decimal.Decimal `json:"Valor"    validate:"required"`
	UserID   uint             `json:"UserID"   validate:"required"`
}

// UpdateProductoRequest updates description and/or price. At least one field
// must be present; the service rejects an empty patch.
type UpdateProductoRequest struct {
	Descript *string          `json:"Descript" validate:"omitempty,min=1"`
	Valor    *decimal.Decimal `json:"Valor"`
}

type UpdateProductoStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ProductoResponse struct {
	SrvcProdID uint            `json:"Srvc_Prod_ID"`
	Descript   string          `json:"Descript"`
	Valor      decimal.Decimal `json:"Valor"`
	FechaAct   string          `json:"FechaAct"`
	UserID     uint            `json:"UserID"`
	Status     string          `json:"STATUS"`
}

type RegisterProductoResponse struct {
	Message    string `json:"message"`
	SrvcProdID uint   `json:"Srvc_Prod_ID"`
}
