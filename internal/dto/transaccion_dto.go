package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type RegisterTransaccionRequest struct {
	ClientID uint             `json:"clientId" validate:"required"`
	UserID   uint             `json:"userId"   validate:"required"`
	Valor    *decimal.Decimal `json:"Valor"    validate:"required"`
	PagoEFE  *decimal.Decimal `json:"Pago_EFE"`
	PagoMP   *decimal.Decimal `json:"Pago_MP"`
	PagoBOT  *decimal.Decimal `json:"Pago_BOT"`
	Deuda    *decimal.Decimal `json:"Deuda"`
	LatLong  *string          `json:"Lat_long"`
}

// RegisterInventarioRequest accepts numbers or numeric strings — the mobile
// client historically sent both — and rejects anything that does not parse
// as an integer.
type RegisterInventarioRequest struct {
	TransacID  any `json:"transacId"  validate:"required"`
	ProductoID any `json:"productId"  validate:"required"`
	Quantity   any `json:"quantity"   validate:"required"`
	TotalValue any `json:"totalValue" validate:"required"`
}

// RangoFilter binds the shared date-range query parameters. Dates are
// YYYY-MM-DD, end date inclusive; both absent means today. UserID zero
// means no user filter.
type RangoFilter struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	UserID    uint   `form:"UserID"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type TransaccionResponse struct {
	TransacID uint            `json:"TransacID"`
	ClientID  uint            `json:"ClientID"`
	UserID    uint            `json:"UserID"`
	Valor     decimal.Decimal `json:"Valor"`
	PagoEFE   decimal.Decimal `json:"Pago_EFE"`
	PagoMP    decimal.Decimal `json:"Pago_MP"`
	PagoBOT   decimal.Decimal `json:"Pago_BOT"`
	Deuda     decimal.Decimal `json:"Deuda"`
	LatLong   *string         `json:"Lat_Long"`
	Fecha     string          `json:"Fecha"`
}

type RegisterTransaccionResponse struct {
	TransacID uint `json:"TransacID"`
}

type ItemInventarioResponse struct {
	TransacID  uint            `json:"TransacID"`
	ProductoID uint            `json:"Srvc_Prod_ID"`
	Amount     int             `json:"Amount"`
	Costo      decimal.Decimal `json:"Costo"`
}

type RegisterInventarioResponse struct {
	Message string `json:"message"`
}

// InventarioResumenEntry is one row of GET /inventory-summary: total units
// of a product sold inside the range.
type InventarioResumenEntry struct {
	ProductoID uint            `json:"Srvc_Prod_ID"`
	Descript   string          `json:"Descript"`
	Unidades   int64           `json:"Unidades"`
	Total      decimal.Decimal `json:"Total"`
}
