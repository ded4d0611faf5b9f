package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegisterClienteRequest keeps the original wire field names: the mobile
// client sends the DB column spelling.
type RegisterClienteRequest struct {
	Descript    string           `json:"Descript"      validate:"required,min=1"`
	NombreRef   *string          `json:"NombreRef"`
	DNIRef      *string          `json:"DNIRef"`
	NroWSP      *string          `json:"Nro_WSP"`
	Correo      *string          `json:"Correo"`
	RefAddress  *string          `json:"Ref_Address"`
	LastLatLong *string          `json:"Last_Lat_Long"`
	Saldo       *decimal.Decimal `json:"Saldo"`
	LastModifBy uint             `json:"Last_Modif_By" validate:"required"`
}

// SearchClientesRequest selects a search column by tag, never by raw
// identifier text. Valid fields: description | dni | nombreRef.
type SearchClientesRequest struct {
	Field      string `json:"field"      validate:"required,oneof=description dni nombreRef"`
	SearchText string `json:"searchText"`
}

// UpdateSaldoRequest subtracts Deuda from the client's running balance.
type UpdateSaldoRequest struct {
	ClientID uint             `json:"clientId" validate:"required"`
	Deuda    *decimal.Decimal `json:"deuda"    validate:"required"`
}

type ClienteIDRequest struct {
	ClientID uint `json:"clientId" validate:"required"`
}

// UpdateClienteRequest is the full field-set update applied by
// PUT /clients/:id and POST /updateClientData.
type UpdateClienteRequest struct {
	Descript    string           `json:"Descript"      validate:"required,min=1"`
	NombreRef   *string          `json:"NombreRef"`
	DNIRef      *string          `json:"DNIRef"`
	NroWSP      *string          `json:"Nro_WSP"`
	Correo      *string          `json:"Correo"`
	RefAddress  *string          `json:"Ref_Address"`
	LastLatLong *string          `json:"Last_Lat_Long"`
	Saldo       *decimal.Decimal `json:"Saldo"`
	Status      string           `json:"STATUS"        validate:"omitempty,oneof=Active Inactive"`
	LastModifBy *uint            `json:"Last_Modif_By"`
}

// UpdateClienteDataRequest wraps the original /updateClientData envelope.
type UpdateClienteDataRequest struct {
	ClientID    uint                 `json:"clientId"    validate:"required"`
	UpdatedData UpdateClienteRequest `json:"updatedData" validate:"required"`
}

type UpdateClienteStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Active Inactive"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClienteResponse struct {
	ClientID    uint            `json:"ClientID"`
	Descript    string          `json:"Descript"`
	NombreRef   *string         `json:"NombreRef"`
	DNIRef      *string         `json:"DNIRef"`
	NroWSP      *string         `json:"Nro_WSP"`
	Correo      *string         `json:"Correo"`
	RefAddress  *string         `json:"Ref_Address"`
	LastLatLong *string         `json:"Last_Lat_Long"`
	FechaModif  string          `json:"FechaModif"`
	Saldo       decimal.Decimal `json:"Saldo"`
	Status      string          `json:"STATUS"`
	LastModifBy *uint           `json:"Last_Modif_By"`
}

type RegisterClienteResponse struct {
	Message  string `json:"message"`
	ClientID uint   `json:"clientID"`
}

type UpdateSaldoResponse struct {
	Message   string          `json:"message"`
	NewSaldo  decimal.Decimal `json:"newSaldo"`
}

type LastLocationResponse struct {
	LastLatLong *string `json:"Last_Lat_Long"`
}
