package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cliente is a customer with a running balance. Saldo is signed: positive
// means credit in favor of the client, negative means debt owed to the
// business. It is mutated only by explicit adjustment (AjustarSaldo), never
// derived from transactions.
type Cliente struct {
	ID          uint   `gorm:"primaryKey"`
	Descript    string `gorm:"not null;index"`
	NombreRef   *string
	DNIRef      *string `gorm:"index"`
	NroWSP      *string
	Correo      *string
	RefAddress  *string
	LastLatLong *string
	FechaModif  time.Time       `gorm:"autoUpdateTime"`
	Saldo       decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Status      string          `gorm:"type:varchar(10);not null;default:'Active'"`
	LastModifBy *uint

	Modificador *Usuario `gorm:"foreignKey:LastModifBy;constraint:OnDelete:RESTRICT"`
}

func (Cliente) TableName() string { return "clientes" }
