package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaccion is a sale. Payment components (efectivo, Mercado Pago, bot)
// need not sum to Valor — the discrepancy is tracked as Deuda.
type Transaccion struct {
	ID       uint            `gorm:"primaryKey"`
	ClientID uint            `gorm:"not null;index"`
	UserID   uint            `gorm:"not null;index"`
	Valor    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PagoEFE  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PagoMP   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	PagoBOT  decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	Deuda    decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	LatLong  *string
	Fecha    time.Time `gorm:"autoCreateTime;index"`

	Cliente *Cliente `gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
	Usuario *Usuario `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (Transaccion) TableName() string { return "transacciones" }

// ItemInventario joins a Transaccion to a Producto. Costo is a snapshot of
// the unit cost at time of sale, not a live lookup into productos.
type ItemInventario struct {
	TransacID  uint            `gorm:"primaryKey;autoIncrement:false"`
	ProductoID uint            `gorm:"primaryKey;autoIncrement:false"`
	Amount     int             `gorm:"not null"`
	Costo      decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Transaccion *Transaccion `gorm:"foreignKey:TransacID;constraint:OnDelete:RESTRICT"`
	Producto    *Producto    `gorm:"foreignKey:ProductoID;constraint:OnDelete:RESTRICT"`
}

func (ItemInventario) TableName() string { return "inventario" }
