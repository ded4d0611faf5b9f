package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto is a product or service offered for sale. Only Active rows are
// offered for new transactions; Inactive rows remain for historical
// reporting (no hard delete).
type Producto struct {
	ID       uint            `gorm:"primaryKey"`
	Descript string          `gorm:"not null"`
	Valor    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	FechaAct time.Time       `gorm:"autoUpdateTime"`
	UserID   uint            `gorm:"not null"`
	Status   string          `gorm:"type:varchar(10);not null;default:'Active'"`

	Usuario *Usuario `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (Producto) TableName() string { return "productos" }
