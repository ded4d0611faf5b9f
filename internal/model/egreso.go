package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Egreso is a cash expense (outflow), independent of any transaction and
// linked only to the spending user. Clase is free text: nafta, mecanico,
// otros, etc.
type Egreso struct {
	ID          uint            `gorm:"primaryKey"`
	UserID      uint            `gorm:"not null;index"`
	Fecha       time.Time       `gorm:"autoCreateTime;index"`
	Clase       string          `gorm:"not null"`
	Descripcion string          `gorm:"not null"`
	Monto       decimal.Decimal `gorm:"type:decimal(12,2);not null"`

	Usuario *Usuario `gorm:"foreignKey:UserID;constraint:OnDelete:RESTRICT"`
}

func (Egreso) TableName() string { return "egresos" }
