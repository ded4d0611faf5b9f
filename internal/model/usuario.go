package model

import "time"

// Row status values shared by every entity. Nothing is ever hard-deleted
// through the API — rows only flip between these two states.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Usuario stores system users. Hierarchy is an integer rank: 0 is the
// highest privilege level (the seeded admin), larger values rank lower.
type Usuario struct {
	ID           uint   `gorm:"primaryKey"`
	Hierarchy    int    `gorm:"not null"`
	Username     string `gorm:"uniqueIndex;not null"`
	Nombre       string `gorm:"not null"`
	DNI          *string
	Telefono     *string
	Correo       *string
	PasswordHash string    `gorm:"not null"`
	Status       string    `gorm:"type:varchar(10);not null;default:'Active'"`
	FechaStatus  time.Time `gorm:"autoCreateTime"`
}

func (Usuario) TableName() string { return "usuarios" }
