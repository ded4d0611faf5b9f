package repository

import (
	"context"
	"time"

	"github.com/IgnacioMorard/AppServerTest/internal/model"

	"gorm.io/gorm"
)

// Rango is a half-open time window [Desde, Hasta) shared by every
// range-filtered query. UserID zero disables the user filter — the query
// plan is fixed, the filter is a parameter, never assembled SQL text.
type Rango struct {
	Desde  time.Time
	Hasta  time.Time
	UserID uint
}

// enRango applies the shared window + optional user filter to a query over
// a table with fecha and user_id columns.
func enRango(q *gorm.DB, r Rango) *gorm.DB {
	return q.Where("fecha >= ? AND fecha < ? AND (? = 0 OR user_id = ?)",
		r.Desde, r.Hasta, r.UserID, r.UserID)
}

type TransaccionRepository interface {
	Create(ctx context.Context, t *model.Transaccion) error
	FindByID(ctx context.Context, id uint) (*model.Transaccion, error)
	ListByRango(ctx context.Context, r Rango) ([]model.Transaccion, error)

	CreateItem(ctx context.Context, item *model.ItemInventario) error
	// ListItemsByRango returns the inventory lines of every transaction whose
	// fecha falls inside the range (the range filters the parent transaction,
	// not the line).
	ListItemsByRango(ctx context.Context, r Rango) ([]model.ItemInventario, error)

	// DB exposes the underlying *gorm.DB so the seed service can open a
	// transaction spanning several repositories.
	DB() *gorm.DB
}

type transaccionRepo struct{ db *gorm.DB }

func NewTransaccionRepository(db *gorm.DB) TransaccionRepository { return &transaccionRepo{db: db} }

func (r *transaccionRepo) Create(ctx context.Context, t *model.Transaccion) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *transaccionRepo) FindByID(ctx context.Context, id uint) (*model.Transaccion, error) {
	var t model.Transaccion
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *transaccionRepo) ListByRango(ctx context.Context, rg Rango) ([]model.Transaccion, error) {
	var transacciones []model.Transaccion
	err := enRango(r.db.WithContext(ctx), rg).Order("fecha ASC").Find(&transacciones).Error
	return transacciones, err
}

func (r *transaccionRepo) CreateItem(ctx context.Context, item *model.ItemInventario) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *transaccionRepo) ListItemsByRango(ctx context.Context, rg Rango) ([]model.ItemInventario, error) {
	var items []model.ItemInventario
	err := r.db.WithContext(ctx).
		Joins("JOIN transacciones ON transacciones.id = inventario.transac_id").
		Where("transacciones.fecha >= ? AND transacciones.fecha < ? AND (? = 0 OR transacciones.user_id = ?)",
			rg.Desde, rg.Hasta, rg.UserID, rg.UserID).
		Find(&items).Error
	return items, err
}

func (r *transaccionRepo) DB() *gorm.DB { return r.db }
