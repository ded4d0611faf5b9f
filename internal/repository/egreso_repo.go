package repository

import (
	"context"
	"time"

	"github.com/IgnacioMorard/AppServerTest/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// EgresoConUsuario is an expense row with the spending user's display name
// resolved via join.
type EgresoConUsuario struct {
	ID          uint
	UserID      uint
	Nombre      string
	Fecha       time.Time
	Clase       string
	Descripcion string
	Monto       decimal.Decimal
}

type EgresoRepository interface {
	Create(ctx context.Context, e *model.Egreso) error
	ListByRango(ctx context.Context, r Rango) ([]EgresoConUsuario, error)
	SumByRango(ctx context.Context, r Rango) (decimal.Decimal, error)
}

type egresoRepo struct{ db *gorm.DB }

func NewEgresoRepository(db *gorm.DB) EgresoRepository { return &egresoRepo{db: db} }

func (r *egresoRepo) Create(ctx context.Context, e *model.Egreso) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *egresoRepo) ListByRango(ctx context.Context, rg Rango) ([]EgresoConUsuario, error) {
	var rows []EgresoConUsuario
	err := r.db.WithContext(ctx).Model(&model.Egreso{}).
		Select("egresos.id, egresos.user_id, usuarios.nombre, egresos.fecha, egresos.clase, egresos.descripcion, egresos.monto").
		Joins("JOIN usuarios ON usuarios.id = egresos.user_id").
		Where("egresos.fecha >= ? AND egresos.fecha < ? AND (? = 0 OR egresos.user_id = ?)",
			rg.Desde, rg.Hasta, rg.UserID, rg.UserID).
		Order("egresos.fecha ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *egresoRepo) SumByRango(ctx context.Context, rg Rango) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	err := enRango(r.db.WithContext(ctx).Model(&model.Egreso{}), rg).
		Select("COALESCE(SUM(monto), 0)").Scan(&total).Error
	if err != nil || !total.Valid {
		return decimal.Zero, err
	}
	return total.Decimal, nil
}
