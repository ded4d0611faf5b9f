package repository

import (
	"context"

	"github.com/IgnacioMorard/AppServerTest/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TotalesTransacciones are the payment sums over the transactions in a
// range. Pago_BOT is summed for completeness but no report total consumes
// it — third-party bot payments stay outside caja and ingresos.
type TotalesTransacciones struct {
	Valor   decimal.Decimal
	PagoEFE decimal.Decimal
	PagoMP  decimal.Decimal
	PagoBOT decimal.Decimal
}

// UsuarioTotales groups transaction payment sums by owning user.
type UsuarioTotales struct {
	UserID  uint
	Nombre  string
	PagoEFE decimal.Decimal
	PagoMP  decimal.Decimal
}

// UsuarioEgresoTotal groups expense sums by spending user.
type UsuarioEgresoTotal struct {
	UserID uint
	Total  decimal.Decimal
}

// ClaseTotal groups expense sums by expense class.
type ClaseTotal struct {
	Clase string
	Total decimal.Decimal
}

// ResumenProducto is one /inventory-summary row: units and value of a
// product sold inside the range.
type ResumenProducto struct {
	ProductoID uint
	Descript   string
	Unidades   int64
	Total      decimal.Decimal
}

// ReporteRepository holds the aggregate queries behind /report,
// /inventory-summary and the consolidated view. Every query is a fixed
// plan over the shared Rango parameters.
type ReporteRepository interface {
	TotalesTransacciones(ctx context.Context, r Rango) (TotalesTransacciones, error)
	UnidadesVendidas(ctx context.Context, r Rango) (int64, error)
	TotalesPorUsuario(ctx context.Context, r Rango) ([]UsuarioTotales, error)
	EgresosPorUsuario(ctx context.Context, r Rango) ([]UsuarioEgresoTotal, error)
	EgresosPorClase(ctx context.Context, r Rango) ([]ClaseTotal, error)
	ResumenInventario(ctx context.Context, r Rango) ([]ResumenProducto, error)
}

type reporteRepo struct{ db *gorm.DB }

func NewReporteRepository(db *gorm.DB) ReporteRepository { return &reporteRepo{db: db} }

func (r *reporteRepo) TotalesTransacciones(ctx context.Context, rg Rango) (TotalesTransacciones, error) {
	var t TotalesTransacciones
	err := enRango(r.db.WithContext(ctx).Model(&model.Transaccion{}), rg).
		Select(`COALESCE(SUM(valor), 0)    AS valor,
		        COALESCE(SUM(pago_efe), 0) AS pago_efe,
		        COALESCE(SUM(pago_mp), 0)  AS pago_mp,
		        COALESCE(SUM(pago_bot), 0) AS pago_bot`).
		Scan(&t).Error
	return t, err
}

func (r *reporteRepo) UnidadesVendidas(ctx context.Context, rg Rango) (int64, error) {
	var unidades int64
	err := r.db.WithContext(ctx).Model(&model.ItemInventario{}).
		Joins("JOIN transacciones ON transacciones.id = inventario.transac_id").
		Where("transacciones.fecha >= ? AND transacciones.fecha < ? AND (? = 0 OR transacciones.user_id = ?)",
			rg.Desde, rg.Hasta, rg.UserID, rg.UserID).
		Select("COALESCE(SUM(inventario.amount), 0)").
		Scan(&unidades).Error
	return unidades, err
}

func (r *reporteRepo) TotalesPorUsuario(ctx context.Context, rg Rango) ([]UsuarioTotales, error) {
	var rows []UsuarioTotales
	err := r.db.WithContext(ctx).Model(&model.Transaccion{}).
		Select(`transacciones.user_id         AS user_id,
		        usuarios.nombre               AS nombre,
		        COALESCE(SUM(pago_efe), 0)    AS pago_efe,
		        COALESCE(SUM(pago_mp), 0)     AS pago_mp`).
		Joins("JOIN usuarios ON usuarios.id = transacciones.user_id").
		Where("transacciones.fecha >= ? AND transacciones.fecha < ? AND (? = 0 OR transacciones.user_id = ?)",
			rg.Desde, rg.Hasta, rg.UserID, rg.UserID).
		Group("transacciones.user_id, usuarios.nombre").
		Order("transacciones.user_id ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) EgresosPorUsuario(ctx context.Context, rg Rango) ([]UsuarioEgresoTotal, error) {
	var rows []UsuarioEgresoTotal
	err := enRango(r.db.WithContext(ctx).Model(&model.Egreso{}), rg).
		Select("user_id, COALESCE(SUM(monto), 0) AS total").
		Group("user_id").
		Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) EgresosPorClase(ctx context.Context, rg Rango) ([]ClaseTotal, error) {
	var rows []ClaseTotal
	err := enRango(r.db.WithContext(ctx).Model(&model.Egreso{}), rg).
		Select("clase, COALESCE(SUM(monto), 0) AS total").
		Group("clase").
		Order("clase ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *reporteRepo) ResumenInventario(ctx context.Context, rg Rango) ([]ResumenProducto, error) {
	var rows []ResumenProducto
	err := r.db.WithContext(ctx).Model(&model.ItemInventario{}).
		Select(`inventario.producto_id                          AS producto_id,
		        productos.descript                              AS descript,
		        COALESCE(SUM(inventario.amount), 0)             AS unidades,
		        COALESCE(SUM(inventario.amount * inventario.costo), 0) AS total`).
		Joins("JOIN transacciones ON transacciones.id = inventario.transac_id").
		Joins("JOIN productos ON productos.id = inventario.producto_id").
		Where("transacciones.fecha >= ? AND transacciones.fecha < ? AND (? = 0 OR transacciones.user_id = ?)",
			rg.Desde, rg.Hasta, rg.UserID, rg.UserID).
		Group("inventario.producto_id, productos.descript").
		Order("inventario.producto_id ASC").
		Scan(&rows).Error
	return rows, err
}
