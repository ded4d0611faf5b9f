package repository

import (
	"context"

	"github.com/IgnacioMorard/AppServerTest/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(ctx context.Context, p *model.Producto) error
	FindByID(ctx context.Context, id uint) (*model.Producto, error)
	// ListActivos returns only Active products — the set offered for new
	// sales. ListAll includes Inactive rows kept for historical reporting.
	ListActivos(ctx context.Context) ([]model.Producto, error)
	ListAll(ctx context.Context) ([]model.Producto, error)
	Update(ctx context.Context, id uint, descript *string, valor *decimal.Decimal) (int64, error)
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) FindByID(ctx context.Context, id uint) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *productoRepo) ListActivos(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Where("status = ?", model.StatusActive).
		Order("id ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) ListAll(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Order("id ASC").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) Update(ctx context.Context, id uint, descript *string, valor *decimal.Decimal) (int64, error) {
	fields := map[string]interface{}{"fecha_act": gorm.Expr("CURRENT_TIMESTAMP")}
	if descript != nil {
		fields["descript"] = *descript
	}
	if valor != nil {
		fields["valor"] = *valor
	}
	res := r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).Updates(fields)
	return res.RowsAffected, res.Error
}

func (r *productoRepo) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Producto{}).Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}
