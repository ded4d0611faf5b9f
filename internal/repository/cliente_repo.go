package repository

import (
	"context"

	"github.com/IgnacioMorard/AppServerTest/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SearchField selects the clientes column a substring search runs against.
// The column is always chosen by this tag — request text never reaches the
// SQL as an identifier.
type SearchField string

const (
	SearchByDescript  SearchField = "description"
	SearchByDNIRef    SearchField = "dni"
	SearchByNombreRef SearchField = "nombreRef"
)

type ClienteRepository interface {
	Create(ctx context.Context, c *model.Cliente) error
	FindByID(ctx context.Context, id uint) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Search(ctx context.Context, field SearchField, text string) ([]model.Cliente, error)
	Update(ctx context.Context, c *model.Cliente) error
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
	// AjustarSaldo runs the single-statement balance adjustment
	// saldo = saldo - deuda. Returns rows affected; zero means the client
	// does not exist.
	AjustarSaldo(ctx context.Context, id uint, deuda decimal.Decimal) (int64, error)
}

type clienteRepo struct{ db *gorm.DB }

func NewClienteRepository(db *gorm.DB) ClienteRepository { return &clienteRepo{db: db} }

func (r *clienteRepo) Create(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *clienteRepo) FindByID(ctx context.Context, id uint) (*model.Cliente, error) {
	var c model.Cliente
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *clienteRepo) List(ctx context.Context) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.WithContext(ctx).Order("id ASC").Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Search(ctx context.Context, field SearchField, text string) ([]model.Cliente, error) {
	q := r.db.WithContext(ctx)
	pattern := "%" + text + "%"
	switch field {
	case SearchByDescript:
		q = q.Where("descript LIKE ?", pattern)
	case SearchByDNIRef:
		q = q.Where("dni_ref LIKE ?", pattern)
	case SearchByNombreRef:
		q = q.Where("nombre_ref LIKE ?", pattern)
	default:
		return nil, gorm.ErrInvalidField
	}
	var clientes []model.Cliente
	err := q.Find(&clientes).Error
	return clientes, err
}

func (r *clienteRepo) Update(ctx context.Context, c *model.Cliente) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *clienteRepo) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).
		Update("status", status)
	return res.RowsAffected, res.Error
}

func (r *clienteRepo) AjustarSaldo(ctx context.Context, id uint, deuda decimal.Decimal) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Cliente{}).Where("id = ?", id).
		Update("saldo", gorm.Expr("saldo - ?", deuda))
	return res.RowsAffected, res.Error
}
