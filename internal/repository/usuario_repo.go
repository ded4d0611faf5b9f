package repository

import (
	"context"

	"github.com/IgnacioMorard/AppServerTest/internal/model"

	"gorm.io/gorm"
)

// UsuarioRepository defines the data access contract for users. Services
// depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via in-memory stubs.
type UsuarioRepository interface {
	Create(ctx context.Context, u *model.Usuario) error
	FindByID(ctx context.Context, id uint) (*model.Usuario, error)
	FindByUsername(ctx context.Context, username string) (*model.Usuario, error)
	List(ctx context.Context) ([]model.Usuario, error)
	Update(ctx context.Context, u *model.Usuario) error
	// UpdateStatus flips the row status and stamps fecha_status. Returns the
	// number of rows affected so callers can map zero to a 404.
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
	UpdatePassword(ctx context.Context, id uint, hash string) (int64, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) FindByID(ctx context.Context, id uint) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).First(&u, id).Error
	return &u, err
}

func (r *usuarioRepo) FindByUsername(ctx context.Context, username string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error
	return &u, err
}

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).Order("id ASC").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).
		Updates(map[string]interface{}{"status": status, "fecha_status": gorm.Expr("CURRENT_TIMESTAMP")})
	return res.RowsAffected, res.Error
}

func (r *usuarioRepo) UpdatePassword(ctx context.Context, id uint, hash string) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Usuario{}).Where("id = ?", id).
		Update("password_hash", hash)
	return res.RowsAffected, res.Error
}
