package infra

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/IgnacioMorard/AppServerTest/internal/model"
)

// NewDatabase establishes a GORM connection backed by pgx, caps the pool and
// runs AutoMigrate so a fresh database is usable without manual DDL.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// Order matters: usuarios is referenced by every other table.
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Cliente{},
		&model.Producto{},
		&model.Transaccion{},
		&model.ItemInventario{},
		&model.Egreso{},
	); err != nil {
		return nil, fmt.Errorf("AutoMigrate: %w", err)
	}

	return db, nil
}

// EnsureAdmin seeds the default administrator account on first boot. Re-running
// against a database that already has an "admin" user is a no-op, so an operator
// who changed the admin password will not have it reset underneath them.
func EnsureAdmin(db *gorm.DB, password string) error {
	var count int64
	if err := db.Model(&model.Usuario{}).Where("username = ?", "admin").Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		return err
	}

	admin := model.Usuario{
		Hierarchy:    0,
		Username:     "admin",
		Nombre:       "Administrador",
		PasswordHash: string(hash),
		Status:       model.StatusActive,
	}
	return db.Create(&admin).Error
}
