package service

import (
	"context"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/config"
	"github.com/IgnacioMorard/AppServerTest/internal/model"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedService populates the store with demo data for manual testing. The
// whole batch runs inside one transaction — any failure rolls everything
// back. Refused outright in production.
type SeedService interface {
	Populate(ctx context.Context) error
}

type seedService struct {
	repo repository.TransaccionRepository
	cfg  *config.Config
}

func NewSeedService(repo repository.TransaccionRepository, cfg *config.Config) SeedService {
	return &seedService{repo: repo, cfg: cfg}
}

func (s *seedService) Populate(ctx context.Context) error {
	if s.cfg.Env == "production" {
		return apierror.Forbidden("Test data population is disabled in production")
	}

	err := s.repo.DB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		hash, err := bcrypt.GenerateFromPassword([]byte("test1234"), bcryptCost)
		if err != nil {
			return err
		}

		repartidor := &model.Usuario{Hierarchy: 3, Username: "repartidor1", Nombre: "Repartidor Uno", PasswordHash: string(hash), Status: model.StatusActive}
		vendedor := &model.Usuario{Hierarchy: 2, Username: "vendedor1", Nombre: "Vendedor Uno", PasswordHash: string(hash), Status: model.StatusActive}
		if err := tx.Create(repartidor).Error; err != nil {
			return err
		}
		if err := tx.Create(vendedor).Error; err != nil {
			return err
		}

		dni := "30887123"
		coord := "-34.6037,-58.3816"
		clientes := []*model.Cliente{
			{Descript: "Almacen Don Pepe", DNIRef: &dni, LastLatLong: &coord, Saldo: decimal.NewFromInt(0), Status: model.StatusActive, LastModifBy: &vendedor.ID},
			{Descript: "Kiosco La Esquina", Saldo: decimal.NewFromInt(-1500), Status: model.StatusActive, LastModifBy: &vendedor.ID},
		}
		for _, c := range clientes {
			if err := tx.Create(c).Error; err != nil {
				return err
			}
		}

		productos := []*model.Producto{
			{Descript: "Bidon 20L", Valor: decimal.NewFromInt(1000), UserID: vendedor.ID, Status: model.StatusActive},
			{Descript: "Soda Sifon", Valor: decimal.NewFromInt(500), UserID: vendedor.ID, Status: model.StatusActive},
		}
		for _, p := range productos {
			if err := tx.Create(p).Error; err != nil {
				return err
			}
		}

		transacciones := []*model.Transaccion{
			{ClientID: clientes[0].ID, UserID: repartidor.ID, Valor: decimal.NewFromInt(1000), PagoEFE: decimal.NewFromInt(1000)},
			{ClientID: clientes[1].ID, UserID: repartidor.ID, Valor: decimal.NewFromInt(2000), PagoEFE: decimal.NewFromInt(2000)},
		}
		for _, t := range transacciones {
			if err := tx.Create(t).Error; err != nil {
				return err
			}
		}

		items := []*model.ItemInventario{
			{TransacID: transacciones[0].ID, ProductoID: productos[0].ID, Amount: 1, Costo: decimal.NewFromInt(1000)},
			{TransacID: transacciones[1].ID, ProductoID: productos[0].ID, Amount: 1, Costo: decimal.NewFromInt(1000)},
			{TransacID: transacciones[1].ID, ProductoID: productos[1].ID, Amount: 2, Costo: decimal.NewFromInt(500)},
		}
		for _, item := range items {
			if err := tx.Create(item).Error; err != nil {
				return err
			}
		}

		egreso := &model.Egreso{UserID: repartidor.ID, Clase: "nafta", Descripcion: "Carga de combustible", Monto: decimal.NewFromInt(500)}
		return tx.Create(egreso).Error
	})

	if err != nil {
		log.Error().Err(err).Msg("test data population rolled back")
		return apierror.Internal()
	}
	return nil
}
