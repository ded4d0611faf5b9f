package service

import (
	"context"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/model"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/rs/zerolog/log"
)

type ProductoService interface {
	Registrar(ctx context.Context, req dto.RegisterProductoRequest) (*dto.RegisterProductoResponse, error)
	// ListarActivos is the catalog offered for new sales; ListarTodos also
	// includes Inactive products kept for historical reporting.
	ListarActivos(ctx context.Context) ([]dto.ProductoResponse, error)
	ListarTodos(ctx context.Context) ([]dto.ProductoResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.UpdateProductoRequest) error
	ActualizarStatus(ctx context.Context, id uint, status string) error
}

type productoService struct {
	repo repository.ProductoRepository
}

func NewProductoService(repo repository.ProductoRepository) ProductoService {
	return &productoService{repo: repo}
}

func (s *productoService) Registrar(ctx context.Context, req dto.RegisterProductoRequest) (*dto.RegisterProductoResponse, error) {
	producto := &model.Producto{
		Descript: req.Descript,
		Valor:    *req.Valor,
		UserID:   req.UserID,
		Status:   model.StatusActive,
	}
	if err := s.repo.Create(ctx, producto); err != nil {
		log.Error().Err(err).Msg("product insert failed")
		return nil, apierror.Internal()
	}
	return &dto.RegisterProductoResponse{
		Message:    "Product/Service registered successfully",
		SrvcProdID: producto.ID,
	}, nil
}

func (s *productoService) ListarActivos(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.ListActivos(ctx)
	if err != nil {
		log.Error().Err(err).Msg("product list failed")
		return nil, apierror.Internal()
	}
	return toProductoResponses(productos), nil
}

func (s *productoService) ListarTodos(ctx context.Context) ([]dto.ProductoResponse, error) {
	productos, err := s.repo.ListAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("product list failed")
		return nil, apierror.Internal()
	}
	return toProductoResponses(productos), nil
}

func (s *productoService) Actualizar(ctx context.Context, id uint, req dto.UpdateProductoRequest) error {
	if req.Descript == nil && req.Valor == nil {
		return apierror.Validation("Nothing to update")
	}
	rows, err := s.repo.Update(ctx, id, req.Descript, req.Valor)
	if err != nil {
		log.Error().Err(err).Uint("producto_id", id).Msg("product update failed")
		return apierror.Internal()
	}
	if rows == 0 {
		return apierror.NotFound("Product not found")
	}
	return nil
}

func (s *productoService) ActualizarStatus(ctx context.Context, id uint, status string) error {
	rows, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Error().Err(err).Uint("producto_id", id).Msg("product status update failed")
		return apierror.Internal()
	}
	if rows == 0 {
		return apierror.NotFound("Product not found")
	}
	return nil
}

func toProductoResponses(productos []model.Producto) []dto.ProductoResponse {
	resp := make([]dto.ProductoResponse, len(productos))
	for i, p := range productos {
		resp[i] = dto.ProductoResponse{
			SrvcProdID: p.ID,
			Descript:   p.Descript,
			Valor:      p.Valor,
			FechaAct:   p.FechaAct.Format("2006-01-02 15:04:05"),
			UserID:     p.UserID,
			Status:     p.Status,
		}
	}
	return resp
}
