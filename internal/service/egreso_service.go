package service

import (
	"context"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/model"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/rs/zerolog/log"
)

type EgresoService interface {
	Agregar(ctx context.Context, req dto.AddEgresoRequest) (*dto.AddEgresoResponse, error)
	ListarPorRango(ctx context.Context, f dto.RangoFilter) ([]dto.EgresoResponse, error)
}

type egresoService struct {
	repo repository.EgresoRepository
}

func NewEgresoService(repo repository.EgresoRepository) EgresoService {
	return &egresoService{repo: repo}
}

func (s *egresoService) Agregar(ctx context.Context, req dto.AddEgresoRequest) (*dto.AddEgresoResponse, error) {
	egreso := &model.Egreso{
		UserID:      req.UserID,
		Clase:       req.Clase,
		Descripcion: req.Descripcion,
		Monto:       *req.Monto,
	}
	if err := s.repo.Create(ctx, egreso); err != nil {
		log.Error().Err(err).Msg("expense insert failed")
		return nil, apierror.Internal()
	}
	return &dto.AddEgresoResponse{Message: "Egreso registered successfully", EgresoID: egreso.ID}, nil
}

func (s *egresoService) ListarPorRango(ctx context.Context, f dto.RangoFilter) ([]dto.EgresoResponse, error) {
	rg, err := ResolverRangoFechas(f, timeNow())
	if err != nil {
		return nil, err
	}
	egresos, err := s.repo.ListByRango(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("expense list failed")
		return nil, apierror.Internal()
	}
	return toEgresoResponses(egresos), nil
}

func toEgresoResponses(egresos []repository.EgresoConUsuario) []dto.EgresoResponse {
	resp := make([]dto.EgresoResponse, len(egresos))
	for i, e := range egresos {
		resp[i] = dto.EgresoResponse{
			EgresoID:    e.ID,
			UserID:      e.UserID,
			Usuario:     e.Nombre,
			Fecha:       e.Fecha.Format("2006-01-02 15:04:05"),
			Clase:       e.Clase,
			Descripcion: e.Descripcion,
			Monto:       e.Monto,
		}
	}
	return resp
}
