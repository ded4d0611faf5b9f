package service

import (
	"context"
	"errors"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/model"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ClienteService interface {
	Registrar(ctx context.Context, req dto.RegisterClienteRequest) (*dto.RegisterClienteResponse, error)
	Listar(ctx context.Context) ([]dto.ClienteResponse, error)
	Buscar(ctx context.Context, req dto.SearchClientesRequest) ([]dto.ClienteResponse, error)
	Obtener(ctx context.Context, id uint) (*dto.ClienteResponse, error)
	Actualizar(ctx context.Context, id uint, req dto.UpdateClienteRequest) error
	ActualizarStatus(ctx context.Context, id uint, status string) error
	// AjustarSaldo subtracts deuda from the balance in one statement and
	// returns the resulting balance.
	AjustarSaldo(ctx context.Context, id uint, deuda decimal.Decimal) (decimal.Decimal, error)
	UltimaUbicacion(ctx context.Context, id uint) (*dto.LastLocationResponse, error)
}

type clienteService struct {
	repo repository.ClienteRepository
}

func NewClienteService(repo repository.ClienteRepository) ClienteService {
	return &clienteService{repo: repo}
}

func (s *clienteService) Registrar(ctx context.Context, req dto.RegisterClienteRequest) (*dto.RegisterClienteResponse, error) {
	saldo := decimal.Zero
	if req.Saldo != nil {
		saldo = *req.Saldo
	}
	modifBy := req.LastModifBy
	cliente := &model.Cliente{
		Descript:    req.Descript,
		NombreRef:   req.NombreRef,
		DNIRef:      req.DNIRef,
		NroWSP:      req.NroWSP,
		Correo:      req.Correo,
		RefAddress:  req.RefAddress,
		LastLatLong: req.LastLatLong,
		Saldo:       saldo,
		Status:      model.StatusActive,
		LastModifBy: &modifBy,
	}
	if err := s.repo.Create(ctx, cliente); err != nil {
		log.Error().Err(err).Msg("client insert failed")
		return nil, apierror.Internal()
	}
	return &dto.RegisterClienteResponse{Message: "Client registered successfully", ClientID: cliente.ID}, nil
}

func (s *clienteService) Listar(ctx context.Context) ([]dto.ClienteResponse, error) {
	clientes, err := s.repo.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("client list failed")
		return nil, apierror.Internal()
	}
	return toClienteResponses(clientes), nil
}

func (s *clienteService) Buscar(ctx context.Context, req dto.SearchClientesRequest) ([]dto.ClienteResponse, error) {
	field := repository.SearchField(req.Field)
	switch field {
	case repository.SearchByDescript, repository.SearchByDNIRef, repository.SearchByNombreRef:
	default:
		return nil, apierror.Validation("Invalid search field")
	}
	clientes, err := s.repo.Search(ctx, field, req.SearchText)
	if err != nil {
		log.Error().Err(err).Str("field", req.Field).Msg("client search failed")
		return nil, apierror.Internal()
	}
	return toClienteResponses(clientes), nil
}

func (s *clienteService) Obtener(ctx context.Context, id uint) (*dto.ClienteResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NotFound("Client not found")
		}
		return nil, apierror.Internal()
	}
	resp := toClienteResponse(cliente)
	return &resp, nil
}

func (s *clienteService) Actualizar(ctx context.Context, id uint, req dto.UpdateClienteRequest) error {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.NotFound("Client not found")
		}
		return apierror.Internal()
	}
	cliente.Descript = req.Descript
	cliente.NombreRef = req.NombreRef
	cliente.DNIRef = req.DNIRef
	cliente.NroWSP = req.NroWSP
	cliente.Correo = req.Correo
	cliente.RefAddress = req.RefAddress
	cliente.LastLatLong = req.LastLatLong
	if req.Saldo != nil {
		cliente.Saldo = *req.Saldo
	}
	if req.Status != "" {
		cliente.Status = req.Status
	}
	if req.LastModifBy != nil {
		cliente.LastModifBy = req.LastModifBy
	}
	if err := s.repo.Update(ctx, cliente); err != nil {
		log.Error().Err(err).Uint("client_id", id).Msg("client update failed")
		return apierror.Internal()
	}
	return nil
}

func (s *clienteService) ActualizarStatus(ctx context.Context, id uint, status string) error {
	rows, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Error().Err(err).Uint("client_id", id).Msg("client status update failed")
		return apierror.Internal()
	}
	if rows == 0 {
		return apierror.NotFound("Client not found")
	}
	return nil
}

func (s *clienteService) AjustarSaldo(ctx context.Context, id uint, deuda decimal.Decimal) (decimal.Decimal, error) {
	rows, err := s.repo.AjustarSaldo(ctx, id, deuda)
	if err != nil {
		log.Error().Err(err).Uint("client_id", id).Msg("saldo update failed")
		return decimal.Zero, apierror.Internal()
	}
	if rows == 0 {
		return decimal.Zero, apierror.NotFound("Client not found")
	}
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return decimal.Zero, apierror.Internal()
	}
	return cliente.Saldo, nil
}

func (s *clienteService) UltimaUbicacion(ctx context.Context, id uint) (*dto.LastLocationResponse, error) {
	cliente, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// The original contract returns a null coordinate, not a 404.
			return &dto.LastLocationResponse{}, nil
		}
		return nil, apierror.Internal()
	}
	return &dto.LastLocationResponse{LastLatLong: cliente.LastLatLong}, nil
}

func toClienteResponse(c *model.Cliente) dto.ClienteResponse {
	return dto.ClienteResponse{
		ClientID:    c.ID,
		Descript:    c.Descript,
		NombreRef:   c.NombreRef,
		DNIRef:      c.DNIRef,
		NroWSP:      c.NroWSP,
		Correo:      c.Correo,
		RefAddress:  c.RefAddress,
		LastLatLong: c.LastLatLong,
		FechaModif:  c.FechaModif.Format("2006-01-02 15:04:05"),
		Saldo:       c.Saldo,
		Status:      c.Status,
		LastModifBy: c.LastModifBy,
	}
}

func toClienteResponses(clientes []model.Cliente) []dto.ClienteResponse {
	resp := make([]dto.ClienteResponse, len(clientes))
	for i, c := range clientes {
		resp[i] = toClienteResponse(&c)
	}
	return resp
}
