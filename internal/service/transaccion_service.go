package service

import (
	"context"
	"encoding/json"
	"math"
	"strconv"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/model"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

type TransaccionService interface {
	Registrar(ctx context.Context, req dto.RegisterTransaccionRequest) (*dto.RegisterTransaccionResponse, error)
	RegistrarInventario(ctx context.Context, req dto.RegisterInventarioRequest) (*dto.RegisterInventarioResponse, error)
	ListarPorRango(ctx context.Context, f dto.RangoFilter) ([]dto.TransaccionResponse, error)
	ListarInventario(ctx context.Context, f dto.RangoFilter) ([]dto.ItemInventarioResponse, error)
}

type transaccionService struct {
	repo repository.TransaccionRepository
}

func NewTransaccionService(repo repository.TransaccionRepository) TransaccionService {
	return &transaccionService{repo: repo}
}

func (s *transaccionService) Registrar(ctx context.Context, req dto.RegisterTransaccionRequest) (*dto.RegisterTransaccionResponse, error) {
	t := &model.Transaccion{
		ClientID: req.ClientID,
		UserID:   req.UserID,
		Valor:    *req.Valor,
		PagoEFE:  orZero(req.PagoEFE),
		PagoMP:   orZero(req.PagoMP),
		PagoBOT:  orZero(req.PagoBOT),
		Deuda:    orZero(req.Deuda),
		LatLong:  req.LatLong,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		log.Error().Err(err).Msg("transaction insert failed")
		return nil, apierror.Internal()
	}
	return &dto.RegisterTransaccionResponse{TransacID: t.ID}, nil
}

// RegistrarInventario coerces the loosely-typed payload to integers and
// rejects anything that does not parse. Costo is stored as the per-unit
// price snapshot at time of sale.
func (s *transaccionService) RegistrarInventario(ctx context.Context, req dto.RegisterInventarioRequest) (*dto.RegisterInventarioResponse, error) {
	transacID, err := coerceInt(req.TransacID)
	if err != nil {
		return nil, apierror.Validation("Invalid input data, all fields must be integers")
	}
	productoID, err := coerceInt(req.ProductoID)
	if err != nil {
		return nil, apierror.Validation("Invalid input data, all fields must be integers")
	}
	quantity, err := coerceInt(req.Quantity)
	if err != nil {
		return nil, apierror.Validation("Invalid input data, all fields must be integers")
	}
	totalValue, err := coerceInt(req.TotalValue)
	if err != nil {
		return nil, apierror.Validation("Invalid input data, all fields must be integers")
	}
	if transacID <= 0 || productoID <= 0 || quantity <= 0 {
		return nil, apierror.Validation("Invalid input data, all fields must be integers")
	}

	// The client sends the line total; the stored cost is the per-unit
	// snapshot at time of sale.
	item := &model.ItemInventario{
		TransacID:  uint(transacID),
		ProductoID: uint(productoID),
		Amount:     int(quantity),
		Costo:      decimal.NewFromInt(totalValue).Div(decimal.NewFromInt(quantity)),
	}
	if err := s.repo.CreateItem(ctx, item); err != nil {
		log.Error().Err(err).Msg("inventory insert failed")
		return nil, apierror.Internal()
	}
	return &dto.RegisterInventarioResponse{Message: "Inventory updated successfully"}, nil
}

func (s *transaccionService) ListarPorRango(ctx context.Context, f dto.RangoFilter) ([]dto.TransaccionResponse, error) {
	rg, err := ResolverRangoFechas(f, timeNow())
	if err != nil {
		return nil, err
	}
	transacciones, err := s.repo.ListByRango(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("transaction list failed")
		return nil, apierror.Internal()
	}
	return toTransaccionResponses(transacciones), nil
}

func (s *transaccionService) ListarInventario(ctx context.Context, f dto.RangoFilter) ([]dto.ItemInventarioResponse, error) {
	rg, err := ResolverRangoFechas(f, timeNow())
	if err != nil {
		return nil, err
	}
	items, err := s.repo.ListItemsByRango(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("inventory list failed")
		return nil, apierror.Internal()
	}
	resp := make([]dto.ItemInventarioResponse, len(items))
	for i, item := range items {
		resp[i] = dto.ItemInventarioResponse{
			TransacID:  item.TransacID,
			ProductoID: item.ProductoID,
			Amount:     item.Amount,
			Costo:      item.Costo,
		}
	}
	return resp, nil
}

// coerceInt accepts JSON numbers and numeric strings; everything else is an
// error. Fractional numbers do not round silently.
func coerceInt(v any) (int64, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || n != math.Trunc(n) {
			return 0, strconv.ErrSyntax
		}
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case string:
		return strconv.ParseInt(n, 10, 64)
	default:
		return 0, strconv.ErrSyntax
	}
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func toTransaccionResponse(t *model.Transaccion) dto.TransaccionResponse {
	return dto.TransaccionResponse{
		TransacID: t.ID,
		ClientID:  t.ClientID,
		UserID:    t.UserID,
		Valor:     t.Valor,
		PagoEFE:   t.PagoEFE,
		PagoMP:    t.PagoMP,
		PagoBOT:   t.PagoBOT,
		Deuda:     t.Deuda,
		LatLong:   t.LatLong,
		Fecha:     t.Fecha.Format("2006-01-02 15:04:05"),
	}
}

func toTransaccionResponses(transacciones []model.Transaccion) []dto.TransaccionResponse {
	resp := make([]dto.TransaccionResponse, len(transacciones))
	for i := range transacciones {
		resp[i] = toTransaccionResponse(&transacciones[i])
	}
	return resp
}
