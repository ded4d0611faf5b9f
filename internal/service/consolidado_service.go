package service

import (
	"context"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// clienteDesconocido labels transactions whose client is missing from the
// roster snapshot taken for the report.
const clienteDesconocido = "Unknown Client"

// ConsolidadoService merges transactions, inventory lines, expenses and the
// client roster into one view. It composes the same repository queries the
// individual read endpoints use — no self-HTTP round-trips.
type ConsolidadoService interface {
	Generar(ctx context.Context, f dto.RangoFilter) (*dto.ConsolidadoResponse, error)
}

type consolidadoService struct {
	transacciones repository.TransaccionRepository
	egresos       repository.EgresoRepository
	clientes      repository.ClienteRepository
}

func NewConsolidadoService(
	transacciones repository.TransaccionRepository,
	egresos repository.EgresoRepository,
	clientes repository.ClienteRepository,
) ConsolidadoService {
	return &consolidadoService{transacciones: transacciones, egresos: egresos, clientes: clientes}
}

func (s *consolidadoService) Generar(ctx context.Context, f dto.RangoFilter) (*dto.ConsolidadoResponse, error) {
	rg, err := ResolverRangoFechas(f, timeNow())
	if err != nil {
		return nil, err
	}

	transacciones, err := s.transacciones.ListByRango(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("consolidated transaction fetch failed")
		return nil, apierror.Internal()
	}
	items, err := s.transacciones.ListItemsByRango(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("consolidated inventory fetch failed")
		return nil, apierror.Internal()
	}
	egresos, err := s.egresos.ListByRango(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("consolidated expense fetch failed")
		return nil, apierror.Internal()
	}
	roster, err := s.clientes.List(ctx)
	if err != nil {
		log.Error().Err(err).Msg("consolidated roster fetch failed")
		return nil, apierror.Internal()
	}

	nombres := make(map[uint]string, len(roster))
	for _, c := range roster {
		nombres[c.ID] = c.Descript
	}

	itemsPorTransac := make(map[uint][]dto.ItemInventarioResponse, len(transacciones))
	for _, item := range items {
		itemsPorTransac[item.TransacID] = append(itemsPorTransac[item.TransacID], dto.ItemInventarioResponse{
			TransacID:  item.TransacID,
			ProductoID: item.ProductoID,
			Amount:     item.Amount,
			Costo:      item.Costo,
		})
	}

	totalEFE := decimal.Zero
	totalValor := decimal.Zero
	consolidadas := make([]dto.TransaccionConsolidada, len(transacciones))
	for i, t := range transacciones {
		nombre, ok := nombres[t.ClientID]
		if !ok {
			nombre = clienteDesconocido
		}
		itemsT := itemsPorTransac[t.ID]
		if itemsT == nil {
			itemsT = []dto.ItemInventarioResponse{}
		}
		consolidadas[i] = dto.TransaccionConsolidada{
			TransaccionResponse: toTransaccionResponse(&transacciones[i]),
			ClienteNombre:       nombre,
			Items:               itemsT,
		}
		totalEFE = totalEFE.Add(t.PagoEFE)
		totalValor = totalValor.Add(t.Valor)
	}

	totalEgresos := decimal.Zero
	for _, e := range egresos {
		totalEgresos = totalEgresos.Add(e.Monto)
	}

	return &dto.ConsolidadoResponse{
		StartDate:     rg.Desde.Format(fechaLayout),
		EndDate:       rg.Hasta.AddDate(0, 0, -1).Format(fechaLayout),
		Transacciones: consolidadas,
		Egresos:       toEgresoResponses(egresos),
		TotalCaja:     totalEFE.Sub(totalEgresos),
		TotalGanancia: totalValor.Sub(totalEgresos),
	}, nil
}
