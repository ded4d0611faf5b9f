package service

import (
	"context"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/repository"

	"github.com/rs/zerolog/log"
)

// ReporteService assembles the date-windowed financial report. Caja is cash
// received minus expenses paid; ingresos additionally counts electronic
// payments. Pago_BOT never enters a total.
type ReporteService interface {
	// Generar resolves the window from a symbolic keyword (today|week|month)
	// or, when keyword is empty, from the explicit filter dates.
	Generar(ctx context.Context, keyword string, f dto.RangoFilter) (*dto.ReporteResponse, error)
	ResumenInventario(ctx context.Context, f dto.RangoFilter) ([]dto.InventarioResumenEntry, error)
}

type reporteService struct {
	reportes repository.ReporteRepository
	egresos  repository.EgresoRepository
}

func NewReporteService(reportes repository.ReporteRepository, egresos repository.EgresoRepository) ReporteService {
	return &reporteService{reportes: reportes, egresos: egresos}
}

func (s *reporteService) Generar(ctx context.Context, keyword string, f dto.RangoFilter) (*dto.ReporteResponse, error) {
	var rg repository.Rango
	var err error
	if keyword != "" {
		rg, err = ResolverRangoSimbolico(keyword, timeNow())
		rg.UserID = f.UserID
	} else {
		rg, err = ResolverRangoFechas(f, timeNow())
	}
	if err != nil {
		return nil, err
	}

	totales, err := s.reportes.TotalesTransacciones(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("report transaction totals failed")
		return nil, apierror.Internal()
	}
	totalEgresos, err := s.egresos.SumByRango(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("report expense sum failed")
		return nil, apierror.Internal()
	}
	unidades, err := s.reportes.UnidadesVendidas(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("report units sum failed")
		return nil, apierror.Internal()
	}
	porUsuario, err := s.reportes.TotalesPorUsuario(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("report per-user totals failed")
		return nil, apierror.Internal()
	}
	egresosUsuario, err := s.reportes.EgresosPorUsuario(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("report per-user expenses failed")
		return nil, apierror.Internal()
	}
	porClase, err := s.reportes.EgresosPorClase(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("report per-class expenses failed")
		return nil, apierror.Internal()
	}
	detalle, err := s.egresos.ListByRango(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("report expense detail failed")
		return nil, apierror.Internal()
	}

	// Per-user breakdown: each user's own egresos are subtracted from that
	// user's metrics. Users with expenses but no transactions in range only
	// show up in the expense groupings.
	egresosPorUsuario := make(map[uint]repository.UsuarioEgresoTotal, len(egresosUsuario))
	for _, e := range egresosUsuario {
		egresosPorUsuario[e.UserID] = e
	}
	usuarios := make([]dto.ReporteUsuarioEntry, len(porUsuario))
	for i, u := range porUsuario {
		propios := egresosPorUsuario[u.UserID].Total
		usuarios[i] = dto.ReporteUsuarioEntry{
			UserID:   u.UserID,
			Nombre:   u.Nombre,
			Caja:     u.PagoEFE.Sub(propios),
			Ingresos: u.PagoEFE.Add(u.PagoMP).Sub(propios),
		}
	}

	clases := make([]dto.EgresoClaseEntry, len(porClase))
	for i, c := range porClase {
		clases[i] = dto.EgresoClaseEntry{Clase: c.Clase, Total: c.Total}
	}

	return &dto.ReporteResponse{
		StartDate:       rg.Desde.Format(fechaLayout),
		EndDate:         rg.Hasta.AddDate(0, 0, -1).Format(fechaLayout),
		TotalCaja:       totales.PagoEFE.Sub(totalEgresos),
		TotalIngresos:   totales.PagoEFE.Add(totales.PagoMP).Sub(totalEgresos),
		TotalUnidades:   unidades,
		PorUsuario:      usuarios,
		EgresosPorClase: clases,
		Egresos:         toEgresoResponses(detalle),
	}, nil
}

func (s *reporteService) ResumenInventario(ctx context.Context, f dto.RangoFilter) ([]dto.InventarioResumenEntry, error) {
	rg, err := ResolverRangoFechas(f, timeNow())
	if err != nil {
		return nil, err
	}
	resumen, err := s.reportes.ResumenInventario(ctx, rg)
	if err != nil {
		log.Error().Err(err).Msg("inventory summary failed")
		return nil, apierror.Internal()
	}
	resp := make([]dto.InventarioResumenEntry, len(resumen))
	for i, r := range resumen {
		resp[i] = dto.InventarioResumenEntry{
			ProductoID: r.ProductoID,
			Descript:   r.Descript,
			Unidades:   r.Unidades,
			Total:      r.Total,
		}
	}
	return resp, nil
}
