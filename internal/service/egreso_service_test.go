package service

import (
	"context"
	"testing"
	"time"

	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgregarEgreso(t *testing.T) {
	repo := newStubEgresoRepo()
	repo.nombres[1] = "Pedro"
	svc := NewEgresoService(repo)

	resp, err := svc.Agregar(context.Background(), dto.AddEgresoRequest{
		UserID: 1, Clase: "nafta", Descripcion: "Carga YPF", Monto: decPtr("500"),
	})
	require.NoError(t, err)
	assert.NotZero(t, resp.EgresoID)
	require.Len(t, repo.egresos, 1)
	assert.True(t, repo.egresos[0].Monto.Equal(dec("500")))
}

func TestListarEgresosPorRango(t *testing.T) {
	pinClock(t, ahora)
	repo := newStubEgresoRepo()
	repo.nombres = map[uint]string{1: "Pedro", 2: "Lucia"}
	repo.egresos = []model.Egreso{
		{ID: 1, UserID: 1, Clase: "nafta", Descripcion: "Carga YPF", Monto: dec("500"),
			Fecha: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)},
		{ID: 2, UserID: 2, Clase: "repuestos", Descripcion: "Cubierta", Monto: dec("8000"),
			Fecha: time.Date(2026, 1, 2, 9, 0, 0, 0, time.UTC)},
	}
	repo.seq = 2
	svc := NewEgresoService(repo)

	out, err := svc.ListarPorRango(context.Background(), dto.RangoFilter{
		StartDate: "2026-03-01", EndDate: "2026-03-14",
	})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "nafta", out[0].Clase)
	assert.Equal(t, "Pedro", out[0].Usuario)
}
