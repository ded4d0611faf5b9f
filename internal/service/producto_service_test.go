package service

import (
	"context"
	"testing"

	"github.com/IgnacioMorard/AppServerTest/internal/apierror"
	"github.com/IgnacioMorard/AppServerTest/internal/dto"
	"github.com/IgnacioMorard/AppServerTest/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedProducto(t *testing.T, repo *stubProductoRepo, descript, valor, status string) *model.Producto {
	t.Helper()
	p := &model.Producto{Descript: descript, Valor: dec(valor), UserID: 1, Status: status}
	require.NoError(t, repo.Create(context.Background(), p))
	return p
}

func TestListarProductos_ActivosVsTodos(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(t, repo, "Sifon x6", "1200", model.StatusActive)
	seedProducto(t, repo, "Bidon 20L", "900", model.StatusInactive)
	svc := NewProductoService(repo)

	activos, err := svc.ListarActivos(context.Background())
	require.NoError(t, err)
	require.Len(t, activos, 1)
	assert.Equal(t, "Sifon x6", activos[0].Descript)

	todos, err := svc.ListarTodos(context.Background())
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}

func TestActualizarProducto_NothingToUpdate(t *testing.T) {
	repo := newStubProductoRepo()
	seedProducto(t, repo, "Sifon x6", "1200", model.StatusActive)
	svc := NewProductoService(repo)

	err := svc.Actualizar(context.Background(), 1, dto.UpdateProductoRequest{})
	require.Error(t, err)
	assert.Equal(t, 400, apierror.HTTPStatus(err))
}

func TestActualizarProducto_SoloValor(t *testing.T) {
	repo := newStubProductoRepo()
	p := seedProducto(t, repo, "Sifon x6", "1200", model.StatusActive)
	svc := NewProductoService(repo)

	require.NoError(t, svc.Actualizar(context.Background(), p.ID, dto.UpdateProductoRequest{Valor: decPtr("1350")}))

	stored, err := repo.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Sifon x6", stored.Descript)
	assert.True(t, stored.Valor.Equal(dec("1350")))
}

func TestActualizarProducto_NotFound(t *testing.T) {
	svc := NewProductoService(newStubProductoRepo())

	err := svc.Actualizar(context.Background(), 99, dto.UpdateProductoRequest{Valor: decPtr("10")})
	require.Error(t, err)
	assert.Equal(t, 404, apierror.HTTPStatus(err))
}

func TestActualizarStatusProducto(t *testing.T) {
	repo := newStubProductoRepo()
	p := seedProducto(t, repo, "Sifon x6", "1200", model.StatusActive)
	svc := NewProductoService(repo)

	require.NoError(t, svc.ActualizarStatus(context.Background(), p.ID, model.StatusInactive))

	activos, err := svc.ListarActivos(context.Background())
	require.NoError(t, err)
	assert.Empty(t, activos)
}
