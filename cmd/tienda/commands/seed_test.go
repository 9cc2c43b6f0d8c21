package commands

import (
	"context"
	"testing"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/repository"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSembrar(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewArchivoRepository(t.TempDir())

	require.NoError(t, sembrar(ctx, repo, false))

	tienda := store.NuevaTienda()
	require.NoError(t, tienda.Cargar(ctx, repo))
	assert.Len(t, tienda.ListarProductos(), 4)
	assert.Equal(t, []string{"Almacenamiento", "CPU", "Memoria"}, tienda.Categorias())
	assert.Len(t, tienda.ListarProveedores(), 2)

	p, ok := tienda.ObtenerProducto("P101")
	require.True(t, ok)
	assert.Equal(t, "Globex", p.Proveedor.Nombre)

	ventas := tienda.ListarVentas()
	require.Len(t, ventas, 1)
	assert.Equal(t, "Lopez", ventas[0].Cliente.Apellido)
	assert.NoError(t, tienda.VerificarIndices())
}

func TestSembrar_NoPisaDatos(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewArchivoRepository(t.TempDir())
	require.NoError(t, sembrar(ctx, repo, false))

	assert.ErrorIs(t, sembrar(ctx, repo, false), errHayDatos)
	assert.NoError(t, sembrar(ctx, repo, true))
}

func TestSembrar_NoPisaClientesSinProductos(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewArchivoRepository(t.TempDir())
	require.NoError(t, repo.GuardarClientes(ctx, []model.Cliente{{Nombre: "Real", Apellido: "Cliente"}}))

	assert.ErrorIs(t, sembrar(ctx, repo, false), errHayDatos)

	clientes, err := repo.CargarClientes(ctx)
	require.NoError(t, err)
	require.Len(t, clientes, 1)
	assert.Equal(t, "Real", clientes[0].Nombre)
	productos, err := repo.CargarProductos(ctx)
	require.NoError(t, err)
	assert.Empty(t, productos)
}
