//go:build integration

package repository_test

// Runs PostgresRepository against a real Postgres via testcontainers.
// Run with: go test -tags integration ./internal/repository/... -v

import (
	"context"
	"testing"
	"time"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/infra"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *repository.PostgresRepository {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.Run(ctx, "postgres:16-alpine",
		tcPostgres.WithDatabase("tienda_test"),
		tcPostgres.WithUsername("tienda"),
		tcPostgres.WithPassword("tienda"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	dsn, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := infra.NewDatabase(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = infra.Close(db) })

	return repository.NewPostgresRepository(db)
}

func TestPostgres_RoundTrip(t *testing.T) {
	repo := setupPostgres(t)
	ctx := context.Background()

	t.Run("vacio", func(t *testing.T) {
		productos, err := repo.CargarProductos(ctx)
		require.NoError(t, err)
		assert.Empty(t, productos)
	})

	t.Run("productos conservan orden", func(t *testing.T) {
		productos := []model.Producto{
			{Codigo: "P2", Nombre: "Teclado", Precio: decimal.RequireFromString("40"), Cantidad: 2,
				Categoria: "Perifericos", Proveedor: model.Proveedor{Nombre: "Acme"}, Activo: true},
			{Codigo: "P1", Nombre: "Mouse Optico", Precio: decimal.RequireFromString("25.5"), Cantidad: 10,
				Descripcion: "inalambrico", Categoria: "Perifericos", Activo: false},
		}
		require.NoError(t, repo.GuardarProductos(ctx, productos))

		got, err := repo.CargarProductos(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "P2", got[0].Codigo)
		assert.Equal(t, "P1", got[1].Codigo)
		assert.True(t, got[1].Precio.Equal(decimal.RequireFromString("25.5")))
		assert.Equal(t, "Acme", got[0].Proveedor.Nombre)
		assert.False(t, got[1].Activo)
	})

	t.Run("guardar reemplaza", func(t *testing.T) {
		require.NoError(t, repo.GuardarProveedores(ctx, []model.Proveedor{
			{ID: 1, Nombre: "Acme"}, {ID: 2, Nombre: "Globex"},
		}))
		require.NoError(t, repo.GuardarProveedores(ctx, []model.Proveedor{
			{ID: 3, Nombre: "Initech", Telefono: "999", Correo: "hola@initech.com"},
		}))

		got, err := repo.CargarProveedores(ctx)
		require.NoError(t, err)
		assert.Equal(t, []model.Proveedor{{ID: 3, Nombre: "Initech", Telefono: "999", Correo: "hola@initech.com"}}, got)
	})

	t.Run("ventas con numero repetido", func(t *testing.T) {
		ventas := []model.Venta{
			{NroVenta: 1, Fecha: "2024-01-01", Cliente: model.Cliente{Nombre: "Ana"},
				Total: decimal.RequireFromString("10"), Vendedor: model.Vendedor{Nombre: "Luis"}},
			{NroVenta: 1, Fecha: "2024-01-02", Cliente: model.Cliente{Nombre: "Eva"},
				Total: decimal.RequireFromString("20"), Vendedor: model.Vendedor{Nombre: "Luis"}},
		}
		require.NoError(t, repo.GuardarVentas(ctx, ventas))

		got, err := repo.CargarVentas(ctx)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Ana", got[0].Cliente.Nombre)
		assert.Equal(t, "Eva", got[1].Cliente.Nombre)
	})

	t.Run("vendedores y clientes", func(t *testing.T) {
		require.NoError(t, repo.GuardarVendedores(ctx, []model.Vendedor{{
			Nombre: "Luis", Apellido: "Perez", Salario: decimal.RequireFromString("2500"),
			VentasRealizadas: decimal.RequireFromString("3"),
		}}))
		require.NoError(t, repo.GuardarClientes(ctx, []model.Cliente{{
			Nombre: "Ana", Apellido: "Lopez", NIT: "123",
		}}))

		vendedores, err := repo.CargarVendedores(ctx)
		require.NoError(t, err)
		require.Len(t, vendedores, 1)
		assert.True(t, vendedores[0].Salario.Equal(decimal.RequireFromString("2500")))

		clientes, err := repo.CargarClientes(ctx)
		require.NoError(t, err)
		require.Len(t, clientes, 1)
		assert.Equal(t, "123", clientes[0].NIT)
	})
}
