package shell

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func ejecutar(t *testing.T, tienda *store.Tienda, lineas ...string) string {
	t.Helper()
	var out bytes.Buffer
	in := strings.NewReader(strings.Join(lineas, "\n") + "\n")
	require.NoError(t, New(tienda, in, &out).Run(context.Background()))
	return out.String()
}

func tiendaConDatos(t *testing.T) *store.Tienda {
	t.Helper()
	tienda := store.NuevaTienda()
	_, err := tienda.AgregarCliente(dto.CrearClienteRequest{Nombre: "Ana", Apellido: "Lopez"})
	require.NoError(t, err)
	_, err = tienda.AgregarVendedor(dto.CrearVendedorRequest{Nombre: "Luis", Apellido: "Perez"})
	require.NoError(t, err)
	_, err = tienda.CrearProducto(dto.CrearProductoRequest{
		Codigo: "P1", Nombre: "Mouse", Precio: decimal.NewFromInt(100), Cantidad: 5, Categoria: "Perifericos",
	})
	require.NoError(t, err)
	return tienda
}

// ── Menu ─────────────────────────────────────────────────────────────────────

func TestRun_Salir(t *testing.T) {
	out := ejecutar(t, store.NuevaTienda(), "0")
	assert.Contains(t, out, "¡Bienvenido a la Tienda de Productos de Cómputo!")
	assert.Contains(t, out, "6. Proveedores")
}

func TestRun_FinDeEntrada(t *testing.T) {
	var out bytes.Buffer
	err := New(store.NuevaTienda(), strings.NewReader(""), &out).Run(context.Background())
	assert.NoError(t, err)
}

func TestRun_OpcionNoValida(t *testing.T) {
	out := ejecutar(t, store.NuevaTienda(), "9", "abc", "2", "7", "0")
	assert.Equal(t, 3, strings.Count(out, "Opción no válida."))
}

func TestRun_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := New(store.NuevaTienda(), strings.NewReader("0\n"), &out).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

// ── Productos ────────────────────────────────────────────────────────────────

func TestAgregarProducto_ReintentaCodigoDuplicado(t *testing.T) {
	tienda := tiendaConDatos(t)
	_, err := tienda.AgregarProveedor(dto.CrearProveedorRequest{ID: 1, Nombre: "Acme"})
	require.NoError(t, err)

	out := ejecutar(t, tienda,
		"2", "1",
		"P1", "P 2", "P2",
		"Mouse Optico", "abc", "25.5", "10", "Inalambrico de 3 botones", "Perifericos", "1", "1",
		"0",
	)

	assert.Contains(t, out, "El código del producto ya existe. Ingrese un nuevo código: ")
	assert.Contains(t, out, "Debe ingresar un número.")
	assert.Contains(t, out, "Producto P2 agregado.")

	p, ok := tienda.ObtenerProducto("P2")
	require.True(t, ok)
	assert.Equal(t, "Mouse Optico", p.Nombre)
	assert.Equal(t, "Inalambrico de 3 botones", p.Descripcion)
	assert.True(t, p.Precio.Equal(decimal.RequireFromString("25.5")))
	assert.Equal(t, "Acme", p.Proveedor.Nombre)
	assert.True(t, p.Activo)
	assert.NoError(t, tienda.VerificarIndices())
}

func TestModificarProducto(t *testing.T) {
	tienda := tiendaConDatos(t)

	out := ejecutar(t, tienda,
		"2", "2", "P1", "Mouse Pro", "120", "4", "Gamer", "Gaming", "0",
		"0",
	)
	assert.Contains(t, out, "Producto P1 modificado.")

	p, _ := tienda.ObtenerProducto("P1")
	assert.Equal(t, "Mouse Pro", p.Nombre)
	assert.False(t, p.Activo)
	assert.Equal(t, []string{"Gaming"}, tienda.Categorias())
}

func TestModificarProducto_Desconocido(t *testing.T) {
	out := ejecutar(t, tiendaConDatos(t), "2", "2", "X9", "0")
	assert.Contains(t, out, "El producto no existe.")
	assert.NotContains(t, out, "Ingrese el nuevo nombre del producto")
}

func TestEliminarProducto(t *testing.T) {
	tienda := tiendaConDatos(t)

	out := ejecutar(t, tienda, "2", "3", "X9", "2", "3", "P1", "0")
	assert.Contains(t, out, "El producto no existe.")
	assert.Contains(t, out, "Producto P1 eliminado.")
	assert.Empty(t, tienda.ListarProductos())
}

func TestMostrarProductos(t *testing.T) {
	out := ejecutar(t, tiendaConDatos(t), "2", "4", "2", "5", "Perifericos", "0")
	assert.Contains(t, out, "Código: P1")
	assert.Contains(t, out, "Precio: 100")
	assert.Contains(t, out, "Categorías: Perifericos")
	assert.Equal(t, 2, strings.Count(out, "Nombre: Mouse"))
}

// ── Ventas ───────────────────────────────────────────────────────────────────

func TestAgregarVenta(t *testing.T) {
	tienda := tiendaConDatos(t)

	out := ejecutar(t, tienda,
		"3", "1", "7", "2024-09-07", "Ana", "300", "Luis",
		"P1", "2", "1",
		"P1", "1", "0",
		"5",
		"0",
	)

	ventas := tienda.ListarVentas()
	require.Len(t, ventas, 1)
	assert.Equal(t, 7, ventas[0].NroVenta)
	detalles := tienda.DetallesDeVenta(7)
	require.Len(t, detalles, 2)
	assert.True(t, detalles[0].Subtotal.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, 2, detalles[1].NroDetalle)

	assert.Contains(t, out, "Número de venta: 7")
	assert.Contains(t, out, "Cliente: Ana Lopez")
	assert.Contains(t, out, "Vendedor: Luis Perez")
	assert.Contains(t, out, "Subtotal: 200")
}

func TestAgregarVenta_ClienteDesconocido(t *testing.T) {
	tienda := tiendaConDatos(t)

	out := ejecutar(t, tienda, "3", "1", "1", "hoy", "Nadie", "0")
	assert.Contains(t, out, "El cliente no existe.")
	assert.NotContains(t, out, "Ingrese el total de la venta")
	assert.Empty(t, tienda.ListarVentas())
	assert.Empty(t, tienda.ListarDetalles())
}

func TestAgregarVenta_VendedorDesconocido(t *testing.T) {
	tienda := tiendaConDatos(t)

	out := ejecutar(t, tienda, "3", "1", "1", "hoy", "Ana", "10", "Nadie", "0")
	assert.Contains(t, out, "El vendedor no existe.")
	assert.Empty(t, tienda.ListarVentas())
}

func TestAgregarVenta_ProductoDesconocidoConservaLineas(t *testing.T) {
	tienda := tiendaConDatos(t)

	out := ejecutar(t, tienda,
		"3", "1", "1", "hoy", "Ana", "100", "Luis",
		"P1", "1", "1",
		"X9",
		"3", "3",
		"0",
	)
	assert.Contains(t, out, "El producto no existe.")
	assert.Len(t, tienda.ListarVentas(), 1)
	assert.Len(t, tienda.ListarDetalles(), 1)
	assert.Contains(t, out, "Venta: 1")
}

// ── Personas ─────────────────────────────────────────────────────────────────

func TestClientes_NuevosYMontos(t *testing.T) {
	tienda := store.NuevaTienda()

	out := ejecutar(t, tienda,
		"4", "1", "Ana", "Lopez", "555", "ana@x.com", "Centro", "123",
		"4", "3",
		"4", "4",
		"4", "6",
		"4", "3",
		"4", "5",
		"0",
	)

	assert.Contains(t, out, "Cliente Ana Lopez agregado.")
	assert.Contains(t, out, "Cliente nuevo: Ana Lopez")
	assert.Contains(t, out, "NIT: 123")
	assert.Contains(t, out, "Cliente atendido: Ana Lopez")
	assert.Contains(t, out, "No hay clientes nuevos.")
	assert.Contains(t, out, "Monto total: 0")
	assert.Len(t, tienda.ListarClientes(), 1)
}

func TestAgregarCliente_ValidacionReintenta(t *testing.T) {
	tienda := store.NuevaTienda()

	out := ejecutar(t, tienda,
		"4", "1", "Ana", "Lopez", "555", "no-es-correo", "Centro", "1",
		"Ana", "Lopez", "555", "ana@x.com", "Centro", "1",
		"0",
	)
	assert.Contains(t, out, "Correo (email)")
	clientes := tienda.ListarClientes()
	require.Len(t, clientes, 1)
	assert.Equal(t, "ana@x.com", clientes[0].Correo)
}

func TestVendedores(t *testing.T) {
	tienda := store.NuevaTienda()

	out := ejecutar(t, tienda,
		"1", "3",
		"1", "1", "Luis", "Perez", "777", "", "Norte", "2500", "3",
		"1", "3",
		"1", "2",
		"1", "5",
		"1", "4",
		"0",
	)

	assert.Contains(t, out, "No hay vendedores nuevos.")
	assert.Contains(t, out, "Vendedor nuevo: Luis Perez")
	assert.Contains(t, out, "Salario: 2500")
	assert.Contains(t, out, "Vendedor atendido: Luis Perez")
	assert.Len(t, tienda.ListarVendedores(), 1)
}

// ── Proveedores ──────────────────────────────────────────────────────────────

func TestProveedores(t *testing.T) {
	tienda := store.NuevaTienda()

	out := ejecutar(t, tienda,
		"6", "1", "1", "Acme Corp", "999", "ventas@acme.com", "mayorista",
		"6", "2",
		"0",
	)
	assert.Contains(t, out, "Proveedor 1 Acme Corp agregado.")
	assert.Contains(t, out, "Tipo: mayorista")
	require.Len(t, tienda.ListarProveedores(), 1)
}
