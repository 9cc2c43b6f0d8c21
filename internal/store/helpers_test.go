package store

import (
	"context"
	"errors"
	"testing"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// ── In-memory Repository stub ────────────────────────────────────────────────

type stubRepo struct {
	productos   []model.Producto
	clientes    []model.Cliente
	ventas      []model.Venta
	vendedores  []model.Vendedor
	proveedores []model.Proveedor

	errCargar  error
	errGuardar error
}

func (r *stubRepo) CargarProductos(context.Context) ([]model.Producto, error) {
	return r.productos, r.errCargar
}

func (r *stubRepo) GuardarProductos(_ context.Context, p []model.Producto) error {
	if r.errGuardar != nil {
		return r.errGuardar
	}
	r.productos = p
	return nil
}

func (r *stubRepo) CargarClientes(context.Context) ([]model.Cliente, error) {
	return r.clientes, nil
}

func (r *stubRepo) GuardarClientes(_ context.Context, c []model.Cliente) error {
	r.clientes = c
	return nil
}

func (r *stubRepo) CargarVentas(context.Context) ([]model.Venta, error) {
	return r.ventas, nil
}

func (r *stubRepo) GuardarVentas(_ context.Context, v []model.Venta) error {
	if r.errGuardar != nil {
		return r.errGuardar
	}
	r.ventas = v
	return nil
}

func (r *stubRepo) CargarVendedores(context.Context) ([]model.Vendedor, error) {
	return r.vendedores, nil
}

func (r *stubRepo) GuardarVendedores(_ context.Context, v []model.Vendedor) error {
	r.vendedores = v
	return nil
}

func (r *stubRepo) CargarProveedores(context.Context) ([]model.Proveedor, error) {
	return r.proveedores, nil
}

func (r *stubRepo) GuardarProveedores(_ context.Context, p []model.Proveedor) error {
	r.proveedores = p
	return nil
}

var errDisco = errors.New("disco lleno")

// ── Fixtures ─────────────────────────────────────────────────────────────────

func crearProducto(t *testing.T, tienda *Tienda, codigo, categoria, precio string) model.Producto {
	t.Helper()
	p, err := tienda.CrearProducto(dto.CrearProductoRequest{
		Codigo:    codigo,
		Nombre:    "Producto " + codigo,
		Precio:    decimal.RequireFromString(precio),
		Cantidad:  5,
		Categoria: categoria,
		Activo:    true,
	})
	require.NoError(t, err)
	return p
}

func agregarCliente(t *testing.T, tienda *Tienda, nombre string) model.Cliente {
	t.Helper()
	c, err := tienda.AgregarCliente(dto.CrearClienteRequest{Nombre: nombre, Apellido: "Lopez", NIT: "100"})
	require.NoError(t, err)
	return c
}

func agregarVendedor(t *testing.T, tienda *Tienda, nombre string) model.Vendedor {
	t.Helper()
	v, err := tienda.AgregarVendedor(dto.CrearVendedorRequest{
		Nombre:  nombre,
		Salario: decimal.NewFromInt(2500),
	})
	require.NoError(t, err)
	return v
}

func codigos(productos []model.Producto) []string {
	out := make([]string, 0, len(productos))
	for _, p := range productos {
		out = append(out, p.Codigo)
	}
	return out
}
