package repository

import (
	"context"
	"errors"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
)

// ErrRegistroInvalido marks a stored record that cannot be decoded.
var ErrRegistroInvalido = errors.New("registro inválido")

// Repository defines the persistence contract for every record kind.
// Cargar* of a kind that was never saved returns an empty slice, not an error.
// Guardar* replaces everything previously stored for that kind.
type Repository interface {
	CargarProductos(ctx context.Context) ([]model.Producto, error)
	GuardarProductos(ctx context.Context, productos []model.Producto) error

	CargarClientes(ctx context.Context) ([]model.Cliente, error)
	GuardarClientes(ctx context.Context, clientes []model.Cliente) error

	CargarVentas(ctx context.Context) ([]model.Venta, error)
	GuardarVentas(ctx context.Context, ventas []model.Venta) error

	CargarVendedores(ctx context.Context) ([]model.Vendedor, error)
	GuardarVendedores(ctx context.Context, vendedores []model.Vendedor) error

	CargarProveedores(ctx context.Context) ([]model.Proveedor, error)
	GuardarProveedores(ctx context.Context, proveedores []model.Proveedor) error
}
