package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/repository"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

var seedForce bool

var errHayDatos = errors.New("el almacenamiento ya tiene datos; use --force para reemplazarlos")

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Carga un conjunto de datos de demostración",
	Long: `Escribe proveedores, productos, clientes, vendedores y una venta de ejemplo
en el almacenamiento configurado.

Examples:
  tienda seed --data-dir ./datos
  tienda seed --storage postgres --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, cerrar, err := abrirRepositorio(cfg)
		if err != nil {
			return err
		}
		defer cerrar()
		return sembrar(cmd.Context(), repo, seedForce)
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Reemplaza los datos existentes")
}

// sembrar saves the demo data set through repo. Without force it refuses to
// touch a repository that holds records of any kind.
func sembrar(ctx context.Context, repo repository.Repository, force bool) error {
	if !force {
		existente := store.NuevaTienda()
		if err := existente.Cargar(ctx, repo); err != nil {
			return err
		}
		if !existente.Vacia() {
			return errHayDatos
		}
	}

	tienda, err := datosDemo()
	if err != nil {
		return fmt.Errorf("armar datos de demostración: %w", err)
	}
	if err := tienda.Guardar(ctx, repo); err != nil {
		return err
	}
	log.Info().Int("productos", len(tienda.ListarProductos())).Msg("datos de demostración guardados")
	return nil
}

func datosDemo() (*store.Tienda, error) {
	t := store.NuevaTienda()

	proveedores := []dto.CrearProveedorRequest{
		{ID: 1, Nombre: "Acme", Telefono: "70012345", Correo: "ventas@acme.com", Tipo: "mayorista"},
		{ID: 2, Nombre: "Globex", Telefono: "70054321", Correo: "contacto@globex.com", Tipo: "importador"},
	}
	for _, p := range proveedores {
		if _, err := t.AgregarProveedor(p); err != nil {
			return nil, err
		}
	}

	productos := []dto.CrearProductoRequest{
		{Codigo: "P100", Nombre: "Ryzen 5 5600", Precio: decimal.RequireFromString("1500"), Cantidad: 8,
			Descripcion: "6 núcleos, 12 hilos", Categoria: "CPU", Activo: true, ProveedorID: 1},
		{Codigo: "P101", Nombre: "Core i5 12400", Precio: decimal.RequireFromString("1650"), Cantidad: 5,
			Descripcion: "6 núcleos, 12 hilos", Categoria: "CPU", Activo: true, ProveedorID: 2},
		{Codigo: "M200", Nombre: "DDR4 16GB", Precio: decimal.RequireFromString("320.5"), Cantidad: 20,
			Descripcion: "3200 MHz", Categoria: "Memoria", Activo: true, ProveedorID: 1},
		{Codigo: "D300", Nombre: "SSD NVMe 1TB", Precio: decimal.RequireFromString("540"), Cantidad: 12,
			Descripcion: "PCIe 4.0", Categoria: "Almacenamiento", Activo: true, ProveedorID: 2},
	}
	for _, p := range productos {
		if _, err := t.CrearProducto(p); err != nil {
			return nil, err
		}
	}

	if _, err := t.AgregarCliente(dto.CrearClienteRequest{
		Nombre: "Ana", Apellido: "Lopez", Telefono: "71111111", Correo: "ana@correo.com",
		Direccion: "Av. Central 123", NIT: "1234567",
	}); err != nil {
		return nil, err
	}
	if _, err := t.AgregarVendedor(dto.CrearVendedorRequest{
		Nombre: "Luis", Apellido: "Perez", Telefono: "72222222", Correo: "luis@tienda.com",
		Direccion: "Calle 5", Salario: decimal.RequireFromString("3000"), VentasRealizadas: decimal.NewFromInt(1),
	}); err != nil {
		return nil, err
	}

	venta, err := t.RegistrarVenta(dto.RegistrarVentaRequest{
		NroVenta: 1, Fecha: "2024-09-07", Cliente: "Ana", Total: decimal.RequireFromString("2141"), Vendedor: "Luis",
	})
	if err != nil {
		return nil, err
	}
	for _, item := range []dto.ItemVentaRequest{{Codigo: "P100", Cantidad: 1}, {Codigo: "M200", Cantidad: 2}} {
		if _, err := t.AgregarDetalle(venta, item); err != nil {
			return nil, err
		}
	}
	return t, nil
}
