// Package store holds the canonical in-memory record set of the shop: the
// product catalogue with its code and category indices, the supplier queue,
// sellers and customers with their new-arrival queues, and the sales ledger.
//
// Every mutation goes through a Tienda method that updates the canonical
// collection and all derived indices under one lock, so callers never see
// them disagree. Returned records are copies.
package store

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/repository"

	"github.com/rs/zerolog/log"
)

var (
	ErrCodigoDuplicado  = errors.New("el código del producto ya existe")
	ErrProductoNoExiste = errors.New("el producto no existe")
	ErrClienteNoExiste  = errors.New("el cliente no existe")
	ErrVendedorNoExiste = errors.New("el vendedor no existe")
	ErrVentaNoExiste    = errors.New("la venta no existe")
)

// Tienda is the record store. The zero value is not usable; call NuevaTienda.
type Tienda struct {
	mu sync.Mutex

	// Products: orden is the canonical order, porCodigo the code index and
	// porCategoria the category index (codes in insertion order).
	orden        []string
	porCodigo    map[string]model.Producto
	porCategoria map[string][]string

	proveedores cola[model.Proveedor]

	vendedores       []model.Vendedor
	vendedoresNuevos cola[model.Vendedor]

	clientes       []model.Cliente
	clientesNuevos cola[model.Cliente]

	ventas   []model.Venta
	detalles []model.DetalleVenta
}

func NuevaTienda() *Tienda {
	t := &Tienda{}
	t.reset()
	return t
}

func (t *Tienda) reset() {
	t.orden = nil
	t.porCodigo = make(map[string]model.Producto)
	t.porCategoria = make(map[string][]string)
	t.proveedores.vaciar()
	t.vendedores = nil
	t.vendedoresNuevos.vaciar()
	t.clientes = nil
	t.clientesNuevos.vaciar()
	t.ventas = nil
	t.detalles = nil
}

// Vacia reports whether the store holds no record of any kind.
func (t *Tienda) Vacia() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.orden) == 0 && t.proveedores.len() == 0 && len(t.vendedores) == 0 &&
		len(t.clientes) == 0 && len(t.ventas) == 0
}

// ── Persistence ──────────────────────────────────────────────────────────────

// Cargar replaces the store contents with what repo holds. Suppliers,
// customers and sellers are read first so that the name-only references kept
// in the product and sale files can be matched back to full records; names
// with no match stay as name-only snapshots. The product indices are checked
// before returning; on a mismatch the store is left empty.
func (t *Tienda) Cargar(ctx context.Context, repo repository.Repository) error {
	proveedores, err := repo.CargarProveedores(ctx)
	if err != nil {
		return fmt.Errorf("cargar proveedores: %w", err)
	}
	clientes, err := repo.CargarClientes(ctx)
	if err != nil {
		return fmt.Errorf("cargar clientes: %w", err)
	}
	vendedores, err := repo.CargarVendedores(ctx)
	if err != nil {
		return fmt.Errorf("cargar vendedores: %w", err)
	}
	productos, err := repo.CargarProductos(ctx)
	if err != nil {
		return fmt.Errorf("cargar productos: %w", err)
	}
	ventas, err := repo.CargarVentas(ctx)
	if err != nil {
		return fmt.Errorf("cargar ventas: %w", err)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.reset()
	for _, p := range proveedores {
		t.proveedores.encolar(p)
	}
	t.clientes = clientes
	t.vendedores = vendedores

	for _, p := range productos {
		if _, dup := t.porCodigo[p.Codigo]; dup {
			log.Warn().Str("codigo", p.Codigo).Msg("producto duplicado en origen, se conserva el primero")
			continue
		}
		if prov, ok := t.proveedorPorNombre(p.Proveedor.Nombre); ok {
			p.Proveedor = prov
		}
		t.insertarProducto(p)
	}

	for _, v := range ventas {
		if c, ok := t.buscarCliente(v.Cliente.Nombre); ok {
			v.Cliente = c
		}
		if vend, ok := t.buscarVendedor(v.Vendedor.Nombre); ok {
			v.Vendedor = vend
		}
		t.ventas = append(t.ventas, v)
	}

	if err := t.verificarIndices(); err != nil {
		t.reset()
		return fmt.Errorf("cargar productos: %w", err)
	}

	log.Info().
		Int("productos", len(t.orden)).
		Int("proveedores", t.proveedores.len()).
		Int("clientes", len(t.clientes)).
		Int("vendedores", len(t.vendedores)).
		Int("ventas", len(t.ventas)).
		Msg("información cargada")
	return nil
}

// Guardar writes every record kind to repo. A failure on one kind does not
// stop the others; all failures are returned joined.
func (t *Tienda) Guardar(ctx context.Context, repo repository.Repository) error {
	t.mu.Lock()
	productos := t.listarProductos()
	clientes := slices.Clone(t.clientes)
	ventas := slices.Clone(t.ventas)
	vendedores := slices.Clone(t.vendedores)
	proveedores := t.proveedores.elementos()
	t.mu.Unlock()

	var errs []error
	if err := repo.GuardarProductos(ctx, productos); err != nil {
		errs = append(errs, fmt.Errorf("guardar productos: %w", err))
	}
	if err := repo.GuardarClientes(ctx, clientes); err != nil {
		errs = append(errs, fmt.Errorf("guardar clientes: %w", err))
	}
	if err := repo.GuardarVentas(ctx, ventas); err != nil {
		errs = append(errs, fmt.Errorf("guardar ventas: %w", err))
	}
	if err := repo.GuardarVendedores(ctx, vendedores); err != nil {
		errs = append(errs, fmt.Errorf("guardar vendedores: %w", err))
	}
	if err := repo.GuardarProveedores(ctx, proveedores); err != nil {
		errs = append(errs, fmt.Errorf("guardar proveedores: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	log.Info().
		Int("productos", len(productos)).
		Int("clientes", len(clientes)).
		Int("ventas", len(ventas)).
		Int("vendedores", len(vendedores)).
		Int("proveedores", len(proveedores)).
		Msg("información guardada")
	return nil
}
