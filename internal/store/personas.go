package store

import (
	"slices"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
)

// ── Vendedores ───────────────────────────────────────────────────────────────

// AgregarVendedor registers a seller and queues it as a new arrival.
func (t *Tienda) AgregarVendedor(req dto.CrearVendedorRequest) (model.Vendedor, error) {
	if err := dto.Validate(req); err != nil {
		return model.Vendedor{}, err
	}
	v := req.Vendedor()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.vendedores = append(t.vendedores, v)
	t.vendedoresNuevos.encolar(v)
	return v, nil
}

func (t *Tienda) ListarVendedores() []model.Vendedor {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.vendedores)
}

// VendedorNuevo returns the oldest unattended new seller without removing it.
func (t *Tienda) VendedorNuevo() (model.Vendedor, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.vendedoresNuevos.frente()
}

// AtenderVendedorNuevo removes and returns the oldest unattended new seller.
func (t *Tienda) AtenderVendedorNuevo() (model.Vendedor, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.vendedoresNuevos.desencolar()
}

// BuscarVendedor returns the first seller whose name equals nombre.
func (t *Tienda) BuscarVendedor(nombre string) (model.Vendedor, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buscarVendedor(nombre)
}

func (t *Tienda) buscarVendedor(nombre string) (model.Vendedor, bool) {
	i := slices.IndexFunc(t.vendedores, func(v model.Vendedor) bool { return v.Nombre == nombre })
	if i < 0 {
		return model.Vendedor{}, false
	}
	return t.vendedores[i], true
}

// ── Clientes ─────────────────────────────────────────────────────────────────

// AgregarCliente registers a customer and queues it as a new arrival.
func (t *Tienda) AgregarCliente(req dto.CrearClienteRequest) (model.Cliente, error) {
	if err := dto.Validate(req); err != nil {
		return model.Cliente{}, err
	}
	c := req.Cliente()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.clientes = append(t.clientes, c)
	t.clientesNuevos.encolar(c)
	return c, nil
}

func (t *Tienda) ListarClientes() []model.Cliente {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.clientes)
}

// ClienteNuevo returns the oldest unattended new customer without removing it.
func (t *Tienda) ClienteNuevo() (model.Cliente, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.clientesNuevos.frente()
}

// AtenderClienteNuevo removes and returns the oldest unattended new customer.
func (t *Tienda) AtenderClienteNuevo() (model.Cliente, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.clientesNuevos.desencolar()
}

// BuscarCliente returns the first customer whose name equals nombre.
func (t *Tienda) BuscarCliente(nombre string) (model.Cliente, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.buscarCliente(nombre)
}

func (t *Tienda) buscarCliente(nombre string) (model.Cliente, bool) {
	i := slices.IndexFunc(t.clientes, func(c model.Cliente) bool { return c.Nombre == nombre })
	if i < 0 {
		return model.Cliente{}, false
	}
	return t.clientes[i], true
}
