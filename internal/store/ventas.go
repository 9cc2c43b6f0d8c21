package store

import (
	"fmt"
	"slices"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"

	"github.com/shopspring/decimal"
)

// MontoCliente is the sum of the recorded sale totals of one customer.
type MontoCliente struct {
	Cliente model.Cliente
	Total   decimal.Decimal
}

// RegistrarVenta records a sale header. Customer and seller are resolved by
// exact name and copied into the sale; if either is missing nothing is
// recorded. Sale numbers are not required to be unique.
func (t *Tienda) RegistrarVenta(req dto.RegistrarVentaRequest) (model.Venta, error) {
	if err := dto.Validate(req); err != nil {
		return model.Venta{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	cliente, ok := t.buscarCliente(req.Cliente)
	if !ok {
		return model.Venta{}, fmt.Errorf("%w: %s", ErrClienteNoExiste, req.Cliente)
	}
	vendedor, ok := t.buscarVendedor(req.Vendedor)
	if !ok {
		return model.Venta{}, fmt.Errorf("%w: %s", ErrVendedorNoExiste, req.Vendedor)
	}

	v := model.Venta{
		NroVenta: req.NroVenta,
		Fecha:    req.Fecha,
		Cliente:  cliente,
		Total:    req.Total,
		Vendedor: vendedor,
	}
	t.ventas = append(t.ventas, v)
	return v, nil
}

// AgregarDetalle appends a line to a recorded sale. The product is copied as
// it is now and the subtotal is fixed at Cantidad × Precio. Lines are numbered
// from 1 within each sale number.
func (t *Tienda) AgregarDetalle(venta model.Venta, req dto.ItemVentaRequest) (model.DetalleVenta, error) {
	if err := dto.Validate(req); err != nil {
		return model.DetalleVenta{}, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	existe := slices.ContainsFunc(t.ventas, func(v model.Venta) bool { return v.NroVenta == venta.NroVenta })
	if !existe {
		return model.DetalleVenta{}, fmt.Errorf("%w: %d", ErrVentaNoExiste, venta.NroVenta)
	}
	p, ok := t.porCodigo[req.Codigo]
	if !ok {
		return model.DetalleVenta{}, fmt.Errorf("%w: %s", ErrProductoNoExiste, req.Codigo)
	}

	nro := 1
	for _, d := range t.detalles {
		if d.Venta.NroVenta == venta.NroVenta {
			nro++
		}
	}
	d := model.DetalleVenta{
		NroDetalle: nro,
		Venta:      venta,
		Producto:   p,
		Cantidad:   req.Cantidad,
		Subtotal:   p.Precio.Mul(decimal.NewFromInt(int64(req.Cantidad))),
	}
	t.detalles = append(t.detalles, d)
	return d, nil
}

func (t *Tienda) ListarVentas() []model.Venta {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.ventas)
}

func (t *Tienda) ListarDetalles() []model.DetalleVenta {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.detalles)
}

// DetallesDeVenta returns the lines recorded under a sale number.
func (t *Tienda) DetallesDeVenta(nroVenta int) []model.DetalleVenta {
	t.mu.Lock()
	defer t.mu.Unlock()

	var out []model.DetalleVenta
	for _, d := range t.detalles {
		if d.Venta.NroVenta == nroVenta {
			out = append(out, d)
		}
	}
	return out
}

// MontosPorCliente totals the recorded sales of every customer, matching
// sales to customers by name. The result is informational only; nothing is
// written back to the customer or seller records.
func (t *Tienda) MontosPorCliente() []MontoCliente {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]MontoCliente, 0, len(t.clientes))
	for _, c := range t.clientes {
		total := decimal.Zero
		for _, v := range t.ventas {
			if v.Cliente.Nombre == c.Nombre {
				total = total.Add(v.Total)
			}
		}
		out = append(out, MontoCliente{Cliente: c, Total: total})
	}
	return out
}
