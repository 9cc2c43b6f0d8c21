package model

import "github.com/shopspring/decimal"

// Venta is a recorded sale. Cliente and Vendedor are snapshots taken when the
// sale was registered; later edits to either record are not reflected here.
type Venta struct {
	NroVenta int
	Fecha    string
	Cliente  Cliente
	Total    decimal.Decimal
	Vendedor Vendedor
}

// DetalleVenta is one line of a sale. Subtotal is fixed at entry time as
// Cantidad × Producto.Precio.
type DetalleVenta struct {
	NroDetalle int
	Venta      Venta
	Producto   Producto
	Cantidad   int
	Subtotal   decimal.Decimal
}
