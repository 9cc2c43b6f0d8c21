package model

import "github.com/shopspring/decimal"

// Producto is a catalogue item. Codigo is the natural key.
// Proveedor is a copy taken when the product was registered, not a live link.
type Producto struct {
	Codigo      string
	Nombre      string
	Precio      decimal.Decimal
	Cantidad    int
	Descripcion string
	Categoria   string
	Proveedor   Proveedor
	// Activo is a status flag; deleting a product removes it physically.
	Activo bool
}
