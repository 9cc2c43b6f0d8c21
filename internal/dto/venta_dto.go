package dto

import "github.com/shopspring/decimal"

// RegistrarVentaRequest is the sale header. Cliente and Vendedor are looked up
// by exact name. NroVenta is not checked for uniqueness.
type RegistrarVentaRequest struct {
	NroVenta int             `validate:"min=0"`
	Fecha    string          `validate:"required,max=30"`
	Cliente  string          `validate:"required"`
	Total    decimal.Decimal `validate:"min=0"`
	Vendedor string          `validate:"required"`
}

type ItemVentaRequest struct {
	Codigo   string `validate:"required,sinespacios"`
	Cantidad int    `validate:"min=1"`
}
