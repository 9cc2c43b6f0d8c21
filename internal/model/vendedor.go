package model

import "github.com/shopspring/decimal"

// Vendedor is a salesperson, identified in practice by Nombre.
type Vendedor struct {
	Nombre    string
	Apellido  string
	Telefono  string
	Correo    string
	Direccion string
	Salario   decimal.Decimal
	// VentasRealizadas is entered by the operator; it is never recomputed
	// from the sale history.
	VentasRealizadas decimal.Decimal
}
