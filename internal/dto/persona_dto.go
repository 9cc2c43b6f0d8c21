package dto

import (
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Vendedores ──────────────────────────────────────────────────────────────

type CrearVendedorRequest struct {
	Nombre           string          `validate:"required,max=60"`
	Apellido         string          `validate:"max=60"`
	Telefono         string          `validate:"max=30"`
	Correo           string          `validate:"omitempty,email"`
	Direccion        string          `validate:"max=255"`
	Salario          decimal.Decimal `validate:"min=0"`
	VentasRealizadas decimal.Decimal `validate:"min=0"`
}

func (r CrearVendedorRequest) Vendedor() model.Vendedor {
	return model.Vendedor{
		Nombre:           r.Nombre,
		Apellido:         r.Apellido,
		Telefono:         r.Telefono,
		Correo:           r.Correo,
		Direccion:        r.Direccion,
		Salario:          r.Salario,
		VentasRealizadas: r.VentasRealizadas,
	}
}

// ─── Clientes ────────────────────────────────────────────────────────────────

type CrearClienteRequest struct {
	Nombre    string `validate:"required,max=60"`
	Apellido  string `validate:"max=60"`
	Telefono  string `validate:"max=30"`
	Correo    string `validate:"omitempty,email"`
	Direccion string `validate:"max=255"`
	NIT       string `validate:"max=30"`
}

func (r CrearClienteRequest) Cliente() model.Cliente {
	return model.Cliente{
		Nombre:    r.Nombre,
		Apellido:  r.Apellido,
		Telefono:  r.Telefono,
		Correo:    r.Correo,
		Direccion: r.Direccion,
		NIT:       r.NIT,
	}
}
