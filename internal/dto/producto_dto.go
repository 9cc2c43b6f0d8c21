package dto

import (
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"

	"github.com/shopspring/decimal"
)

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Codigo      string          `validate:"required,sinespacios,max=40"`
	Nombre      string          `validate:"required,max=120"`
	Precio      decimal.Decimal `validate:"min=0"`
	Cantidad    int             `validate:"min=0"`
	Descripcion string          `validate:"max=255"`
	Categoria   string          `validate:"required,max=60"`
	Activo      bool
	// ProveedorID selects the supplier snapshot; an unknown ID leaves the
	// product without supplier data.
	ProveedorID int `validate:"min=0"`
}

// ActualizarProductoRequest replaces every editable field of an existing
// product. The code and the supplier snapshot are never changed.
type ActualizarProductoRequest struct {
	Codigo      string          `validate:"required,sinespacios"`
	Nombre      string          `validate:"required,max=120"`
	Precio      decimal.Decimal `validate:"min=0"`
	Cantidad    int             `validate:"min=0"`
	Descripcion string          `validate:"max=255"`
	Categoria   string          `validate:"required,max=60"`
	Activo      bool
}

// ─── Mapping ─────────────────────────────────────────────────────────────────

func (r CrearProductoRequest) Producto() model.Producto {
	return model.Producto{
		Codigo:      r.Codigo,
		Nombre:      r.Nombre,
		Precio:      r.Precio,
		Cantidad:    r.Cantidad,
		Descripcion: r.Descripcion,
		Categoria:   r.Categoria,
		Activo:      r.Activo,
	}
}

func (r ActualizarProductoRequest) Producto() model.Producto {
	return model.Producto{
		Codigo:      r.Codigo,
		Nombre:      r.Nombre,
		Precio:      r.Precio,
		Cantidad:    r.Cantidad,
		Descripcion: r.Descripcion,
		Categoria:   r.Categoria,
		Activo:      r.Activo,
	}
}
