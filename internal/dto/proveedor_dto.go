package dto

import "github.com/MagalyEscalera23/tiendaComponentes/internal/model"

type CrearProveedorRequest struct {
	ID       int    `validate:"min=0"`
	Nombre   string `validate:"required,max=120"`
	Telefono string `validate:"max=30"`
	Correo   string `validate:"omitempty,email"`
	Tipo     string `validate:"max=60"`
}

func (r CrearProveedorRequest) Proveedor() model.Proveedor {
	return model.Proveedor{
		ID:       r.ID,
		Nombre:   r.Nombre,
		Telefono: r.Telefono,
		Correo:   r.Correo,
		Tipo:     r.Tipo,
	}
}
