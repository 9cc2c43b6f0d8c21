package store

import (
	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
)

// AgregarProveedor queues a supplier so that new products can reference it.
func (t *Tienda) AgregarProveedor(req dto.CrearProveedorRequest) (model.Proveedor, error) {
	if err := dto.Validate(req); err != nil {
		return model.Proveedor{}, err
	}
	p := req.Proveedor()

	t.mu.Lock()
	defer t.mu.Unlock()
	t.proveedores.encolar(p)
	return p, nil
}

// ListarProveedores returns the supplier queue front to back.
func (t *Tienda) ListarProveedores() []model.Proveedor {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.proveedores.elementos()
}

func (t *Tienda) proveedorPorNombre(nombre string) (model.Proveedor, bool) {
	if nombre == "" {
		return model.Proveedor{}, false
	}
	for _, p := range t.proveedores.items {
		if p.Nombre == nombre {
			return p, true
		}
	}
	return model.Proveedor{}, false
}
