package store

import (
	"fmt"
	"slices"
	"sort"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
)

// ExisteCodigo reports whether a product with codigo is registered.
func (t *Tienda) ExisteCodigo(codigo string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.porCodigo[codigo]
	return ok
}

// CrearProducto registers a new product. The supplier snapshot is taken from
// the queued supplier whose ID equals req.ProveedorID (the last one when
// several share the ID); with no match the product keeps an empty supplier.
// The supplier queue itself is left exactly as it was.
func (t *Tienda) CrearProducto(req dto.CrearProductoRequest) (model.Producto, error) {
	if err := dto.Validate(req); err != nil {
		return model.Producto{}, err
	}
	p := req.Producto()

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.porCodigo[p.Codigo]; ok {
		return model.Producto{}, fmt.Errorf("%w: %s", ErrCodigoDuplicado, p.Codigo)
	}
	for _, prov := range t.proveedores.items {
		if prov.ID == req.ProveedorID {
			p.Proveedor = prov
		}
	}
	t.insertarProducto(p)
	return p, nil
}

// ActualizarProducto replaces every editable field of the product with the
// request's code. The supplier snapshot is preserved. When the category
// changes the product moves to the end of the new category's bucket.
func (t *Tienda) ActualizarProducto(req dto.ActualizarProductoRequest) (model.Producto, error) {
	if err := dto.Validate(req); err != nil {
		return model.Producto{}, err
	}
	p := req.Producto()

	t.mu.Lock()
	defer t.mu.Unlock()

	anterior, ok := t.porCodigo[p.Codigo]
	if !ok {
		return model.Producto{}, fmt.Errorf("%w: %s", ErrProductoNoExiste, p.Codigo)
	}
	p.Proveedor = anterior.Proveedor

	t.porCodigo[p.Codigo] = p
	if anterior.Categoria != p.Categoria {
		t.quitarDeCategoria(anterior.Categoria, p.Codigo)
		t.porCategoria[p.Categoria] = append(t.porCategoria[p.Categoria], p.Codigo)
	}
	return p, nil
}

// EliminarProducto removes the product from the catalogue and both indices.
// An unknown code leaves everything untouched.
func (t *Tienda) EliminarProducto(codigo string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p, ok := t.porCodigo[codigo]
	if !ok {
		return fmt.Errorf("%w: %s", ErrProductoNoExiste, codigo)
	}
	delete(t.porCodigo, codigo)
	if i := slices.Index(t.orden, codigo); i >= 0 {
		t.orden = slices.Delete(t.orden, i, i+1)
	}
	t.quitarDeCategoria(p.Categoria, codigo)
	return nil
}

func (t *Tienda) ObtenerProducto(codigo string) (model.Producto, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	p, ok := t.porCodigo[codigo]
	return p, ok
}

// ListarProductos returns the catalogue in registration order.
func (t *Tienda) ListarProductos() []model.Producto {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.listarProductos()
}

// ProductosPorCategoria returns the products of one category in the order
// they joined it.
func (t *Tienda) ProductosPorCategoria(categoria string) []model.Producto {
	t.mu.Lock()
	defer t.mu.Unlock()

	codigos := t.porCategoria[categoria]
	out := make([]model.Producto, 0, len(codigos))
	for _, c := range codigos {
		out = append(out, t.porCodigo[c])
	}
	return out
}

// Categorias returns the non-empty categories, sorted.
func (t *Tienda) Categorias() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]string, 0, len(t.porCategoria))
	for c := range t.porCategoria {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// VerificarIndices checks that the catalogue order, the code index and the
// category buckets describe exactly the same set of products.
func (t *Tienda) VerificarIndices() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.verificarIndices()
}

func (t *Tienda) verificarIndices() error {
	if len(t.orden) != len(t.porCodigo) {
		return fmt.Errorf("índices inconsistentes: %d en catálogo, %d por código", len(t.orden), len(t.porCodigo))
	}
	vistos := make(map[string]bool, len(t.orden))
	for _, c := range t.orden {
		if vistos[c] {
			return fmt.Errorf("índices inconsistentes: código %s repetido en catálogo", c)
		}
		vistos[c] = true
		if _, ok := t.porCodigo[c]; !ok {
			return fmt.Errorf("índices inconsistentes: código %s ausente del índice por código", c)
		}
	}

	enCategoria := 0
	for cat, codigos := range t.porCategoria {
		if len(codigos) == 0 {
			return fmt.Errorf("índices inconsistentes: categoría %q vacía", cat)
		}
		for _, c := range codigos {
			p, ok := t.porCodigo[c]
			if !ok {
				return fmt.Errorf("índices inconsistentes: código %s en categoría %q no existe", c, cat)
			}
			if p.Categoria != cat {
				return fmt.Errorf("índices inconsistentes: código %s en categoría %q pero pertenece a %q", c, cat, p.Categoria)
			}
			enCategoria++
		}
	}
	if enCategoria != len(t.orden) {
		return fmt.Errorf("índices inconsistentes: %d entradas por categoría, %d productos", enCategoria, len(t.orden))
	}
	return nil
}

// insertarProducto appends p to the catalogue and both indices.
// Callers hold t.mu and have checked the code is new.
func (t *Tienda) insertarProducto(p model.Producto) {
	t.orden = append(t.orden, p.Codigo)
	t.porCodigo[p.Codigo] = p
	t.porCategoria[p.Categoria] = append(t.porCategoria[p.Categoria], p.Codigo)
}

func (t *Tienda) quitarDeCategoria(categoria, codigo string) {
	codigos := t.porCategoria[categoria]
	if i := slices.Index(codigos, codigo); i >= 0 {
		codigos = slices.Delete(codigos, i, i+1)
	}
	if len(codigos) == 0 {
		delete(t.porCategoria, categoria)
		return
	}
	t.porCategoria[categoria] = codigos
}

func (t *Tienda) listarProductos() []model.Producto {
	out := make([]model.Producto, 0, len(t.orden))
	for _, c := range t.orden {
		out = append(out, t.porCodigo[c])
	}
	return out
}
