package shell

import (
	"fmt"
	"strings"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/store"
)

func (s *Shell) agregarProducto() error {
	for {
		codigo, err := s.leerCodigo("Ingrese el código del producto: ")
		if err != nil {
			return err
		}
		for s.tienda.ExisteCodigo(codigo) {
			codigo, err = s.leerCodigo("El código del producto ya existe. Ingrese un nuevo código: ")
			if err != nil {
				return err
			}
		}

		req := dto.CrearProductoRequest{Codigo: codigo}
		if req.Nombre, err = s.leerLinea("Ingrese el nombre del producto: "); err != nil {
			return err
		}
		if req.Precio, err = s.leerDecimal("Ingrese el precio del producto: "); err != nil {
			return err
		}
		if req.Cantidad, err = s.leerEntero("Ingrese la cantidad del producto: "); err != nil {
			return err
		}
		if req.Descripcion, err = s.leerLinea("Ingrese la descripción del producto: "); err != nil {
			return err
		}
		if req.Categoria, err = s.leerLinea("Ingrese la categoría del producto: "); err != nil {
			return err
		}
		if req.Activo, err = s.leerEstado("Ingrese el estado del producto: "); err != nil {
			return err
		}
		if req.ProveedorID, err = s.leerEntero("Ingrese el id del proveedor: "); err != nil {
			return err
		}

		p, err := s.tienda.CrearProducto(req)
		if err != nil {
			if s.informar(err) {
				continue
			}
			return nil
		}
		if p.Proveedor.Nombre == "" {
			s.aviso("No hay un proveedor con id %d; el producto queda sin proveedor.", req.ProveedorID)
		}
		s.exito("Producto %s agregado.", p.Codigo)
		return nil
	}
}

func (s *Shell) modificarProducto() error {
	codigo, err := s.leerLinea("Ingrese el código del producto a modificar: ")
	if err != nil {
		return err
	}
	if !s.tienda.ExisteCodigo(codigo) {
		s.informar(store.ErrProductoNoExiste)
		return nil
	}

	for {
		req := dto.ActualizarProductoRequest{Codigo: codigo}
		if req.Nombre, err = s.leerLinea("Ingrese el nuevo nombre del producto: "); err != nil {
			return err
		}
		if req.Precio, err = s.leerDecimal("Ingrese el nuevo precio del producto: "); err != nil {
			return err
		}
		if req.Cantidad, err = s.leerEntero("Ingrese la nueva cantidad del producto: "); err != nil {
			return err
		}
		if req.Descripcion, err = s.leerLinea("Ingrese la nueva descripción del producto: "); err != nil {
			return err
		}
		if req.Categoria, err = s.leerLinea("Ingrese la nueva categoría del producto: "); err != nil {
			return err
		}
		if req.Activo, err = s.leerEstado("Ingrese el nuevo estado del producto: "); err != nil {
			return err
		}

		if _, err := s.tienda.ActualizarProducto(req); err != nil {
			if s.informar(err) {
				continue
			}
			return nil
		}
		s.exito("Producto %s modificado.", codigo)
		return nil
	}
}

func (s *Shell) eliminarProducto() error {
	codigo, err := s.leerLinea("Ingrese el código del producto a eliminar: ")
	if err != nil {
		return err
	}
	if err := s.tienda.EliminarProducto(codigo); err != nil {
		s.informar(err)
		return nil
	}
	s.exito("Producto %s eliminado.", codigo)
	return nil
}

func (s *Shell) mostrarPorCategoria() error {
	categorias := s.tienda.Categorias()
	if len(categorias) == 0 {
		s.aviso("No hay productos registrados.")
		return nil
	}
	fmt.Fprintf(s.out, "Categorías: %s\n", strings.Join(categorias, ", "))
	categoria, err := s.leerLinea("Ingrese la categoría: ")
	if err != nil {
		return err
	}
	productos := s.tienda.ProductosPorCategoria(categoria)
	if len(productos) == 0 {
		s.aviso("No hay productos en la categoría %q.", categoria)
		return nil
	}
	s.mostrarProductos(productos)
	return nil
}

func (s *Shell) mostrarProductos(productos []model.Producto) {
	if len(productos) == 0 {
		s.aviso("No hay productos registrados.")
		return
	}
	for _, p := range productos {
		s.separador()
		fmt.Fprintf(s.out, "Código: %s\n", p.Codigo)
		fmt.Fprintf(s.out, "Nombre: %s\n", p.Nombre)
		fmt.Fprintf(s.out, "Precio: %s\n", p.Precio)
		fmt.Fprintf(s.out, "Cantidad: %d\n", p.Cantidad)
		fmt.Fprintf(s.out, "Descripción: %s\n", p.Descripcion)
		fmt.Fprintf(s.out, "Categoría: %s\n", p.Categoria)
		fmt.Fprintf(s.out, "Proveedor: %s\n", p.Proveedor.Nombre)
		fmt.Fprintf(s.out, "Estado: %s\n", estado(p.Activo))
		s.separador()
		fmt.Fprintln(s.out)
	}
}

func estado(activo bool) string {
	if activo {
		return "activo"
	}
	return "inactivo"
}
