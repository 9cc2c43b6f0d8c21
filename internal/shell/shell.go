// Package shell is the interactive text menu the operator drives the shop
// with. It reads one answer per line from its input, writes prompts and
// listings to its output and performs every change through store.Tienda.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/store"

	"github.com/rs/zerolog/log"
)

type Shell struct {
	tienda  *store.Tienda
	in      *bufio.Scanner
	out     io.Writer
	estilos estilos
}

func New(tienda *store.Tienda, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		tienda:  tienda,
		in:      bufio.NewScanner(in),
		out:     out,
		estilos: nuevosEstilos(out),
	}
}

type menu struct {
	titulo   string
	opciones []string
	volver   string
}

var (
	menuPrincipal = menu{
		titulo:   "¡Bienvenido a la Tienda de Productos de Cómputo!",
		opciones: []string{"Vendedores", "Productos", "Ventas", "Clientes", "Listar Ventas", "Proveedores"},
		volver:   "Salir",
	}
	menuVendedores = menu{
		titulo: "Menú de opciones de vendedores:",
		opciones: []string{
			"Agregar vendedor", "Mostrar vendedores", "Verificar vendedor nuevo",
			"Mostrar vendedor nuevo", "Atender vendedor nuevo",
		},
		volver: "Volver al menú principal",
	}
	menuProductos = menu{
		titulo: "Menú de opciones de productos:",
		opciones: []string{
			"Agregar producto", "Modificar producto", "Eliminar producto",
			"Mostrar productos", "Mostrar productos por categoría",
		},
		volver: "Volver al menú principal",
	}
	menuVentas = menu{
		titulo:   "Menú de opciones de ventas:",
		opciones: []string{"Agregar venta", "Mostrar ventas", "Mostrar detalle de venta"},
		volver:   "Volver al menú principal",
	}
	menuClientes = menu{
		titulo: "Menú de opciones de clientes:",
		opciones: []string{
			"Agregar cliente", "Mostrar clientes", "Verificar cliente nuevo",
			"Mostrar cliente nuevo", "Actualizar monto total", "Atender cliente nuevo",
		},
		volver: "Volver al menú principal",
	}
	menuProveedores = menu{
		titulo:   "Menú de opciones de proveedores:",
		opciones: []string{"Agregar proveedor", "Mostrar proveedores"},
		volver:   "Volver al menú principal",
	}
)

// Run shows the main menu until the operator picks Salir or the input ends.
// Every submenu runs one operation and returns to the main menu.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		opcion, err := s.elegir(menuPrincipal)
		if err == nil {
			if opcion == 0 {
				return nil
			}
			err = s.principal(opcion)
		}
		if errors.Is(err, io.EOF) {
			log.Debug().Msg("fin de la entrada, cerrando menú")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (s *Shell) principal(opcion int) error {
	switch opcion {
	case 1:
		return s.vendedores()
	case 2:
		return s.productos()
	case 3:
		return s.ventas()
	case 4:
		return s.clientes()
	case 5:
		s.mostrarVentas()
		return nil
	case 6:
		return s.proveedores()
	default:
		s.opcionInvalida()
		return nil
	}
}

func (s *Shell) vendedores() error {
	opcion, err := s.elegir(menuVendedores)
	if err != nil {
		return err
	}
	switch opcion {
	case 1:
		return s.agregarVendedor()
	case 2:
		s.mostrarVendedores()
	case 3:
		s.verificarVendedorNuevo()
	case 4:
		s.mostrarVendedorNuevo()
	case 5:
		s.atenderVendedorNuevo()
	case 0:
	default:
		s.opcionInvalida()
	}
	return nil
}

func (s *Shell) productos() error {
	opcion, err := s.elegir(menuProductos)
	if err != nil {
		return err
	}
	switch opcion {
	case 1:
		return s.agregarProducto()
	case 2:
		return s.modificarProducto()
	case 3:
		return s.eliminarProducto()
	case 4:
		s.mostrarProductos(s.tienda.ListarProductos())
	case 5:
		return s.mostrarPorCategoria()
	case 0:
	default:
		s.opcionInvalida()
	}
	return nil
}

func (s *Shell) ventas() error {
	opcion, err := s.elegir(menuVentas)
	if err != nil {
		return err
	}
	switch opcion {
	case 1:
		return s.agregarVenta()
	case 2:
		s.mostrarVentas()
	case 3:
		s.mostrarDetalles()
	case 0:
	default:
		s.opcionInvalida()
	}
	return nil
}

func (s *Shell) clientes() error {
	opcion, err := s.elegir(menuClientes)
	if err != nil {
		return err
	}
	switch opcion {
	case 1:
		return s.agregarCliente()
	case 2:
		s.mostrarClientes()
	case 3:
		s.verificarClienteNuevo()
	case 4:
		s.mostrarClienteNuevo()
	case 5:
		s.mostrarMontos()
	case 6:
		s.atenderClienteNuevo()
	case 0:
	default:
		s.opcionInvalida()
	}
	return nil
}

func (s *Shell) proveedores() error {
	opcion, err := s.elegir(menuProveedores)
	if err != nil {
		return err
	}
	switch opcion {
	case 1:
		return s.agregarProveedor()
	case 2:
		s.mostrarProveedores()
	case 0:
	default:
		s.opcionInvalida()
	}
	return nil
}

// elegir prints m and reads the chosen option. Anything that is not a number
// comes back as -1 so it falls into the caller's invalid-option branch.
func (s *Shell) elegir(m menu) (int, error) {
	fmt.Fprintln(s.out, s.estilos.titulo.Render(m.titulo))
	for i, o := range m.opciones {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, o)
	}
	fmt.Fprintf(s.out, "0. %s\n", m.volver)
	return s.leerOpcion("Seleccione una opción: ")
}

func (s *Shell) opcionInvalida() {
	s.fallo("Opción no válida.")
}
