package shell

import (
	"fmt"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/store"
)

// agregarVenta records a sale header and then its lines, one product per
// round. A customer or seller miss records nothing; a product miss ends the
// entry and keeps the lines already added.
func (s *Shell) agregarVenta() error {
	var venta model.Venta
	for {
		var req dto.RegistrarVentaRequest
		var err error
		if req.NroVenta, err = s.leerEntero("Ingrese el número de venta: "); err != nil {
			return err
		}
		if req.Fecha, err = s.leerLinea("Ingrese la fecha de la venta: "); err != nil {
			return err
		}
		if req.Cliente, err = s.leerLinea("Ingrese el nombre del cliente: "); err != nil {
			return err
		}
		if _, ok := s.tienda.BuscarCliente(req.Cliente); !ok {
			s.informar(store.ErrClienteNoExiste)
			return nil
		}
		if req.Total, err = s.leerDecimal("Ingrese el total de la venta: "); err != nil {
			return err
		}
		if req.Vendedor, err = s.leerLinea("Ingrese el nombre del vendedor: "); err != nil {
			return err
		}

		venta, err = s.tienda.RegistrarVenta(req)
		if err == nil {
			break
		}
		if !s.informar(err) {
			return nil
		}
	}

	for {
		codigo, err := s.leerLinea("Ingrese el código del producto: ")
		if err != nil {
			return err
		}
		if !s.tienda.ExisteCodigo(codigo) {
			s.informar(store.ErrProductoNoExiste)
			return nil
		}
		cantidad, err := s.leerEntero("Ingrese la cantidad del producto: ")
		if err != nil {
			return err
		}
		d, err := s.tienda.AgregarDetalle(venta, dto.ItemVentaRequest{Codigo: codigo, Cantidad: cantidad})
		if err != nil {
			if !s.informar(err) {
				return nil
			}
		} else {
			s.exito("Detalle %d: %s x %d = %s", d.NroDetalle, d.Producto.Nombre, d.Cantidad, d.Subtotal)
		}

		otro, err := s.leerEntero("Desea agregar otro producto a la venta? (1. Sí, 0. No): ")
		if err != nil {
			return err
		}
		if otro == 0 {
			return nil
		}
	}
}

// mostrarVentas lists every sale followed by the lines recorded under its
// number.
func (s *Shell) mostrarVentas() {
	ventas := s.tienda.ListarVentas()
	if len(ventas) == 0 {
		s.aviso("No hay ventas registradas.")
		return
	}
	for _, v := range ventas {
		fmt.Fprintf(s.out, "Número de venta: %d\n", v.NroVenta)
		fmt.Fprintf(s.out, "Fecha: %s\n", v.Fecha)
		fmt.Fprintf(s.out, "Cliente: %s %s\n", v.Cliente.Nombre, v.Cliente.Apellido)
		fmt.Fprintf(s.out, "Total: %s\n", v.Total)
		fmt.Fprintf(s.out, "Vendedor: %s %s\n", v.Vendedor.Nombre, v.Vendedor.Apellido)
		for _, d := range s.tienda.DetallesDeVenta(v.NroVenta) {
			fmt.Fprintf(s.out, "  Número de detalle: %d\n", d.NroDetalle)
			fmt.Fprintf(s.out, "  Producto: %s\n", d.Producto.Nombre)
			fmt.Fprintf(s.out, "  Cantidad: %d\n", d.Cantidad)
			fmt.Fprintf(s.out, "  Subtotal: %s\n", d.Subtotal)
		}
		s.separador()
	}
}

func (s *Shell) mostrarDetalles() {
	detalles := s.tienda.ListarDetalles()
	if len(detalles) == 0 {
		s.aviso("No hay detalles de venta registrados.")
		return
	}
	for _, d := range detalles {
		fmt.Fprintf(s.out, "Número de detalle: %d\n", d.NroDetalle)
		fmt.Fprintf(s.out, "Venta: %d\n", d.Venta.NroVenta)
		fmt.Fprintf(s.out, "Producto: %s\n", d.Producto.Nombre)
		fmt.Fprintf(s.out, "Cantidad: %d\n", d.Cantidad)
		fmt.Fprintf(s.out, "Subtotal: %s\n", d.Subtotal)
		fmt.Fprintln(s.out)
	}
}
