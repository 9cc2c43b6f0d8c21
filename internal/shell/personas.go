package shell

import (
	"fmt"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"
)

// ── Vendedores ───────────────────────────────────────────────────────────────

func (s *Shell) agregarVendedor() error {
	for {
		var req dto.CrearVendedorRequest
		var err error
		if req.Nombre, err = s.leerLinea("Ingrese el nombre del vendedor: "); err != nil {
			return err
		}
		if req.Apellido, err = s.leerLinea("Ingrese el apellido del vendedor: "); err != nil {
			return err
		}
		if req.Telefono, err = s.leerLinea("Ingrese el teléfono del vendedor: "); err != nil {
			return err
		}
		if req.Correo, err = s.leerLinea("Ingrese el correo del vendedor: "); err != nil {
			return err
		}
		if req.Direccion, err = s.leerLinea("Ingrese la dirección del vendedor: "); err != nil {
			return err
		}
		if req.Salario, err = s.leerDecimal("Ingrese el salario del vendedor: "); err != nil {
			return err
		}
		if req.VentasRealizadas, err = s.leerDecimal("Ingrese las ventas realizadas del vendedor: "); err != nil {
			return err
		}

		v, err := s.tienda.AgregarVendedor(req)
		if err != nil {
			if s.informar(err) {
				continue
			}
			return nil
		}
		s.exito("Vendedor %s %s agregado.", v.Nombre, v.Apellido)
		return nil
	}
}

func (s *Shell) mostrarVendedores() {
	vendedores := s.tienda.ListarVendedores()
	if len(vendedores) == 0 {
		s.aviso("No hay vendedores registrados.")
		return
	}
	for _, v := range vendedores {
		s.fichaVendedor(v)
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) verificarVendedorNuevo() {
	v, ok := s.tienda.VendedorNuevo()
	if !ok {
		s.aviso("No hay vendedores nuevos.")
		return
	}
	fmt.Fprintf(s.out, "Vendedor nuevo: %s %s\n", v.Nombre, v.Apellido)
}

func (s *Shell) mostrarVendedorNuevo() {
	v, ok := s.tienda.VendedorNuevo()
	if !ok {
		s.aviso("No hay vendedores nuevos.")
		return
	}
	s.fichaVendedor(v)
}

func (s *Shell) atenderVendedorNuevo() {
	v, ok := s.tienda.AtenderVendedorNuevo()
	if !ok {
		s.aviso("No hay vendedores nuevos.")
		return
	}
	s.exito("Vendedor atendido: %s %s", v.Nombre, v.Apellido)
}

func (s *Shell) fichaVendedor(v model.Vendedor) {
	fmt.Fprintf(s.out, "Nombre: %s\n", v.Nombre)
	fmt.Fprintf(s.out, "Apellido: %s\n", v.Apellido)
	fmt.Fprintf(s.out, "Teléfono: %s\n", v.Telefono)
	fmt.Fprintf(s.out, "Correo: %s\n", v.Correo)
	fmt.Fprintf(s.out, "Dirección: %s\n", v.Direccion)
	fmt.Fprintf(s.out, "Salario: %s\n", v.Salario)
	fmt.Fprintf(s.out, "Ventas realizadas: %s\n", v.VentasRealizadas)
}

// ── Clientes ─────────────────────────────────────────────────────────────────

func (s *Shell) agregarCliente() error {
	for {
		var req dto.CrearClienteRequest
		var err error
		if req.Nombre, err = s.leerLinea("Ingrese el nombre del cliente: "); err != nil {
			return err
		}
		if req.Apellido, err = s.leerLinea("Ingrese el apellido del cliente: "); err != nil {
			return err
		}
		if req.Telefono, err = s.leerLinea("Ingrese el teléfono del cliente: "); err != nil {
			return err
		}
		if req.Correo, err = s.leerLinea("Ingrese el correo del cliente: "); err != nil {
			return err
		}
		if req.Direccion, err = s.leerLinea("Ingrese la dirección del cliente: "); err != nil {
			return err
		}
		if req.NIT, err = s.leerLinea("Ingrese el NIT del cliente: "); err != nil {
			return err
		}

		c, err := s.tienda.AgregarCliente(req)
		if err != nil {
			if s.informar(err) {
				continue
			}
			return nil
		}
		s.exito("Cliente %s %s agregado.", c.Nombre, c.Apellido)
		return nil
	}
}

func (s *Shell) mostrarClientes() {
	clientes := s.tienda.ListarClientes()
	if len(clientes) == 0 {
		s.aviso("No hay clientes registrados.")
		return
	}
	for _, c := range clientes {
		s.fichaCliente(c)
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) verificarClienteNuevo() {
	c, ok := s.tienda.ClienteNuevo()
	if !ok {
		s.aviso("No hay clientes nuevos.")
		return
	}
	fmt.Fprintf(s.out, "Cliente nuevo: %s %s\n", c.Nombre, c.Apellido)
}

func (s *Shell) mostrarClienteNuevo() {
	c, ok := s.tienda.ClienteNuevo()
	if !ok {
		s.aviso("No hay clientes nuevos.")
		return
	}
	s.fichaCliente(c)
}

func (s *Shell) atenderClienteNuevo() {
	c, ok := s.tienda.AtenderClienteNuevo()
	if !ok {
		s.aviso("No hay clientes nuevos.")
		return
	}
	s.exito("Cliente atendido: %s %s", c.Nombre, c.Apellido)
}

// mostrarMontos lists the accumulated sale totals per customer.
func (s *Shell) mostrarMontos() {
	montos := s.tienda.MontosPorCliente()
	if len(montos) == 0 {
		s.aviso("No hay clientes registrados.")
		return
	}
	for _, m := range montos {
		fmt.Fprintf(s.out, "Cliente: %s %s\n", m.Cliente.Nombre, m.Cliente.Apellido)
		fmt.Fprintf(s.out, "Monto total: %s\n", m.Total)
	}
}

func (s *Shell) fichaCliente(c model.Cliente) {
	fmt.Fprintf(s.out, "Nombre: %s\n", c.Nombre)
	fmt.Fprintf(s.out, "Apellido: %s\n", c.Apellido)
	fmt.Fprintf(s.out, "Teléfono: %s\n", c.Telefono)
	fmt.Fprintf(s.out, "Correo: %s\n", c.Correo)
	fmt.Fprintf(s.out, "Dirección: %s\n", c.Direccion)
	fmt.Fprintf(s.out, "NIT: %s\n", c.NIT)
}
