package shell

import (
	"fmt"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"
)

func (s *Shell) agregarProveedor() error {
	for {
		var req dto.CrearProveedorRequest
		var err error
		if req.ID, err = s.leerEntero("Ingrese el id del proveedor: "); err != nil {
			return err
		}
		if req.Nombre, err = s.leerLinea("Ingrese el nombre del proveedor: "); err != nil {
			return err
		}
		if req.Telefono, err = s.leerLinea("Ingrese el teléfono del proveedor: "); err != nil {
			return err
		}
		if req.Correo, err = s.leerLinea("Ingrese el correo del proveedor: "); err != nil {
			return err
		}
		if req.Tipo, err = s.leerLinea("Ingrese el tipo de proveedor: "); err != nil {
			return err
		}

		p, err := s.tienda.AgregarProveedor(req)
		if err != nil {
			if s.informar(err) {
				continue
			}
			return nil
		}
		s.exito("Proveedor %d %s agregado.", p.ID, p.Nombre)
		return nil
	}
}

func (s *Shell) mostrarProveedores() {
	proveedores := s.tienda.ListarProveedores()
	if len(proveedores) == 0 {
		s.aviso("No hay proveedores registrados.")
		return
	}
	for _, p := range proveedores {
		fmt.Fprintf(s.out, "Id: %d\n", p.ID)
		fmt.Fprintf(s.out, "Nombre: %s\n", p.Nombre)
		fmt.Fprintf(s.out, "Teléfono: %s\n", p.Telefono)
		fmt.Fprintf(s.out, "Correo: %s\n", p.Correo)
		if p.Tipo != "" {
			fmt.Fprintf(s.out, "Tipo: %s\n", p.Tipo)
		}
		fmt.Fprintln(s.out)
	}
}
