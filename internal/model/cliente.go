package model

// Cliente is a customer, identified in practice by Nombre.
type Cliente struct {
	Nombre    string
	Apellido  string
	Telefono  string
	Correo    string
	Direccion string
	NIT       string
}
