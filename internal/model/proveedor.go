package model

// Proveedor represents a supplier. Tipo is kept in memory only; the
// persisted layout has no column for it.
type Proveedor struct {
	ID       int
	Nombre   string
	Telefono string
	Correo   string
	Tipo     string
}
