package repository

import (
	"context"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Table rows mirror the text layout: related records are stored by name only.
// Posicion keeps the in-memory order and lets duplicate sale numbers coexist.

type productoRow struct {
	Posicion        int    `gorm:"primaryKey;autoIncrement:false"`
	Codigo          string `gorm:"not null;index"`
	Nombre          string
	Precio          decimal.Decimal `gorm:"type:numeric;not null"`
	Cantidad        int             `gorm:"not null;default:0"`
	Descripcion     string
	Categoria       string `gorm:"index"`
	ProveedorNombre string
	Activo          bool `gorm:"not null;default:true"`
}

func (productoRow) TableName() string { return "productos" }

type clienteRow struct {
	Posicion  int    `gorm:"primaryKey;autoIncrement:false"`
	Nombre    string `gorm:"not null;index"`
	Apellido  string
	Telefono  string
	Correo    string
	Direccion string
	NIT       string `gorm:"column:nit"`
}

func (clienteRow) TableName() string { return "clientes" }

type ventaRow struct {
	Posicion       int `gorm:"primaryKey;autoIncrement:false"`
	NroVenta       int `gorm:"not null;index"`
	Fecha          string
	ClienteNombre  string
	Total          decimal.Decimal `gorm:"type:numeric;not null"`
	VendedorNombre string
}

func (ventaRow) TableName() string { return "ventas" }

type vendedorRow struct {
	Posicion         int    `gorm:"primaryKey;autoIncrement:false"`
	Nombre           string `gorm:"not null;index"`
	Apellido         string
	Telefono         string
	Correo           string
	Direccion        string
	Salario          decimal.Decimal `gorm:"type:numeric;not null"`
	VentasRealizadas decimal.Decimal `gorm:"type:numeric;not null"`
}

func (vendedorRow) TableName() string { return "vendedores" }

type proveedorRow struct {
	Posicion    int `gorm:"primaryKey;autoIncrement:false"`
	ProveedorID int `gorm:"not null;index"`
	Nombre      string
	Telefono    string
	Correo      string
}

func (proveedorRow) TableName() string { return "proveedores" }

// Tablas lists the row models for AutoMigrate.
func Tablas() []interface{} {
	return []interface{}{
		&productoRow{}, &clienteRow{}, &ventaRow{}, &vendedorRow{}, &proveedorRow{},
	}
}

// PostgresRepository keeps each record kind in its own table. Every Guardar*
// swaps a table's contents inside one transaction.
type PostgresRepository struct{ db *gorm.DB }

func NewPostgresRepository(db *gorm.DB) *PostgresRepository { return &PostgresRepository{db: db} }

func (r *PostgresRepository) CargarProductos(ctx context.Context) ([]model.Producto, error) {
	var rows []productoRow
	if err := r.db.WithContext(ctx).Order("posicion ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]model.Producto, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Producto{
			Codigo:      row.Codigo,
			Nombre:      row.Nombre,
			Precio:      row.Precio,
			Cantidad:    row.Cantidad,
			Descripcion: row.Descripcion,
			Categoria:   row.Categoria,
			Proveedor:   model.Proveedor{Nombre: row.ProveedorNombre},
			Activo:      row.Activo,
		})
	}
	return out, nil
}

func (r *PostgresRepository) GuardarProductos(ctx context.Context, productos []model.Producto) error {
	rows := make([]productoRow, 0, len(productos))
	for i, p := range productos {
		rows = append(rows, productoRow{
			Posicion:        i + 1,
			Codigo:          p.Codigo,
			Nombre:          p.Nombre,
			Precio:          p.Precio,
			Cantidad:        p.Cantidad,
			Descripcion:     p.Descripcion,
			Categoria:       p.Categoria,
			ProveedorNombre: p.Proveedor.Nombre,
			Activo:          p.Activo,
		})
	}
	return reemplazar(ctx, r.db, rows)
}

func (r *PostgresRepository) CargarClientes(ctx context.Context) ([]model.Cliente, error) {
	var rows []clienteRow
	if err := r.db.WithContext(ctx).Order("posicion ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]model.Cliente, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Cliente{
			Nombre:    row.Nombre,
			Apellido:  row.Apellido,
			Telefono:  row.Telefono,
			Correo:    row.Correo,
			Direccion: row.Direccion,
			NIT:       row.NIT,
		})
	}
	return out, nil
}

func (r *PostgresRepository) GuardarClientes(ctx context.Context, clientes []model.Cliente) error {
	rows := make([]clienteRow, 0, len(clientes))
	for i, c := range clientes {
		rows = append(rows, clienteRow{
			Posicion:  i + 1,
			Nombre:    c.Nombre,
			Apellido:  c.Apellido,
			Telefono:  c.Telefono,
			Correo:    c.Correo,
			Direccion: c.Direccion,
			NIT:       c.NIT,
		})
	}
	return reemplazar(ctx, r.db, rows)
}

func (r *PostgresRepository) CargarVentas(ctx context.Context) ([]model.Venta, error) {
	var rows []ventaRow
	if err := r.db.WithContext(ctx).Order("posicion ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]model.Venta, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Venta{
			NroVenta: row.NroVenta,
			Fecha:    row.Fecha,
			Cliente:  model.Cliente{Nombre: row.ClienteNombre},
			Total:    row.Total,
			Vendedor: model.Vendedor{Nombre: row.VendedorNombre},
		})
	}
	return out, nil
}

func (r *PostgresRepository) GuardarVentas(ctx context.Context, ventas []model.Venta) error {
	rows := make([]ventaRow, 0, len(ventas))
	for i, v := range ventas {
		rows = append(rows, ventaRow{
			Posicion:       i + 1,
			NroVenta:       v.NroVenta,
			Fecha:          v.Fecha,
			ClienteNombre:  v.Cliente.Nombre,
			Total:          v.Total,
			VendedorNombre: v.Vendedor.Nombre,
		})
	}
	return reemplazar(ctx, r.db, rows)
}

func (r *PostgresRepository) CargarVendedores(ctx context.Context) ([]model.Vendedor, error) {
	var rows []vendedorRow
	if err := r.db.WithContext(ctx).Order("posicion ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]model.Vendedor, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Vendedor{
			Nombre:           row.Nombre,
			Apellido:         row.Apellido,
			Telefono:         row.Telefono,
			Correo:           row.Correo,
			Direccion:        row.Direccion,
			Salario:          row.Salario,
			VentasRealizadas: row.VentasRealizadas,
		})
	}
	return out, nil
}

func (r *PostgresRepository) GuardarVendedores(ctx context.Context, vendedores []model.Vendedor) error {
	rows := make([]vendedorRow, 0, len(vendedores))
	for i, v := range vendedores {
		rows = append(rows, vendedorRow{
			Posicion:         i + 1,
			Nombre:           v.Nombre,
			Apellido:         v.Apellido,
			Telefono:         v.Telefono,
			Correo:           v.Correo,
			Direccion:        v.Direccion,
			Salario:          v.Salario,
			VentasRealizadas: v.VentasRealizadas,
		})
	}
	return reemplazar(ctx, r.db, rows)
}

func (r *PostgresRepository) CargarProveedores(ctx context.Context) ([]model.Proveedor, error) {
	var rows []proveedorRow
	if err := r.db.WithContext(ctx).Order("posicion ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]model.Proveedor, 0, len(rows))
	for _, row := range rows {
		out = append(out, model.Proveedor{
			ID:       row.ProveedorID,
			Nombre:   row.Nombre,
			Telefono: row.Telefono,
			Correo:   row.Correo,
		})
	}
	return out, nil
}

func (r *PostgresRepository) GuardarProveedores(ctx context.Context, proveedores []model.Proveedor) error {
	rows := make([]proveedorRow, 0, len(proveedores))
	for i, p := range proveedores {
		rows = append(rows, proveedorRow{
			Posicion:    i + 1,
			ProveedorID: p.ID,
			Nombre:      p.Nombre,
			Telefono:    p.Telefono,
			Correo:      p.Correo,
		})
	}
	return reemplazar(ctx, r.db, rows)
}

// reemplazar deletes every row of T's table and inserts rows, atomically.
func reemplazar[T any](ctx context.Context, db *gorm.DB, rows []T) error {
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var zero T
		if err := tx.Where("1 = 1").Delete(&zero).Error; err != nil {
			return err
		}
		if len(rows) == 0 {
			return nil
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}
