package repository

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/model"

	"github.com/shopspring/decimal"
)

const (
	ArchivoProductos   = "productos.txt"
	ArchivoClientes    = "clientes.txt"
	ArchivoVentas      = "ventas.txt"
	ArchivoVendedores  = "vendedores.txt"
	ArchivoProveedores = "proveedores.txt"
)

// ArchivoRepository stores each record kind in its own text file inside dir.
// Each line is one record; fields are separated by a single space in a fixed
// order. Fields that contain spaces or quotes are written double-quoted, so
// plain files produced by older versions still read back unchanged.
type ArchivoRepository struct {
	dir string
}

func NewArchivoRepository(dir string) *ArchivoRepository {
	return &ArchivoRepository{dir: dir}
}

// formato describes the positional layout of one record kind.
type formato[T any] struct {
	archivo     string
	campos      int
	codificar   func(T) []string
	decodificar func([]string) (T, error)
}

var formatoProducto = formato[model.Producto]{
	archivo: ArchivoProductos,
	campos:  8,
	codificar: func(p model.Producto) []string {
		return []string{
			p.Codigo, p.Nombre, p.Precio.String(), strconv.Itoa(p.Cantidad),
			p.Descripcion, p.Categoria, p.Proveedor.Nombre, formatearBool(p.Activo),
		}
	},
	decodificar: func(c []string) (model.Producto, error) {
		precio, err := decimal.NewFromString(c[2])
		if err != nil {
			return model.Producto{}, fmt.Errorf("precio %q: %w", c[2], err)
		}
		cantidad, err := strconv.Atoi(c[3])
		if err != nil {
			return model.Producto{}, fmt.Errorf("cantidad %q: %w", c[3], err)
		}
		activo, err := strconv.ParseBool(c[7])
		if err != nil {
			return model.Producto{}, fmt.Errorf("estado %q: %w", c[7], err)
		}
		return model.Producto{
			Codigo:      c[0],
			Nombre:      c[1],
			Precio:      precio,
			Cantidad:    cantidad,
			Descripcion: c[4],
			Categoria:   c[5],
			Proveedor:   model.Proveedor{Nombre: c[6]},
			Activo:      activo,
		}, nil
	},
}

var formatoCliente = formato[model.Cliente]{
	archivo: ArchivoClientes,
	campos:  6,
	codificar: func(c model.Cliente) []string {
		return []string{c.Nombre, c.Apellido, c.Telefono, c.Correo, c.Direccion, c.NIT}
	},
	decodificar: func(c []string) (model.Cliente, error) {
		return model.Cliente{
			Nombre:    c[0],
			Apellido:  c[1],
			Telefono:  c[2],
			Correo:    c[3],
			Direccion: c[4],
			NIT:       c[5],
		}, nil
	},
}

var formatoVenta = formato[model.Venta]{
	archivo: ArchivoVentas,
	campos:  5,
	codificar: func(v model.Venta) []string {
		return []string{
			strconv.Itoa(v.NroVenta), v.Fecha, v.Cliente.Nombre, v.Total.String(), v.Vendedor.Nombre,
		}
	},
	decodificar: func(c []string) (model.Venta, error) {
		nro, err := strconv.Atoi(c[0])
		if err != nil {
			return model.Venta{}, fmt.Errorf("número de venta %q: %w", c[0], err)
		}
		total, err := decimal.NewFromString(c[3])
		if err != nil {
			return model.Venta{}, fmt.Errorf("total %q: %w", c[3], err)
		}
		return model.Venta{
			NroVenta: nro,
			Fecha:    c[1],
			Cliente:  model.Cliente{Nombre: c[2]},
			Total:    total,
			Vendedor: model.Vendedor{Nombre: c[4]},
		}, nil
	},
}

var formatoVendedor = formato[model.Vendedor]{
	archivo: ArchivoVendedores,
	campos:  7,
	codificar: func(v model.Vendedor) []string {
		return []string{
			v.Nombre, v.Apellido, v.Telefono, v.Correo, v.Direccion,
			v.Salario.String(), v.VentasRealizadas.String(),
		}
	},
	decodificar: func(c []string) (model.Vendedor, error) {
		salario, err := decimal.NewFromString(c[5])
		if err != nil {
			return model.Vendedor{}, fmt.Errorf("salario %q: %w", c[5], err)
		}
		ventas, err := decimal.NewFromString(c[6])
		if err != nil {
			return model.Vendedor{}, fmt.Errorf("ventas realizadas %q: %w", c[6], err)
		}
		return model.Vendedor{
			Nombre:           c[0],
			Apellido:         c[1],
			Telefono:         c[2],
			Correo:           c[3],
			Direccion:        c[4],
			Salario:          salario,
			VentasRealizadas: ventas,
		}, nil
	},
}

var formatoProveedor = formato[model.Proveedor]{
	archivo: ArchivoProveedores,
	campos:  4,
	codificar: func(p model.Proveedor) []string {
		return []string{strconv.Itoa(p.ID), p.Nombre, p.Telefono, p.Correo}
	},
	decodificar: func(c []string) (model.Proveedor, error) {
		id, err := strconv.Atoi(c[0])
		if err != nil {
			return model.Proveedor{}, fmt.Errorf("id %q: %w", c[0], err)
		}
		return model.Proveedor{ID: id, Nombre: c[1], Telefono: c[2], Correo: c[3]}, nil
	},
}

func (r *ArchivoRepository) CargarProductos(ctx context.Context) ([]model.Producto, error) {
	return leer(ctx, r.dir, formatoProducto)
}

func (r *ArchivoRepository) GuardarProductos(ctx context.Context, productos []model.Producto) error {
	return escribir(ctx, r.dir, formatoProducto, productos)
}

func (r *ArchivoRepository) CargarClientes(ctx context.Context) ([]model.Cliente, error) {
	return leer(ctx, r.dir, formatoCliente)
}

func (r *ArchivoRepository) GuardarClientes(ctx context.Context, clientes []model.Cliente) error {
	return escribir(ctx, r.dir, formatoCliente, clientes)
}

func (r *ArchivoRepository) CargarVentas(ctx context.Context) ([]model.Venta, error) {
	return leer(ctx, r.dir, formatoVenta)
}

func (r *ArchivoRepository) GuardarVentas(ctx context.Context, ventas []model.Venta) error {
	return escribir(ctx, r.dir, formatoVenta, ventas)
}

func (r *ArchivoRepository) CargarVendedores(ctx context.Context) ([]model.Vendedor, error) {
	return leer(ctx, r.dir, formatoVendedor)
}

func (r *ArchivoRepository) GuardarVendedores(ctx context.Context, vendedores []model.Vendedor) error {
	return escribir(ctx, r.dir, formatoVendedor, vendedores)
}

func (r *ArchivoRepository) CargarProveedores(ctx context.Context) ([]model.Proveedor, error) {
	return leer(ctx, r.dir, formatoProveedor)
}

func (r *ArchivoRepository) GuardarProveedores(ctx context.Context, proveedores []model.Proveedor) error {
	return escribir(ctx, r.dir, formatoProveedor, proveedores)
}

// leer decodes every record of f's file. A missing file yields no records.
func leer[T any](ctx context.Context, dir string, f formato[T]) ([]T, error) {
	file, err := os.Open(filepath.Join(dir, f.archivo))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.Comma = ' '
	r.FieldsPerRecord = f.campos
	// Older files were written without quoting, so a bare " may sit inside a word.
	r.LazyQuotes = true

	var out []T
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		campos, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, fmt.Errorf("%w: %s línea %d: %v", ErrRegistroInvalido, f.archivo, perr.Line, perr.Err)
			}
			return nil, fmt.Errorf("%s: %w", f.archivo, err)
		}
		v, err := f.decodificar(campos)
		if err != nil {
			linea, _ := r.FieldPos(0)
			return nil, fmt.Errorf("%w: %s línea %d: %v", ErrRegistroInvalido, f.archivo, linea, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// escribir replaces f's file with items. The records go to a temporary file
// in the same directory which is then renamed over the target, so an
// interrupted save leaves the previous file intact.
func escribir[T any](ctx context.Context, dir string, f formato[T], items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, f.archivo+".*.tmp")
	if err != nil {
		return err
	}
	renombrado := false
	defer func() {
		if !renombrado {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	w := csv.NewWriter(tmp)
	w.Comma = ' '
	for _, it := range items {
		if err := w.Write(f.codificar(it)); err != nil {
			return fmt.Errorf("%s: %w", f.archivo, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%s: %w", f.archivo, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, f.archivo)); err != nil {
		return err
	}
	renombrado = true
	return nil
}

func formatearBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
