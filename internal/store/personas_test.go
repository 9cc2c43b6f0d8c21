package store

import (
	"errors"
	"testing"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/apperror"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVendedores_ColaDeNuevos(t *testing.T) {
	tienda := NuevaTienda()

	_, ok := tienda.VendedorNuevo()
	assert.False(t, ok)

	agregarVendedor(t, tienda, "Luis")
	agregarVendedor(t, tienda, "Marta")

	v, ok := tienda.VendedorNuevo()
	require.True(t, ok)
	assert.Equal(t, "Luis", v.Nombre)

	v, ok = tienda.VendedorNuevo()
	require.True(t, ok)
	assert.Equal(t, "Luis", v.Nombre, "consultar no consume")

	v, ok = tienda.AtenderVendedorNuevo()
	require.True(t, ok)
	assert.Equal(t, "Luis", v.Nombre)

	v, _ = tienda.VendedorNuevo()
	assert.Equal(t, "Marta", v.Nombre)
	assert.Len(t, tienda.ListarVendedores(), 2, "atender no borra el registro")
}

func TestClientes_ColaDeNuevos(t *testing.T) {
	tienda := NuevaTienda()
	agregarCliente(t, tienda, "Ana")
	agregarCliente(t, tienda, "Eva")

	c, ok := tienda.ClienteNuevo()
	require.True(t, ok)
	assert.Equal(t, "Ana", c.Nombre)

	_, ok = tienda.AtenderClienteNuevo()
	require.True(t, ok)
	_, ok = tienda.AtenderClienteNuevo()
	require.True(t, ok)
	_, ok = tienda.AtenderClienteNuevo()
	assert.False(t, ok)
	_, ok = tienda.ClienteNuevo()
	assert.False(t, ok)

	assert.Len(t, tienda.ListarClientes(), 2)
}

func TestBuscar_PrimeraCoincidencia(t *testing.T) {
	tienda := NuevaTienda()
	_, err := tienda.AgregarCliente(dto.CrearClienteRequest{Nombre: "Ana", NIT: "1"})
	require.NoError(t, err)
	_, err = tienda.AgregarCliente(dto.CrearClienteRequest{Nombre: "Ana", NIT: "2"})
	require.NoError(t, err)

	c, ok := tienda.BuscarCliente("Ana")
	require.True(t, ok)
	assert.Equal(t, "1", c.NIT)

	_, ok = tienda.BuscarCliente("ana")
	assert.False(t, ok, "la búsqueda distingue mayúsculas")
	_, ok = tienda.BuscarVendedor("Nadie")
	assert.False(t, ok)
}

func TestAgregarCliente_Validacion(t *testing.T) {
	tienda := NuevaTienda()

	_, err := tienda.AgregarCliente(dto.CrearClienteRequest{Nombre: "", Correo: "no-es-correo"})
	var verr *apperror.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Fields, "Nombre")
	assert.Contains(t, verr.Fields, "Correo")

	assert.Empty(t, tienda.ListarClientes())
	_, ok := tienda.ClienteNuevo()
	assert.False(t, ok)
}
