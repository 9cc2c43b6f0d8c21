package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/apperror"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/store"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// leerLinea prints prompt and returns the next input line, trimmed.
// io.EOF means the operator closed the input.
func (s *Shell) leerLinea(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(s.out)
		return "", io.EOF
	}
	return strings.TrimSpace(s.in.Text()), nil
}

func (s *Shell) leerOpcion(prompt string) (int, error) {
	linea, err := s.leerLinea(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(linea)
	if err != nil {
		return -1, nil
	}
	return n, nil
}

// leerEntero asks again until the answer is a whole number.
func (s *Shell) leerEntero(prompt string) (int, error) {
	for {
		linea, err := s.leerLinea(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(linea)
		if err == nil {
			return n, nil
		}
		s.fallo("Debe ingresar un número entero.")
	}
}

func (s *Shell) leerDecimal(prompt string) (decimal.Decimal, error) {
	for {
		linea, err := s.leerLinea(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(strings.Replace(linea, ",", ".", 1))
		if err == nil {
			return d, nil
		}
		s.fallo("Debe ingresar un número.")
	}
}

// leerEstado accepts 1/0 as the original data files do, plus true/false.
func (s *Shell) leerEstado(prompt string) (bool, error) {
	for {
		linea, err := s.leerLinea(prompt)
		if err != nil {
			return false, err
		}
		b, err := strconv.ParseBool(linea)
		if err == nil {
			return b, nil
		}
		s.fallo("Ingrese 1 (activo) o 0 (inactivo).")
	}
}

// leerCodigo asks again until the answer is a single non-empty token.
func (s *Shell) leerCodigo(prompt string) (string, error) {
	for {
		codigo, err := s.leerLinea(prompt)
		if err != nil {
			return "", err
		}
		if codigo != "" && !strings.ContainsAny(codigo, " \t") {
			return codigo, nil
		}
		prompt = "El código no puede estar vacío ni contener espacios. Ingrese un nuevo código: "
	}
}

// informar prints the operator-facing message for err and reports whether
// the failure was an input validation problem the operator can correct.
func (s *Shell) informar(err error) (validacion bool) {
	var verr *apperror.ValidationError
	switch {
	case errors.As(err, &verr):
		s.fallo("%s", verr.Error())
		return true
	case errors.Is(err, store.ErrCodigoDuplicado):
		s.fallo("El código del producto ya existe.")
	case errors.Is(err, store.ErrProductoNoExiste):
		s.fallo("El producto no existe.")
	case errors.Is(err, store.ErrClienteNoExiste):
		s.fallo("El cliente no existe.")
	case errors.Is(err, store.ErrVendedorNoExiste):
		s.fallo("El vendedor no existe.")
	case errors.Is(err, store.ErrVentaNoExiste):
		s.fallo("La venta no existe.")
	default:
		log.Error().Err(err).Msg("operación fallida")
		s.fallo("Error: %v", err)
	}
	return false
}
