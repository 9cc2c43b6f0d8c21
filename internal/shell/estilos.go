package shell

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorExito    = lipgloss.Color("#10B981")
	colorAviso    = lipgloss.Color("#F59E0B")
	colorError    = lipgloss.Color("#EF4444")
	colorAtenuado = lipgloss.Color("#6B7280")
	colorPrimario = lipgloss.Color("#7C3AED")
)

// estilos are bound to the shell's writer, so output that is not a terminal
// comes out as plain text.
type estilos struct {
	titulo   lipgloss.Style
	exito    lipgloss.Style
	aviso    lipgloss.Style
	error    lipgloss.Style
	atenuado lipgloss.Style
}

func nuevosEstilos(out io.Writer) estilos {
	r := lipgloss.NewRenderer(out)
	return estilos{
		titulo:   r.NewStyle().Foreground(colorPrimario).Bold(true),
		exito:    r.NewStyle().Foreground(colorExito).Bold(true),
		aviso:    r.NewStyle().Foreground(colorAviso),
		error:    r.NewStyle().Foreground(colorError).Bold(true),
		atenuado: r.NewStyle().Foreground(colorAtenuado),
	}
}

func (s *Shell) exito(format string, args ...interface{}) {
	fmt.Fprintln(s.out, s.estilos.exito.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) aviso(format string, args ...interface{}) {
	fmt.Fprintln(s.out, s.estilos.aviso.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) fallo(format string, args ...interface{}) {
	fmt.Fprintln(s.out, s.estilos.error.Render(fmt.Sprintf(format, args...)))
}

func (s *Shell) separador() {
	fmt.Fprintln(s.out, s.estilos.atenuado.Render("------------------------------------------"))
}
