package main

import (
	"os"
	"time"

	"github.com/MagalyEscalera23/tiendaComponentes/cmd/tienda/commands"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON (switched once config is read)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	commands.Execute()
}
