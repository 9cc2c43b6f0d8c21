package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/MagalyEscalera23/tiendaComponentes/internal/config"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/infra"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/repository"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/shell"
	"github.com/MagalyEscalera23/tiendaComponentes/internal/store"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfg *config.Config

// rootCmd runs the interactive menu: load every record, let the operator
// work, save everything on exit.
var rootCmd = &cobra.Command{
	Use:   "tienda",
	Short: "Tienda de Productos de Cómputo",
	Long: `Registro de productos, proveedores, clientes, vendedores y ventas de una
tienda de componentes, manejado desde un menú de texto.

Los datos se cargan al iniciar y se guardan al salir, en archivos de texto
dentro de --data-dir o en PostgreSQL con --storage postgres.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("cargar configuración: %w", err)
		}
		return configurarLog(cfg)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShell(cmd.Context())
	},
}

// Execute runs the root command. Any failure is fatal.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("tienda")
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("data-dir", "", "Directorio de los archivos de datos (DATA_DIR)")
	flags.String("storage", "", "Almacenamiento: archivo o postgres (STORAGE_DRIVER)")
	flags.String("database-url", "", "Cadena de conexión a PostgreSQL (DATABASE_URL)")
	flags.String("log-level", "", "Nivel de log: debug, info, warn, error (LOG_LEVEL)")

	_ = viper.BindPFlag("DATA_DIR", flags.Lookup("data-dir"))
	_ = viper.BindPFlag("STORAGE_DRIVER", flags.Lookup("storage"))
	_ = viper.BindPFlag("DATABASE_URL", flags.Lookup("database-url"))
	_ = viper.BindPFlag("LOG_LEVEL", flags.Lookup("log-level"))

	rootCmd.AddCommand(seedCmd)
}

func configurarLog(cfg *config.Config) error {
	nivel, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("LOG_LEVEL inválido %q: %w", cfg.LogLevel, err)
	}
	zerolog.SetGlobalLevel(nivel)
	if cfg.Env == "production" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	}
	return nil
}

// abrirRepositorio returns the configured backend and a function that
// releases it.
func abrirRepositorio(cfg *config.Config) (repository.Repository, func(), error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("conectar a postgres: %w", err)
		}
		cerrar := func() {
			if err := infra.Close(db); err != nil {
				log.Warn().Err(err).Msg("cerrar conexión a postgres")
			}
		}
		return repository.NewPostgresRepository(db), cerrar, nil
	default:
		return repository.NewArchivoRepository(cfg.DataDir), func() {}, nil
	}
}

func runShell(ctx context.Context) error {
	repo, cerrar, err := abrirRepositorio(cfg)
	if err != nil {
		return err
	}
	defer cerrar()

	tienda := store.NuevaTienda()
	if err := tienda.Cargar(ctx, repo); err != nil {
		return err
	}
	log.Debug().Str("storage", cfg.StorageDriver).Str("data_dir", cfg.DataDir).Msg("sesión iniciada")

	if err := shell.New(tienda, os.Stdin, os.Stdout).Run(ctx); err != nil {
		log.Error().Err(err).Msg("menú interrumpido, guardando lo registrado")
	}
	return tienda.Guardar(context.WithoutCancel(ctx), repo)
}
