// Command booktrackrctl works on the stored collection directly, without the HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/Astemirdum/booktrackr/booktrackr/app"
	"github.com/Astemirdum/booktrackr/booktrackr/config"
	"github.com/Astemirdum/booktrackr/pkg/logger"
)

var (
	driver  string
	verbose bool
	timeout time.Duration
)

var rootCmd = &cobra.Command{
	Use:   "booktrackrctl",
	Short: "Administer the booktrackr collection",
	Long: `Export, import and inspect the book collection stored by booktrackr.

Storage is configured with the same environment as the service
(STORE_DRIVER, SQLITE_PATH, DB_*), a .env file is read when present.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&driver, "driver", "", "Store driver, postgres or sqlite (default: STORE_DRIVER)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Operation timeout")

	rootCmd.AddCommand(exportCmd, importCmd, statsCmd, listCmd)
}

// withAdmin opens the configured store and runs fn against it.
func withAdmin(cmd *cobra.Command, fn func(ctx context.Context, adm *app.Admin) error) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}
	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	cfg, err := config.Load(config.WithLogLevel(level))
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if driver != "" {
		cfg.Store.Driver = driver
		if err = cfg.Validate(); err != nil {
			return err
		}
	}
	// stdout carries command output
	cfg.Log.Sink = logger.SinkStderr
	log := logger.NewLogger(cfg.Log, "booktrackrctl")
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	adm, err := app.NewAdmin(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer adm.Close()

	return fn(ctx, adm)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
