package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"vahis-pet-care-hub/internal/adapters/oracle/gemini"
	"vahis-pet-care-hub/internal/config"
	"vahis-pet-care-hub/internal/platform/logger"
	"vahis-pet-care-hub/internal/ports/oracle"

	"github.com/spf13/cobra"
)

var (
	envFile string

	cfg *config.Config
	log logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "pawprint",
	Short: "PawPrint Boutique: catálogo, reservas y matcher de mascotas",
	Long: `API de la tienda PawPrint Boutique.

Sin DB_DSN todo vive en memoria (con catálogo demo). Sin GEMINI_API_KEY el
server arranca igual y /api/match-pet responde 500.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(envFile)
		if err != nil {
			return err
		}
		cfg = c
		log = logger.New(logger.Options{
			Level:  logger.ParseLevel(cfg.Log.Level),
			Format: logger.ParseFormat(cfg.Log.Format),
			App:    cfg.Log.App,
		})
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			logger.Sync(log)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "archivo .env opcional")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedAdminCmd)
	rootCmd.AddCommand(quizCmd)

	// Sin subcomando: serve
	rootCmd.RunE = serveCmd.RunE
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newOracle devuelve nil (no error) si falta la API key.
func newOracle(ctx context.Context) (oracle.Oracle, error) {
	c, err := gemini.New(ctx, gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Match.OracleTimeout,
		BaseURL: cfg.Gemini.BaseURL,
	}, log)
	if err != nil {
		if errors.Is(err, oracle.ErrNotConfigured) {
			log.Warn("GEMINI_API_KEY not set, matching disabled", nil)
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}
