package main

import (
	"errors"
	"fmt"

	mem "vahis-pet-care-hub/internal/adapters/storage/memory"
	"vahis-pet-care-hub/internal/adapters/storage/postgres"
	"vahis-pet-care-hub/internal/domain/accounts"

	"github.com/spf13/cobra"
)

var (
	seedUsername string
	seedPassword string
)

// seed-admin solo tiene sentido contra Postgres: en memoria el server ya crea
// el admin con ADMIN_PASSWORD al arrancar.
var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Crea el usuario admin en Postgres si no existe",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.DB.DSN == "" {
			return errors.New("seed-admin: DB_DSN is required")
		}
		username := seedUsername
		if username == "" {
			username = cfg.Auth.AdminUsername
		}
		password := seedPassword
		if password == "" {
			password = cfg.Auth.AdminPassword
		}
		if password == "" {
			return errors.New("seed-admin: --password or ADMIN_PASSWORD is required")
		}

		ctx := cmd.Context()
		db, err := postgres.Open(ctx, cfg.DB.DSN)
		if err != nil {
			return err
		}
		defer db.Close()

		svc := accounts.NewService(postgres.NewUsersRepo(db), mem.NewSessionRepo(), cfg.Auth.SessionTTL)
		created, err := svc.EnsureUser(ctx, username, password)
		if err != nil {
			return fmt.Errorf("seed-admin: %w", err)
		}

		if created {
			log.Info("admin user created", map[string]any{"username": username})
		} else {
			log.Info("admin user already exists", map[string]any{"username": username})
		}
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedUsername, "username", "", "usuario (default ADMIN_USERNAME)")
	seedAdminCmd.Flags().StringVar(&seedPassword, "password", "", "contraseña (default ADMIN_PASSWORD)")
}
