package cmd

import (
	"device-sync/core/database"
	"device-sync/feature/dcim/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCmd creates or updates the inventory schema.
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the inventory tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		all := models.All()
		if err := database.Migrate(rt.db, all...); err != nil {
			return err
		}
		rt.log.Info("Schema migrated", zap.Int("models", len(all)))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
