package cmd

import (
	"errors"

	"device-sync/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixFlag bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Perform integrity checks on the inventory schema and report storage",
	Long:  `Checks that the inventory tables match the models and that the report bucket exists. Use --fix to migrate the schema and create the bucket.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		logg := rt.log
		ctx := cmd.Context()
		svc := integrity.NewService(rt.store, rt.cfg.Storage, logg, rt.db)

		logg.Info("Checking inventory schema...")
		report, err := svc.CheckSchema()
		if err != nil {
			return err
		}
		if report.Matched {
			logg.Info("Inventory schema matches the models.")
		} else {
			for table, tbl := range report.Tables {
				if tbl.Status == "ok" {
					continue
				}
				logg.Warn("Schema mismatch",
					zap.String("table", table),
					zap.String("status", tbl.Status),
					zap.Strings("missing_columns", tbl.MissingColumns),
					zap.Strings("type_mismatches", tbl.TypeMismatches))
			}
			for _, e := range report.Errors {
				logg.Error("Inspection Error", zap.String("error", e))
			}
			if fixFlag {
				logg.Info("Fixing schema...")
				if err := svc.FixSchema(); err != nil {
					return err
				}
				logg.Info("Schema fixed successfully.")
			} else {
				logg.Info("Run with --fix to migrate the schema.")
			}
		}

		logg.Info("Checking report storage...")
		st, err := svc.CheckStorage(ctx)
		switch {
		case errors.Is(err, integrity.ErrStorageDisabled):
			logg.Info("Report archiving is disabled, skipping storage check.")
		case err != nil:
			return err
		case st.Exists:
			logg.Info("Report bucket exists.", zap.String("bucket", st.Bucket))
		case fixFlag:
			if err := svc.FixStorage(ctx); err != nil {
				return err
			}
		default:
			logg.Warn("Report bucket missing. Run with --fix to create it.", zap.String("bucket", st.Bucket))
		}
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixFlag, "fix", false, "Migrate the schema and create the report bucket")
	RootCmd.AddCommand(integrityCmd)
}
