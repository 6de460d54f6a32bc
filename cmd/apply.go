package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"device-sync/core/reconcile"

	"github.com/spf13/cobra"
)

var (
	applyDevices []uint
	applyDryRun  bool
	yesConfirm   bool
)

// applyCmd creates missing components on selected devices.
var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create missing components on selected devices",
	Long: `Creates the components defined by the device type templates that are missing on the
selected devices. Categories are processed in a fixed order so power outlets and front ports
can link to the power ports and rear ports created before them. Exempted categories are skipped.

Examples:
  # Show what would be created
  apply --device 12,13 --dry-run

  # Create with interactive confirmation
  apply --device 12

  # Create with auto-confirm (non-interactive)
  apply --device 12 --yes`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(applyDevices) == 0 {
			return fmt.Errorf("at least one --device is required")
		}

		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		svc := rt.service(nil)
		ctx := cmd.Context()

		plan, err := svc.Apply(ctx, applyDevices, reconcile.Options{DryRun: true})
		if err != nil {
			return err
		}
		logResult(rt.log, plan)

		if applyDryRun {
			rt.log.Info("Dry-run mode: No changes were made.")
			return nil
		}
		if plan.Summary.MissingComponents == 0 {
			rt.log.Info("No components to create.")
			return nil
		}
		if !confirmDestructiveAction() {
			rt.log.Warn("Operation cancelled by user. No changes were made.")
			return nil
		}

		res, err := svc.Apply(ctx, applyDevices, reconcile.Options{})
		if res != nil {
			logResult(rt.log, res)
		}
		return err
	},
}

func init() {
	applyCmd.Flags().UintSliceVar(&applyDevices, "device", nil, "Device IDs to synchronize (repeatable or comma separated)")
	applyCmd.Flags().BoolVar(&applyDryRun, "dry-run", false, "Only report what would be created")
	applyCmd.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm (non-interactive)")
	RootCmd.AddCommand(applyCmd)
}

// confirmDestructiveAction prompts the user for confirmation or uses --yes flag.
func confirmDestructiveAction() bool {
	if yesConfirm {
		fmt.Println("\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Print("\n⚠️  Type 'yes' to create the components: ")
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
