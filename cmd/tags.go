package cmd

import (
	"device-sync/feature/devicesync"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// tagsCmd is the parent command for exemption tag operations.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "Manage the exemption tags",
	Long: `Each component category has an exemption tag. Devices or device types carrying it are
reported as info by scan and skipped by apply for that category.`,
}

// tagsEnsureCmd creates every missing exemption tag.
var tagsEnsureCmd = &cobra.Command{
	Use:   "ensure",
	Short: "Create the exemption tags that do not exist yet",
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := bootstrap()
		if err != nil {
			return err
		}
		defer rt.close()

		tags, err := rt.service(nil).EnsureTags(cmd.Context())
		if err != nil {
			return err
		}
		for _, t := range tags {
			rt.log.Info("Exemption tag", zap.Uint("id", t.ID), zap.String("name", t.Name), zap.String("slug", t.Slug))
		}
		return nil
	},
}

// tagsListCmd prints the categories and their tag identities.
var tagsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the component categories and their exemption tags",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("%-3s %-22s %-26s %s\n", "#", "CATEGORY", "TAG", "SLUG")
		for _, c := range devicesync.DescribeCategories() {
			cmd.Printf("%-3d %-22s %-26s %s\n", c.Order, c.Plural, c.TagName, c.TagSlug)
		}
	},
}

func init() {
	tagsCmd.AddCommand(tagsEnsureCmd)
	tagsCmd.AddCommand(tagsListCmd)
	RootCmd.AddCommand(tagsCmd)
}
