package foodlog

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var catalogueCmd = &cobra.Command{
	Use:   "catalogue",
	Short: "Browse the food catalogue",
}

var (
	catQuery string
	catTag   string
)

var catalogueListCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalogue foods",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalogue()
		if err != nil {
			return err
		}
		items := cat.Search(catQuery, catTag)
		fmt.Fprintln(cmd.OutOrStdout(), "ID\tNAME\tPER\tKCAL\tP\tC\tF")
		for _, item := range items {
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%g %s\t%d\t%.1f\t%.1f\t%.1f\n",
				item.ID, item.Name, item.DefaultQuantity, item.Unit, item.Calories, item.ProteinG, item.CarbsG, item.FatG)
		}
		return nil
	},
}

var catalogueShowCmd = &cobra.Command{
	Use:   "show <food-id>",
	Short: "Show a catalogue food",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalogue()
		if err != nil {
			return err
		}
		item, ok := cat.Item(args[0])
		if !ok {
			return fmt.Errorf("unknown catalogue food %q", args[0])
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", item.Name, item.ID)
		if item.Description != "" {
			fmt.Fprintln(cmd.OutOrStdout(), item.Description)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Per %g %s: %d kcal | P %.1fg | C %.1fg | F %.1fg\n",
			item.DefaultQuantity, item.Unit, item.Calories, item.ProteinG, item.CarbsG, item.FatG)
		if len(item.Tags) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "Tags: %s\n", strings.Join(item.Tags, ", "))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogueCmd)
	catalogueCmd.AddCommand(catalogueListCmd)
	catalogueCmd.AddCommand(catalogueShowCmd)

	catalogueListCmd.Flags().StringVar(&catQuery, "query", "", "Filter by name or id substring")
	catalogueListCmd.Flags().StringVar(&catTag, "tag", "", "Filter by tag")
}
