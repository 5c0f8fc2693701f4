package foodlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plateful/foodlog/internal/service"
	"github.com/plateful/foodlog/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run data integrity checks",
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := resolveCatalogue()
		if err != nil {
			return err
		}
		return withStore(func(st *store.Store) error {
			report, err := service.RunDoctor(st, cat)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Entries: %d\n", report.Entries)
			fmt.Fprintf(cmd.OutOrStdout(), "Unreadable timestamps: %d\n", report.BadTimestamps)
			fmt.Fprintf(cmd.OutOrStdout(), "Missing catalogue references: %d\n", report.MissingCatalogueRefs)
			if report.BadTimestamps > 0 {
				return fmt.Errorf("doctor found integrity issues")
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}
