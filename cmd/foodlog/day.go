package foodlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plateful/foodlog/internal/service"
)

var dayDate string

var dayCmd = &cobra.Command{
	Use:   "day",
	Short: "Show a day's meals and macro totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(dayDate)
		if err != nil {
			return err
		}
		return withService(func(svc *service.Service) error {
			view, err := svc.DayView(day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Date: %s\n", view.Day)
			if len(view.Entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries logged.")
				return nil
			}
			for _, e := range view.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s  %-24s %g %s\t%d kcal\n",
					e.CreatedAt.Local().Format("15:04"), e.Name, e.Quantity, e.Unit, e.Calories)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Total: %d kcal | P %.1fg | C %.1fg | F %.1fg\n",
				view.Totals.Calories, view.Totals.ProteinG, view.Totals.CarbsG, view.Totals.FatG)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(dayCmd)
	dayCmd.Flags().StringVar(&dayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
