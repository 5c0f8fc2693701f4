package foodlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plateful/foodlog/internal/service"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Manage logged meals",
}

var (
	addFood     string
	addQuantity float64
	addDate     string
	addName     string
	addCalories string
	addProtein  string
	addCarbs    string
	addFat      string
	addUnit     string
	addNotes    string
)

var logAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal from the catalogue or free-form",
	Long:  "With --food, logs a catalogue item scaled by --quantity. Without it, logs a custom entry from --name and the macro flags; blank or unparsable numbers default to zero rather than failing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(addDate)
		if err != nil {
			return err
		}
		return withService(func(svc *service.Service) error {
			if addFood != "" {
				cat, err := resolveCatalogue()
				if err != nil {
					return err
				}
				item, ok := cat.Item(addFood)
				if !ok {
					return fmt.Errorf("unknown catalogue food %q (try: foodlog catalogue list)", addFood)
				}
				entry, err := svc.AddFromCatalogue(item, addQuantity, day)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%g %s) on %s: %d kcal [%s]\n", entry.Name, entry.Quantity, entry.Unit, day, entry.Calories, entry.ID)
				return nil
			}

			entry, err := svc.AddCustom(service.CustomEntryInput{
				Name:     addName,
				Calories: addCalories,
				Protein:  addProtein,
				Carbs:    addCarbs,
				Fat:      addFat,
				Quantity: cmd.Flag("quantity").Value.String(),
				Unit:     addUnit,
				Notes:    addNotes,
			}, day)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s: %d kcal [%s]\n", entry.Name, day, entry.Calories, entry.ID)
			return nil
		})
	},
}

var logRemoveCmd = &cobra.Command{
	Use:   "remove <entry-id>",
	Short: "Remove a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withService(func(svc *service.Service) error {
			if err := svc.RemoveEntry(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		})
	},
}

var listDate string

var logListCmd = &cobra.Command{
	Use:   "list",
	Short: "List a day's entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := resolveDay(listDate)
		if err != nil {
			return err
		}
		return withService(func(svc *service.Service) error {
			view, err := svc.DayView(day)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ID\tTIME\tNAME\tQTY\tKCAL\tP\tC\tF")
			for _, e := range view.Entries {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\t%g %s\t%d\t%.1f\t%.1f\t%.1f\n",
					e.ID, e.CreatedAt.Local().Format("15:04"), e.Name, e.Quantity, e.Unit, e.Calories, e.ProteinG, e.CarbsG, e.FatG)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(logCmd)
	logCmd.AddCommand(logAddCmd)
	logCmd.AddCommand(logRemoveCmd)
	logCmd.AddCommand(logListCmd)

	logAddCmd.Flags().StringVar(&addFood, "food", "", "Catalogue food id")
	logAddCmd.Flags().Float64Var(&addQuantity, "quantity", 0, "Quantity in the food's unit (catalogue default when omitted)")
	logAddCmd.Flags().StringVar(&addDate, "date", "", "Tracking date YYYY-MM-DD (default today)")
	logAddCmd.Flags().StringVar(&addName, "name", "", "Name for a custom entry")
	logAddCmd.Flags().StringVar(&addCalories, "calories", "", "Calories (kcal)")
	logAddCmd.Flags().StringVar(&addProtein, "protein", "", "Protein (g)")
	logAddCmd.Flags().StringVar(&addCarbs, "carbs", "", "Carbs (g)")
	logAddCmd.Flags().StringVar(&addFat, "fat", "", "Fat (g)")
	logAddCmd.Flags().StringVar(&addUnit, "unit", "", "Unit label for a custom entry")
	logAddCmd.Flags().StringVar(&addNotes, "notes", "", "Free-text notes")

	logListCmd.Flags().StringVar(&listDate, "date", "", "Date YYYY-MM-DD (default today)")
}
