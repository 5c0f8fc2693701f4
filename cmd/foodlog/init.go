package foodlog

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plateful/foodlog/internal/app"
	"github.com/plateful/foodlog/internal/store"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the local foodlog database",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveDBPath()
		if err != nil {
			return err
		}
		if err := app.EnsureDBDir(path); err != nil {
			return err
		}

		st := store.New(path, store.WithLogger(logger))
		if err := st.Open(); err != nil {
			return err
		}
		defer st.Close()

		fmt.Fprintf(cmd.OutOrStdout(), "Initialized foodlog database at %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
