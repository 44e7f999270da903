package cmd

import (
	"fmt"

	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Tear down the park and start fresh",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !resetYes {
			fmt.Println("This clears all answers, tickets, and points. Re-run with --yes to confirm.")
			return nil
		}

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		sess := workshop.NewSession(catalog.Default(), st.Progress())
		sess.Reset()
		fmt.Println("The park is empty again.")
		return nil
	},
}

func init() {
	resetCmd.Flags().BoolVar(&resetYes, "yes", false, "Skip the confirmation prompt")
}
