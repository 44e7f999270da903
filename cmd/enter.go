package cmd

import (
	"fmt"

	"github.com/abhisek/bigtop/internal/app"
	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/spf13/cobra"
)

var enterCmd = &cobra.Command{
	Use:   "enter <module>",
	Short: "Step straight into one attraction",
	Long:  "Run a single module by id or slug. Progress reads 100% regardless of the rest of the park.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, cleanup := openSession(cmd)
		defer cleanup()

		idx := sess.Resolve(args[0])
		if idx == catalog.NotFound {
			return fmt.Errorf("no attraction matches %q", args[0])
		}
		sess.Enter(idx)

		return app.Run(app.Options{Session: sess, Single: true})
	},
}
