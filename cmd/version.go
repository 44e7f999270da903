package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build via -ldflags; a source build
// reports (devel) and refuses to self-update.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the installed version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("bigtop", version)
	},
}
