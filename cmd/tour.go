package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/bigtop/internal/app"
	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
	"github.com/spf13/cobra"
)

var tourCmd = &cobra.Command{
	Use:   "tour [module]",
	Short: "Walk the park from gate to gift shop",
	Long:  "Start the guided tour. An optional module id or slug positions the tour at that attraction.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := ""
		if len(args) > 0 {
			start = args[0]
		}
		return runTour(cmd, start)
	},
}

// runTour opens the store, restores the session, and launches the TUI in
// tour mode. A missing store degrades to an in-memory session.
func runTour(cmd *cobra.Command, start string) error {
	sess, cleanup := openSession(cmd)
	defer cleanup()

	opts := app.Options{Session: sess}
	if start != "" {
		idx := sess.Resolve(start)
		if idx == catalog.NotFound {
			return fmt.Errorf("no attraction matches %q", start)
		}
		sess.Visit(idx)
		opts.OpenAct = true
	}

	return app.Run(opts)
}

// openSession builds a session over the default catalog. Store failures
// are reported once and then ignored: the tour still runs, it just stops
// remembering.
func openSession(cmd *cobra.Command) (*workshop.Session, func()) {
	st, err := openStore(cmd)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Progress will not be saved:", err)
		return workshop.NewSession(catalog.Default(), nil), func() {}
	}

	sess := workshop.NewSession(catalog.Default(), st.Progress())
	sess.SetEventSink(st.Events())
	return sess, func() { st.Close() }
}
