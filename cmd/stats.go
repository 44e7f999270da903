package cmd

import (
	"fmt"

	"github.com/abhisek/bigtop/internal/catalog"
	"github.com/abhisek/bigtop/internal/workshop"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show park progress",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		cat := catalog.Default()
		sess := workshop.NewSession(cat, st.Progress())
		p := sess.Progress(false)

		fmt.Printf("Visited:  %d of %d attractions\n", p.Completed, p.Total)
		fmt.Printf("Tickets:  %d\n", p.Tickets)
		fmt.Printf("Score:    %d pts\n", sess.Score())
		fmt.Println()

		for _, mod := range cat.Modules() {
			meta := mod.Describe()
			mark := " "
			if sess.Completed(meta.ID) {
				mark = "✓"
			}
			pts := workshop.Points(sess.AnswerFor(meta.ID))
			if pts > 0 {
				fmt.Printf("  %s %-28s %d pts\n", mark, meta.Title, pts)
			} else {
				fmt.Printf("  %s %s\n", mark, meta.Title)
			}
		}

		events, err := st.AnswerHistory(cmd.Context())
		if err != nil || len(events) == 0 {
			return nil
		}
		fmt.Printf("\nAnswer log: %d entries, last at %s\n",
			len(events), events[len(events)-1].CreatedAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}
