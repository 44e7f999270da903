package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/abhisek/bigtop/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateTo string

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update bigtop to the latest release",
	Long:  "Download a release from GitHub, verify its checksum, and replace the running binary. Defaults to the latest release; --to pins a specific tag.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
		err := checker.Update(ctx, &selfupdate.UpdateInput{
			CurrentVersion: version,
			TargetVersion:  updateTo,
		}, func(p selfupdate.UpdateProgress) {
			fmt.Println(p.Message)
		})

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("Cannot update a development build. Install a release build first.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("Already running the latest version.")
			return nil
		case errors.Is(err, fs.ErrPermission):
			return fmt.Errorf("%w\n\nTry running: sudo bigtop update", err)
		}
		return err
	},
}

func init() {
	updateCmd.Flags().StringVar(&updateTo, "to", "", "release tag to install (default: latest)")
}
