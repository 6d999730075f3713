package cmd

import (
	"fmt"
	"runtime"

	"github.com/inovacc/citynews/internal/application"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the citynews version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s, %s/%s)\n",
			application.AppName, application.Version, runtime.Version(), runtime.GOOS, runtime.GOARCH)

		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
