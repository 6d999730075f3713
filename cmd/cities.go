package cmd

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/citynews/internal/cli"
	"github.com/inovacc/citynews/internal/core"
	"github.com/inovacc/citynews/internal/encoding"
	"github.com/inovacc/citynews/internal/render"
	"github.com/spf13/cobra"
)

var citiesJSON bool

var citiesCmd = &cobra.Command{
	Use:   "cities",
	Short: "List the cities known to the backend",
	Long: `Fetch the city directory once and show it.

On a terminal the list is interactive (type / to filter, q to quit).
Otherwise, or with --json, the cities are printed and the command exits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := newClient(ctx)
		if err != nil {
			return err
		}

		if citiesJSON || !interactive() {
			d := core.NewDirectory()
			loadErr := d.Load(ctx, client)

			if citiesJSON {
				if loadErr != nil {
					return loadErr
				}

				return encoding.WriteJSON(cmd.OutOrStdout(), d.Cities())
			}

			if err := render.Cities(cmd.OutOrStdout(), d); err != nil {
				return err
			}

			return shown(loadErr)
		}

		return runProgram(ctx, func(ctx context.Context) tea.Model {
			return cli.NewCityListModel(ctx, client)
		})
	},
}

func init() {
	rootCmd.AddCommand(citiesCmd)
	citiesCmd.Flags().BoolVar(&citiesJSON, "json", false, "print the cities as JSON")
}
