package cmd

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/citynews/internal/cli"
	"github.com/inovacc/citynews/internal/core"
	"github.com/inovacc/citynews/internal/encoding"
	"github.com/inovacc/citynews/internal/fetcher"
	"github.com/inovacc/citynews/internal/render"
	"github.com/spf13/cobra"
)

var (
	newsCityID int
	newsJSON   bool
)

var newsCmd = &cobra.Command{
	Use:   "news",
	Short: "Fetch the news article for a city",
	Long: `Pick a city and fetch the news article the backend has for it.

On a terminal, without --city, an interactive selector opens:
  space  select the highlighted city
  enter  fetch news for the selected city
  x      clear the selection
  r      retry after a failed search
  q      quit

With --city, piped, or with --json, a single search runs and its result is
printed.`,
	Example: `  citynews news
  citynews news --city 3
  citynews news --city 3 --json`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		client, err := newClient(ctx)
		if err != nil {
			return err
		}
		hasCity := cmd.Flags().Changed("city")

		if hasCity || newsJSON || !interactive() {
			return searchOnce(cmd, client, hasCity)
		}

		return runProgram(ctx, func(ctx context.Context) tea.Model {
			return cli.NewCityNewsModel(ctx, client)
		})
	},
}

// searchOnce loads the directory, selects --city when given and submits a
// single search. Without --city the submission is refused like an empty form.
func searchOnce(cmd *cobra.Command, g fetcher.Getter, hasCity bool) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	news := core.NewNews()

	if err := news.Directory().Load(ctx, g); err != nil {
		if newsJSON {
			return err
		}

		return errors.Join(render.News(out, news.View()), shown(err))
	}

	if hasCity {
		if err := news.Select(newsCityID); err != nil {
			return err
		}
	}

	searchErr := news.Search(ctx, g)

	if newsJSON {
		if searchErr != nil {
			return searchErr
		}

		article, _ := news.Article()

		return encoding.WriteJSON(out, article)
	}

	if err := render.News(out, news.View()); err != nil {
		return err
	}

	return shown(searchErr)
}

func init() {
	rootCmd.AddCommand(newsCmd)
	newsCmd.Flags().IntVar(&newsCityID, "city", 0, "id of the city to fetch news for")
	newsCmd.Flags().BoolVar(&newsJSON, "json", false, "print the article as JSON")
}
