package cli

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/citynews/internal/core"
	"github.com/inovacc/citynews/internal/fetcher"
	"github.com/inovacc/citynews/internal/model"
)

type citiesLoadedMsg struct {
	ticket core.Ticket
	env    model.Envelope[[]model.City]
	err    error
}

type newsLoadedMsg struct {
	ticket core.Ticket
	env    model.Envelope[model.Article]
	err    error
}

// fetchCities runs the directory request for ticket off the update loop.
func fetchCities(ctx context.Context, g fetcher.Getter, ticket core.Ticket) tea.Cmd {
	return func() tea.Msg {
		env, err := fetcher.Fetch[[]model.City](ctx, g, ticket.Path)

		return citiesLoadedMsg{ticket: ticket, env: env, err: err}
	}
}

func fetchNews(ctx context.Context, g fetcher.Getter, ticket core.Ticket) tea.Cmd {
	return func() tea.Msg {
		env, err := fetcher.Fetch[model.Article](ctx, g, ticket.Path)

		return newsLoadedMsg{ticket: ticket, env: env, err: err}
	}
}
