package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/citynews/internal/core"
	"github.com/inovacc/citynews/internal/fetcher"
	"github.com/inovacc/citynews/internal/model"
)

const selectorHeight = 14

type newsKeyMap struct {
	Select key.Binding
	Submit key.Binding
	Clear  key.Binding
	Retry  key.Binding
	Quit   key.Binding
}

func (k newsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Submit, k.Clear, k.Retry, k.Quit}
}

func (k newsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func newNewsKeyMap() newsKeyMap {
	return newsKeyMap{
		Select: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select city")),
		Submit: key.NewBinding(key.WithKeys("enter", "g"), key.WithHelp("enter", "get news")),
		Clear:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear selection")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry"), key.WithDisabled()),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// CityNewsModel lets the user pick a city from the directory and fetch the
// news article for it.
type CityNewsModel struct {
	ctx      context.Context
	getter   fetcher.Getter
	news     *core.News
	spinner  spinner.Model
	list     list.Model
	keys     newsKeyMap
	help     help.Model
	quitting bool
}

// NewCityNewsModel creates the news view. The directory fetch starts in Init.
func NewCityNewsModel(ctx context.Context, g fetcher.Getter) CityNewsModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, selectorHeight)
	l.Title = "Select a city"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	return CityNewsModel{
		ctx:     ctx,
		getter:  g,
		news:    core.NewNews(),
		spinner: newSpinner(),
		list:    l,
		keys:    newNewsKeyMap(),
		help:    help.New(),
	}
}

func (m CityNewsModel) Init() tea.Cmd {
	ticket, err := m.news.Directory().Start()
	if err != nil {
		return nil
	}

	return tea.Batch(m.spinner.Tick, fetchCities(m.ctx, m.getter, ticket))
}

func (m CityNewsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, _ := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, selectorHeight)
		m.help.Width = msg.Width - h

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case citiesLoadedMsg:
		if !m.news.Directory().Resolve(msg.ticket, msg.env, msg.err) {
			return m, nil
		}

		cmd := m.refreshItems()

		return m, cmd

	case newsLoadedMsg:
		m.news.Resolve(msg.ticket, msg.env, msg.err)
		m.keys.Retry.SetEnabled(m.news.Err() != nil && m.news.Directory().Err() == nil)

		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	return m, nil
}

func (m CityNewsModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true

		return m, tea.Quit

	case key.Matches(msg, m.keys.Retry):
		return m.submit()
	}

	// Nothing but quit and retry is available while an error is shown
	if m.news.Err() != nil || m.news.Directory().State() != core.DirectoryReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Select):
		if item, ok := m.list.SelectedItem().(cityItem); ok {
			_ = m.news.Select(item.city.ID)
		}

		cmd := m.refreshItems()

		return m, cmd

	case key.Matches(msg, m.keys.Clear):
		m.news.ClearSelection()

		cmd := m.refreshItems()

		return m, cmd

	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m CityNewsModel) submit() (tea.Model, tea.Cmd) {
	ticket, err := m.news.Submit()
	if err != nil {
		return m, nil
	}

	m.keys.Retry.SetEnabled(false)

	return m, tea.Batch(m.spinner.Tick, fetchNews(m.ctx, m.getter, ticket))
}

func (m *CityNewsModel) refreshItems() tea.Cmd {
	id, ok := m.news.Selected()

	return m.list.SetItems(cityItems(m.news.Directory().Cities(), id, ok))
}

func (m CityNewsModel) busy() bool {
	return m.news.Directory().State() == core.DirectoryLoading ||
		m.news.ResultState() == core.StateLoading
}

func (m CityNewsModel) View() string {
	if m.quitting {
		return ""
	}

	v := m.news.View()

	var b strings.Builder

	b.WriteString(titleStyle.Render("City News"))
	b.WriteString("\n\n")

	if v.Error != "" {
		b.WriteString(errorStyle.Render("✗ " + v.Error))
		b.WriteString("\n\n")
		b.WriteString(m.help.View(m.keys))

		return docStyle.Render(b.String())
	}

	if v.LoadingCities {
		b.WriteString(fmt.Sprintf("%s Loading cities...\n", m.spinner.View()))

		return docStyle.Render(b.String())
	}

	b.WriteString(m.list.View())
	b.WriteString("\n")

	if v.Notice != "" {
		b.WriteString(noticeStyle.Render(v.Notice))
		b.WriteString("\n")
	}

	if v.Searching {
		b.WriteString(fmt.Sprintf("%s Fetching news...\n", m.spinner.View()))
	}

	if v.Article != nil {
		b.WriteString("\n")
		b.WriteString(articleView(*v.Article))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return docStyle.Render(b.String())
}

func articleView(a model.Article) string {
	var b strings.Builder

	b.WriteString(headingStyle.Render("Article"))
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Title: ") + a.Title + "\n")
	b.WriteString(labelStyle.Render("Description: ") + a.Description + "\n")
	b.WriteString(labelStyle.Render("Content: ") + a.Content + "\n")

	if a.Author != "" {
		b.WriteString(mutedStyle.Render("by "+a.Author) + "\n")
	}

	return b.String()
}

// News returns the flow the view drives.
func (m CityNewsModel) News() *core.News {
	return m.news
}
