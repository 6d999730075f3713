package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/citynews/internal/core"
	"github.com/inovacc/citynews/internal/fetcher"
	"github.com/inovacc/citynews/internal/model"
)

type cityItem struct {
	city     model.City
	selected bool
}

func (i cityItem) Title() string {
	if i.selected {
		return "✓ " + i.city.Name
	}

	return i.city.Name
}

func (i cityItem) Description() string {
	return fmt.Sprintf("%s | Population: %s", i.city.State, i.city.Population)
}

func (i cityItem) FilterValue() string {
	return i.city.Name
}

// cityItems converts cities into list items, marking selectedID when ok.
func cityItems(cities []model.City, selectedID int, ok bool) []list.Item {
	items := make([]list.Item, len(cities))
	for i, c := range cities {
		items[i] = cityItem{city: c, selected: ok && c.ID == selectedID}
	}

	return items
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	return s
}

// CityListModel shows the city directory: a spinner while it loads, the
// error it failed with, or a browsable list of cities.
type CityListModel struct {
	ctx       context.Context
	getter    fetcher.Getter
	directory *core.Directory
	spinner   spinner.Model
	list      list.Model
	quitting  bool
}

// NewCityListModel creates the directory view. The fetch starts in Init.
func NewCityListModel(ctx context.Context, g fetcher.Getter) CityListModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.Title = "City List"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)

	return CityListModel{
		ctx:       ctx,
		getter:    g,
		directory: core.NewDirectory(),
		spinner:   newSpinner(),
		list:      l,
	}
}

func (m CityListModel) Init() tea.Cmd {
	ticket, err := m.directory.Start()
	if err != nil {
		return nil
	}

	return tea.Batch(m.spinner.Tick, fetchCities(m.ctx, m.getter, ticket))
}

func (m CityListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := docStyle.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v)

		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true

			return m, tea.Quit
		}

		if m.list.FilterState() != list.Filtering {
			switch msg.String() {
			case "q", "esc":
				m.quitting = true

				return m, tea.Quit
			}
		}

		if m.directory.State() != core.DirectoryReady {
			return m, nil
		}

	case citiesLoadedMsg:
		if !m.directory.Resolve(msg.ticket, msg.env, msg.err) {
			return m, nil
		}

		if m.directory.State() == core.DirectoryReady {
			cmd := m.list.SetItems(cityItems(m.directory.Cities(), 0, false))

			return m, cmd
		}

		return m, nil

	case spinner.TickMsg:
		if m.directory.State() != core.DirectoryLoading {
			return m, nil
		}

		var cmd tea.Cmd

		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd
	}

	var cmd tea.Cmd

	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m CityListModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.directory.State() {
	case core.DirectoryFailed:
		return errorStyle.Render(fmt.Sprintf("\n  ✗ %s\n\n", m.directory.Message()))
	case core.DirectoryLoading:
		return fmt.Sprintf("\n  %s Loading cities...\n\n", m.spinner.View())
	}

	return docStyle.Render(m.list.View())
}

// Directory returns the directory the view is showing.
func (m CityListModel) Directory() *core.Directory {
	return m.directory
}

// Error returns the failure the directory resolved into, if any.
func (m CityListModel) Error() error {
	return m.directory.Err()
}
