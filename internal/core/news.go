package core

import (
	"context"
	"errors"

	"github.com/inovacc/citynews/internal/fetcher"
	"github.com/inovacc/citynews/internal/model"
)

// News composes a city directory, a selection and an on-demand article search.
type News struct {
	directory *Directory
	article   *Tracker[model.Article]
	selected  *int
	notice    string
}

// NewNews creates a news flow with its own, not yet started, directory.
func NewNews() *News {
	return &News{
		directory: NewDirectory(),
		article:   NewTracker[model.Article]("news"),
	}
}

// Directory returns the directory the flow selects from.
func (n *News) Directory() *Directory {
	return n.directory
}

// Select chooses the city to search news for. Ids outside the fetched
// directory are rejected with *InvalidSelectionError and the previous
// selection is kept.
func (n *News) Select(id int) error {
	if _, ok := n.directory.Lookup(id); !ok {
		err := &InvalidSelectionError{ID: id}
		n.notice = err.Error()

		return err
	}

	n.selected = &id
	n.notice = ""

	return nil
}

// ClearSelection returns the selection to "nothing chosen".
func (n *News) ClearSelection() {
	n.selected = nil
}

// Selected returns the selected city id.
func (n *News) Selected() (int, bool) {
	if n.selected == nil {
		return 0, false
	}

	return *n.selected, true
}

// Submit issues the ticket for a news search on the selected city. Without a
// selection it records NoSelectionNotice and returns ErrNoSelection; no
// request must be sent in that case.
func (n *News) Submit() (Ticket, error) {
	id, ok := n.Selected()
	if !ok {
		n.notice = NoSelectionNotice

		return Ticket{}, ErrNoSelection
	}

	n.notice = ""

	return n.article.Begin(fetcher.NewsSearchPath(id)), nil
}

// Resolve applies the reply to a search. Replies to any ticket but the most
// recently issued one are discarded and Resolve returns false.
func (n *News) Resolve(ticket Ticket, env model.Envelope[model.Article], err error) bool {
	return n.article.Resolve(ticket, env, err)
}

// Search runs Submit, the request and Resolve synchronously.
func (n *News) Search(ctx context.Context, g fetcher.Getter) error {
	ticket, err := n.Submit()
	if err != nil {
		return err
	}

	env, err := fetcher.Fetch[model.Article](ctx, g, ticket.Path)
	n.Resolve(ticket, env, err)

	return n.article.Err()
}

// ResultState returns the state of the article search.
func (n *News) ResultState() State {
	return n.article.State()
}

// Article returns the article currently held.
func (n *News) Article() (model.Article, bool) {
	return n.article.Value()
}

// Notice returns the last guard message, or "".
func (n *News) Notice() string {
	return n.notice
}

// Err returns the failure the flow is showing: the directory failure first,
// then the search failure. It is nil when nothing failed.
func (n *News) Err() error {
	if err := n.directory.Err(); err != nil {
		return err
	}

	return n.article.Err()
}

// View is a snapshot of everything a renderer needs.
type View struct {
	// Error, when set, is the only thing to render
	Error string

	// ShowSelector is true whenever Error is empty
	ShowSelector bool

	// LoadingCities is true until the directory resolves
	LoadingCities bool
	Cities        []model.City

	SelectedID   int
	HasSelection bool

	// Searching is true while a search is in flight
	Searching bool

	// Article is set only when a search succeeded
	Article *model.Article

	Notice string
}

// View returns the rendering snapshot of the flow.
func (n *News) View() View {
	if err := n.Err(); err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			return View{Error: fe.Message}
		}

		return View{Error: err.Error()}
	}

	v := View{
		ShowSelector:  true,
		LoadingCities: n.directory.State() == DirectoryLoading,
		Cities:        n.directory.Cities(),
		Searching:     n.article.State() == StateLoading,
		Notice:        n.notice,
	}

	v.SelectedID, v.HasSelection = n.Selected()

	if article, ok := n.article.Value(); ok {
		v.Article = &article
	}

	return v
}
