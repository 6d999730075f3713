package core

import (
	"context"
	"slices"

	"github.com/inovacc/citynews/internal/fetcher"
	"github.com/inovacc/citynews/internal/model"
)

// DirectoryState is the state of a city directory.
type DirectoryState int

const (
	DirectoryLoading DirectoryState = iota
	DirectoryReady
	DirectoryFailed
)

func (s DirectoryState) String() string {
	switch s {
	case DirectoryLoading:
		return "loading"
	case DirectoryReady:
		return "ready"
	case DirectoryFailed:
		return "failed"
	}

	return "unknown"
}

// Directory fetches the city collection exactly once and exposes it read-only.
//
// A Directory starts in Loading and ends in either Ready or Failed; neither
// terminal state can be left.
type Directory struct {
	tracker *Tracker[[]model.City]
	index   map[int]int
}

// NewDirectory creates a directory waiting for its single fetch.
func NewDirectory() *Directory {
	return &Directory{tracker: NewTracker[[]model.City]("cities")}
}

// Start issues the ticket for the directory fetch.
func (d *Directory) Start() (Ticket, error) {
	if d.tracker.Issued() > 0 {
		return Ticket{}, ErrAlreadyStarted
	}

	return d.tracker.Begin(fetcher.CityListPath), nil
}

// Resolve applies the reply to the directory fetch.
func (d *Directory) Resolve(ticket Ticket, env model.Envelope[[]model.City], err error) bool {
	if !d.tracker.Resolve(ticket, env, err) {
		return false
	}

	if cities, ok := d.tracker.Value(); ok {
		d.index = make(map[int]int, len(cities))
		for i, c := range cities {
			if _, dup := d.index[c.ID]; !dup {
				d.index[c.ID] = i
			}
		}
	}

	return true
}

// Load runs the directory fetch synchronously. It returns the *FetchError
// the directory failed with, if any.
func (d *Directory) Load(ctx context.Context, g fetcher.Getter) error {
	ticket, err := d.Start()
	if err != nil {
		return err
	}

	env, err := fetcher.Fetch[[]model.City](ctx, g, ticket.Path)
	d.Resolve(ticket, env, err)

	return d.Err()
}

// State returns the directory state.
func (d *Directory) State() DirectoryState {
	switch d.tracker.State() {
	case StateLoaded:
		return DirectoryReady
	case StateFailed:
		return DirectoryFailed
	default:
		return DirectoryLoading
	}
}

// Cities returns a copy of the fetched collection in the order received.
func (d *Directory) Cities() []model.City {
	cities, _ := d.tracker.Value()

	return slices.Clone(cities)
}

// Lookup returns the city with the given id.
func (d *Directory) Lookup(id int) (model.City, bool) {
	i, ok := d.index[id]
	if !ok {
		return model.City{}, false
	}

	cities, _ := d.tracker.Value()

	return cities[i], true
}

// Message returns the failure message, or "".
func (d *Directory) Message() string {
	return d.tracker.Message()
}

// Err returns the failure as a *FetchError, or nil.
func (d *Directory) Err() error {
	return d.tracker.Err()
}
