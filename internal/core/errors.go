package core

import (
	"errors"
	"fmt"
)

// NoSelectionNotice is shown when a search is submitted before a city is chosen.
const NoSelectionNotice = "Please select a city first!"

var (
	// ErrNoSelection is returned by News.Submit when no city is selected
	ErrNoSelection = errors.New(NoSelectionNotice)

	// ErrAlreadyStarted is returned when a Directory is asked to fetch twice
	ErrAlreadyStarted = errors.New("city directory already started")
)

// InvalidSelectionError reports a city id that is not part of the fetched directory
type InvalidSelectionError struct {
	ID int
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("city %d is not in the directory", e.ID)
}

// FetchError is the displayable failure a flow resolved into.
//
// Message is exactly what the UI shows. Err is the transport failure behind
// it, or nil when the backend itself reported the failure.
type FetchError struct {
	Message string
	Err     error
}

func (e *FetchError) Error() string {
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// TransportMessage formats a failure to reach the backend for resource.
func TransportMessage(resource string, err error) string {
	return fmt.Sprintf("Error fetching %s: %s", resource, err.Error())
}

// ApplicationMessage formats a reply whose envelope reported failure.
func ApplicationMessage(resource string) string {
	return "Failed to fetch " + resource
}
