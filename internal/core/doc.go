// Package core holds the state machines behind citynews.
//
// The package contains no rendering and performs no I/O of its own beyond
// the optional synchronous helpers ([Directory.Load], [News.Search]) that
// call a [fetcher.Getter]. Interactive front ends drive the flows in two
// phases instead:
//
//  1. Start or Submit hands out a [Ticket] naming the request to issue
//  2. Resolve applies the reply once the request finishes
//
// The split lets the Bubbletea UI run the request inside a tea.Cmd while all
// state changes stay on the update loop.
//
// # Result state
//
// Every fetch is tracked by a [Tracker], a tagged variant that is exactly one
// of Idle, Loading, Failed(message) or Loaded(value). Each Begin issues a
// ticket with a higher sequence number and only the most recent ticket may
// resolve, so a slow reply to an older request can never overwrite a newer
// result.
//
// # Flows
//
//   - [Directory]: fetches the city collection once per lifetime
//   - [News]: composes a Directory with a validated selection and an
//     on-demand article search
package core
