// Package cli provides the terminal user interface components for citynews.
//
// The package uses [Bubbletea] for building interactive terminal UIs and
// [Lipgloss] for styling. All UI components follow the standard Bubbletea
// Model-View-Update (MVU) architecture.
//
// # Components
//
//   - CityList: spinner while the city directory loads, then a filterable list
//   - CityNews: city selector, news search and the article it found
//
// # Requests
//
// Models never block in Update. A request is started on the flow (which
// hands back a ticket), performed inside a tea.Cmd and delivered back as a
// message carrying that ticket, so a reply that arrives after a newer request
// was issued is dropped by the flow.
//
// # Styling
//
// Common styles are defined as package-level variables in styles.go.
//
// [Bubbletea]: https://github.com/charmbracelet/bubbletea
// [Lipgloss]: https://github.com/charmbracelet/lipgloss
package cli
