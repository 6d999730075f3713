package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// stubGetter serves canned JSON bodies or errors per path.
type stubGetter struct {
	mu      sync.Mutex
	bodies  map[string]string
	errs    map[string]error
	history []string
}

func newStubGetter() *stubGetter {
	return &stubGetter{bodies: map[string]string{}, errs: map[string]error{}}
}

func (s *stubGetter) Get(_ context.Context, path string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, path)

	if err, ok := s.errs[path]; ok {
		return err
	}

	body, ok := s.bodies[path]
	if !ok {
		return fmt.Errorf("unexpected path %s", path)
	}

	return json.Unmarshal([]byte(body), out)
}

func (s *stubGetter) calls() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.history...)
}

// run executes cmd and every command batched inside it, returning the
// messages they produce.
func run(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}

	msg := cmd()

	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, run(c)...)
		}

		return msgs
	}

	return []tea.Msg{msg}
}

// deliver feeds every message except spinner ticks produced by cmd back into m.
func deliver(m tea.Model, cmd tea.Cmd) tea.Model {
	for _, msg := range run(cmd) {
		switch msg.(type) {
		case citiesLoadedMsg, newsLoadedMsg:
			m, _ = m.Update(msg)
		}
	}

	return m
}

func keyPress(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}

	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

const (
	springfieldList = `{"success":true,"message":"ok","code":200,"data":[{"id":1,"name":"Springfield","state":"IL","population":"114000"}]}`

	twoCitiesList = `{"success":true,"message":"ok","code":200,"data":[
		{"id":1,"name":"Springfield","state":"IL","population":"114000"},
		{"id":2,"name":"Shelbyville","state":"IL","population":"80000"}
	]}`

	stormWarning = `{"success":true,"message":"ok","code":200,"data":{
		"id":7,"author":"Kent Brockman","title":"Storm Warning","description":"Heavy rain expected","content":"Stay indoors.",
		"url":"https://news.example.com/7",
		"city":{"id":1,"name":"Springfield","state":"IL","population":"114000"},
		"isLocal":true
	}}`

	searchFailed = `{"success":false,"message":"no news for city","code":404,"data":null}`
)
