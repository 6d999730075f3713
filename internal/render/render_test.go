package render

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/inovacc/citynews/internal/core"
	"github.com/inovacc/citynews/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var springfield = model.City{ID: 1, Name: "Springfield", State: "IL", Population: "114000"}

func resolvedDirectory(t *testing.T, env model.Envelope[[]model.City], err error) *core.Directory {
	t.Helper()

	d := core.NewDirectory()

	ticket, startErr := d.Start()
	require.NoError(t, startErr)
	require.True(t, d.Resolve(ticket, env, err))

	return d
}

func TestCities_Ready(t *testing.T) {
	d := resolvedDirectory(t, model.Envelope[[]model.City]{
		Success: true,
		Data:    []model.City{springfield, {ID: 12, Name: "Shelbyville"}},
	}, nil)

	var buf bytes.Buffer
	require.NoError(t, Cities(&buf, d))

	want := "City List\n  1    Springfield\n  12   Shelbyville\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("Cities() mismatch (-want +got):\n%s", diff)
	}
}

func TestCities_Empty(t *testing.T) {
	d := resolvedDirectory(t, model.Envelope[[]model.City]{Success: true}, nil)

	var buf bytes.Buffer
	require.NoError(t, Cities(&buf, d))

	assert.Equal(t, "City List\n  (no cities)\n", buf.String())
}

func TestCities_Failed(t *testing.T) {
	d := resolvedDirectory(t, model.Envelope[[]model.City]{}, errors.New("timeout"))

	var buf bytes.Buffer
	require.NoError(t, Cities(&buf, d))

	assert.Equal(t, "Error fetching cities: timeout\n", buf.String())
}

func TestCities_Loading(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Cities(&buf, core.NewDirectory()))

	assert.Equal(t, "Loading...\n", buf.String())
}

func TestNews_ErrorOnly(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, News(&buf, core.View{Error: "Failed to fetch news"}))

	assert.Equal(t, "Failed to fetch news\n", buf.String())
}

func TestNews_SelectorAndArticle(t *testing.T) {
	v := core.View{
		ShowSelector: true,
		Cities:       []model.City{springfield, {ID: 2, Name: "Shelbyville"}},
		SelectedID:   1,
		HasSelection: true,
		Article: &model.Article{
			Title:       "Storm Warning",
			Description: "Heavy rain",
			Content:     "Stay indoors.",
		},
	}

	var buf bytes.Buffer
	require.NoError(t, News(&buf, v))

	want := "City News\n" +
		"* 1    Springfield\n" +
		"  2    Shelbyville\n" +
		"\n" +
		"Article\n" +
		"Title: Storm Warning\n" +
		"Description: Heavy rain\n" +
		"Content: Stay indoors.\n"

	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("News() mismatch (-want +got):\n%s", diff)
	}
}

func TestNews_NoticeWithoutArticle(t *testing.T) {
	v := core.View{
		ShowSelector: true,
		Cities:       []model.City{springfield},
		Notice:       core.NoSelectionNotice,
	}

	var buf bytes.Buffer
	require.NoError(t, News(&buf, v))

	out := buf.String()
	assert.Contains(t, out, "Please select a city first!")
	assert.NotContains(t, out, "Article")
}
