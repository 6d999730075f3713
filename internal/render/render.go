// Package render writes the city views as plain text for pipes, scripts and
// terminals where the interactive UI is not wanted.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/inovacc/citynews/internal/core"
	"github.com/inovacc/citynews/internal/model"
)

// Cities writes the directory: its error, a loading line, or one city per line.
func Cities(w io.Writer, d *core.Directory) error {
	switch d.State() {
	case core.DirectoryFailed:
		_, err := fmt.Fprintln(w, d.Message())

		return err
	case core.DirectoryLoading:
		_, err := fmt.Fprintln(w, "Loading...")

		return err
	}

	var b strings.Builder

	b.WriteString("City List\n")

	cities := d.Cities()
	if len(cities) == 0 {
		b.WriteString("  (no cities)\n")
	}

	for _, c := range cities {
		fmt.Fprintf(&b, "  %-4d %s\n", c.ID, c.Name)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

// News writes a news flow snapshot. An error is written alone; otherwise the
// selector is always written and the article only when one is held.
func News(w io.Writer, v core.View) error {
	if v.Error != "" {
		_, err := fmt.Fprintln(w, v.Error)

		return err
	}

	var b strings.Builder

	b.WriteString("City News\n")

	if v.LoadingCities {
		b.WriteString("  Loading cities...\n")
	}

	for _, c := range v.Cities {
		marker := " "
		if v.HasSelection && v.SelectedID == c.ID {
			marker = "*"
		}

		fmt.Fprintf(&b, "%s %-4d %s\n", marker, c.ID, c.Name)
	}

	if v.Notice != "" {
		fmt.Fprintf(&b, "\n%s\n", v.Notice)
	}

	if v.Searching {
		b.WriteString("\nFetching news...\n")
	}

	if v.Article != nil {
		b.WriteString("\n")
		writeArticle(&b, *v.Article)
	}

	_, err := io.WriteString(w, b.String())

	return err
}

func writeArticle(b *strings.Builder, a model.Article) {
	b.WriteString("Article\n")
	fmt.Fprintf(b, "Title: %s\n", a.Title)
	fmt.Fprintf(b, "Description: %s\n", a.Description)
	fmt.Fprintf(b, "Content: %s\n", a.Content)
}
