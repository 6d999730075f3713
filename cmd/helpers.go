package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// shownError marks a failure whose message was already written to the
// command output, so Execute only sets the exit status.
type shownError struct {
	err error
}

func (e *shownError) Error() string {
	return e.err.Error()
}

func (e *shownError) Unwrap() error {
	return e.err
}

func shown(err error) error {
	if err == nil {
		return nil
	}

	return &shownError{err: err}
}

// promptConfirm asks the user for confirmation and returns true if they confirm
// prompt should include the question (e.g., "Reset configuration? [y/N]: ")
func promptConfirm(in io.Reader, out io.Writer, prompt string) bool {
	_, _ = fmt.Fprint(out, prompt)

	response, _ := bufio.NewReader(in).ReadString('\n')
	response = strings.TrimSpace(response)

	return response == "y" || response == "Y"
}

// expandPath expands ~ to the user's home directory and returns an absolute path
func expandPath(path string) (string, error) {
	if len(path) == 0 {
		return "", fmt.Errorf("path is empty")
	}

	// Expand ~ to home directory
	if path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}

		path = filepath.Join(home, path[1:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	return absPath, nil
}

// centerString centers a string in a field of given display width
func centerString(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}

	padding := (width - w) / 2

	return fmt.Sprintf("%*s%s%*s", padding, "", s, width-w-padding, "")
}

// truncateString truncates a string to the specified display width with
// ellipsis, never splitting a character
func truncateString(s string, maxLen int) string {
	if lipgloss.Width(s) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return ansi.Truncate(s, maxLen, "")
	}

	return ansi.Truncate(s, maxLen, "...")
}

// boxWidth is the standard width for info boxes
const boxWidth = 64

var boxRule = strings.Repeat("═", boxWidth-2)

// printBoxHeader prints the top border of an info box with a title
func printBoxHeader(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "╔%s╗\n", boxRule)
	_, _ = fmt.Fprintf(w, "║%s║\n", centerString(title, boxWidth-2))
	_, _ = fmt.Fprintf(w, "╠%s╣\n", boxRule)
}

// printBoxLine prints a line inside an info box with label and value
func printBoxLine(w io.Writer, label, value string) {
	content := truncateString(fmt.Sprintf("  %s: %s", label, value), boxWidth-2)
	padding := boxWidth - 2 - lipgloss.Width(content)

	_, _ = fmt.Fprintf(w, "║%s%*s║\n", content, padding, "")
}

// printBoxFooter prints the bottom border of an info box
func printBoxFooter(w io.Writer) {
	_, _ = fmt.Fprintf(w, "╚%s╝\n", boxRule)
}

// printInfoBox prints a complete info box with title and key-value pairs
func printInfoBox(w io.Writer, title string, items map[string]string, order []string) {
	printBoxHeader(w, title)

	for _, key := range order {
		if val, ok := items[key]; ok {
			printBoxLine(w, key, val)
		}
	}

	printBoxFooter(w)
}
