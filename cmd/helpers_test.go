package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

func TestShownError(t *testing.T) {
	inner := errors.New("Failed to fetch news")

	err := shown(inner)
	if err.Error() != inner.Error() {
		t.Errorf("shown(err).Error() = %q, want %q", err.Error(), inner.Error())
	}

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find the wrapped error")
	}

	if shown(nil) != nil {
		t.Error("shown(nil) should be nil")
	}
}

func TestPromptConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "y\n", want: true},
		{input: "Y\n", want: true},
		{input: " y \n", want: true},
		{input: "n\n", want: false},
		{input: "yes\n", want: false},
		{input: "", want: false},
	}

	for _, tt := range tests {
		var out bytes.Buffer

		got := promptConfirm(strings.NewReader(tt.input), &out, "Reset? [y/N]: ")
		if got != tt.want {
			t.Errorf("promptConfirm(%q) = %v, want %v", tt.input, got, tt.want)
		}

		if out.String() != "Reset? [y/N]: " {
			t.Errorf("prompt written = %q", out.String())
		}
	}
}

func TestExpandPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:    "empty path",
			input:   "",
			wantErr: true,
		},
		{
			name:    "absolute path",
			input:   "/tmp/test",
			wantErr: false,
		},
		{
			name:    "home path",
			input:   "~/test",
			wantErr: false,
		},
		{
			name:    "relative path",
			input:   "test/path",
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := expandPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("expandPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
				return
			}
			if !tt.wantErr && result == "" {
				t.Errorf("expandPath(%q) returned empty string", tt.input)
			}
		})
	}
}

func TestCenterString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected string
	}{
		{
			name:     "string shorter than width",
			input:    "test",
			width:    10,
			expected: "   test   ",
		},
		{
			name:     "string equal to width",
			input:    "test",
			width:    4,
			expected: "test",
		},
		{
			name:     "string longer than width",
			input:    "testing",
			width:    4,
			expected: "testing",
		},
		{
			name:     "odd padding",
			input:    "ab",
			width:    5,
			expected: " ab  ",
		},
		{
			name:     "multi-byte runes count once",
			input:    "café",
			width:    8,
			expected: "  café  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := centerString(tt.input, tt.width)
			if result != tt.expected {
				t.Errorf("centerString(%q, %d) = %q, want %q", tt.input, tt.width, result, tt.expected)
			}
		})
	}
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "string shorter than max",
			input:    "test",
			maxLen:   10,
			expected: "test",
		},
		{
			name:     "string equal to max",
			input:    "test",
			maxLen:   4,
			expected: "test",
		},
		{
			name:     "string longer than max",
			input:    "testing",
			maxLen:   5,
			expected: "te...",
		},
		{
			name:     "max length 3",
			input:    "testing",
			maxLen:   3,
			expected: "tes",
		},
		{
			name:     "max length 2",
			input:    "testing",
			maxLen:   2,
			expected: "te",
		},
		{
			name:     "multi-byte runes fit",
			input:    "/home/José",
			maxLen:   10,
			expected: "/home/José",
		},
		{
			name:     "cut on a rune boundary",
			input:    "/home/Zoë/config.ini",
			maxLen:   12,
			expected: "/home/Zoë...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := truncateString(tt.input, tt.maxLen)
			if result != tt.expected {
				t.Errorf("truncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, result, tt.expected)
			}
		})
	}
}

func TestPrintInfoBox(t *testing.T) {
	var buf bytes.Buffer

	items := map[string]string{
		"base_url": "http://localhost:8081",
		"timeout":  "30s",
	}
	printInfoBox(&buf, "Configuration", items, []string{"base_url", "timeout", "missing"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("got %d lines, want 6:\n%s", len(lines), buf.String())
	}

	if !strings.Contains(lines[1], "Configuration") {
		t.Errorf("title line = %q", lines[1])
	}

	if !strings.Contains(lines[3], "base_url: http://localhost:8081") {
		t.Errorf("first item line = %q", lines[3])
	}

	if strings.Contains(buf.String(), "missing") {
		t.Error("keys without a value must be skipped")
	}
}

func TestPrintBoxLine_Truncates(t *testing.T) {
	var buf bytes.Buffer

	printBoxLine(&buf, "Very Long Label", strings.Repeat("x", 200))

	line := strings.TrimSuffix(buf.String(), "\n")
	if !strings.HasSuffix(line, "...║") {
		t.Errorf("long line should end with an ellipsis: %q", line)
	}
}

func TestPrintBoxLine_NonASCIIStaysAligned(t *testing.T) {
	for _, value := range []string{
		"/home/José/.config/citynews/config.ini",
		"/home/Zoë/" + strings.Repeat("é", 80) + "/config.ini",
	} {
		var buf bytes.Buffer

		printBoxLine(&buf, "file", value)

		line := strings.TrimSuffix(buf.String(), "\n")
		if !utf8.ValidString(line) {
			t.Errorf("line is not valid UTF-8: %q", line)
		}

		if got := lipgloss.Width(line); got != boxWidth {
			t.Errorf("line width = %d, want %d: %q", got, boxWidth, line)
		}
	}
}
