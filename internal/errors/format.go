package errors

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// categoryTitles are the headings used for each category in terminal
// output, in the order Catalog lists them.
var categoryTitles = []struct {
	category Category
	title    string
}{
	{CategoryConfig, "configuration"},
	{CategoryValidation, "validation"},
	{CategoryTransport, "service request"},
	{CategoryProtocol, "protocol"},
	{CategoryRuntime, "server"},
	{CategoryCLI, "command line"},
}

// Title returns the human heading of the category.
func (c Category) Title() string {
	for _, ct := range categoryTitles {
		if ct.category == c {
			return ct.title
		}
	}
	return "unknown"
}

var (
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
)

var colorEnabled = true

// DisableColors turns off styling in Format and Catalog.
func DisableColors() {
	colorEnabled = false
}

// EnableColors turns styling back on. lipgloss still drops it when the
// output is not a terminal.
func EnableColors() {
	colorEnabled = true
}

func paint(st lipgloss.Style, s string) string {
	if !colorEnabled {
		return s
	}
	return st.Render(s)
}

// Format renders the error for the terminal:
//
//	configuration error E102: Invalid config value
//	  popover.side: must be one of top, right, bottom, left
//	  hint   Use one of ...
func (e *VangoError) Format() string {
	var b strings.Builder

	head := e.Message
	if e.Code != "" {
		head = e.Code + ": " + e.Message
	}
	if e.Category != "" {
		head = e.Category.Title() + " error " + head
	} else {
		head = "error " + head
	}
	b.WriteString(paint(headStyle, head))
	b.WriteString("\n")

	for _, line := range wrapText(e.Detail, 72) {
		b.WriteString("  " + line + "\n")
	}
	if e.StatusCode != 0 {
		writeField(&b, "status", fmt.Sprintf("%d", e.StatusCode))
	}
	if e.Wrapped != nil {
		writeField(&b, "cause", e.Wrapped.Error())
	}
	if e.Suggestion != "" {
		b.WriteString("  " + paint(hintStyle, "hint   ") + e.Suggestion + "\n")
	}
	return b.String()
}

func writeField(b *strings.Builder, label, value string) {
	b.WriteString("  " + paint(labelStyle, fmt.Sprintf("%-7s", label)) + value + "\n")
}

// FormatCompact returns the error on one line, prefixed with its category:
// "[config] E104: Invalid duration (hover close delay)".
func (e *VangoError) FormatCompact() string {
	s := e.Message
	if e.Code != "" {
		s = e.Code + ": " + s
	}
	if e.Category != "" {
		s = "[" + string(e.Category) + "] " + s
	}
	if e.Detail != "" {
		s += " (" + e.Detail + ")"
	}
	return s
}

// LogValue implements slog.LogValuer so that logging an error with
// "error", err records its code and category as attributes.
func (e *VangoError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("code", e.Code),
		slog.String("category", string(e.Category)),
		slog.String("message", e.Message),
	}
	if e.Detail != "" {
		attrs = append(attrs, slog.String("detail", e.Detail))
	}
	if e.StatusCode != 0 {
		attrs = append(attrs, slog.Int("status", e.StatusCode))
	}
	if e.Wrapped != nil {
		attrs = append(attrs, slog.String("cause", e.Wrapped.Error()))
	}
	return slog.GroupValue(attrs...)
}

// Catalog lists every registered code grouped by category.
func Catalog() string {
	var b strings.Builder
	for _, ct := range categoryTitles {
		var codes []string
		for _, code := range GetAllCodes() {
			if registry[code].Category == ct.category {
				codes = append(codes, code)
			}
		}
		if len(codes) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n")
		}
		b.WriteString(paint(headStyle, ct.title) + "\n")
		for _, code := range codes {
			b.WriteString("  " + paint(labelStyle, code) + "  " + registry[code].Message + "\n")
		}
	}
	return b.String()
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		if len(current)+1+len(word) > width {
			lines = append(lines, current)
			current = word
			continue
		}
		current += " " + word
	}
	return append(lines, current)
}
