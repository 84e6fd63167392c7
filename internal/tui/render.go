package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"codeberg.org/vertexgate/server/internal/search"
)

func newRenderer(width int) (*glamour.TermRenderer, error) {
	if width <= 0 {
		width = 80
	}

	return glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
}

// renders markdown, falling back to the raw text when rendering fails
func renderMarkdown(r *glamour.TermRenderer, md string) string {
	if r == nil {
		return md
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}

	return strings.TrimRight(out, "\n")
}

func sqlMarkdown(statement string) string {
	return "```sql\n" + statement + "\n```"
}

// formats a flattened search response as markdown
func searchMarkdown(engine, query string, resp *search.Response) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s** on `%s`\n\n", query, engine)

	if resp.Summary.SummaryText != "" {
		b.WriteString("> ")
		b.WriteString(strings.ReplaceAll(resp.Summary.SummaryText, "\n", "\n> "))
		b.WriteString("\n\n")
	}

	if len(resp.Results) == 0 {
		b.WriteString("_no results_\n")
		return b.String()
	}

	for i, r := range resp.Results {
		title := r.Title
		if title == "" {
			title = r.ID
		}

		if r.Link != "" {
			fmt.Fprintf(&b, "%d. [%s](%s)\n", i+1, title, r.Link)
		} else {
			fmt.Fprintf(&b, "%d. %s\n", i+1, title)
		}

		for _, s := range r.Snippets {
			fmt.Fprintf(&b, "   - %s\n", s)
		}
	}

	return b.String()
}

func helpMarkdown() string {
	var b strings.Builder

	b.WriteString("| command | description |\n|---|---|\n")
	for _, c := range commandHelp {
		fmt.Fprintf(&b, "| `%s` | %s |\n", c.Usage, c.Description)
	}

	return b.String()
}
