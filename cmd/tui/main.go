package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"

	"codeberg.org/vertexgate/server/internal/tui"
)

func main() {
	endpoint := flag.String("endpoint", "", "gateway base URL (default $VERTEXGATE_ENDPOINT or http://localhost:8080)")
	flag.Parse()

	if !term.IsTerminal(os.Stdout.Fd()) {
		fmt.Fprintln(os.Stderr, "vertexgate-tui needs an interactive terminal")
		os.Exit(1)
	}

	app := tui.NewApp(tui.NewClient(*endpoint))
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		fmt.Printf("error running vertexgate-tui: %v\n", err)
		os.Exit(1)
	}
}
