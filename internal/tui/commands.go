package tui

import (
	"fmt"
	"strings"
)

type CommandKind int

const (
	CommandChat CommandKind = iota
	CommandModel
	CommandBison
	CommandSQL
	CommandSearch
	CommandClear
	CommandHelp
	CommandQuit
)

// one parsed line of user input
type Command struct {
	Kind   CommandKind
	Text   string
	Engine string
}

// lists slash commands for the help view
var commandHelp = []struct {
	Usage       string
	Description string
}{
	{"/model <name>", "switch Gemini model (gemini-1.0-pro, gemini-1.5-pro)"},
	{"/bison", "toggle chat-bison for chat turns"},
	{"/sql <question>", "generate a BigQuery statement"},
	{"/search <engine> <query>", "query a search engine"},
	{"/clear", "reset the conversation"},
	{"/help", "show this list"},
	{"/quit", "exit"},
}

// turns a line of input into a command; plain text is a chat turn
func ParseCommand(line string) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, fmt.Errorf("nothing to send")
	}

	if !strings.HasPrefix(line, "/") {
		return Command{Kind: CommandChat, Text: line}, nil
	}

	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch name {
	case "/model":
		if rest == "" {
			return Command{}, fmt.Errorf("usage: /model <name>")
		}
		return Command{Kind: CommandModel, Text: rest}, nil

	case "/bison":
		return Command{Kind: CommandBison}, nil

	case "/sql":
		if rest == "" {
			return Command{}, fmt.Errorf("usage: /sql <question>")
		}
		return Command{Kind: CommandSQL, Text: rest}, nil

	case "/search":
		engine, query, _ := strings.Cut(rest, " ")
		query = strings.TrimSpace(query)
		if engine == "" || query == "" {
			return Command{}, fmt.Errorf("usage: /search <engine> <query>")
		}
		return Command{Kind: CommandSearch, Engine: engine, Text: query}, nil

	case "/clear":
		return Command{Kind: CommandClear}, nil

	case "/help":
		return Command{Kind: CommandHelp}, nil

	case "/quit", "/exit":
		return Command{Kind: CommandQuit}, nil

	default:
		return Command{}, fmt.Errorf("unknown command: %s", name)
	}
}
