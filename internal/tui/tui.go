package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"codeberg.org/vertexgate/server/internal/llm"
)

const (
	headerHeight = 3
	footerHeight = 5
)

func NewApp(client *Client) *Model {
	ti := textinput.New()
	ti.Placeholder = "ask something, or /help"
	ti.Focus()
	ti.CharLimit = 0
	ti.Width = 80
	ti.Prompt = "> "
	ti.PromptStyle = lipgloss.NewStyle().Foreground(colorLightGray)
	ti.TextStyle = lipgloss.NewStyle().Foreground(colorWhite)

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(colorBlue)

	renderer, _ := newRenderer(80) //nolint:errcheck // nil renderer prints raw text

	return &Model{
		client:   client,
		input:    ti,
		viewport: viewport.New(80, 20),
		spinner:  s,
		renderer: renderer,
		model:    string(llm.ModelGemini10Pro),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+l":
			m.clear()
			return m, nil

		case "enter":
			if m.isFetching {
				return m, nil
			}
			line := m.input.Value()
			m.input.SetValue("")
			return m, m.submit(line)
		}

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		if !m.isFetching {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case chatReplyMsg:
		m.isFetching = false
		m.transcript = append(m.transcript, Message{Role: llm.RoleAssistant, Content: msg.content})
		m.push(entryModel, msg.source, msg.content)
		return m, nil

	case sqlReplyMsg:
		m.isFetching = false
		m.push(entrySystem, "sql", sqlMarkdown(msg.statement))
		return m, nil

	case searchReplyMsg:
		m.isFetching = false
		m.push(entrySystem, "search", searchMarkdown(msg.engine, msg.query, msg.resp))
		return m, nil

	case requestErrorMsg:
		m.isFetching = false
		if msg.rollback && len(m.transcript) > 0 {
			m.transcript = m.transcript[:len(m.transcript)-1]
		}
		m.push(entryError, "error", msg.err.Error())
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// parses a line of input and starts the matching request
func (m *Model) submit(line string) tea.Cmd {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	command, err := ParseCommand(line)
	if err != nil {
		m.push(entryError, "error", err.Error())
		return nil
	}

	switch command.Kind {
	case CommandQuit:
		return tea.Quit

	case CommandClear:
		m.clear()
		return nil

	case CommandHelp:
		m.push(entrySystem, "help", helpMarkdown())
		return nil

	case CommandModel:
		if _, err := llm.ResolveModel(command.Text); err != nil {
			m.push(entryError, "error", err.Error())
			return nil
		}
		m.model = command.Text
		m.useBison = false
		m.push(entrySystem, "model", "now chatting with `"+m.model+"`")
		return nil

	case CommandBison:
		m.useBison = !m.useBison
		m.push(entrySystem, "model", "now chatting with `"+m.chatTarget()+"`")
		return nil

	case CommandSQL:
		m.push(entryUser, "you", line)
		return m.startRequest(m.sqlCmd(command.Text))

	case CommandSearch:
		m.push(entryUser, "you", line)
		return m.startRequest(m.searchCmd(command.Engine, command.Text))

	default:
		m.transcript = append(m.transcript, Message{Role: llm.RoleUser, Content: command.Text})
		m.push(entryUser, "you", command.Text)
		return m.startRequest(m.chatCmd())
	}
}

func (m *Model) startRequest(cmd tea.Cmd) tea.Cmd {
	m.isFetching = true
	return tea.Batch(cmd, m.spinner.Tick)
}

func (m *Model) chatTarget() string {
	if m.useBison {
		return llm.BisonModel
	}

	return m.model
}

// copies the transcript; the returned command runs on another goroutine
func (m *Model) chatCmd() tea.Cmd {
	messages := make([]Message, len(m.transcript))
	copy(messages, m.transcript)

	client := m.client
	model := m.model
	useBison := m.useBison
	source := m.chatTarget()

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		var (
			reply string
			err   error
		)

		if useBison {
			reply, err = client.Bison(ctx, messages)
		} else {
			reply, err = client.Gemini(ctx, model, messages)
		}

		if err != nil {
			return requestErrorMsg{err: err, rollback: true}
		}

		return chatReplyMsg{source: source, content: reply}
	}
}

func (m *Model) sqlCmd(query string) tea.Cmd {
	client := m.client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		statement, err := client.SQL(ctx, query)
		if err != nil {
			return requestErrorMsg{err: err}
		}

		return sqlReplyMsg{statement: statement}
	}
}

func (m *Model) searchCmd(engine, query string) tea.Cmd {
	client := m.client

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		resp, err := client.Search(ctx, engine, query)
		if err != nil {
			return requestErrorMsg{err: err}
		}

		return searchReplyMsg{engine: engine, query: query, resp: resp}
	}
}

func (m *Model) clear() {
	m.transcript = nil
	m.entries = nil
	m.isFetching = false
	m.refresh()
}

func (m *Model) push(kind entryKind, label, body string) {
	m.entries = append(m.entries, entry{kind: kind, label: label, body: body})
	m.refresh()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.input.Width = max(10, width-8)

	m.viewport.Width = width
	m.viewport.Height = max(1, height-headerHeight-footerHeight)

	if r, err := newRenderer(width - 4); err == nil {
		m.renderer = r
	}

	m.refresh()
}

func (m *Model) refresh() {
	m.viewport.SetContent(m.renderTranscript())
	m.viewport.GotoBottom()
}

func (m *Model) renderTranscript() string {
	var b strings.Builder

	for _, e := range m.entries {
		switch e.kind {
		case entryUser:
			b.WriteString(userLabelStyle.Render(e.label))
			b.WriteString("\n")
			b.WriteString(e.body)
		case entryModel:
			b.WriteString(modelLabelStyle.Render(e.label))
			b.WriteString("\n")
			b.WriteString(renderMarkdown(m.renderer, e.body))
		case entrySystem:
			b.WriteString(systemLabelStyle.Render(e.label))
			b.WriteString("\n")
			b.WriteString(renderMarkdown(m.renderer, e.body))
		case entryError:
			b.WriteString(errorStyle.Render(e.label + ": " + e.body))
		}
		b.WriteString("\n\n")
	}

	return b.String()
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("vertexgate"))
	b.WriteString(statusStyle.Render(fmt.Sprintf("  %s | %s", m.chatTarget(), m.client.Endpoint())))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(titleStyle.Render(logo))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("type a message and press enter. /help lists commands."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
	}

	width := m.width - 4
	if width <= 0 {
		width = 80
	}
	b.WriteString(inputBoxStyle.Width(width).Render(m.input.View()))
	b.WriteString("\n")

	if m.isFetching {
		b.WriteString(m.spinner.View())
		b.WriteString(statusStyle.Render(" waiting for " + m.chatTarget() + "..."))
	} else {
		b.WriteString(helpStyle.Render("[Enter: Send] [Ctrl+L: Clear] [Ctrl+C: Exit]"))
	}

	return b.String()
}
