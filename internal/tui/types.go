package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/glamour"

	"codeberg.org/vertexgate/server/internal/search"
)

// one chat turn sent to the gateway
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type entryKind int

const (
	entryUser entryKind = iota
	entryModel
	entrySystem
	entryError
)

// one block of the on-screen transcript
type entry struct {
	kind  entryKind
	label string
	body  string
}

// main TUI application model
type Model struct {
	client   *Client
	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	renderer *glamour.TermRenderer

	// turns sent with every chat request
	transcript []Message
	entries    []entry

	model      string
	useBison   bool
	isFetching bool
	width      int
	height     int
}

// sent when a chat turn completes
type chatReplyMsg struct {
	source  string
	content string
}

// sent when /sql completes
type sqlReplyMsg struct {
	statement string
}

// sent when /search completes
type searchReplyMsg struct {
	engine string
	query  string
	resp   *search.Response
}

// sent when any gateway request fails
type requestErrorMsg struct {
	err error
	// drop the pending user turn from the transcript
	rollback bool
}
