// Package tui is the terminal presentation layer over the editor core:
// a section sidebar, a chat pane wired to the assistant, and the
// keyboard map of the original editor (undo/redo/export/clear).
package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atelier-studio/atelier/internal/assistant"
	"github.com/atelier-studio/atelier/internal/config"
	"github.com/atelier-studio/atelier/internal/editor"
	"github.com/atelier-studio/atelier/internal/export"
	"github.com/atelier-studio/atelier/internal/session"
)

// chatEntry is one line of the chat transcript.
type chatEntry struct {
	fromUser bool
	text     string
}

// Model is the bubbletea model for one editing session.
type Model struct {
	store    *editor.Store
	resolver *assistant.Resolver
	sess     *session.Session
	cfg      *config.Config

	width  int
	height int

	cursor      int
	input       string
	transcript  []chatEntry
	suggestions []string
	pendingText string
}

// replyMsg fires when the artificial thinking delay elapses; only then
// is the pending utterance resolved and its mutation applied.
type replyMsg struct{ text string }

// tickMsg drives the periodic redraw that surfaces timer-cleared state
// (toasts, highlight pulses).
type tickMsg struct{}

// New builds the TUI over an existing store and session.
func New(store *editor.Store, sess *session.Session, cfg *config.Config) Model {
	return Model{
		store:       store,
		resolver:    assistant.New(store),
		sess:        sess,
		cfg:         cfg,
		transcript:  []chatEntry{{text: assistant.Greeting()}},
		suggestions: []string{"Couleurs", "Layout", "Aide"},
	}
}

// Init starts the redraw ticker.
func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg { return tickMsg{} })
}

// Update handles input and timer messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		return m, tick()

	case replyMsg:
		m.sess.SetThinking(false)
		m.pendingText = ""
		reply := m.resolver.Resolve(msg.text, m.sess.ActiveSection())
		m.transcript = append(m.transcript, chatEntry{text: reply.Message})
		m.suggestions = reply.Suggestions
		if reply.Action != assistant.ActionNone {
			m.sess.HighlightSection(m.sess.ActiveSection())
			m.sess.SetMood("success")
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		if m.input != "" {
			m.input = ""
			return m, nil
		}
		m.cursor = -1
		m.sess.ClearSelection()
		return m, nil

	case "up", "ctrl+p":
		if m.input == "" {
			m.moveCursor(-1)
		}
		return m, nil

	case "down", "ctrl+n":
		if m.input == "" {
			m.moveCursor(1)
		}
		return m, nil

	case "ctrl+z":
		if m.store.Undo() {
			m.sess.ShowToast("↩️ Annulé", session.ToastInfo, 0)
		} else {
			m.sess.ShowToast("Rien à annuler", session.ToastInfo, 0)
		}
		return m, nil

	case "ctrl+y":
		if m.store.Redo() {
			m.sess.ShowToast("↪️ Rétabli", session.ToastInfo, 0)
		} else {
			m.sess.ShowToast("Rien à rétablir", session.ToastInfo, 0)
		}
		return m, nil

	case "ctrl+t":
		m.sess.ToggleMode()
		return m, nil

	case "ctrl+e":
		m.exportFiles()
		return m, nil

	case "ctrl+h":
		if active := m.sess.ActiveSection(); active != "" {
			visible := m.store.Document().Visible(active)
			if err := m.store.SetVisibility(active, !visible); err == nil {
				m.sess.ShowToast("Visibilité basculée", session.ToastSuccess, 0)
			}
		}
		return m, nil

	case "enter":
		return m.send()

	case "backspace":
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
		return m, nil

	default:
		// KeySpace arrives with its rune already in msg.Runes.
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			m.input += string(msg.Runes)
		}
		return m, nil
	}
}

func (m *Model) moveCursor(delta int) {
	order := m.store.Document().SectionsOrder
	if len(order) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(order) {
		m.cursor = len(order) - 1
	}
	m.sess.SetActiveSection(order[m.cursor])
}

// send queues the current input behind the thinking delay. Send is
// disabled while a reply is pending; everything else stays live.
func (m Model) send() (tea.Model, tea.Cmd) {
	if m.input == "" || m.sess.Thinking() {
		return m, nil
	}
	text := m.input
	m.input = ""
	m.pendingText = text
	m.transcript = append(m.transcript, chatEntry{fromUser: true, text: text})
	m.sess.SetThinking(true)

	delay := assistant.ThinkingDelay(
		time.Duration(m.cfg.Thinking.BaseMs)*time.Millisecond,
		time.Duration(m.cfg.Thinking.JitterMs)*time.Millisecond,
	)
	return m, tea.Tick(delay, func(time.Time) tea.Msg { return replyMsg{text: text} })
}

func (m *Model) exportFiles() {
	name := m.store.Document().Meta.Name
	if name == "" {
		name = "atelier-site"
	}

	data, err := m.store.ExportJSON()
	if err != nil {
		m.sess.ShowToast("Erreur d'export", session.ToastError, 0)
		return
	}
	if err := os.WriteFile(name+".json", data, 0o644); err != nil {
		m.sess.ShowToast("Erreur d'export", session.ToastError, 0)
		return
	}

	page, err := export.GenerateHTML(m.store.Document())
	if err != nil {
		m.sess.ShowToast("Erreur d'export", session.ToastError, 0)
		return
	}
	if err := os.WriteFile(name+".html", []byte(page), 0o644); err != nil {
		m.sess.ShowToast("Erreur d'export", session.ToastError, 0)
		return
	}

	m.sess.ShowToast(fmt.Sprintf("📦 %s.json + %s.html exportés !", name, name), session.ToastSuccess, 0)
}
