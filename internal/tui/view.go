package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/atelier-studio/atelier/internal/session"
	"github.com/atelier-studio/atelier/internal/site"
)

var (
	sidebarStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Width(26)

	activeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	highlightStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	hiddenStyle    = lipgloss.NewStyle().Faint(true)
	userStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	chipStyle      = lipgloss.NewStyle().Faint(true)
	toastStyles    = map[session.ToastKind]lipgloss.Style{
		session.ToastSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		session.ToastError:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		session.ToastInfo:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	}
	statusStyle = lipgloss.NewStyle().Faint(true)
)

// View renders the sidebar, chat pane and status line.
func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), m.viewChat()),
		m.viewStatus(),
	)
}

func (m Model) viewSidebar() string {
	doc := m.store.Document()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🫧 %s\n\n", doc.Meta.Name))

	active := m.sess.ActiveSection()
	highlighted := m.sess.HighlightedSection()
	for _, id := range doc.SectionsOrder {
		sec := doc.Sections[id]
		if sec == nil {
			continue
		}
		line := site.Label(sec.Type)
		switch {
		case id == highlighted:
			line = highlightStyle.Render("✨ " + line)
		case id == active:
			line = activeStyle.Render("▸ " + line)
		default:
			line = "  " + line
		}
		if !doc.Visible(id) {
			line = hiddenStyle.Render(line + " (masqué)")
		}
		b.WriteString(line + "\n")
	}

	if m.sess.Mode() == session.ModePreview {
		b.WriteString("\n" + statusStyle.Render("— aperçu —"))
	}
	return sidebarStyle.Render(b.String())
}

func (m Model) viewChat() string {
	var b strings.Builder

	shown := m.transcript
	if max := m.chatLines(); len(shown) > max {
		shown = shown[len(shown)-max:]
	}
	for _, e := range shown {
		if e.fromUser {
			b.WriteString(userStyle.Render("toi › "+e.text) + "\n")
		} else {
			b.WriteString(e.text + "\n")
		}
	}

	if m.sess.Thinking() {
		b.WriteString(statusStyle.Render("… réfléchit …") + "\n")
	} else if len(m.suggestions) > 0 {
		b.WriteString(chipStyle.Render("["+strings.Join(m.suggestions, "] [")+"]") + "\n")
	}

	b.WriteString("\n› " + m.input + "█")
	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (m Model) chatLines() int {
	if m.height <= 8 {
		return 10
	}
	return m.height - 8
}

func (m Model) viewStatus() string {
	var parts []string
	if t := m.sess.ActiveToast(); t != nil {
		parts = append(parts, toastStyles[t.Kind].Render(t.Message))
	}
	parts = append(parts, statusStyle.Render("↑/↓ sections · entrée envoyer · ^Z annuler · ^Y rétablir · ^E exporter · ^H masquer · ^C quitter"))
	return strings.Join(parts, "  ")
}
