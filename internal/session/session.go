// Package session holds the ephemeral UI state of one editing session:
// selection, assistant panel state, transient highlights, modal and
// toast. None of it is serialized; a reload starts from defaults.
package session

import (
	"sync"
	"time"
)

// Mode is the editor display mode.
type Mode string

const (
	ModeEdit    Mode = "edit"
	ModePreview Mode = "preview"
)

// Tab identifies the assistant panel tab.
type Tab string

const (
	TabChat    Tab = "chat"
	TabContent Tab = "content"
	TabLayout  Tab = "layout"
)

// ToastKind classifies a toast message.
type ToastKind string

const (
	ToastSuccess ToastKind = "success"
	ToastError   ToastKind = "error"
	ToastInfo    ToastKind = "info"
)

// Toast is the single active toast, if any.
type Toast struct {
	ID      int64
	Message string
	Kind    ToastKind
}

// Durations for the auto-clearing state. Highlights pulse for two
// seconds, field highlights a bit longer, toasts dismiss after three.
const (
	HighlightDuration      = 2 * time.Second
	FieldHighlightDuration = 3 * time.Second
	ToastDuration          = 3 * time.Second
)

// Session is the per-editing-session UI state. Timer callbacks fire on
// their own goroutines, so access is mutex-guarded even though the rest
// of the system is single-threaded.
type Session struct {
	mu sync.Mutex

	activeSection      string
	hoveredSection     string
	highlightedSection string
	highlightedField   string
	highlightTimer     *time.Timer
	fieldTimer         *time.Timer

	mode          Mode
	previewDevice string

	assistantOpen     bool
	assistantThinking bool
	assistantMood     string
	assistantTab      Tab

	activeModal string
	modalData   any

	toast      *Toast
	toastTimer *time.Timer
	toastSeq   int64
}

// New returns a session with the original defaults: edit mode, desktop
// preview, assistant open on the chat tab.
func New() *Session {
	return &Session{
		mode:          ModeEdit,
		previewDevice: "desktop",
		assistantOpen: true,
		assistantMood: "idle",
		assistantTab:  TabChat,
	}
}

// SetActiveSection selects a section for editing and resets the
// assistant tab to chat: switching sections discards any in-progress
// sub-panel focus.
func (s *Session) SetActiveSection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeSection = id
	s.assistantTab = TabChat
}

// ActiveSection returns the id of the selected section, or "".
func (s *Session) ActiveSection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeSection
}

// SetHoveredSection tracks the section under the pointer.
func (s *Session) SetHoveredSection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hoveredSection = id
}

// HoveredSection returns the hovered section id, or "".
func (s *Session) HoveredSection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hoveredSection
}

// ClearSelection drops both the active and hovered section and resets
// the assistant tab to chat.
func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeSection = ""
	s.hoveredSection = ""
	s.assistantTab = TabChat
}

// HighlightSection pulses a highlight on the section and auto-clears it
// after HighlightDuration. A superseding call cancels the previous
// timer; the callback additionally checks it is still the latest
// highlight before clearing.
func (s *Session) HighlightSection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.highlightTimer != nil {
		s.highlightTimer.Stop()
	}
	s.highlightedSection = id
	s.highlightTimer = time.AfterFunc(HighlightDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.highlightedSection == id {
			s.highlightedSection = ""
			s.highlightTimer = nil
		}
	})
}

// HighlightedSection returns the currently pulsing section id, or "".
func (s *Session) HighlightedSection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlightedSection
}

// HighlightField pulses a highlight on a single input field.
func (s *Session) HighlightField(fieldID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fieldTimer != nil {
		s.fieldTimer.Stop()
	}
	s.highlightedField = fieldID
	s.fieldTimer = time.AfterFunc(FieldHighlightDuration, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.highlightedField == fieldID {
			s.highlightedField = ""
			s.fieldTimer = nil
		}
	})
}

// HighlightedField returns the currently pulsing field id, or "".
func (s *Session) HighlightedField() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.highlightedField
}

// SetMode switches between edit and preview.
func (s *Session) SetMode(m Mode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = m
}

// ToggleMode flips between edit and preview.
func (s *Session) ToggleMode() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mode == ModeEdit {
		s.mode = ModePreview
	} else {
		s.mode = ModeEdit
	}
}

// Mode returns the current display mode.
func (s *Session) Mode() Mode {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mode
}

// SetPreviewDevice selects the preview viewport ("desktop", "mobile").
func (s *Session) SetPreviewDevice(device string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.previewDevice = device
}

// PreviewDevice returns the preview viewport name.
func (s *Session) PreviewDevice() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.previewDevice
}
