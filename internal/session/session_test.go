package session

import (
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	s := New()
	if s.Mode() != ModeEdit {
		t.Errorf("mode = %q, want edit", s.Mode())
	}
	if s.PreviewDevice() != "desktop" {
		t.Errorf("previewDevice = %q, want desktop", s.PreviewDevice())
	}
	if !s.AssistantOpen() {
		t.Error("assistant should start open")
	}
	if s.Tab() != TabChat {
		t.Errorf("tab = %q, want chat", s.Tab())
	}
	if s.Mood() != "idle" {
		t.Errorf("mood = %q, want idle", s.Mood())
	}
	if s.ActiveSection() != "" || s.HighlightedSection() != "" {
		t.Error("no section should be selected or highlighted at start")
	}
}

func TestSetActiveSectionResetsTab(t *testing.T) {
	s := New()
	s.SetTab(TabLayout)

	s.SetActiveSection("hero_1")

	if s.ActiveSection() != "hero_1" {
		t.Errorf("activeSection = %q", s.ActiveSection())
	}
	if s.Tab() != TabChat {
		t.Errorf("tab = %q, selecting a section must reset to chat", s.Tab())
	}
}

func TestClearSelection(t *testing.T) {
	s := New()
	s.SetActiveSection("hero_1")
	s.SetHoveredSection("features_abc")
	s.SetTab(TabContent)

	s.ClearSelection()

	if s.ActiveSection() != "" || s.HoveredSection() != "" {
		t.Error("ClearSelection must drop both active and hovered sections")
	}
	if s.Tab() != TabChat {
		t.Errorf("tab = %q, want chat after clear", s.Tab())
	}
}

func TestHighlightSupersession(t *testing.T) {
	s := New()

	s.HighlightSection("hero_1")
	s.HighlightSection("features_abc")

	if got := s.HighlightedSection(); got != "features_abc" {
		t.Errorf("highlighted = %q, want features_abc", got)
	}

	s.HighlightField("title")
	s.HighlightField("subtitle")
	if got := s.HighlightedField(); got != "subtitle" {
		t.Errorf("highlighted field = %q, want subtitle", got)
	}
}

func TestToggleMode(t *testing.T) {
	s := New()
	s.ToggleMode()
	if s.Mode() != ModePreview {
		t.Errorf("mode = %q after toggle, want preview", s.Mode())
	}
	s.ToggleMode()
	if s.Mode() != ModeEdit {
		t.Errorf("mode = %q after second toggle, want edit", s.Mode())
	}
}

func TestThinkingDrivesMood(t *testing.T) {
	s := New()
	s.SetThinking(true)
	if !s.Thinking() || s.Mood() != "thinking" {
		t.Errorf("thinking=%v mood=%q, want true/thinking", s.Thinking(), s.Mood())
	}
	s.SetThinking(false)
	if s.Thinking() || s.Mood() != "idle" {
		t.Errorf("thinking=%v mood=%q, want false/idle", s.Thinking(), s.Mood())
	}
}

func TestModalLifecycle(t *testing.T) {
	s := New()
	s.OpenModal("export", map[string]string{"format": "html"})

	name, data := s.ActiveModal()
	if name != "export" {
		t.Errorf("modal = %q, want export", name)
	}
	if data == nil {
		t.Error("modal payload lost")
	}

	s.OpenModal("onboarding", nil)
	name, _ = s.ActiveModal()
	if name != "onboarding" {
		t.Errorf("modal = %q, opening must replace the current one", name)
	}

	s.CloseModal()
	name, data = s.ActiveModal()
	if name != "" || data != nil {
		t.Error("CloseModal must clear name and payload")
	}
}

func TestToastAutoDismiss(t *testing.T) {
	s := New()
	s.ShowToast("exporté !", ToastSuccess, 20*time.Millisecond)

	toast := s.ActiveToast()
	if toast == nil || toast.Message != "exporté !" || toast.Kind != ToastSuccess {
		t.Fatalf("toast = %+v", toast)
	}

	time.Sleep(60 * time.Millisecond)
	if s.ActiveToast() != nil {
		t.Error("toast should auto-dismiss after its duration")
	}
}

func TestToastSupersessionIsLastWriterWins(t *testing.T) {
	s := New()
	s.ShowToast("premier", ToastInfo, 20*time.Millisecond)
	s.ShowToast("second", ToastInfo, 200*time.Millisecond)

	// Past the first toast's deadline: its timer was stopped, and even a
	// stale fire would see a different id and leave the second alone.
	time.Sleep(60 * time.Millisecond)
	toast := s.ActiveToast()
	if toast == nil || toast.Message != "second" {
		t.Fatalf("toast = %+v, want the superseding toast still visible", toast)
	}

	time.Sleep(200 * time.Millisecond)
	if s.ActiveToast() != nil {
		t.Error("second toast should dismiss after its own duration")
	}
}

func TestHideToast(t *testing.T) {
	s := New()
	s.ShowToast("annulé", ToastError, time.Minute)
	s.HideToast()
	if s.ActiveToast() != nil {
		t.Error("HideToast must dismiss immediately")
	}
}

func TestActiveToastReturnsCopy(t *testing.T) {
	s := New()
	s.ShowToast("copie", ToastInfo, time.Minute)

	got := s.ActiveToast()
	got.Message = "mutée"

	if s.ActiveToast().Message != "copie" {
		t.Error("mutating the returned toast must not affect session state")
	}
}

func TestSwitchToTabAndHighlight(t *testing.T) {
	s := New()
	s.SwitchToTabAndHighlight(TabContent, "hero_1-title")

	if s.Tab() != TabContent {
		t.Errorf("tab = %q, want content", s.Tab())
	}
	if s.HighlightedField() != "hero_1-title" {
		t.Errorf("highlighted field = %q", s.HighlightedField())
	}

	s.SwitchToTabAndHighlight(TabLayout, "")
	if s.HighlightedField() != "hero_1-title" {
		t.Error("empty field id must not clear the current highlight")
	}
}
