package session

// Assistant panel state: open/closed, the artificial thinking flag, the
// mood driving the avatar, and the active tab.

// SetAssistantOpen shows or hides the assistant panel.
func (s *Session) SetAssistantOpen(open bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assistantOpen = open
}

// ToggleAssistant flips the assistant panel.
func (s *Session) ToggleAssistant() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assistantOpen = !s.assistantOpen
}

// AssistantOpen reports whether the panel is shown.
func (s *Session) AssistantOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assistantOpen
}

// SetThinking flags the artificial reply delay. The mood follows:
// thinking while set, idle when cleared.
func (s *Session) SetThinking(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assistantThinking = v
	if v {
		s.assistantMood = "thinking"
	} else {
		s.assistantMood = "idle"
	}
}

// Thinking reports whether a reply delay is pending. The UI disables
// send while true; the document stays mutable through other entry
// points.
func (s *Session) Thinking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assistantThinking
}

// SetMood sets the avatar mood directly.
func (s *Session) SetMood(mood string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assistantMood = mood
}

// Mood returns the avatar mood.
func (s *Session) Mood() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assistantMood
}

// SetTab switches the assistant panel tab.
func (s *Session) SetTab(t Tab) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assistantTab = t
}

// Tab returns the active assistant tab.
func (s *Session) Tab() Tab {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.assistantTab
}

// SwitchToTabAndHighlight switches tab and optionally pulses a field.
func (s *Session) SwitchToTabAndHighlight(t Tab, fieldID string) {
	s.SetTab(t)
	if fieldID != "" {
		s.HighlightField(fieldID)
	}
}
