package session

import "time"

// Modal and toast state. Toasts are last-writer-wins: each gets a fresh
// id, a superseding toast stops the previous dismiss timer, and a timer
// only clears the toast if its own id is still the active one.

// OpenModal shows a modal with an optional payload. Only one modal is
// active at a time; opening replaces the current one.
func (s *Session) OpenModal(name string, data any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeModal = name
	s.modalData = data
}

// CloseModal hides the active modal and drops its payload.
func (s *Session) CloseModal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeModal = ""
	s.modalData = nil
}

// ActiveModal returns the active modal name ("" when none) and payload.
func (s *Session) ActiveModal() (string, any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.activeModal, s.modalData
}

// ShowToast displays a toast and auto-dismisses it after d (ToastDuration
// when d <= 0).
func (s *Session) ShowToast(message string, kind ToastKind, d time.Duration) {
	if d <= 0 {
		d = ToastDuration
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toastTimer != nil {
		s.toastTimer.Stop()
	}
	s.toastSeq++
	id := s.toastSeq
	s.toast = &Toast{ID: id, Message: message, Kind: kind}
	s.toastTimer = time.AfterFunc(d, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.toast != nil && s.toast.ID == id {
			s.toast = nil
			s.toastTimer = nil
		}
	})
}

// HideToast dismisses the active toast immediately.
func (s *Session) HideToast() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toastTimer != nil {
		s.toastTimer.Stop()
		s.toastTimer = nil
	}
	s.toast = nil
}

// ActiveToast returns the visible toast, or nil.
func (s *Session) ActiveToast() *Toast {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.toast == nil {
		return nil
	}
	t := *s.toast
	return &t
}
