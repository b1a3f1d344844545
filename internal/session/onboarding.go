package session

import (
	"os"
	"path/filepath"
)

// Onboarding is a one-time flag kept outside the session: once the
// intro slides have been seen, a marker file under the user config dir
// remembers it across runs. This is the only state the editor persists.

const onboardingMarker = "onboarding-done"

func markerPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "atelier", onboardingMarker), nil
}

// OnboardingSeen reports whether the onboarding has been completed on
// this machine. Errors reading the marker count as "not seen".
func OnboardingSeen() bool {
	path, err := markerPath()
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// MarkOnboardingSeen records that onboarding was completed or skipped.
func MarkOnboardingSeen() error {
	path, err := markerPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte("1\n"), 0o644)
}

// ResetOnboarding removes the marker so the slides show again.
func ResetOnboarding() error {
	path, err := markerPath()
	if err != nil {
		return err
	}
	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
