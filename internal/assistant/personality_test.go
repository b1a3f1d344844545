package assistant

import (
	"testing"
	"time"
)

func TestThinkingDelayBounds(t *testing.T) {
	base := 600 * time.Millisecond
	jitter := 500 * time.Millisecond
	for i := 0; i < 100; i++ {
		d := ThinkingDelay(base, jitter)
		if d < base || d >= base+jitter {
			t.Fatalf("ThinkingDelay(%v, %v) = %v, want [%v, %v)", base, jitter, d, base, base+jitter)
		}
	}
}

func TestThinkingDelayDegenerateInputs(t *testing.T) {
	if d := ThinkingDelay(time.Second, 0); d != time.Second {
		t.Errorf("zero jitter: got %v, want 1s", d)
	}
	if d := ThinkingDelay(-time.Second, 0); d != 0 {
		t.Errorf("negative base: got %v, want 0", d)
	}
}

func TestMoodEmojiFallsBackToHappy(t *testing.T) {
	happy := map[string]bool{"🌟": true, "✨": true, "🎉": true, "💫": true, "🚀": true}
	for i := 0; i < 20; i++ {
		if e := MoodEmoji("no-such-mood"); !happy[e] {
			t.Fatalf("MoodEmoji fallback returned %q, not from the happy set", e)
		}
	}
}

func TestGreetingNonEmpty(t *testing.T) {
	for i := 0; i < 10; i++ {
		if Greeting() == "" {
			t.Fatal("empty greeting")
		}
		if Encouragement() == "" {
			t.Fatal("empty encouragement")
		}
	}
}
