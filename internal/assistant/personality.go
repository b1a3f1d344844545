package assistant

import (
	"math/rand"
	"time"
)

// The assistant's voice: playful, short, emoji-forward. Picks are
// random on purpose; none of this feeds back into resolution.

var greetings = []string{
	"Coucou ! 🌟 Je suis là pour t'aider !",
	"Hello ! ✨ Prête à créer quelque chose de génial ensemble ?",
	"Hey ! 🫧 Comment je peux t'aider aujourd'hui ?",
	"Salut ! 🎨 On crée une landing page qui déchire ?",
}

var encouragements = []string{
	"Super choix ! 🎯",
	"J'adore cette idée ! ✨",
	"Excellent ! 🚀",
	"On est sur la bonne voie ! 💪",
}

var moodEmojis = map[string][]string{
	"happy":    {"🌟", "✨", "🎉", "💫", "🚀"},
	"thinking": {"🤔", "💭", "🧐"},
	"success":  {"🎉", "✅", "🙌", "💪"},
	"creative": {"🎨", "✏️", "💡", "🌈"},
}

// Greeting returns a random opening line.
func Greeting() string {
	return greetings[rand.Intn(len(greetings))]
}

// Encouragement returns a random cheer.
func Encouragement() string {
	return encouragements[rand.Intn(len(encouragements))]
}

// MoodEmoji returns a random emoji for the given mood, defaulting to
// the happy set.
func MoodEmoji(mood string) string {
	set, ok := moodEmojis[mood]
	if !ok {
		set = moodEmojis["happy"]
	}
	return set[rand.Intn(len(set))]
}

// ThinkingDelay returns the artificial pause inserted before a reply is
// shown: a fixed base plus uniform jitter. Purely perceived latency;
// the document stays mutable through other entry points while it runs.
func ThinkingDelay(base, jitter time.Duration) time.Duration {
	if base < 0 {
		base = 0
	}
	if jitter <= 0 {
		return base
	}
	return base + time.Duration(rand.Int63n(int64(jitter)))
}
