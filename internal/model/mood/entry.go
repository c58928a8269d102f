package mood

import "time"

// Level is the five-step mood scale.
type Level string

const (
	Excellent Level = "excellent"
	Good      Level = "good"
	Okay      Level = "okay"
	Low       Level = "low"
	Difficult Level = "difficult"
)

// Valid reports whether the level is one of the known steps.
func (l Level) Valid() bool {
	switch l {
	case Excellent, Good, Okay, Low, Difficult:
		return true
	}
	return false
}

// Entry is one calendar day's mood log. The storage key derives from the
// date, so a second save on the same day overwrites the first.
type Entry struct {
	ID    string    `json:"id"`
	Mood  Level     `json:"mood"`
	Notes string    `json:"notes,omitempty"`
	Date  time.Time `json:"date"`
}

// KeyPrefix namespaces mood entries in the key-value store.
const KeyPrefix = "mood_"

// Key derives the per-day storage key. The date layout sorts
// chronologically, which keeps prefix listings in order.
func Key(t time.Time) string {
	return KeyPrefix + t.Format("2006-01-02")
}
