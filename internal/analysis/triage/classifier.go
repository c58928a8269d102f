package triage

import "strings"

// Category labels a support-chat message's intent for reply selection.
type Category string

const (
	Greeting     Category = "greeting"
	Stress       Category = "stress"
	Academic     Category = "academic"
	Sleep        Category = "sleep"
	Loneliness   Category = "loneliness"
	Crisis       Category = "crisis"
	MentalHealth Category = "mentalHealth"
	Motivation   Category = "motivation"
	Focus        Category = "focus"
	Default      Category = "default"
)

type rule struct {
	category Category
	keywords []string
}

// rules are evaluated top to bottom and the first containment match wins.
// Crisis sits first so self-harm language is never masked by a co-occurring
// lower-priority keyword ("I'm stressed and want to end it" must escalate).
// The rest of the order mirrors the product's scripted assistant, including
// stress being checked before academic.
var rules = []rule{
	{Crisis, []string{"suicide", "hurt myself", "end it", "kill myself"}},
	{Greeting, []string{"hi", "hello", "hey"}},
	{Stress, []string{"stress", "anxious", "anxiety", "overwhelmed", "panic"}},
	{Academic, []string{"exam", "test", "study", "academic", "grades", "assignment"}},
	{Sleep, []string{"sleep", "insomnia", "tired", "exhausted", "can't sleep"}},
	{Loneliness, []string{"lonely", "alone", "friends", "social", "isolated", "homesick"}},
	{MentalHealth, []string{"depression", "sad", "down", "mental health", "therapy"}},
	{Motivation, []string{"motivation", "lazy", "procrastination", "self-care", "routine"}},
	{Focus, []string{"focus", "concentration", "distracted", "adhd"}},
}

// Classify maps free text to exactly one category. Matching is plain
// lower-cased substring containment with no tokenization or stemming.
// Text that matches nothing falls through to Default.
func Classify(text string) Category {
	normalized := strings.ToLower(text)
	for _, r := range rules {
		for _, keyword := range r.keywords {
			if strings.Contains(normalized, keyword) {
				return r.category
			}
		}
	}
	return Default
}

// Categories returns every category in evaluation order, Default last.
func Categories() []Category {
	out := make([]Category, 0, len(rules)+1)
	for _, r := range rules {
		out = append(out, r.category)
	}
	return append(out, Default)
}
