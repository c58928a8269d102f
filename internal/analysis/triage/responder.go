package triage

import (
	"math/rand"
	"time"
)

// Responder selects a scripted reply for a classified message.
type Responder struct {
	rng *rand.Rand
}

// NewResponder builds a responder around the supplied random source so
// callers (and tests) control pick determinism. A nil source gets a
// time-seeded one.
func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

// Reply returns one reply from the category's pool, chosen uniformly.
// Unknown categories fall back to the default pool, so the result is never
// empty. Not safe for concurrent use; the caller serializes access.
func (r *Responder) Reply(category Category) string {
	pool, ok := replyPools[category]
	if !ok || len(pool) == 0 {
		pool = replyPools[Default]
	}
	return pool[r.rng.Intn(len(pool))]
}

// Respond classifies the input and picks a reply for it in one step.
func (r *Responder) Respond(text string) (Category, string) {
	category := Classify(text)
	return category, r.Reply(category)
}
