package wellness

// Game is a breathing/grounding mini-exercise. Completed and Rating are
// the user's progress, persisted separately from the static catalog.
type Game struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"` // anxiety-relief, focus, stress-management, sleep-aid
	Duration    int     `json:"duration"` // minutes
	Difficulty  string  `json:"difficulty"`
	Completed   bool    `json:"completed"`
	Rating      float64 `json:"rating"`
}

// Sound is an ambient-audio catalog entry.
type Sound struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Category    string `json:"category"` // nature, white-noise, binaural, meditation
	URL         string `json:"url"`
	Duration    int    `json:"duration"` // seconds
	Description string `json:"description"`
}

// GameProgressKey holds per-game completion/rating state.
const GameProgressKey = "game_progress"

// Games returns the built-in exercise catalog.
func Games() []Game {
	return []Game{
		{ID: "1", Title: "4-7-8 Breathing Exercise", Description: "A calming breathing technique to reduce anxiety and promote relaxation", Category: "anxiety-relief", Duration: 5, Difficulty: "beginner"},
		{ID: "2", Title: "Box Breathing Challenge", Description: "Military-style breathing technique for focus and stress management", Category: "focus", Duration: 10, Difficulty: "intermediate"},
		{ID: "3", Title: "Progressive Muscle Relaxation", Description: "Systematic tension and release of muscle groups for deep relaxation", Category: "stress-management", Duration: 15, Difficulty: "beginner"},
		{ID: "4", Title: "Mindful Body Scan", Description: "Guide your attention through your body for awareness and relaxation", Category: "sleep-aid", Duration: 20, Difficulty: "intermediate"},
		{ID: "5", Title: "5-4-3-2-1 Grounding", Description: "Use your senses to ground yourself in the present moment", Category: "anxiety-relief", Duration: 8, Difficulty: "beginner"},
		{ID: "6", Title: "Visualization Journey", Description: "Guided imagery for stress relief and mental escape", Category: "stress-management", Duration: 12, Difficulty: "advanced"},
	}
}

// Sounds returns the built-in ambient audio catalog.
func Sounds() []Sound {
	return []Sound{
		{ID: "1", Title: "Ocean Waves", Category: "nature", URL: "/sounds/Ocean Waves.mp3", Duration: 300, Description: "Gentle ocean waves for relaxation and focus"},
		{ID: "2", Title: "Forest Birds", Category: "nature", URL: "/sounds/Forest Birds.mp3", Duration: 480, Description: "Peaceful bird songs from a serene forest"},
		{ID: "3", Title: "Pink Noise", Category: "white-noise", URL: "/sounds/Pink Noise.mp3", Duration: 1800, Description: "Balanced pink noise for better sleep"},
		{ID: "4", Title: "Relaxation Binaurals", Category: "binaural", URL: "/sounds/Relaxation Binaurals.mp3", Duration: 1200, Description: "10Hz alpha waves for deep relaxation"},
	}
}

// FindSound looks up a catalog entry by identifier.
func FindSound(id string) (Sound, bool) {
	for _, s := range Sounds() {
		if s.ID == id {
			return s, true
		}
	}
	return Sound{}, false
}

// FindGame looks up a catalog entry by identifier.
func FindGame(id string) (Game, bool) {
	for _, g := range Games() {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}
