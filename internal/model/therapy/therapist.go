package therapy

// Availability describes when a therapist takes bookings.
type Availability struct {
	Days      []string `json:"days" yaml:"days"`
	TimeSlots []string `json:"timeSlots" yaml:"timeSlots"`
}

// ContactMethods flags which session channels a therapist offers.
type ContactMethods struct {
	Chat  bool `json:"chat" yaml:"chat"`
	Call  bool `json:"call" yaml:"call"`
	Video bool `json:"video" yaml:"video"`
}

// Therapist is a bookable professional. Pricing is per channel in rupees;
// campus therapists have no pricing (sessions are free).
type Therapist struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Title          string         `json:"title" yaml:"title"`
	Specialization []string       `json:"specialization" yaml:"specialization"`
	Type           string         `json:"type" yaml:"type"` // campus, partner, online
	Rating         float64        `json:"rating" yaml:"rating"`
	Experience     int            `json:"experience" yaml:"experience"`
	Languages      []string       `json:"languages" yaml:"languages"`
	Availability   Availability   `json:"availability" yaml:"availability"`
	ContactMethods ContactMethods `json:"contactMethods" yaml:"contactMethods"`
	Pricing        map[string]int `json:"pricing,omitempty" yaml:"pricing,omitempty"`
	Description    string         `json:"description" yaml:"description"`
	IsOnline       bool           `json:"isOnline" yaml:"isOnline"`
}

// Offers reports whether the therapist takes sessions over the channel.
func (t Therapist) Offers(sessionType string) bool {
	switch sessionType {
	case "chat":
		return t.ContactMethods.Chat
	case "call":
		return t.ContactMethods.Call
	case "video":
		return t.ContactMethods.Video
	}
	return false
}

// Seed provides the default therapist directory.
func Seed() []Therapist {
	return []Therapist{
		{
			ID:             "1",
			Name:           "Dr. Sarah Johnson",
			Title:          "Clinical Psychologist",
			Specialization: []string{"Anxiety", "Depression", "Academic Stress"},
			Type:           "campus",
			Rating:         4.9,
			Experience:     8,
			Languages:      []string{"English", "Hindi"},
			Availability: Availability{
				Days:      []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
				TimeSlots: []string{"9:00 AM", "11:00 AM", "2:00 PM", "4:00 PM"},
			},
			ContactMethods: ContactMethods{Chat: true, Call: true, Video: true},
			Description:    "Specialized in helping students manage academic stress and anxiety. 8+ years of experience in campus counseling.",
			IsOnline:       true,
		},
		{
			ID:             "2",
			Name:           "Dr. Rajesh Sharma",
			Title:          "Counseling Psychologist",
			Specialization: []string{"Relationship Issues", "Self-esteem", "Career Guidance"},
			Type:           "campus",
			Rating:         4.8,
			Experience:     12,
			Languages:      []string{"English", "Hindi", "Marathi"},
			Availability: Availability{
				Days:      []string{"Monday", "Wednesday", "Friday"},
				TimeSlots: []string{"10:00 AM", "1:00 PM", "3:00 PM"},
			},
			ContactMethods: ContactMethods{Chat: true, Call: true, Video: false},
			Description:    "Experienced counselor focusing on personal development and relationship counseling for students.",
			IsOnline:       false,
		},
		{
			ID:             "3",
			Name:           "Dr. Priya Patel",
			Title:          "Licensed Therapist",
			Specialization: []string{"Trauma", "PTSD", "Mindfulness"},
			Type:           "partner",
			Rating:         4.9,
			Experience:     10,
			Languages:      []string{"English", "Hindi", "Gujarati"},
			Availability: Availability{
				Days:      []string{"Tuesday", "Thursday", "Saturday", "Sunday"},
				TimeSlots: []string{"11:00 AM", "2:00 PM", "5:00 PM", "7:00 PM"},
			},
			ContactMethods: ContactMethods{Chat: true, Call: true, Video: true},
			Pricing:        map[string]int{"chat": 500, "call": 800, "video": 1000},
			Description:    "Trauma-informed therapist with expertise in mindfulness-based interventions.",
			IsOnline:       true,
		},
		{
			ID:             "4",
			Name:           "Dr. Michael Chen",
			Title:          "Behavioral Therapist",
			Specialization: []string{"CBT", "Addiction", "Behavioral Issues"},
			Type:           "online",
			Rating:         4.7,
			Experience:     6,
			Languages:      []string{"English"},
			Availability: Availability{
				Days:      []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
				TimeSlots: []string{"9:00 AM", "12:00 PM", "3:00 PM", "6:00 PM", "8:00 PM"},
			},
			ContactMethods: ContactMethods{Chat: true, Call: true, Video: true},
			Pricing:        map[string]int{"chat": 400, "call": 700, "video": 900},
			Description:    "Cognitive Behavioral Therapy specialist available for online sessions.",
			IsOnline:       true,
		},
	}
}
