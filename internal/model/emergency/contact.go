package emergency

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Contact is one entry of the emergency directory.
type Contact struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Number       string `json:"number" yaml:"number"`
	Type         string `json:"type" yaml:"type"` // crisis, emergency, support, campus
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Available24h bool   `json:"available24h" yaml:"available24h"`
}

// Seed provides the default contact directory. The crisis entries carry
// the same hotline numbers the assistant's crisis replies point at.
func Seed() []Contact {
	return []Contact{
		{ID: "1", Name: "Emergency Medical Services", Number: "108", Type: "emergency", Description: "Ambulance and emergency medical assistance", Available24h: true},
		{ID: "2", Name: "Police Emergency", Number: "100", Type: "emergency", Description: "Police emergency services", Available24h: true},
		{ID: "3", Name: "Fire Emergency", Number: "101", Type: "emergency", Description: "Fire emergency services", Available24h: true},
		{ID: "4", Name: "National Suicide Prevention Helpline", Number: "9152987821", Type: "crisis", Description: "Immediate crisis support and suicide prevention", Available24h: true},
		{ID: "5", Name: "KIRAN Mental Health Helpline", Number: "1800-599-0019", Type: "crisis", Description: "24/7 mental health support and counseling", Available24h: true},
		{ID: "6", Name: "Vandrevala Foundation", Number: "9999666555", Type: "crisis", Description: "Free counseling and crisis support", Available24h: true},
		{ID: "7", Name: "COOJ Mental Health Foundation", Number: "8376904102", Type: "crisis", Description: "Mental health support and counseling", Available24h: true},
		{ID: "8", Name: "Campus Counseling Center", Number: "(555) 123-HELP", Type: "campus", Description: "University counseling and mental health services", Available24h: false},
		{ID: "9", Name: "Campus Security", Number: "(555) 123-SAFE", Type: "campus", Description: "Campus security emergency line", Available24h: true},
		{ID: "10", Name: "Student Affairs Emergency", Number: "(555) 123-STUD", Type: "campus", Description: "Student emergency support and resources", Available24h: true},
	}
}

// LoadSeedFile reads a YAML contact directory override; an empty path
// returns the built-in seed.
func LoadSeedFile(path string) ([]Contact, error) {
	if path == "" {
		return Seed(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read emergency seed file: %w", err)
	}
	var items []Contact
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse emergency seed file: %w", err)
	}
	if len(items) == 0 {
		return Seed(), nil
	}
	return items, nil
}

// GroupByType buckets contacts for the tabbed directory view.
func GroupByType(contacts []Contact) map[string][]Contact {
	grouped := make(map[string][]Contact)
	for _, contact := range contacts {
		grouped[contact.Type] = append(grouped[contact.Type], contact)
	}
	return grouped
}
