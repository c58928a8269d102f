package user

import "time"

// User is the public profile shape returned to clients and cached under
// the profile key.
type User struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Avatar            string    `json:"avatar,omitempty"`
	University        string    `json:"university,omitempty"`
	JoinDate          time.Time `json:"joinDate"`
	StreakDays        int       `json:"streakDays"`
	SessionsCompleted int       `json:"sessionsCompleted"`
	CurrentMood       string    `json:"currentMood,omitempty"`
}

// StoredUser is a row of the local user directory. Only the bcrypt hash
// of the password is persisted.
type StoredUser struct {
	ID                string    `json:"id"`
	FullName          string    `json:"fullName"`
	Email             string    `json:"email"`
	PasswordHash      string    `json:"passwordHash"`
	University        string    `json:"university"`
	StudentID         string    `json:"studentId,omitempty"`
	JoinDate          time.Time `json:"joinDate"`
	StreakDays        int       `json:"streakDays"`
	SessionsCompleted int       `json:"sessionsCompleted"`
}

// Profile converts a directory row to its public shape.
func (s StoredUser) Profile() User {
	return User{
		ID:                s.ID,
		Name:              s.FullName,
		Email:             s.Email,
		University:        s.University,
		JoinDate:          s.JoinDate,
		StreakDays:        s.StreakDays,
		SessionsCompleted: s.SessionsCompleted,
	}
}

// Settings is the per-user preference blob.
type Settings struct {
	Notifications bool   `json:"notifications"`
	Theme         string `json:"theme"`
	Language      string `json:"language"`
}

// DefaultSettings applies before the user has saved anything.
func DefaultSettings() Settings {
	return Settings{
		Notifications: true,
		Theme:         "light",
		Language:      "en",
	}
}

// Storage keys for the auth/profile documents.
const (
	DirectoryKey = "mindcare_users"
	ProfileKey   = "userData"
	SettingsKey  = "user_settings"
	DarkModeKey  = "darkMode"
)
