package settings

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	usermodel "github.com/mindcare-app/backend/internal/model/user"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

// Service persists user preferences. Dark mode is stored as the strings
// "true"/"false" under its own key, separate from the settings blob, so
// the theme survives a settings reset.
type Service struct {
	store  kv.Store
	logger *zap.Logger
}

func NewService(store kv.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Get returns stored settings, or the defaults when none exist.
func (s *Service) Get(_ context.Context) usermodel.Settings {
	var settings usermodel.Settings
	if err := s.store.Get(usermodel.SettingsKey, &settings); err != nil {
		return usermodel.DefaultSettings()
	}
	return settings
}

// Update replaces the stored settings.
func (s *Service) Update(_ context.Context, settings usermodel.Settings) error {
	if err := s.store.Put(usermodel.SettingsKey, settings); err != nil {
		return fmt.Errorf("persist settings: %w", err)
	}
	return nil
}

// DarkMode reports the stored theme flag; absent means light.
func (s *Service) DarkMode(_ context.Context) bool {
	var raw string
	if err := s.store.Get(usermodel.DarkModeKey, &raw); err != nil {
		return false
	}
	return raw == "true"
}

// SetDarkMode stores the theme flag.
func (s *Service) SetDarkMode(_ context.Context, enabled bool) error {
	raw := "false"
	if enabled {
		raw = "true"
	}
	if err := s.store.Put(usermodel.DarkModeKey, raw); err != nil {
		return fmt.Errorf("persist dark mode: %w", err)
	}
	return nil
}

// ToggleDarkMode flips the flag and returns the new state.
func (s *Service) ToggleDarkMode(ctx context.Context) (bool, error) {
	next := !s.DarkMode(ctx)
	if err := s.SetDarkMode(ctx, next); err != nil {
		return false, err
	}
	return next, nil
}

// Reset removes the stored settings, returning to defaults. The dark
// mode flag is deliberately left alone.
func (s *Service) Reset(_ context.Context) error {
	if err := s.store.Delete(usermodel.SettingsKey); err != nil && !errors.Is(err, kv.ErrNotFound) {
		return fmt.Errorf("reset settings: %w", err)
	}
	return nil
}
