package settings

import (
	"context"
	"testing"

	usermodel "github.com/mindcare-app/backend/internal/model/user"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	return NewService(store, nil)
}

func TestDefaultsBeforeFirstSave(t *testing.T) {
	svc := newTestService(t)

	got := svc.Get(context.Background())
	if !got.Notifications || got.Theme != "light" || got.Language != "en" {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestUpdateRoundTrip(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	want := usermodel.Settings{Notifications: false, Theme: "dark", Language: "hi"}
	if err := svc.Update(ctx, want); err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if got := svc.Get(ctx); got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDarkModeToggle(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if svc.DarkMode(ctx) {
		t.Fatal("dark mode should default to off")
	}
	on, err := svc.ToggleDarkMode(ctx)
	if err != nil || !on {
		t.Fatalf("first toggle: %v, %v", on, err)
	}
	if !svc.DarkMode(ctx) {
		t.Fatal("toggle did not persist")
	}
	off, err := svc.ToggleDarkMode(ctx)
	if err != nil || off {
		t.Fatalf("second toggle: %v, %v", off, err)
	}
}

func TestResetKeepsDarkMode(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	if err := svc.Update(ctx, usermodel.Settings{Notifications: false, Theme: "dark", Language: "hi"}); err != nil {
		t.Fatalf("Update err: %v", err)
	}
	if err := svc.SetDarkMode(ctx, true); err != nil {
		t.Fatalf("SetDarkMode err: %v", err)
	}

	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("Reset err: %v", err)
	}
	if got := svc.Get(ctx); got != usermodel.DefaultSettings() {
		t.Fatalf("expected defaults after reset, got %+v", got)
	}
	if !svc.DarkMode(ctx) {
		t.Fatal("reset should not touch the theme flag")
	}

	// Reset with nothing stored is a no-op.
	if err := svc.Reset(ctx); err != nil {
		t.Fatalf("second Reset err: %v", err)
	}
}
