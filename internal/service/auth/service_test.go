package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mindcare-app/backend/internal/config"
	usermodel "github.com/mindcare-app/backend/internal/model/user"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

func newTestService(t *testing.T) (*Service, kv.Store) {
	t.Helper()
	store, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	cfg := config.AuthConfig{
		JWTSecret:    "test-secret",
		TokenTTL:     time.Hour,
		DemoEmail:    "student@gmail.com",
		DemoPassword: "mindcare2024",
	}
	return NewService(store, cfg, nil), store
}

func TestDemoLoginAlwaysSucceeds(t *testing.T) {
	svc, _ := newTestService(t)

	result, err := svc.Login(context.Background(), "student@gmail.com", "mindcare2024")
	if err != nil {
		t.Fatalf("Login err: %v", err)
	}
	if result.User.ID != "demo-1" {
		t.Fatalf("unexpected demo user: %+v", result.User)
	}
	if result.Token == "" {
		t.Fatal("expected a signed token")
	}

	userID, err := svc.ParseToken(result.Token)
	if err != nil {
		t.Fatalf("ParseToken err: %v", err)
	}
	if userID != "demo-1" {
		t.Fatalf("token carries wrong user id: %s", userID)
	}
}

func TestLoginUnknownEmailFailsGenerically(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Login(context.Background(), "nobody@example.com", "whatever123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterThenLogin(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	data := RegisterData{
		FullName:   "Asha Verma",
		Email:      "asha@university.edu",
		Password:   "Str0ng!pass",
		University: "University of Delhi",
	}
	if _, err := svc.Register(ctx, data); err != nil {
		t.Fatalf("Register err: %v", err)
	}

	result, err := svc.Login(ctx, "ASHA@university.edu", "Str0ng!pass")
	if err != nil {
		t.Fatalf("Login after register err: %v", err)
	}
	if result.User.Name != "Asha Verma" {
		t.Fatalf("unexpected profile: %+v", result.User)
	}

	if _, err := svc.Login(ctx, "asha@university.edu", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials on bad password, got %v", err)
	}
}

func TestRegisterDuplicateEmailLeavesDirectoryUntouched(t *testing.T) {
	svc, store := newTestService(t)
	ctx := context.Background()

	data := RegisterData{
		FullName:   "Asha Verma",
		Email:      "asha@university.edu",
		Password:   "Str0ng!pass",
		University: "University of Delhi",
	}
	if _, err := svc.Register(ctx, data); err != nil {
		t.Fatalf("first Register err: %v", err)
	}

	var before []usermodel.StoredUser
	if err := store.Get(usermodel.DirectoryKey, &before); err != nil {
		t.Fatalf("read directory: %v", err)
	}

	data.FullName = "Impostor"
	if _, err := svc.Register(ctx, data); !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	var after []usermodel.StoredUser
	if err := store.Get(usermodel.DirectoryKey, &after); err != nil {
		t.Fatalf("re-read directory: %v", err)
	}
	if len(after) != len(before) || after[0].FullName != "Asha Verma" {
		t.Fatalf("failed registration altered the directory: %+v", after)
	}
}

func TestPasswordsStoredAsHashes(t *testing.T) {
	svc, store := newTestService(t)

	data := RegisterData{
		FullName:   "Asha Verma",
		Email:      "asha@university.edu",
		Password:   "Str0ng!pass",
		University: "University of Delhi",
	}
	if _, err := svc.Register(context.Background(), data); err != nil {
		t.Fatalf("Register err: %v", err)
	}

	var users []usermodel.StoredUser
	if err := store.Get(usermodel.DirectoryKey, &users); err != nil {
		t.Fatalf("read directory: %v", err)
	}
	if users[0].PasswordHash == data.Password {
		t.Fatal("password stored in the clear")
	}
}

func TestForgotPassword(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	if err := svc.ForgotPassword(ctx, "ghost@example.com"); !errors.Is(err, ErrEmailNotFound) {
		t.Fatalf("expected ErrEmailNotFound, got %v", err)
	}

	data := RegisterData{
		FullName:   "Asha Verma",
		Email:      "asha@university.edu",
		Password:   "Str0ng!pass",
		University: "University of Delhi",
	}
	if _, err := svc.Register(ctx, data); err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if err := svc.ForgotPassword(ctx, "asha@university.edu"); err != nil {
		t.Fatalf("ForgotPassword for known email err: %v", err)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc, _ := newTestService(t)
	if _, err := svc.ParseToken("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
