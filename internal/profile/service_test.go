package profile

import (
	"context"
	"errors"
	"testing"

	"github.com/ezrapay/ezrapay/internal/identity"
)

func newTestService() (*Service, identity.Provider) {
	provider := identity.NewMemoryProvider()
	svc := NewService(provider, NewMemoryRepository(), "Cornell")
	return svc, provider
}

func TestRegisterCreatesProfile(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p, err := svc.Register(ctx, RegisterInput{
		Email:    "student@cornell.edu",
		Password: "Abc123!@",
		Name:     "Ezra Cornell",
		School:   "Cornell",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if p.UserID == "" {
		t.Fatalf("expected non-empty user id")
	}

	fetched, err := svc.Fetch(ctx, p.UserID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if fetched.Name != "Ezra Cornell" || fetched.Email != "student@cornell.edu" || fetched.School != "Cornell" {
		t.Fatalf("unexpected profile %+v", fetched)
	}
	if fetched.NetID != "" {
		t.Fatalf("expected empty netId, got %q", fetched.NetID)
	}
	if fetched.PhotoID != nil {
		t.Fatalf("expected no photo reference")
	}
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	svc, provider := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Email: "student@cornell.edu", Password: "abc", Name: "X", School: "Cornell"})
	var policyErr *PolicyError
	if !errors.As(err, &policyErr) {
		t.Fatalf("expected PolicyError, got %v", err)
	}
	if policyErr.Result.Valid {
		t.Fatalf("expected invalid result inside policy error")
	}
	if !policyErr.Result.Requirements.HasLowerCase {
		t.Fatalf("expected hasLowerCase in breakdown")
	}

	// The provider must not have been contacted.
	if _, err := provider.SignIn(ctx, "student@cornell.edu", "abc"); err == nil {
		t.Fatalf("expected no provider account after rejected registration")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Register(ctx, RegisterInput{Email: "student@cornell.edu", Password: "Abc123!@", Name: "First", School: "Cornell"})
	if err != nil {
		t.Fatalf("first register: %v", err)
	}

	_, err = svc.Register(ctx, RegisterInput{Email: "student@cornell.edu", Password: "Other123!@", Name: "Second", School: "Cornell"})
	if !errors.Is(err, identity.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	// The original profile is untouched.
	p, err := svc.Fetch(ctx, first.UserID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.Name != "First" {
		t.Fatalf("expected original profile, got %+v", p)
	}
}

func TestLoginLazyCreatesProfile(t *testing.T) {
	provider := identity.NewMemoryProvider()
	svc := NewService(provider, NewMemoryRepository(), "Cornell")
	ctx := context.Background()

	// Account exists at the provider but no local profile.
	if _, err := provider.SignUp(ctx, "student@cornell.edu", "Abc123!@"); err != nil {
		t.Fatalf("provider sign up: %v", err)
	}

	p, err := svc.Login(ctx, "student@cornell.edu", "Abc123!@")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if p.Name != "Unknown" {
		t.Fatalf("expected fallback display name, got %q", p.Name)
	}
	if p.School != "Cornell" {
		t.Fatalf("expected default school, got %q", p.School)
	}
	if p.Email != "student@cornell.edu" {
		t.Fatalf("expected provider email, got %q", p.Email)
	}
}

func TestLoginIdempotent(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: "student@cornell.edu", Password: "Abc123!@", Name: "Ezra Cornell", School: "Cornell"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	netID := "ec123"
	if err := svc.Update(ctx, reg.UserID, UpdateInput{NetID: &netID}); err != nil {
		t.Fatalf("update: %v", err)
	}

	// Repeated logins must not recreate or overwrite the profile.
	for i := 0; i < 2; i++ {
		p, err := svc.Login(ctx, "student@cornell.edu", "Abc123!@")
		if err != nil {
			t.Fatalf("login %d: %v", i+1, err)
		}
		if p.UserID != reg.UserID {
			t.Fatalf("expected stable user id")
		}
		if p.Name != "Ezra Cornell" || p.NetID != "ec123" {
			t.Fatalf("login overwrote profile: %+v", p)
		}
	}
}

func TestLoginBadCredentials(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.Login(ctx, "nobody@cornell.edu", "Abc123!@"); !errors.Is(err, identity.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _ := newTestService()
	name := "X"
	if err := svc.Update(context.Background(), "missing", UpdateInput{Name: &name}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFetchUnknownUser(t *testing.T) {
	svc, _ := newTestService()
	if _, err := svc.Fetch(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdatePartial(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	reg, err := svc.Register(ctx, RegisterInput{Email: "student@cornell.edu", Password: "Abc123!@", Name: "Ezra Cornell", School: "Cornell"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	netID := "ec123"
	if err := svc.Update(ctx, reg.UserID, UpdateInput{NetID: &netID}); err != nil {
		t.Fatalf("update: %v", err)
	}

	p, err := svc.Fetch(ctx, reg.UserID)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if p.NetID != "ec123" {
		t.Fatalf("expected updated netId, got %q", p.NetID)
	}
	if p.Name != "Ezra Cornell" || p.Email != "student@cornell.edu" {
		t.Fatalf("partial update touched other fields: %+v", p)
	}
}
