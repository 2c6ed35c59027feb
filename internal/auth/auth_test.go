package auth

import (
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	apperrors "github.com/mennaheldaly/Daytrader/internal/errors"
)

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "users.db"), SHA256Hasher{}, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	t.Cleanup(func() { m.Close() })
	return m
}

func TestRegisterAndAuthenticate(t *testing.T) {
	m := newTestManager(t)

	user, err := m.Register("menna", "menna@example.com", "secret")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 || user.Username != "menna" {
		t.Errorf("registered user = %+v", user)
	}

	if !m.Authenticate("menna", "secret") {
		t.Error("Authenticate rejected valid credentials")
	}
	if m.Authenticate("menna", "wrong") {
		t.Error("Authenticate accepted a wrong password")
	}
	if m.Authenticate("nobody", "secret") {
		t.Error("Authenticate accepted an unknown user")
	}
}

func TestRegisterDuplicateUsernameDeclines(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Register("menna", "a@example.com", "pw"); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := m.Register("menna", "b@example.com", "pw")
	var regErr *apperrors.RegistrationError
	if !apperrors.As(err, &regErr) {
		t.Fatalf("duplicate username error = %v, want RegistrationError", err)
	}
	if regErr.Field != "username" {
		t.Errorf("Field = %q, want username", regErr.Field)
	}
	if !apperrors.Is(err, apperrors.ErrDuplicateUser) {
		t.Error("RegistrationError does not unwrap to ErrDuplicateUser")
	}
}

func TestRegisterDuplicateEmailDeclines(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Register("menna", "same@example.com", "pw"); err != nil {
		t.Fatalf("first Register: %v", err)
	}

	_, err := m.Register("other", "same@example.com", "pw")
	var regErr *apperrors.RegistrationError
	if !apperrors.As(err, &regErr) {
		t.Fatalf("duplicate email error = %v, want RegistrationError", err)
	}
	if regErr.Field != "email" {
		t.Errorf("Field = %q, want email", regErr.Field)
	}
}

func TestUserInfo(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Register("menna", "menna@example.com", "pw"); err != nil {
		t.Fatal(err)
	}

	user, ok := m.UserInfo("menna")
	if !ok {
		t.Fatal("UserInfo missed a registered user")
	}
	if user.Email != "menna@example.com" {
		t.Errorf("Email = %q", user.Email)
	}

	if _, ok := m.UserInfo("nobody"); ok {
		t.Error("UserInfo found an unknown user")
	}
}

func TestStoredDigestIsNotPlaintext(t *testing.T) {
	m := newTestManager(t)

	if _, err := m.Register("menna", "menna@example.com", "secret"); err != nil {
		t.Fatal(err)
	}

	var digest string
	if err := m.db.QueryRow(`SELECT password_hash FROM users WHERE username = ?`, "menna").Scan(&digest); err != nil {
		t.Fatal(err)
	}
	if digest == "secret" {
		t.Error("password stored in plaintext")
	}
	if len(digest) != 64 {
		t.Errorf("digest length = %d, want the SHA-256 hex form", len(digest))
	}
}
