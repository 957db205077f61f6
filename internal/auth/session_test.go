package auth

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestProbeWithoutCredentialIsSignedOut(t *testing.T) {
	w := NewWatcher(t.TempDir())

	s := w.Current()
	if s.Loading {
		t.Error("Initial probe should clear the loading flag")
	}
	if s.SignedIn() {
		t.Error("Expected signed-out session with no credential file")
	}
}

func TestProbeReadsExistingCredential(t *testing.T) {
	dir := t.TempDir()
	cred := `{"email": "ada@example.com", "name": "Ada", "token": "tok-123"}`
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte(cred), 0600); err != nil {
		t.Fatalf("Failed to seed credential: %v", err)
	}

	w := NewWatcher(dir)
	s := w.Current()
	if !s.SignedIn() {
		t.Fatal("Expected signed-in session")
	}
	if s.User.Email != "ada@example.com" || s.User.Name != "Ada" {
		t.Errorf("Unexpected user: %+v", s.User)
	}
}

func TestMalformedCredentialIsSignedOut(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "session.json"), []byte("{broken"), 0600); err != nil {
		t.Fatalf("Failed to seed credential: %v", err)
	}

	w := NewWatcher(dir)
	if w.Current().SignedIn() {
		t.Error("Malformed credential must not sign the user in")
	}
}

func TestLoginValidation(t *testing.T) {
	w := NewWatcher(t.TempDir())

	if err := w.Login("not-an-email", "", "tok"); err == nil {
		t.Error("Expected rejection of email without @")
	}
	if err := w.Login("", "", "tok"); err == nil {
		t.Error("Expected rejection of empty email")
	}
	if err := w.Login("ada@example.com", "Ada", "  "); err == nil {
		t.Error("Expected rejection of blank token")
	}
	if w.Current().SignedIn() {
		t.Error("Failed logins must not change the session")
	}
}

func TestLoginLogoutBroadcast(t *testing.T) {
	w := NewWatcher(t.TempDir())

	_, updates, unsubscribe := w.Subscribe()
	defer unsubscribe()

	if err := w.Login("ada@example.com", "Ada", "tok-123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	s := <-updates
	if !s.SignedIn() || s.User.Email != "ada@example.com" {
		t.Errorf("Expected signed-in update, got %+v", s)
	}

	if err := w.Logout(); err != nil {
		t.Fatalf("Logout failed: %v", err)
	}
	s = <-updates
	if s.SignedIn() {
		t.Error("Expected signed-out update after logout")
	}

	if _, err := os.Stat(filepath.Join(w.dir, "session.json")); !os.IsNotExist(err) {
		t.Error("Logout should remove the credential file")
	}
}

func TestLoginSurvivesRestart(t *testing.T) {
	dir := t.TempDir()
	w := NewWatcher(dir)
	if err := w.Login("ada@example.com", "Ada", "tok-123"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	// A fresh watcher over the same dir picks the credential up.
	w2 := NewWatcher(dir)
	if !w2.Current().SignedIn() {
		t.Error("Expected persisted credential to survive a restart")
	}
}

func TestLatestValueWinsForLaggingSubscriber(t *testing.T) {
	w := NewWatcher(t.TempDir())

	_, updates, unsubscribe := w.Subscribe()
	defer unsubscribe()

	// Two publishes without a read in between: the slot holds only the
	// second.
	if err := w.Login("first@example.com", "", "tok-1"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if err := w.Login("second@example.com", "", "tok-2"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}

	s := <-updates
	if s.User == nil || s.User.Email != "second@example.com" {
		t.Errorf("Expected the latest value, got %+v", s)
	}
	select {
	case extra := <-updates:
		t.Errorf("Expected an empty slot, got %+v", extra)
	default:
	}
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	w := NewWatcher(t.TempDir())

	_, updates, unsubscribe := w.Subscribe()
	unsubscribe()
	unsubscribe() // idempotent

	if _, open := <-updates; open {
		t.Error("Expected channel closed after unsubscribe")
	}

	// Publishing after unsubscribe must not panic.
	if err := w.Login("ada@example.com", "", "tok"); err != nil {
		t.Fatalf("Login failed: %v", err)
	}
}

func TestLogoutWithoutCredentialIsSilent(t *testing.T) {
	w := NewWatcher(t.TempDir())
	if err := w.Logout(); err != nil {
		t.Errorf("Logout with no credential should succeed: %v", err)
	}
}
