// Package auth tracks the current user session. The credential is a token
// file in the config dir; Watcher is a single-slot broadcast of the latest
// session value with an explicit subscribe/unsubscribe lifecycle (views
// subscribe on mount, unsubscribe on teardown).
package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"deckforge/internal/logging"
)

// User identifies a signed-in user.
type User struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// Session is the current auth snapshot: a user or none, plus a loading flag
// that is true until the first credential probe completes.
type Session struct {
	User    *User
	Loading bool
}

// SignedIn reports whether a user is present.
func (s Session) SignedIn() bool { return s.User != nil }

// credentialFile is the on-disk token format.
type credentialFile struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Token string `json:"token"`
}

// Watcher broadcasts the latest session value. Each subscriber holds a
// buffered channel of size 1; the latest value wins when a subscriber lags.
type Watcher struct {
	mu      sync.Mutex
	current Session
	subs    map[int]chan Session
	nextID  int
	dir     string
}

// NewWatcher creates a watcher over the credential file in dir and runs the
// initial probe synchronously. Until then the session reports Loading.
func NewWatcher(dir string) *Watcher {
	w := &Watcher{
		current: Session{Loading: true},
		subs:    make(map[int]chan Session),
		dir:     dir,
	}
	w.probe()
	return w
}

// credentialPath returns the token file location.
func (w *Watcher) credentialPath() string {
	return filepath.Join(w.dir, "session.json")
}

// probe reads the credential file and publishes the result.
func (w *Watcher) probe() {
	var user *User
	data, err := os.ReadFile(w.credentialPath())
	switch {
	case err == nil:
		var cred credentialFile
		if jsonErr := json.Unmarshal(data, &cred); jsonErr != nil {
			logging.AuthError("Malformed credential file: %v", jsonErr)
		} else if cred.Token != "" {
			user = &User{Email: cred.Email, Name: cred.Name}
		}
	case os.IsNotExist(err):
		// Signed out.
	default:
		logging.AuthError("Credential probe failed: %v", err)
	}
	w.publish(Session{User: user})
}

// Current returns the latest session snapshot.
func (w *Watcher) Current() Session {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Subscribe returns the current snapshot plus a channel of updates and an
// unsubscribe function. The channel is closed on unsubscribe.
func (w *Watcher) Subscribe() (Session, <-chan Session, func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextID
	w.nextID++
	ch := make(chan Session, 1)
	w.subs[id] = ch

	unsubscribe := func() {
		w.mu.Lock()
		defer w.mu.Unlock()
		if c, ok := w.subs[id]; ok {
			delete(w.subs, id)
			close(c)
		}
	}
	return w.current, ch, unsubscribe
}

// publish stores the value and fans it out, replacing any undelivered value
// in a subscriber's slot.
func (w *Watcher) publish(s Session) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.current = s
	for _, ch := range w.subs {
		select {
		case ch <- s:
		default:
			// Drop the stale value, deliver the new one.
			select {
			case <-ch:
			default:
			}
			ch <- s
		}
	}
}

// Login validates and persists a credential, then publishes the signed-in
// session.
func (w *Watcher) Login(email, name, token string) error {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("invalid email %q", email)
	}
	if strings.TrimSpace(token) == "" {
		return fmt.Errorf("token is required")
	}

	if err := os.MkdirAll(w.dir, 0700); err != nil {
		return fmt.Errorf("failed to create credential dir: %w", err)
	}
	data, err := json.MarshalIndent(credentialFile{Email: email, Name: name, Token: token}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(w.credentialPath(), data, 0600); err != nil {
		return fmt.Errorf("failed to write credential: %w", err)
	}

	logging.Auth("Signed in as %s", email)
	w.publish(Session{User: &User{Email: email, Name: name}})
	return nil
}

// Logout removes the credential and publishes the signed-out session.
func (w *Watcher) Logout() error {
	if err := os.Remove(w.credentialPath()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credential: %w", err)
	}
	logging.Auth("Signed out")
	w.publish(Session{})
	return nil
}
