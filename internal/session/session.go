// Package session owns the authenticated-user lifecycle: login, signup,
// logout, and durable restore across restarts. The product is single-user,
// so the manager holds at most one current user for the whole process.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"aistudio/internal/models"
	"aistudio/internal/notify"
	"aistudio/internal/store"
)

// userKey is the single durable entry holding the serialized user record.
const userKey = "aistudio.user"

// Demo credential accepted by Login. Authentication is mocked; a real
// identity provider would replace this.
const (
	demoEmail    = "demo@aistudio.com"
	demoPassword = "password"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNotAuthenticated   = errors.New("no user signed in")
)

// Manager is the single source of truth for who is logged in. The in-memory
// state and the durable entry are consistent at every return point: storage
// is written before the in-memory commit.
type Manager struct {
	mu       sync.Mutex
	kv       store.KV
	notifier notify.Notifier

	user     *models.User
	loading  bool
	restored bool

	demoHash []byte
}

func NewManager(kv store.KV, notifier notify.Notifier) *Manager {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.MinCost)
	if err != nil {
		// bcrypt only fails on invalid cost; MinCost is valid.
		panic(err)
	}
	return &Manager{kv: kv, notifier: notifier, loading: true, demoHash: hash}
}

// Restore reads the persisted user record once per process lifetime. A
// missing or corrupt record resolves to anonymous; a corrupt record is also
// cleared so the next start reads clean state. Loading is resolved in every
// path.
func (m *Manager) Restore() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.restored {
		return nil
	}
	m.restored = true
	defer func() { m.loading = false }()

	raw, ok, err := m.kv.Get(userKey)
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return nil
	}
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil || u.ID == "" {
		m.kv.Delete(userKey)
		return nil
	}
	m.user = &u
	return nil
}

// Login validates the pair against the demo credential. On match the fixed
// demo user is persisted and becomes current. On mismatch the session is
// left unchanged.
func (m *Manager) Login(email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if email != demoEmail || bcrypt.CompareHashAndPassword(m.demoHash, []byte(password)) != nil {
		m.notifier.Notify(notify.Error, "Invalid credentials")
		return ErrInvalidCredentials
	}
	u := models.User{ID: "1", Name: "Demo User", Email: demoEmail}
	if err := m.persist(u); err != nil {
		m.notifier.Notify(notify.Error, "Failed to login")
		return err
	}
	m.user = &u
	m.notifier.Notify(notify.Success, "Login successful")
	return nil
}

// Signup creates an account from the supplied name and email. The password
// is accepted but neither validated nor stored; there is no credential store
// in this build.
func (m *Manager) Signup(name, email, password string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	u := models.User{ID: "1", Name: name, Email: email}
	if err := m.persist(u); err != nil {
		m.notifier.Notify(notify.Error, "Failed to create account")
		return err
	}
	m.user = &u
	m.notifier.Notify(notify.Success, "Account created successfully")
	return nil
}

// Logout clears the persisted record and the current user. Calling it while
// anonymous is a no-op with the same notification.
func (m *Manager) Logout() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.kv.Delete(userKey); err != nil {
		m.notifier.Notify(notify.Error, "Failed to log out")
		return fmt.Errorf("clear session: %w", err)
	}
	m.user = nil
	m.notifier.Notify(notify.Success, "Logged out successfully")
	return nil
}

// UpdateProfile re-persists the current user with a new name and email.
func (m *Manager) UpdateProfile(name, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.user == nil {
		return ErrNotAuthenticated
	}
	u := *m.user
	u.Name = name
	u.Email = email
	if err := m.persist(u); err != nil {
		m.notifier.Notify(notify.Error, "Failed to update profile")
		return err
	}
	m.user = &u
	m.notifier.Notify(notify.Success, "Profile updated successfully")
	return nil
}

func (m *Manager) persist(u models.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	if err := m.kv.Set(userKey, string(raw)); err != nil {
		return fmt.Errorf("persist user: %w", err)
	}
	return nil
}

// Current returns the signed-in user, if any.
func (m *Manager) Current() (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.user == nil {
		return models.User{}, false
	}
	return *m.user, true
}

// IsAuthenticated reports whether a user is signed in.
func (m *Manager) IsAuthenticated() bool {
	_, ok := m.Current()
	return ok
}

// IsLoading reports whether the startup restore is still pending. Consumers
// must treat true as "decision pending" and render neither view.
func (m *Manager) IsLoading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}
