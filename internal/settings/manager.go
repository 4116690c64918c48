package settings

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/alexanderramin/trainingtask/internal/domain"
	"github.com/alexanderramin/trainingtask/internal/repository"
)

// UserStore persists the user's settings override.
// Get must wrap repository.ErrNotFound when no override exists.
type UserStore interface {
	Get(ctx context.Context) (domain.Settings, error)
	Upsert(ctx context.Context, s domain.Settings) error
	Delete(ctx context.Context) error
}

// Source records where effective settings came from.
type Source string

const (
	SourceUser    Source = "user"
	SourceDefault Source = "default"
)

// Manager resolves effective settings. A valid user override replaces the
// packaged defaults as a whole record; fields are never mixed.
type Manager struct {
	defaults *Provider
	store    UserStore
	logger   *slog.Logger
}

// NewManager wires a Manager. A nil logger discards diagnostics.
func NewManager(defaults *Provider, store UserStore, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Manager{defaults: defaults, store: store, logger: logger}
}

// GetSettings returns the effective settings.
func (m *Manager) GetSettings(ctx context.Context) (domain.Settings, error) {
	s, _, err := m.Resolve(ctx)
	return s, err
}

// Resolve returns the effective settings and where they came from.
func (m *Manager) Resolve(ctx context.Context) (domain.Settings, Source, error) {
	if s, ok := m.loadUser(ctx); ok {
		return s, SourceUser, nil
	}
	s, err := m.defaults.Defaults()
	if err != nil {
		return domain.Settings{}, "", err
	}
	return s, SourceDefault, nil
}

// Defaults returns the packaged defaults regardless of any override.
func (m *Manager) Defaults() (domain.Settings, error) {
	return m.defaults.Defaults()
}

// SaveUserSettings validates and persists s as the user override.
func (m *Manager) SaveUserSettings(ctx context.Context, s domain.Settings) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if err := m.store.Upsert(ctx, s); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// ResetUserSettings drops the override so the packaged defaults apply.
func (m *Manager) ResetUserSettings(ctx context.Context) error {
	if err := m.store.Delete(ctx); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return nil
}

// loadUser returns the stored override when one exists and is usable.
// Read failures and malformed records fall through to the defaults.
func (m *Manager) loadUser(ctx context.Context) (domain.Settings, bool) {
	s, err := m.store.Get(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			m.logger.WarnContext(ctx, "user settings unreadable, using defaults", "error", err)
		}
		return domain.Settings{}, false
	}
	if err := s.Validate(); err != nil {
		m.logger.WarnContext(ctx, "user settings malformed, using defaults", "error", err)
		return domain.Settings{}, false
	}
	return s, true
}
