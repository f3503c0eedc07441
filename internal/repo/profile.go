// ABOUTME: ProfileRepo owns the singleton user profile snapshot.
// ABOUTME: Persist-then-update mutations; logout clears the whole store.
package repo

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/harperreed/fittrack/internal/models"
	"github.com/harperreed/fittrack/internal/storage"
)

// ProfileRepo reads and writes the user profile. A nil snapshot means no
// profile has been saved (or the stored one was unreadable).
type ProfileRepo struct {
	store storage.Store
	log   *zap.Logger

	mu      sync.Mutex
	profile *models.Profile
}

// NewProfileRepo creates a repository over the given store. A nil logger
// disables diagnostics.
func NewProfileRepo(store storage.Store, log *zap.Logger) *ProfileRepo {
	if log == nil {
		log = zap.NewNop()
	}
	return &ProfileRepo{store: store, log: log}
}

// Load reads the profile from the store. Absence and decode failure both
// yield a nil profile; decode failure is logged.
func (r *ProfileRepo) Load() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var p models.Profile
	found, err := r.store.Get(storage.KeyProfile, &p)
	if err != nil {
		r.log.Warn("profile unreadable, treating as absent", zap.Error(err))
		r.profile = nil
		return nil
	}
	if !found {
		r.profile = nil
		return nil
	}
	r.profile = &p
	return nil
}

// Profile returns a copy of the current snapshot, or nil.
func (r *ProfileRepo) Profile() *models.Profile {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.profile == nil {
		return nil
	}
	p := *r.profile
	return &p
}

// Save persists the given profile and updates the snapshot on success.
func (r *ProfileRepo) Save(p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Put(storage.KeyProfile, p); err != nil {
		r.log.Error("save profile", zap.Error(err))
		return fmt.Errorf("save profile: %w", err)
	}
	saved := *p
	r.profile = &saved
	return nil
}

// Update applies a merge-style edit to the current profile (or a zero
// profile when none exists), persists the result, and updates the snapshot
// only after the write succeeds.
func (r *ProfileRepo) Update(apply func(*models.Profile)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var updated models.Profile
	if r.profile != nil {
		updated = *r.profile
	}
	apply(&updated)

	if err := r.store.Put(storage.KeyProfile, &updated); err != nil {
		r.log.Error("update profile", zap.Error(err))
		return fmt.Errorf("update profile: %w", err)
	}
	r.profile = &updated
	return nil
}

// HasProfile reports whether a complete profile exists. See
// models.Profile.Complete for the inherited truthiness semantics.
func (r *ProfileRepo) HasProfile() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profile.Complete()
}

// Logout clears every stored key, resetting the app to first-run state,
// and drops the in-memory profile. Idempotent.
func (r *ProfileRepo) Logout() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Clear(); err != nil {
		r.log.Error("logout", zap.Error(err))
		return fmt.Errorf("logout: %w", err)
	}
	r.profile = nil
	return nil
}

// restore replaces the stored profile during import. A nil profile removes
// the key.
func (r *ProfileRepo) restore(p *models.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if p == nil {
		if err := r.store.Remove(storage.KeyProfile); err != nil {
			return fmt.Errorf("restore profile: %w", err)
		}
		r.profile = nil
		return nil
	}

	if err := r.store.Put(storage.KeyProfile, p); err != nil {
		return fmt.Errorf("restore profile: %w", err)
	}
	restored := *p
	r.profile = &restored
	return nil
}
