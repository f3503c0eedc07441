// ABOUTME: Shared test helpers for the repo package.
// ABOUTME: Provides a store wrapper whose writes can be made to fail.
package repo

import (
	"errors"

	"github.com/harperreed/fittrack/internal/storage"
)

var errDiskFull = errors.New("disk full")

// failingStore wraps a working store and fails writes on demand.
type failingStore struct {
	storage.Store
	failPut   bool
	failClear bool
}

func (f *failingStore) Put(key string, value any) error {
	if f.failPut {
		return errDiskFull
	}
	return f.Store.Put(key, value)
}

func (f *failingStore) Clear() error {
	if f.failClear {
		return errDiskFull
	}
	return f.Store.Clear()
}
