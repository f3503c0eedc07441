// ABOUTME: Record ID generation for append-only collections.
// ABOUTME: IDs are millisecond timestamps with a monotonic collision bump.
package models

import (
	"strconv"
	"sync"
	"time"
)

var (
	idMu   sync.Mutex
	lastID int64
)

// NewID returns a unique record ID derived from the current time.
// IDs are decimal UnixMilli strings; two calls in the same millisecond
// get consecutive values, so ordering follows creation order.
func NewID() string {
	idMu.Lock()
	defer idMu.Unlock()

	ms := time.Now().UnixMilli()
	if ms <= lastID {
		ms = lastID + 1
	}
	lastID = ms
	return strconv.FormatInt(ms, 10)
}
