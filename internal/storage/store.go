// ABOUTME: Store interface for durable string-key/JSON-value persistence.
// ABOUTME: Defines the contract shared by the Badger, SQLite, and memory backends.
package storage

import "fmt"

// Storage keys, one per logical collection. Water uses two keys that the
// reset policy always writes together.
const (
	KeyProfile        = "profile"
	KeyWorkoutHistory = "workout_history"
	KeyWaterIntake    = "water_intake"
	KeyLastWaterDate  = "last_water_date"
	KeyBMIResults     = "bmi_results"
)

// Store is a durable mapping from string keys to JSON-serializable values.
// This interface allows swapping implementations (e.g., for testing).
type Store interface {
	// Put serializes value as JSON and stores it under key. A failed Put
	// leaves any prior value intact.
	Put(key string, value any) error

	// Get loads the value stored under key into out. It returns false with
	// a nil error when the key is absent, and false with a *DecodeError
	// when the stored bytes are not valid JSON for out. Callers treat both
	// as "use the default value"; only the decode case carries a cause.
	Get(key string, out any) (bool, error)

	// Remove deletes key. Removing an absent key is a no-op.
	Remove(key string) error

	// Keys returns every stored key.
	Keys() ([]string, error)

	// Clear removes every key. Clearing an empty store succeeds.
	Clear() error

	// Close releases the underlying resources.
	Close() error
}

// DecodeError reports that a stored value could not be deserialized.
// It distinguishes "present but corrupt" from "absent".
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode value for %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
