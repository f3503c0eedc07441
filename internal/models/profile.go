// ABOUTME: Profile model for the onboarded user.
// ABOUTME: Singleton per installation; nil means no onboarding has happened.
package models

import "time"

// Profile holds the user's onboarding data. Weight is kilograms,
// height is centimeters.
type Profile struct {
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	Weight    float64   `json:"weight"`
	Height    float64   `json:"height"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewProfile creates a Profile stamped with the current time.
func NewProfile(name string, age int, weight, height float64) *Profile {
	return &Profile{
		Name:      name,
		Age:       age,
		Weight:    weight,
		Height:    height,
		CreatedAt: time.Now(),
	}
}

// Complete reports whether every onboarding field is set.
//
// This intentionally mirrors the original app's truthiness check: an age or
// weight of literal 0 counts as incomplete. CLI validation rejects zero
// values before they get here, so the quirk is unreachable in normal use.
func (p *Profile) Complete() bool {
	if p == nil {
		return false
	}
	return p.Name != "" && p.Age != 0 && p.Weight != 0 && p.Height != 0
}
