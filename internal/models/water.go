// ABOUTME: WaterLedger model for daily water intake.
// ABOUTME: One logical record; no per-day archive is kept.
package models

import "time"

// WaterLedger is the running water total for the current day.
// Intake is milliliters. LastDate is the last read or write that touched
// the ledger; the reset policy compares it against the current calendar day.
type WaterLedger struct {
	Intake   int       `json:"intake"`
	LastDate time.Time `json:"lastDate"`
}
