// ABOUTME: BMIRecord model for body-mass-index history.
// ABOUTME: Append-only, newest-first; the head record is the current BMI.
package models

import "time"

// BMIRecord is one BMI calculation. BMI is rounded to one decimal place;
// Category is the display name of the classification band.
type BMIRecord struct {
	ID       string    `json:"id"`
	BMI      float64   `json:"bmi"`
	Category string    `json:"category"`
	Weight   float64   `json:"weight"`
	Height   float64   `json:"height"`
	Date     time.Time `json:"date"`
}
