// ABOUTME: Export and import functionality for fittrack data.
// ABOUTME: Supports JSON and YAML export formats.
package repo

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/harperreed/fittrack/internal/models"
)

// ExportData represents the full export format for fittrack data.
type ExportData struct {
	Version    string                 `json:"version" yaml:"version"`
	ExportID   uuid.UUID              `json:"export_id" yaml:"export_id"`
	ExportedAt time.Time              `json:"exported_at" yaml:"exported_at"`
	Tool       string                 `json:"tool" yaml:"tool"`
	Profile    *models.Profile        `json:"profile" yaml:"profile"`
	Workouts   []models.WorkoutRecord `json:"workouts" yaml:"workouts"`
	Water      models.WaterLedger     `json:"water" yaml:"water"`
	BMIHistory []models.BMIRecord     `json:"bmi_history" yaml:"bmi_history"`
}

// GetAllData snapshots every collection for export.
func (r *Repos) GetAllData() *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportID:   uuid.New(),
		ExportedAt: time.Now(),
		Tool:       "fittrack",
		Profile:    r.Profile.Profile(),
		Workouts:   r.Workouts.History(),
		Water:      r.Water.Ledger(),
		BMIHistory: r.BMI.History(),
	}
}

// ExportJSON exports all data as JSON.
func (r *Repos) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(r.GetAllData(), "", "  ")
}

// ExportYAML exports all data as YAML.
func (r *Repos) ExportYAML() ([]byte, error) {
	return yaml.Marshal(r.GetAllData())
}

// ImportData replaces every collection with the export's contents. The
// water ledger remains subject to the daily-reset policy afterwards.
func (r *Repos) ImportData(data *ExportData) error {
	if err := r.Profile.restore(data.Profile); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := r.Workouts.restore(data.Workouts); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := r.Water.restore(data.Water); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	if err := r.BMI.restore(data.BMIHistory); err != nil {
		return fmt.Errorf("import: %w", err)
	}
	return nil
}

// ImportJSON imports data from JSON bytes. A malformed file mutates
// nothing.
func (r *Repos) ImportJSON(data []byte) error {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return fmt.Errorf("unmarshal JSON: %w", err)
	}
	return r.ImportData(&exportData)
}
