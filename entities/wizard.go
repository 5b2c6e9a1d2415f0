package entities

import "time"

// WizardRecord backs the wizard draft store. One row per (user, kind);
// kind is either the in-progress draft or the completed marker.
type WizardRecord struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	UserID  string    `gorm:"index:idx_wizard_user_kind,unique" json:"user_id"`
	Kind    string    `gorm:"index:idx_wizard_user_kind,unique" json:"kind"` // draft|completed
	Payload string    `json:"payload"`
	SavedAt time.Time `json:"saved_at"`
}
