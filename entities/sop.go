package entities

import "time"

type SOPTemplate struct {
	TemplateID uint      `gorm:"primaryKey" json:"template_id"`
	GuideID    uint      `gorm:"index" json:"guide_id"`
	Hazard     string    `gorm:"index" json:"hazard"`
	Name       string    `json:"name"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type SOPTemplateTask struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	TemplateID uint   `gorm:"index" json:"template_id"`
	Ord        int    `json:"ord"`
	Title      string `json:"title"`
	Details    string `json:"details"`
	Role       string `json:"role"` // suggested responder role, free text
}

type ActivatedSOP struct {
	ActivationID string     `gorm:"primaryKey" json:"activation_id"`
	CommunityID  uint       `gorm:"index" json:"community_id"`
	TemplateID   uint       `json:"template_id"`
	EventID      *uint      `json:"event_id"`
	Name         string     `json:"name"`
	Status       string     `json:"status"` // active|closed
	StartedBy    string     `json:"started_by"`
	StartedAt    time.Time  `json:"started_at"`
	ClosedAt     *time.Time `json:"closed_at"`
}

type SOPTask struct {
	TaskID       uint      `gorm:"primaryKey" json:"task_id"`
	ActivationID string    `gorm:"index" json:"activation_id"`
	Ord          int       `json:"ord"`
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	Status       string    `json:"status"` // pending|in_progress|completed|skipped
	AssigneeID   *uint     `json:"assignee_id"`
	TeamLeadID   *uint     `json:"team_lead_id"`
	Version      int       `json:"version"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// SOPTaskNote entries are append-only; they are never updated or deleted.
type SOPTaskNote struct {
	NoteID    uint      `gorm:"primaryKey" json:"note_id"`
	TaskID    uint      `gorm:"index" json:"task_id"`
	Author    string    `json:"author"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
