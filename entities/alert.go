package entities

import "time"

type Alert struct {
	AlertID      uint       `gorm:"primaryKey" json:"alert_id"`
	CommunityID  uint       `gorm:"index" json:"community_id"`
	AuthorID     string     `json:"author_id"`
	Title        string     `json:"title"`
	Body         string     `json:"body"`
	Severity     string     `json:"severity"` // info|warning|critical
	Channels     []string   `gorm:"serializer:json" json:"channels"` // email|sms|push
	Recipients   string     `json:"recipients"`                      // all|specific
	RecipientIDs []uint     `gorm:"serializer:json" json:"recipient_ids,omitempty"`
	SentAt       *time.Time `json:"sent_at"`
	CreatedAt    time.Time
}
