package entities

import "time"

type Guide struct {
	GuideID     uint      `gorm:"primaryKey" json:"guide_id"`
	CommunityID uint      `gorm:"index" json:"community_id"`
	Hazard      string    `gorm:"index" json:"hazard"`
	Title       string    `json:"title"`
	ContentMD   string    `json:"content_md"`
	Source      string    `json:"source"` // library|custom|ai
	SourceURL   string    `json:"source_url"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// GuideSource is ingested reference material the guide editor can draw from.
type GuideSource struct {
	SourceID  uint      `gorm:"primaryKey" json:"source_id"`
	Title     string    `json:"title"`
	Hazard    string    `gorm:"index" json:"hazard"`
	Text      string    `json:"text"`
	SourceURL string    `json:"source_url"`
	CreatedAt time.Time
}
