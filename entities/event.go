package entities

import "time"

type CommunityEvent struct {
	EventID     uint      `gorm:"primaryKey" json:"event_id"`
	CommunityID uint      `gorm:"index" json:"community_id"`
	CreatedBy   string    `json:"created_by"`
	Title       string    `json:"title"`
	Kind        string    `json:"kind"` // drill|meeting|incident
	StartsAt    time.Time `json:"starts_at"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type EventInvite struct {
	InviteID  uint      `gorm:"primaryKey" json:"invite_id"`
	EventID   uint      `gorm:"index" json:"event_id"`
	MemberID  uint      `gorm:"index" json:"member_id"`
	Status    string    `json:"status"` // invited|going|declined
	CreatedAt time.Time
}
