package service

import (
	"time"

	"haven/entities"
)

type EventInput struct {
	CommunityID uint      `json:"community_id"`
	Title       string    `json:"title"`
	Kind        string    `json:"kind"` // drill|meeting|incident
	StartsAt    time.Time `json:"starts_at"`
	Location    string    `json:"location"`
	Notes       string    `json:"notes"`
	MemberIDs   []uint    `json:"member_ids"` // empty means invite everyone
}

type Detail struct {
	Event   entities.CommunityEvent `json:"event"`
	Invites []entities.EventInvite  `json:"invites"`
}

type EventService interface {
	// Create writes the event and its invites together, then sends invite
	// mail as a soft side effect.
	Create(createdBy string, in EventInput) (*Detail, error)
	Get(id uint) (*Detail, error)
	ListByCommunity(communityID uint) ([]entities.CommunityEvent, error)
	RSVP(inviteID uint, status string) (*entities.EventInvite, error)
}
