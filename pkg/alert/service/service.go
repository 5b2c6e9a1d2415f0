package service

import "haven/entities"

type AlertInput struct {
	CommunityID  uint     `json:"community_id"`
	Title        string   `json:"title"`
	Body         string   `json:"body"`
	Severity     string   `json:"severity"`
	Channels     []string `json:"channels"`
	Recipients   string   `json:"recipients"` // all|specific
	RecipientIDs []uint   `json:"recipient_ids"`
}

type AlertService interface {
	// Send validates, persists and dispatches the alert. Delivery failures
	// are soft; the alert row is the primary action.
	Send(authorID string, in AlertInput) (*entities.Alert, error)
	List(communityID uint) ([]entities.Alert, error)
}
