package repository

import "haven/entities"

type EventRepository interface {
	// CreateWithInvites writes the event and its invites in one transaction.
	CreateWithInvites(ev *entities.CommunityEvent, invites []entities.EventInvite) error
	FindByID(id uint) (*entities.CommunityEvent, error)
	ListByCommunity(communityID uint) ([]entities.CommunityEvent, error)
	Invites(eventID uint) ([]entities.EventInvite, error)
	InviteByID(id uint) (*entities.EventInvite, error)
	UpdateInvite(inv *entities.EventInvite) error
}
