package repository

import "haven/entities"

type CommunityRepository interface {
	// CreateWithSetup writes the community and all of its initial rows in
	// one transaction; nothing is left behind if any write fails.
	CreateWithSetup(c *entities.Community, members []entities.CommunityMember,
		points []entities.MapPoint, invites []entities.CommunityInvitation) error

	FindByID(id uint) (*entities.Community, error)
	ListByUser(userID string) ([]entities.Community, error)
	Update(c *entities.Community) error

	Members(communityID uint) ([]entities.CommunityMember, error)
	MemberByID(id uint) (*entities.CommunityMember, error)
	AddMember(m *entities.CommunityMember) error
	UpdateMember(m *entities.CommunityMember) error
	DeleteMember(id uint) error
	CountAdmins(communityID uint) (int64, error)

	Invitations(communityID uint) ([]entities.CommunityInvitation, error)
	CreateInvitation(inv *entities.CommunityInvitation) error
	InvitationByToken(token string) (*entities.CommunityInvitation, error)
	UpdateInvitation(inv *entities.CommunityInvitation) error

	Points(communityID uint) ([]entities.MapPoint, error)
}
