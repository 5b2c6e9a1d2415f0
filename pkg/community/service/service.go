package service

import (
	"haven/entities"
	"haven/pkg/wizard"
)

type Detail struct {
	Community   entities.Community            `json:"community"`
	Members     []entities.CommunityMember    `json:"members"`
	Points      []entities.MapPoint           `json:"points"`
	Invitations []entities.CommunityInvitation `json:"invitations"`
}

type ProfilePatch struct {
	Name             *string   `json:"name"`
	Description      *string   `json:"description"`
	MeetingPointName *string   `json:"meeting_point_name"`
	MeetingPointAddr *string   `json:"meeting_point_addr"`
	MeetingLat       *float64  `json:"meeting_lat"`
	MeetingLng       *float64  `json:"meeting_lng"`
	Hazards          *[]string `json:"hazards"`
	RegionColor      *string   `json:"region_color"`
	RegionOpacity    *float64  `json:"region_opacity"`
}

type CommunityService interface {
	CreateFromWizard(ownerID string, d wizard.WizardData) (*entities.Community, error)
	Get(id uint) (*Detail, error)
	ListMine(userID string) ([]entities.Community, error)
	UpdateProfile(id uint, p ProfilePatch) (*entities.Community, error)

	ChangeRole(memberID uint, role string) (*entities.CommunityMember, error)
	RemoveMember(memberID uint) error

	Invite(communityID uint, email, group string) (*entities.CommunityInvitation, error)
	AcceptInvitation(token, userID, name string) (*entities.CommunityMember, error)
}
