package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"haven/entities"
	"haven/pkg/community/repository"
	svc "haven/pkg/community/service"
	"haven/pkg/notify"
	"haven/pkg/wizard"
)

var (
	ErrLastAdmin     = errors.New("cannot remove or demote the last admin")
	ErrBadRole       = errors.New("role must be admin or member")
	ErrInvalidEmail  = errors.New("invalid email address")
	ErrInviteClosed  = errors.New("invitation is no longer open")
	ErrNameRequired  = errors.New("community name is required")
	ErrPointRequired = errors.New("meeting point is required")
)

var emailRx = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type service struct {
	repo     repository.CommunityRepository
	notifier notify.Notifier
}

func New(repo repository.CommunityRepository, notifier notify.Notifier) svc.CommunityService {
	return &service{repo: repo, notifier: notifier}
}

// CreateFromWizard is the remote creation call the wizard's completion
// handshake invokes: community + owner membership + region points +
// invitations land in one transaction, then invitation emails go out as a
// soft side effect.
func (s *service) CreateFromWizard(ownerID string, d wizard.WizardData) (*entities.Community, error) {
	if strings.TrimSpace(d.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(d.MeetingPointName) == "" || d.MeetingLat == nil || d.MeetingLng == nil {
		return nil, ErrPointRequired
	}

	com := &entities.Community{
		OwnerID:          ownerID,
		Name:             strings.TrimSpace(d.Name),
		Description:      d.Description,
		MeetingPointName: d.MeetingPointName,
		MeetingPointAddr: d.MeetingPointAddr,
		MeetingLat:       d.MeetingLat,
		MeetingLng:       d.MeetingLng,
		Hazards:          d.Hazards,
		RegionColor:      d.RegionColor,
		RegionOpacity:    d.RegionOpacity,
	}
	if d.Promo != nil {
		com.PromoTitle = d.Promo.Title
		com.PromoBody = d.Promo.Body
	}

	owner := entities.CommunityMember{UserID: ownerID, Role: "admin"}
	members := []entities.CommunityMember{owner}

	points := make([]entities.MapPoint, 0, len(d.Polygon))
	for i, p := range d.Polygon {
		points = append(points, entities.MapPoint{Ord: i, Lat: p.Lat, Lng: p.Lng})
	}

	invites := make([]entities.CommunityInvitation, 0, len(d.Invitations))
	for _, inv := range d.Invitations {
		if !emailRx.MatchString(inv.Email) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidEmail, inv.Email)
		}
		invites = append(invites, entities.CommunityInvitation{
			Email:     inv.Email,
			GroupName: inv.GroupName,
			Token:     uuid.NewString(),
			Status:    "pending",
		})
	}

	if err := s.repo.CreateWithSetup(com, members, points, invites); err != nil {
		return nil, err
	}

	// invitation mail is best-effort; the community is already created
	for _, inv := range invites {
		if err := s.notifier.Email([]string{inv.Email},
			"You're invited to join "+com.Name,
			inviteBody(com.Name, inv.Token)); err != nil {
			log.Printf("WARN: invite email to %s: %v", inv.Email, err)
		}
	}
	return com, nil
}

func inviteBody(name, token string) string {
	return fmt.Sprintf("Your neighbours set up the %s preparedness community.\nJoin with token %s.", name, token)
}

func (s *service) Get(id uint) (*svc.Detail, error) {
	com, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	members, err := s.repo.Members(id)
	if err != nil {
		return nil, err
	}
	points, err := s.repo.Points(id)
	if err != nil {
		return nil, err
	}
	invites, err := s.repo.Invitations(id)
	if err != nil {
		return nil, err
	}
	return &svc.Detail{Community: *com, Members: members, Points: points, Invitations: invites}, nil
}

func (s *service) ListMine(userID string) ([]entities.Community, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) UpdateProfile(id uint, p svc.ProfilePatch) (*entities.Community, error) {
	cur, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		if strings.TrimSpace(*p.Name) == "" {
			return nil, ErrNameRequired
		}
		cur.Name = *p.Name
	}
	if p.Description != nil {
		cur.Description = *p.Description
	}
	if p.MeetingPointName != nil {
		cur.MeetingPointName = *p.MeetingPointName
	}
	if p.MeetingPointAddr != nil {
		cur.MeetingPointAddr = *p.MeetingPointAddr
	}
	if p.MeetingLat != nil {
		cur.MeetingLat = p.MeetingLat
	}
	if p.MeetingLng != nil {
		cur.MeetingLng = p.MeetingLng
	}
	if p.Hazards != nil {
		cur.Hazards = *p.Hazards
	}
	if p.RegionColor != nil {
		cur.RegionColor = *p.RegionColor
	}
	if p.RegionOpacity != nil {
		cur.RegionOpacity = *p.RegionOpacity
	}
	return cur, s.repo.Update(cur)
}

// ChangeRole enforces the last-admin rule server-side; a client-side check
// alone can be bypassed by a concurrent request.
func (s *service) ChangeRole(memberID uint, role string) (*entities.CommunityMember, error) {
	if role != "admin" && role != "member" {
		return nil, ErrBadRole
	}
	m, err := s.repo.MemberByID(memberID)
	if err != nil {
		return nil, err
	}
	if m.Role == "admin" && role != "admin" {
		n, err := s.repo.CountAdmins(m.CommunityID)
		if err != nil {
			return nil, err
		}
		if n <= 1 {
			return nil, ErrLastAdmin
		}
	}
	m.Role = role
	return m, s.repo.UpdateMember(m)
}

func (s *service) RemoveMember(memberID uint) error {
	m, err := s.repo.MemberByID(memberID)
	if err != nil {
		return err
	}
	if m.Role == "admin" {
		n, err := s.repo.CountAdmins(m.CommunityID)
		if err != nil {
			return err
		}
		if n <= 1 {
			return ErrLastAdmin
		}
	}
	return s.repo.DeleteMember(memberID)
}

func (s *service) Invite(communityID uint, email, group string) (*entities.CommunityInvitation, error) {
	if !emailRx.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	com, err := s.repo.FindByID(communityID)
	if err != nil {
		return nil, err
	}
	inv := &entities.CommunityInvitation{
		CommunityID: communityID,
		Email:       email,
		GroupName:   group,
		Token:       uuid.NewString(),
		Status:      "pending",
	}
	if err := s.repo.CreateInvitation(inv); err != nil {
		return nil, err
	}
	if err := s.notifier.Email([]string{email},
		"You're invited to join "+com.Name, inviteBody(com.Name, inv.Token)); err != nil {
		log.Printf("WARN: invite email to %s: %v", email, err)
	}
	return inv, nil
}

func (s *service) AcceptInvitation(token, userID, name string) (*entities.CommunityMember, error) {
	inv, err := s.repo.InvitationByToken(token)
	if err != nil {
		return nil, err
	}
	if inv.Status != "pending" {
		return nil, ErrInviteClosed
	}
	m := &entities.CommunityMember{
		CommunityID: inv.CommunityID,
		UserID:      userID,
		Name:        name,
		Email:       inv.Email,
		Role:        "member",
		GroupName:   inv.GroupName,
	}
	if err := s.repo.AddMember(m); err != nil {
		return nil, err
	}
	inv.Status = "accepted"
	if err := s.repo.UpdateInvitation(inv); err != nil {
		log.Printf("WARN: mark invitation accepted: %v", err)
	}
	return m, nil
}
