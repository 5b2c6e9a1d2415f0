package serviceImp

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"haven/entities"
	communityRepo "haven/pkg/community/repository"
	"haven/pkg/event/repository"
	svc "haven/pkg/event/service"
	"haven/pkg/notify"
)

var (
	ErrTitleRequired = errors.New("event title is required")
	ErrBadKind       = errors.New("kind must be drill, meeting or incident")
	ErrBadRSVP       = errors.New("rsvp must be going or declined")
)

type service struct {
	events   repository.EventRepository
	members  communityRepo.CommunityRepository
	notifier notify.Notifier
}

func New(e repository.EventRepository, m communityRepo.CommunityRepository, n notify.Notifier) svc.EventService {
	return &service{events: e, members: m, notifier: n}
}

func (s *service) Create(createdBy string, in svc.EventInput) (*svc.Detail, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	switch in.Kind {
	case "drill", "meeting", "incident":
	case "":
		in.Kind = "meeting"
	default:
		return nil, ErrBadKind
	}

	members, err := s.members.Members(in.CommunityID)
	if err != nil {
		return nil, err
	}
	targets := members
	if len(in.MemberIDs) > 0 {
		wanted := make(map[uint]bool, len(in.MemberIDs))
		for _, id := range in.MemberIDs {
			wanted[id] = true
		}
		targets = nil
		for _, m := range members {
			if wanted[m.MemberID] {
				targets = append(targets, m)
			}
		}
	}

	ev := &entities.CommunityEvent{
		CommunityID: in.CommunityID,
		CreatedBy:   createdBy,
		Title:       in.Title,
		Kind:        in.Kind,
		StartsAt:    in.StartsAt,
		Location:    in.Location,
		Notes:       in.Notes,
	}
	invites := make([]entities.EventInvite, 0, len(targets))
	for _, m := range targets {
		invites = append(invites, entities.EventInvite{MemberID: m.MemberID, Status: "invited"})
	}
	if err := s.events.CreateWithInvites(ev, invites); err != nil {
		return nil, err
	}

	// invite mail is best-effort; the event already exists
	var emails []string
	for _, m := range targets {
		if m.Email != "" {
			emails = append(emails, m.Email)
		}
	}
	if len(emails) > 0 {
		body := fmt.Sprintf("%s at %s on %s.\n\n%s",
			ev.Title, ev.Location, ev.StartsAt.Format("Mon 2 Jan 15:04"), ev.Notes)
		if err := s.notifier.Email(emails, "Community event: "+ev.Title, body); err != nil {
			log.Printf("WARN: event %d invite mail: %v", ev.EventID, err)
		}
	}

	return &svc.Detail{Event: *ev, Invites: invites}, nil
}

func (s *service) Get(id uint) (*svc.Detail, error) {
	ev, err := s.events.FindByID(id)
	if err != nil {
		return nil, err
	}
	invites, err := s.events.Invites(id)
	if err != nil {
		return nil, err
	}
	return &svc.Detail{Event: *ev, Invites: invites}, nil
}

func (s *service) ListByCommunity(communityID uint) ([]entities.CommunityEvent, error) {
	return s.events.ListByCommunity(communityID)
}

func (s *service) RSVP(inviteID uint, status string) (*entities.EventInvite, error) {
	if status != "going" && status != "declined" {
		return nil, ErrBadRSVP
	}
	inv, err := s.events.InviteByID(inviteID)
	if err != nil {
		return nil, err
	}
	inv.Status = status
	return inv, s.events.UpdateInvite(inv)
}
