package serviceImp

import (
	"errors"
	"log"
	"strings"
	"time"

	"haven/entities"
	alertRepo "haven/pkg/alert/repository"
	svc "haven/pkg/alert/service"
	communityRepo "haven/pkg/community/repository"
	"haven/pkg/notify"
)

var (
	ErrTitleRequired   = errors.New("alert title is required")
	ErrNoChannel       = errors.New("at least one delivery channel is required")
	ErrBadChannel      = errors.New("unknown delivery channel")
	ErrNoRecipients    = errors.New("specific recipients requires at least one member")
	ErrBadRecipientSet = errors.New("recipients must be all or specific")
)

type service struct {
	alerts   alertRepo.AlertRepository
	members  communityRepo.CommunityRepository
	notifier notify.Notifier
}

func New(a alertRepo.AlertRepository, m communityRepo.CommunityRepository, n notify.Notifier) svc.AlertService {
	return &service{alerts: a, members: m, notifier: n}
}

func validChannel(c string) bool {
	switch c {
	case notify.ChannelEmail, notify.ChannelSMS, notify.ChannelPush:
		return true
	}
	return false
}

func (s *service) Send(authorID string, in svc.AlertInput) (*entities.Alert, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	if len(in.Channels) == 0 {
		return nil, ErrNoChannel
	}
	for _, ch := range in.Channels {
		if !validChannel(ch) {
			return nil, ErrBadChannel
		}
	}
	switch in.Recipients {
	case "all":
	case "specific":
		if len(in.RecipientIDs) == 0 {
			return nil, ErrNoRecipients
		}
	default:
		return nil, ErrBadRecipientSet
	}
	if in.Severity == "" {
		in.Severity = "info"
	}

	a := &entities.Alert{
		CommunityID:  in.CommunityID,
		AuthorID:     authorID,
		Title:        in.Title,
		Body:         in.Body,
		Severity:     in.Severity,
		Channels:     in.Channels,
		Recipients:   in.Recipients,
		RecipientIDs: in.RecipientIDs,
	}
	if err := s.alerts.Create(a); err != nil {
		return nil, err
	}

	s.dispatch(a)
	return a, nil
}

// dispatch fans the alert out per channel. Failures are logged warnings;
// the alert itself is already saved.
func (s *service) dispatch(a *entities.Alert) {
	members, err := s.members.Members(a.CommunityID)
	if err != nil {
		log.Printf("WARN: alert %d: load members: %v", a.AlertID, err)
		return
	}
	targets := members
	if a.Recipients == "specific" {
		wanted := make(map[uint]bool, len(a.RecipientIDs))
		for _, id := range a.RecipientIDs {
			wanted[id] = true
		}
		targets = targets[:0]
		for _, m := range members {
			if wanted[m.MemberID] {
				targets = append(targets, m)
			}
		}
	}

	var emails, phones, userIDs []string
	for _, m := range targets {
		if m.Email != "" {
			emails = append(emails, m.Email)
		}
		if m.Phone != "" {
			phones = append(phones, m.Phone)
		}
		if m.UserID != "" {
			userIDs = append(userIDs, m.UserID)
		}
	}

	subject := "[" + strings.ToUpper(a.Severity) + "] " + a.Title
	for _, ch := range a.Channels {
		var err error
		switch ch {
		case notify.ChannelEmail:
			if len(emails) > 0 {
				err = s.notifier.Email(emails, subject, a.Body)
			}
		case notify.ChannelSMS:
			if len(phones) > 0 {
				err = s.notifier.SMS(phones, a.Title+": "+a.Body)
			}
		case notify.ChannelPush:
			if len(userIDs) > 0 {
				err = s.notifier.Push(userIDs, a.Title, a.Body)
			}
		}
		if err != nil {
			log.Printf("WARN: alert %d: %s dispatch: %v", a.AlertID, ch, err)
		}
	}

	now := time.Now()
	a.SentAt = &now
	if err := s.alerts.Update(a); err != nil {
		log.Printf("WARN: alert %d: mark sent: %v", a.AlertID, err)
	}
}

func (s *service) List(communityID uint) ([]entities.Alert, error) {
	return s.alerts.ListByCommunity(communityID)
}
