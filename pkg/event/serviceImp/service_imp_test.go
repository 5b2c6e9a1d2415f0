package serviceImp

import (
	"testing"
	"time"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"haven/entities"
	communityRepo "haven/pkg/community/repositoryImp"
	"haven/pkg/event/repositoryImp"
	svc "haven/pkg/event/service"
)

type recordingNotifier struct {
	emails []string
	fail   bool
}

func (n *recordingNotifier) Email(to []string, subject, body string) error {
	n.emails = append(n.emails, to...)
	if n.fail {
		return assert.AnError
	}
	return nil
}

func (n *recordingNotifier) SMS(to []string, body string) error { return nil }

func (n *recordingNotifier) Push(u []string, t, b string) error { return nil }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Community{},
		&entities.CommunityMember{},
		&entities.CommunityEvent{},
		&entities.EventInvite{},
	))
	return db
}

func newTestService(t *testing.T) (svc.EventService, *recordingNotifier, *gorm.DB) {
	t.Helper()
	db := openTestDB(t)
	n := &recordingNotifier{}
	return New(repositoryImp.New(db), communityRepo.New(db), n), n, db
}

func seedMembers(t *testing.T, db *gorm.DB) []entities.CommunityMember {
	t.Helper()
	c := entities.Community{Name: "Riverside Watch"}
	require.NoError(t, db.Create(&c).Error)
	members := []entities.CommunityMember{
		{CommunityID: c.CommunityID, UserID: "u1", Name: "Ann", Email: "ann@example.org", Role: "admin"},
		{CommunityID: c.CommunityID, UserID: "u2", Name: "Ben", Email: "ben@example.org", Role: "member"},
		{CommunityID: c.CommunityID, UserID: "u3", Name: "Cid", Role: "member"},
	}
	require.NoError(t, db.Create(&members).Error)
	return members
}

func eventInput(communityID uint) svc.EventInput {
	return svc.EventInput{
		CommunityID: communityID,
		Title:       "Flood drill",
		Kind:        "drill",
		StartsAt:    time.Date(2026, 9, 12, 9, 0, 0, 0, time.UTC),
		Location:    "Community Hall",
	}
}

func TestCreateWritesEventWithInvites(t *testing.T) {
	s, n, db := newTestService(t)
	members := seedMembers(t, db)

	out, err := s.Create("u1", eventInput(members[0].CommunityID))
	require.NoError(t, err)
	assert.NotZero(t, out.Event.EventID)
	require.Len(t, out.Invites, 3)
	for _, inv := range out.Invites {
		assert.Equal(t, out.Event.EventID, inv.EventID)
		assert.Equal(t, "invited", inv.Status)
	}

	// only members with an email get mail
	assert.ElementsMatch(t, []string{"ann@example.org", "ben@example.org"}, n.emails)
}

func TestCreateValidation(t *testing.T) {
	s, _, db := newTestService(t)
	members := seedMembers(t, db)

	in := eventInput(members[0].CommunityID)
	in.Title = "  "
	_, err := s.Create("u1", in)
	assert.ErrorIs(t, err, ErrTitleRequired)

	in = eventInput(members[0].CommunityID)
	in.Kind = "party"
	_, err = s.Create("u1", in)
	assert.ErrorIs(t, err, ErrBadKind)

	in = eventInput(members[0].CommunityID)
	in.Kind = ""
	out, err := s.Create("u1", in)
	require.NoError(t, err)
	assert.Equal(t, "meeting", out.Event.Kind)
}

func TestCreateTargetsSelectedMembers(t *testing.T) {
	s, _, db := newTestService(t)
	members := seedMembers(t, db)

	in := eventInput(members[0].CommunityID)
	in.MemberIDs = []uint{members[1].MemberID}
	out, err := s.Create("u1", in)
	require.NoError(t, err)
	require.Len(t, out.Invites, 1)
	assert.Equal(t, members[1].MemberID, out.Invites[0].MemberID)
}

func TestFailedInviteWriteLeavesNoEvent(t *testing.T) {
	s, n, db := newTestService(t)
	members := seedMembers(t, db)

	// force the invite insert to fail mid-transaction
	require.NoError(t, db.Migrator().DropTable(&entities.EventInvite{}))

	_, err := s.Create("u1", eventInput(members[0].CommunityID))
	require.Error(t, err)

	var events int64
	require.NoError(t, db.Model(&entities.CommunityEvent{}).Count(&events).Error)
	assert.Zero(t, events, "event row rolled back with its invites")
	assert.Empty(t, n.emails, "no mail for an event that was not created")
}

func TestInviteMailFailureIsSoft(t *testing.T) {
	s, n, db := newTestService(t)
	members := seedMembers(t, db)
	n.fail = true

	out, err := s.Create("u1", eventInput(members[0].CommunityID))
	require.NoError(t, err)
	assert.NotZero(t, out.Event.EventID)
}

func TestRSVP(t *testing.T) {
	s, _, db := newTestService(t)
	members := seedMembers(t, db)

	out, err := s.Create("u1", eventInput(members[0].CommunityID))
	require.NoError(t, err)
	inv := out.Invites[0]

	_, err = s.RSVP(inv.InviteID, "maybe")
	assert.ErrorIs(t, err, ErrBadRSVP)

	got, err := s.RSVP(inv.InviteID, "going")
	require.NoError(t, err)
	assert.Equal(t, "going", got.Status)

	got, err = s.RSVP(inv.InviteID, "declined")
	require.NoError(t, err)
	assert.Equal(t, "declined", got.Status)
}
