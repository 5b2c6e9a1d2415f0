package serviceImp

import (
	"errors"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"haven/entities"
	"haven/pkg/alert/repositoryImp"
	svc "haven/pkg/alert/service"
	commRepoImp "haven/pkg/community/repositoryImp"
)

type captureNotifier struct {
	emails  [][]string
	sms     [][]string
	pushes  [][]string
	failAll bool
}

func (n *captureNotifier) Email(to []string, subject, body string) error {
	n.emails = append(n.emails, to)
	if n.failAll {
		return errors.New("smtp down")
	}
	return nil
}

func (n *captureNotifier) SMS(to []string, body string) error {
	n.sms = append(n.sms, to)
	if n.failAll {
		return errors.New("gateway down")
	}
	return nil
}

func (n *captureNotifier) Push(userIDs []string, title, body string) error {
	n.pushes = append(n.pushes, userIDs)
	if n.failAll {
		return errors.New("push down")
	}
	return nil
}

func newTestService(t *testing.T) (svc.AlertService, *captureNotifier, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.Alert{},
		&entities.Community{},
		&entities.CommunityMember{},
		&entities.CommunityInvitation{},
		&entities.MapPoint{},
	))
	n := &captureNotifier{}
	s := New(repositoryImp.New(db), commRepoImp.New(db), n)
	return s, n, db
}

func seedMembers(t *testing.T, db *gorm.DB) []entities.CommunityMember {
	t.Helper()
	members := []entities.CommunityMember{
		{CommunityID: 1, UserID: "u1", Email: "a@example.com", Phone: "+111", Role: "admin"},
		{CommunityID: 1, UserID: "u2", Email: "b@example.com", Role: "member"},
		{CommunityID: 1, UserID: "u3", Phone: "+333", Role: "member"},
	}
	require.NoError(t, db.Create(&members).Error)
	return members
}

func validInput() svc.AlertInput {
	return svc.AlertInput{
		CommunityID: 1,
		Title:       "Flood warning",
		Body:        "River is rising, move vehicles.",
		Severity:    "warning",
		Channels:    []string{"email", "sms"},
		Recipients:  "all",
	}
}

func TestSendValidation(t *testing.T) {
	s, _, _ := newTestService(t)

	in := validInput()
	in.Title = " "
	_, err := s.Send("u1", in)
	assert.ErrorIs(t, err, ErrTitleRequired)

	in = validInput()
	in.Channels = nil
	_, err = s.Send("u1", in)
	assert.ErrorIs(t, err, ErrNoChannel)

	in = validInput()
	in.Channels = []string{"pigeon"}
	_, err = s.Send("u1", in)
	assert.ErrorIs(t, err, ErrBadChannel)

	in = validInput()
	in.Recipients = "specific"
	_, err = s.Send("u1", in)
	assert.ErrorIs(t, err, ErrNoRecipients)

	in = validInput()
	in.Recipients = "some"
	_, err = s.Send("u1", in)
	assert.ErrorIs(t, err, ErrBadRecipientSet)
}

func TestSendFansOutPerChannel(t *testing.T) {
	s, n, db := newTestService(t)
	seedMembers(t, db)

	a, err := s.Send("u1", validInput())
	require.NoError(t, err)
	require.NotZero(t, a.AlertID)
	require.NotNil(t, a.SentAt)

	require.Len(t, n.emails, 1)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, n.emails[0])
	require.Len(t, n.sms, 1)
	assert.ElementsMatch(t, []string{"+111", "+333"}, n.sms[0])
	assert.Empty(t, n.pushes, "push channel was not selected")
}

func TestSpecificRecipients(t *testing.T) {
	s, n, db := newTestService(t)
	members := seedMembers(t, db)

	in := validInput()
	in.Channels = []string{"email"}
	in.Recipients = "specific"
	in.RecipientIDs = []uint{members[1].MemberID}

	_, err := s.Send("u1", in)
	require.NoError(t, err)
	require.Len(t, n.emails, 1)
	assert.Equal(t, []string{"b@example.com"}, n.emails[0])
}

func TestDeliveryFailureIsSoft(t *testing.T) {
	s, n, db := newTestService(t)
	seedMembers(t, db)
	n.failAll = true

	a, err := s.Send("u1", validInput())
	require.NoError(t, err, "the alert row is the primary action")

	var count int64
	require.NoError(t, db.Model(&entities.Alert{}).Where("alert_id = ?", a.AlertID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
