package serviceImp

import (
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"haven/entities"
	"haven/pkg/feed"
	"haven/pkg/sop/repositoryImp"
	svc "haven/pkg/sop/service"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entities.SOPTemplate{},
		&entities.SOPTemplateTask{},
		&entities.ActivatedSOP{},
		&entities.SOPTask{},
		&entities.SOPTaskNote{},
	))
	return db
}

func newTestService(t *testing.T) (svc.SOPService, *feed.Feed) {
	t.Helper()
	f := feed.New()
	return New(repositoryImp.New(openTestDB(t)), f), f
}

func seedActivation(t *testing.T, s svc.SOPService) *svc.Activation {
	t.Helper()
	tpl, err := s.UpsertTemplate(&entities.SOPTemplate{Hazard: "flood", Name: "Flood response"},
		[]svc.TemplateTaskInput{
			{Title: "Check the river gauge", Role: "scout"},
			{Title: "Open the community hall", Role: "warden"},
			{Title: "Call vulnerable residents"},
		})
	require.NoError(t, err)

	act, err := s.Activate(1, tpl.TemplateID, nil, "admin-1")
	require.NoError(t, err)
	require.Len(t, act.Tasks, 3)
	return act
}

func TestNextStatusCycle(t *testing.T) {
	seen := map[string]bool{}
	cur := svc.StatusPending
	for i := 0; i < 9; i++ {
		cur = svc.NextStatus(cur)
		seen[cur] = true
	}
	assert.Equal(t, svc.StatusPending, cur, "three full cycles end at pending")
	assert.Equal(t, map[string]bool{
		svc.StatusPending:    true,
		svc.StatusInProgress: true,
		svc.StatusCompleted:  true,
	}, seen, "the cycle never produces any other value")

	assert.Equal(t, svc.StatusPending, svc.NextStatus(svc.StatusSkipped))
	assert.Equal(t, svc.StatusPending, svc.NextStatus("garbage"))
}

func TestActivateCopiesTemplateTasks(t *testing.T) {
	s, _ := newTestService(t)
	act := seedActivation(t, s)

	assert.Equal(t, "Flood response", act.Activation.Name)
	assert.Equal(t, "active", act.Activation.Status)
	for i, task := range act.Tasks {
		assert.Equal(t, i, task.Ord)
		assert.Equal(t, svc.StatusPending, task.Status)
		assert.Equal(t, act.Activation.ActivationID, task.ActivationID)
	}
	assert.Equal(t, "Check the river gauge", act.Tasks[0].Title)
}

func TestCycleStatusOnStoredTask(t *testing.T) {
	s, _ := newTestService(t)
	act := seedActivation(t, s)
	task := act.Tasks[0]

	want := []string{svc.StatusInProgress, svc.StatusCompleted, svc.StatusPending}
	for _, expect := range want {
		out, err := s.CycleStatus(task.TaskID, task.Version)
		require.NoError(t, err)
		assert.Equal(t, expect, out.Status)
		task = *out
	}
}

func TestStaleVersionConflicts(t *testing.T) {
	s, _ := newTestService(t)
	act := seedActivation(t, s)
	task := act.Tasks[0]

	_, err := s.CycleStatus(task.TaskID, task.Version)
	require.NoError(t, err)

	// a second admin still holding the old version must be surfaced, not
	// silently overwritten
	_, err = s.CycleStatus(task.TaskID, task.Version)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestNotesAreAppendOnly(t *testing.T) {
	s, _ := newTestService(t)
	act := seedActivation(t, s)
	task := act.Tasks[1]

	n1, err := s.AddNote(task.TaskID, "alice", "generator fuel is low")
	require.NoError(t, err)
	n2, err := s.AddNote(task.TaskID, "bob", "fuel restocked")
	require.NoError(t, err)
	require.NotZero(t, n1.NoteID)
	require.NotZero(t, n2.NoteID)

	notes, err := s.Notes(task.TaskID)
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "alice", notes[0].Author)
	assert.Equal(t, "generator fuel is low", notes[0].Body)
	assert.Equal(t, "bob", notes[1].Author)
	assert.False(t, notes[0].CreatedAt.IsZero())
	assert.Less(t, notes[0].NoteID, notes[1].NoteID, "insertion order preserved")

	_, err = s.AddNote(task.TaskID, "carol", "   ")
	assert.ErrorIs(t, err, ErrEmptyNote)
}

func TestReorderReindexesEveryTask(t *testing.T) {
	s, _ := newTestService(t)
	act := seedActivation(t, s)
	ids := []uint{act.Tasks[2].TaskID, act.Tasks[0].TaskID, act.Tasks[1].TaskID}

	out, err := s.Reorder(act.Activation.ActivationID, ids)
	require.NoError(t, err)
	require.Len(t, out, 3)
	for i, task := range out {
		assert.Equal(t, i, task.Ord)
		assert.Equal(t, ids[i], task.TaskID)
	}
}

func TestReorderRejectsPartialLists(t *testing.T) {
	s, _ := newTestService(t)
	act := seedActivation(t, s)

	_, err := s.Reorder(act.Activation.ActivationID, []uint{act.Tasks[0].TaskID})
	assert.ErrorIs(t, err, ErrBadReorder)

	dup := []uint{act.Tasks[0].TaskID, act.Tasks[0].TaskID, act.Tasks[1].TaskID}
	_, err = s.Reorder(act.Activation.ActivationID, dup)
	assert.ErrorIs(t, err, ErrBadReorder)
}

func TestClosedActivationRejectsTaskWrites(t *testing.T) {
	s, _ := newTestService(t)
	act := seedActivation(t, s)
	require.NoError(t, s.CloseActivation(act.Activation.ActivationID))

	_, err := s.CycleStatus(act.Tasks[0].TaskID, act.Tasks[0].Version)
	assert.ErrorIs(t, err, ErrClosed)
}

func TestMutationsReachTheFeed(t *testing.T) {
	s, f := newTestService(t)
	act := seedActivation(t, s)

	ch, cancel := f.Subscribe(act.Activation.ActivationID)
	defer cancel()

	_, err := s.CycleStatus(act.Tasks[0].TaskID, act.Tasks[0].Version)
	require.NoError(t, err)

	change := <-ch
	assert.Equal(t, "sop_tasks", change.Table)
	assert.Equal(t, feed.OpUpdate, change.Op)
}
