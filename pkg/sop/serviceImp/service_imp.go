package serviceImp

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"haven/entities"
	"haven/pkg/feed"
	"haven/pkg/sop/repository"
	svc "haven/pkg/sop/service"
)

var (
	// ErrConflict means the task changed under the caller; refetch and retry.
	ErrConflict     = errors.New("task was modified by someone else")
	ErrClosed       = errors.New("activation is closed")
	ErrEmptyNote    = errors.New("note body is required")
	ErrBadReorder   = errors.New("reorder must list every task exactly once")
	ErrNameRequired = errors.New("template name is required")
)

type service struct {
	repo repository.SOPRepository
	feed *feed.Feed
}

func New(repo repository.SOPRepository, f *feed.Feed) svc.SOPService {
	return &service{repo: repo, feed: f}
}

func (s *service) UpsertTemplate(t *entities.SOPTemplate, tasks []svc.TemplateTaskInput) (*entities.SOPTemplate, error) {
	if strings.TrimSpace(t.Name) == "" {
		return nil, ErrNameRequired
	}
	rows := make([]entities.SOPTemplateTask, 0, len(tasks))
	for _, in := range tasks {
		rows = append(rows, entities.SOPTemplateTask{
			Title:   in.Title,
			Details: in.Details,
			Role:    in.Role,
		})
	}
	if err := s.repo.UpsertTemplate(t, rows); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *service) TemplatesByHazard(hazard string) ([]entities.SOPTemplate, error) {
	return s.repo.TemplatesByHazard(hazard)
}

func (s *service) TemplateTasks(templateID uint) ([]entities.SOPTemplateTask, error) {
	return s.repo.TemplateTasks(templateID)
}

// Activate copies every template task into an independently tracked task
// record scoped to one activation.
func (s *service) Activate(communityID, templateID uint, eventID *uint, startedBy string) (*svc.Activation, error) {
	tpl, err := s.repo.TemplateByID(templateID)
	if err != nil {
		return nil, err
	}
	tplTasks, err := s.repo.TemplateTasks(templateID)
	if err != nil {
		return nil, err
	}

	act := &entities.ActivatedSOP{
		ActivationID: uuid.NewString(),
		CommunityID:  communityID,
		TemplateID:   templateID,
		EventID:      eventID,
		Name:         tpl.Name,
		Status:       "active",
		StartedBy:    startedBy,
		StartedAt:    time.Now(),
	}
	tasks := make([]entities.SOPTask, 0, len(tplTasks))
	for _, tt := range tplTasks {
		tasks = append(tasks, entities.SOPTask{
			Ord:     tt.Ord,
			Title:   tt.Title,
			Details: tt.Details,
			Status:  svc.StatusPending,
		})
	}
	if err := s.repo.CreateActivation(act, tasks); err != nil {
		return nil, err
	}
	s.feed.Publish(act.ActivationID, "activated_sops", act.ActivationID, feed.OpInsert)
	return s.Activation(act.ActivationID)
}

func (s *service) Activation(id string) (*svc.Activation, error) {
	act, err := s.repo.ActivationByID(id)
	if err != nil {
		return nil, err
	}
	tasks, err := s.repo.Tasks(id)
	if err != nil {
		return nil, err
	}
	return &svc.Activation{Activation: *act, Tasks: tasks}, nil
}

func (s *service) ActivationsByCommunity(communityID uint) ([]entities.ActivatedSOP, error) {
	return s.repo.ActivationsByCommunity(communityID)
}

func (s *service) CloseActivation(id string) error {
	act, err := s.repo.ActivationByID(id)
	if err != nil {
		return err
	}
	if act.Status == "closed" {
		return nil
	}
	now := time.Now()
	act.Status = "closed"
	act.ClosedAt = &now
	if err := s.repo.UpdateActivation(act); err != nil {
		return err
	}
	s.feed.Publish(id, "activated_sops", id, feed.OpUpdate)
	return nil
}

func (s *service) patchTask(taskID uint, version int, updates map[string]any) (*entities.SOPTask, error) {
	cur, err := s.repo.TaskByID(taskID)
	if err != nil {
		return nil, err
	}
	act, err := s.repo.ActivationByID(cur.ActivationID)
	if err != nil {
		return nil, err
	}
	if act.Status == "closed" {
		return nil, ErrClosed
	}
	n, err := s.repo.UpdateTaskVersioned(taskID, version, updates)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrConflict
	}
	out, err := s.repo.TaskByID(taskID)
	if err != nil {
		return nil, err
	}
	s.feed.Publish(cur.ActivationID, "sop_tasks", strconv.FormatUint(uint64(taskID), 10), feed.OpUpdate)
	return out, nil
}

// CycleStatus advances the task one step around the status cycle, guarded
// by the caller's last-seen version.
func (s *service) CycleStatus(taskID uint, version int) (*entities.SOPTask, error) {
	cur, err := s.repo.TaskByID(taskID)
	if err != nil {
		return nil, err
	}
	return s.patchTask(taskID, version, map[string]any{"status": svc.NextStatus(cur.Status)})
}

func (s *service) SkipTask(taskID uint, version int) (*entities.SOPTask, error) {
	return s.patchTask(taskID, version, map[string]any{"status": svc.StatusSkipped})
}

func (s *service) AssignTask(taskID uint, version int, p svc.AssignPatch) (*entities.SOPTask, error) {
	return s.patchTask(taskID, version, map[string]any{
		"assignee_id":  p.AssigneeID,
		"team_lead_id": p.TeamLeadID,
	})
}

// Reorder rewrites every task's order field to its position in taskIDs.
func (s *service) Reorder(activationID string, taskIDs []uint) ([]entities.SOPTask, error) {
	existing, err := s.repo.Tasks(activationID)
	if err != nil {
		return nil, err
	}
	if len(existing) != len(taskIDs) {
		return nil, ErrBadReorder
	}
	seen := make(map[uint]bool, len(taskIDs))
	byID := make(map[uint]bool, len(existing))
	for _, t := range existing {
		byID[t.TaskID] = true
	}
	for _, id := range taskIDs {
		if seen[id] || !byID[id] {
			return nil, ErrBadReorder
		}
		seen[id] = true
	}
	if err := s.repo.ReindexTasks(activationID, taskIDs); err != nil {
		return nil, err
	}
	s.feed.Publish(activationID, "sop_tasks", "", feed.OpUpdate)
	return s.repo.Tasks(activationID)
}

// AddNote appends a timestamped note. Notes are never updated or deleted.
func (s *service) AddNote(taskID uint, author, body string) (*entities.SOPTaskNote, error) {
	if strings.TrimSpace(body) == "" {
		return nil, ErrEmptyNote
	}
	task, err := s.repo.TaskByID(taskID)
	if err != nil {
		return nil, err
	}
	n := &entities.SOPTaskNote{
		TaskID:    taskID,
		Author:    author,
		Body:      body,
		CreatedAt: time.Now(),
	}
	if err := s.repo.AddNote(n); err != nil {
		return nil, err
	}
	s.feed.Publish(task.ActivationID, "sop_task_notes", strconv.FormatUint(uint64(n.NoteID), 10), feed.OpInsert)
	return n, nil
}

func (s *service) Notes(taskID uint) ([]entities.SOPTaskNote, error) {
	return s.repo.Notes(taskID)
}
