package service

import "haven/entities"

// Task statuses. Skipped sits outside the cycle and is set explicitly.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusSkipped    = "skipped"
)

// NextStatus advances one step around the cycle
// pending → in_progress → completed → pending. Anything else (including
// skipped) re-enters the cycle at pending.
func NextStatus(cur string) string {
	switch cur {
	case StatusPending:
		return StatusInProgress
	case StatusInProgress:
		return StatusCompleted
	default:
		return StatusPending
	}
}

type TemplateTaskInput struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Role    string `json:"role"`
}

type Activation struct {
	Activation entities.ActivatedSOP `json:"activation"`
	Tasks      []entities.SOPTask    `json:"tasks"`
}

type AssignPatch struct {
	AssigneeID *uint `json:"assignee_id"`
	TeamLeadID *uint `json:"team_lead_id"`
}

type SOPService interface {
	UpsertTemplate(t *entities.SOPTemplate, tasks []TemplateTaskInput) (*entities.SOPTemplate, error)
	TemplatesByHazard(hazard string) ([]entities.SOPTemplate, error)
	TemplateTasks(templateID uint) ([]entities.SOPTemplateTask, error)

	Activate(communityID, templateID uint, eventID *uint, startedBy string) (*Activation, error)
	Activation(id string) (*Activation, error)
	ActivationsByCommunity(communityID uint) ([]entities.ActivatedSOP, error)
	CloseActivation(id string) error

	CycleStatus(taskID uint, version int) (*entities.SOPTask, error)
	SkipTask(taskID uint, version int) (*entities.SOPTask, error)
	AssignTask(taskID uint, version int, p AssignPatch) (*entities.SOPTask, error)
	Reorder(activationID string, taskIDs []uint) ([]entities.SOPTask, error)

	AddNote(taskID uint, author, body string) (*entities.SOPTaskNote, error)
	Notes(taskID uint) ([]entities.SOPTaskNote, error)
}
