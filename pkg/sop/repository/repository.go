package repository

import "haven/entities"

type SOPRepository interface {
	// UpsertTemplate replaces the template's task list atomically.
	UpsertTemplate(t *entities.SOPTemplate, tasks []entities.SOPTemplateTask) error
	TemplateByID(id uint) (*entities.SOPTemplate, error)
	TemplateTasks(templateID uint) ([]entities.SOPTemplateTask, error)
	TemplatesByHazard(hazard string) ([]entities.SOPTemplate, error)

	// CreateActivation writes the activation record plus its task copies in
	// one transaction.
	CreateActivation(a *entities.ActivatedSOP, tasks []entities.SOPTask) error
	ActivationByID(id string) (*entities.ActivatedSOP, error)
	UpdateActivation(a *entities.ActivatedSOP) error
	ActivationsByCommunity(communityID uint) ([]entities.ActivatedSOP, error)

	Tasks(activationID string) ([]entities.SOPTask, error)
	TaskByID(id uint) (*entities.SOPTask, error)
	// UpdateTaskVersioned applies updates only if the stored version still
	// matches; returns the number of rows changed (0 means conflict).
	UpdateTaskVersioned(taskID uint, version int, updates map[string]any) (int64, error)
	// ReindexTasks rewrites every task's ord to its position in taskIDs.
	ReindexTasks(activationID string, taskIDs []uint) error

	AddNote(n *entities.SOPTaskNote) error
	Notes(taskID uint) ([]entities.SOPTaskNote, error)
}
