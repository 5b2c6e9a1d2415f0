package repository

import "haven/entities"

type GuideRepository interface {
	Save(g *entities.Guide) error
	FindByID(id uint) (*entities.Guide, error)
	ListByCommunity(communityID uint) ([]entities.Guide, error)
	Delete(id uint) error

	// SaveWithTemplate upserts the guide and its SOP template (with tasks)
	// in one transaction.
	SaveWithTemplate(g *entities.Guide, t *entities.SOPTemplate, tasks []entities.SOPTemplateTask) error

	CreateSource(src *entities.GuideSource) error
	Sources(hazard string) ([]entities.GuideSource, error)
}
