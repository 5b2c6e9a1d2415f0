package service

import "haven/entities"

type GuideInput struct {
	GuideID     uint   `json:"guide_id"`
	CommunityID uint   `json:"community_id"`
	Hazard      string `json:"hazard"`
	Title       string `json:"title"`
	ContentMD   string `json:"content_md"`
	Source      string `json:"source"`
	SourceURL   string `json:"source_url"`
}

type TemplateTaskInput struct {
	Title   string `json:"title"`
	Details string `json:"details"`
	Role    string `json:"role"`
}

type TemplateInput struct {
	Name  string              `json:"name"`
	Tasks []TemplateTaskInput `json:"tasks"`
}

type GuideService interface {
	Save(in GuideInput) (*entities.Guide, error)
	Get(id uint) (*entities.Guide, error)
	List(communityID uint) ([]entities.Guide, error)
	Delete(id uint) error

	// SaveWithTemplate stores the guide together with the SOP checklist
	// derived from it, as one unit.
	SaveWithTemplate(in GuideInput, tpl TemplateInput) (*entities.Guide, error)

	// Customize rewrites the guide for its community with the AI client.
	// When the client fails the stored guide is returned untouched.
	Customize(guideID uint) (*entities.Guide, error)

	IngestText(title, hazard, text, sourceURL string) (*entities.GuideSource, error)
	Sources(hazard string) ([]entities.GuideSource, error)
}
