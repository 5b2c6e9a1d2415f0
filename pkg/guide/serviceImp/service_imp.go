package serviceImp

import (
	"errors"
	"log"
	"strings"

	"haven/entities"
	"haven/pkg/ai"
	crepo "haven/pkg/community/repository"
	"haven/pkg/guide/repository"
	"haven/pkg/guide/service"
)

var (
	ErrTitleRequired   = errors.New("title is required")
	ErrContentRequired = errors.New("content is required")
	ErrBadSource       = errors.New("source must be library, custom or ai")
	ErrTextRequired    = errors.New("text is required")
)

type guideService struct {
	repo        repository.GuideRepository
	communities crepo.CommunityRepository
	llm         ai.Client
}

func New(repo repository.GuideRepository, communities crepo.CommunityRepository, llm ai.Client) service.GuideService {
	return &guideService{repo: repo, communities: communities, llm: llm}
}

func validSource(s string) bool {
	switch s {
	case "library", "custom", "ai":
		return true
	}
	return false
}

func (s *guideService) buildGuide(in service.GuideInput) (*entities.Guide, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(in.ContentMD) == "" {
		return nil, ErrContentRequired
	}
	if in.Source == "" {
		in.Source = "custom"
	}
	if !validSource(in.Source) {
		return nil, ErrBadSource
	}
	return &entities.Guide{
		GuideID:     in.GuideID,
		CommunityID: in.CommunityID,
		Hazard:      in.Hazard,
		Title:       strings.TrimSpace(in.Title),
		ContentMD:   in.ContentMD,
		Source:      in.Source,
		SourceURL:   in.SourceURL,
	}, nil
}

func (s *guideService) Save(in service.GuideInput) (*entities.Guide, error) {
	g, err := s.buildGuide(in)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *guideService) Get(id uint) (*entities.Guide, error) { return s.repo.FindByID(id) }

func (s *guideService) List(communityID uint) ([]entities.Guide, error) {
	return s.repo.ListByCommunity(communityID)
}

func (s *guideService) Delete(id uint) error { return s.repo.Delete(id) }

func (s *guideService) SaveWithTemplate(in service.GuideInput, tpl service.TemplateInput) (*entities.Guide, error) {
	g, err := s.buildGuide(in)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(tpl.Name)
	if name == "" {
		name = g.Title
	}
	t := &entities.SOPTemplate{Hazard: g.Hazard, Name: name}
	tasks := make([]entities.SOPTemplateTask, 0, len(tpl.Tasks))
	for _, in := range tpl.Tasks {
		if strings.TrimSpace(in.Title) == "" {
			continue
		}
		tasks = append(tasks, entities.SOPTemplateTask{
			Title:   strings.TrimSpace(in.Title),
			Details: in.Details,
			Role:    in.Role,
		})
	}
	if err := s.repo.SaveWithTemplate(g, t, tasks); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *guideService) Customize(guideID uint) (*entities.Guide, error) {
	g, err := s.repo.FindByID(guideID)
	if err != nil {
		return nil, err
	}
	com, err := s.communities.FindByID(g.CommunityID)
	if err != nil {
		return nil, err
	}
	adapted, err := s.llm.CustomizeGuide(g.ContentMD, com.Name, com.Hazards)
	if err != nil {
		// the stored guide stays usable when the model is unreachable
		log.Printf("WARN: guide customize failed for guide %d: %v", guideID, err)
		return g, nil
	}
	g.ContentMD = adapted
	g.Source = "ai"
	if err := s.repo.Save(g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *guideService) IngestText(title, hazard, text, sourceURL string) (*entities.GuideSource, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrTitleRequired
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrTextRequired
	}
	src := &entities.GuideSource{
		Title:     strings.TrimSpace(title),
		Hazard:    hazard,
		Text:      text,
		SourceURL: sourceURL,
	}
	if err := s.repo.CreateSource(src); err != nil {
		return nil, err
	}
	return src, nil
}

func (s *guideService) Sources(hazard string) ([]entities.GuideSource, error) {
	return s.repo.Sources(hazard)
}
