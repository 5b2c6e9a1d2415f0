package repositoryImp

import (
	"gorm.io/gorm"

	"haven/entities"
	"haven/pkg/guide/repository"
)

type guideRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.GuideRepository { return &guideRepo{db} }

func (r *guideRepo) Save(g *entities.Guide) error { return r.db.Save(g).Error }

func (r *guideRepo) FindByID(id uint) (*entities.Guide, error) {
	var g entities.Guide
	if err := r.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *guideRepo) ListByCommunity(communityID uint) ([]entities.Guide, error) {
	var out []entities.Guide
	return out, r.db.Where("community_id = ?", communityID).
		Order("guide_id ASC").Find(&out).Error
}

func (r *guideRepo) Delete(id uint) error {
	return r.db.Delete(&entities.Guide{}, id).Error
}

func (r *guideRepo) SaveWithTemplate(g *entities.Guide, t *entities.SOPTemplate, tasks []entities.SOPTemplateTask) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(g).Error; err != nil {
			return err
		}
		t.GuideID = g.GuideID
		// a guide owns at most one template; reuse it across saves
		var existing entities.SOPTemplate
		if err := tx.Where("guide_id = ?", g.GuideID).First(&existing).Error; err == nil {
			t.TemplateID = existing.TemplateID
		}
		if err := tx.Save(t).Error; err != nil {
			return err
		}
		if err := tx.Where("template_id = ?", t.TemplateID).
			Delete(&entities.SOPTemplateTask{}).Error; err != nil {
			return err
		}
		for i := range tasks {
			tasks[i].ID = 0
			tasks[i].TemplateID = t.TemplateID
			tasks[i].Ord = i
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
}

func (r *guideRepo) CreateSource(src *entities.GuideSource) error { return r.db.Create(src).Error }

func (r *guideRepo) Sources(hazard string) ([]entities.GuideSource, error) {
	var out []entities.GuideSource
	q := r.db.Order("source_id DESC")
	if hazard != "" {
		q = q.Where("hazard = ?", hazard)
	}
	return out, q.Find(&out).Error
}
