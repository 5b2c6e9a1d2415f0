package repositoryImp

import (
	"gorm.io/gorm"

	"haven/entities"
	"haven/pkg/sop/repository"
)

type sopRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.SOPRepository { return &sopRepo{db} }

func (r *sopRepo) UpsertTemplate(t *entities.SOPTemplate, tasks []entities.SOPTemplateTask) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
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

func (r *sopRepo) TemplateByID(id uint) (*entities.SOPTemplate, error) {
	var t entities.SOPTemplate
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *sopRepo) TemplateTasks(templateID uint) ([]entities.SOPTemplateTask, error) {
	var out []entities.SOPTemplateTask
	return out, r.db.Where("template_id = ?", templateID).Order("ord ASC").Find(&out).Error
}

func (r *sopRepo) TemplatesByHazard(hazard string) ([]entities.SOPTemplate, error) {
	var out []entities.SOPTemplate
	q := r.db.Order("template_id ASC")
	if hazard != "" {
		q = q.Where("hazard = ?", hazard)
	}
	return out, q.Find(&out).Error
}

func (r *sopRepo) CreateActivation(a *entities.ActivatedSOP, tasks []entities.SOPTask) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(a).Error; err != nil {
			return err
		}
		for i := range tasks {
			tasks[i].ActivationID = a.ActivationID
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.Create(&tasks).Error
	})
}

func (r *sopRepo) ActivationByID(id string) (*entities.ActivatedSOP, error) {
	var a entities.ActivatedSOP
	if err := r.db.Where("activation_id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *sopRepo) UpdateActivation(a *entities.ActivatedSOP) error { return r.db.Save(a).Error }

func (r *sopRepo) ActivationsByCommunity(communityID uint) ([]entities.ActivatedSOP, error) {
	var out []entities.ActivatedSOP
	return out, r.db.Where("community_id = ?", communityID).
		Order("started_at DESC").Find(&out).Error
}

func (r *sopRepo) Tasks(activationID string) ([]entities.SOPTask, error) {
	var out []entities.SOPTask
	return out, r.db.Where("activation_id = ?", activationID).Order("ord ASC").Find(&out).Error
}

func (r *sopRepo) TaskByID(id uint) (*entities.SOPTask, error) {
	var t entities.SOPTask
	if err := r.db.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *sopRepo) UpdateTaskVersioned(taskID uint, version int, updates map[string]any) (int64, error) {
	updates["version"] = version + 1
	res := r.db.Model(&entities.SOPTask{}).
		Where("task_id = ? AND version = ?", taskID, version).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func (r *sopRepo) ReindexTasks(activationID string, taskIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i, id := range taskIDs {
			if err := tx.Model(&entities.SOPTask{}).
				Where("task_id = ? AND activation_id = ?", id, activationID).
				Update("ord", i).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *sopRepo) AddNote(n *entities.SOPTaskNote) error { return r.db.Create(n).Error }

func (r *sopRepo) Notes(taskID uint) ([]entities.SOPTaskNote, error) {
	var out []entities.SOPTaskNote
	return out, r.db.Where("task_id = ?", taskID).Order("note_id ASC").Find(&out).Error
}
