package repositoryImp

import (
	"gorm.io/gorm"

	"haven/entities"
	"haven/pkg/alert/repository"
)

type alertRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.AlertRepository { return &alertRepo{db} }

func (r *alertRepo) Create(a *entities.Alert) error { return r.db.Create(a).Error }

func (r *alertRepo) Update(a *entities.Alert) error { return r.db.Save(a).Error }

func (r *alertRepo) ListByCommunity(communityID uint) ([]entities.Alert, error) {
	var out []entities.Alert
	return out, r.db.Where("community_id = ?", communityID).
		Order("alert_id DESC").Find(&out).Error
}
