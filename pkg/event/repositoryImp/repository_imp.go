package repositoryImp

import (
	"gorm.io/gorm"

	"haven/entities"
	"haven/pkg/event/repository"
)

type eventRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.EventRepository { return &eventRepo{db} }

func (r *eventRepo) CreateWithInvites(ev *entities.CommunityEvent, invites []entities.EventInvite) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ev).Error; err != nil {
			return err
		}
		for i := range invites {
			invites[i].EventID = ev.EventID
		}
		if len(invites) == 0 {
			return nil
		}
		return tx.Create(&invites).Error
	})
}

func (r *eventRepo) FindByID(id uint) (*entities.CommunityEvent, error) {
	var ev entities.CommunityEvent
	if err := r.db.First(&ev, id).Error; err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *eventRepo) ListByCommunity(communityID uint) ([]entities.CommunityEvent, error) {
	var out []entities.CommunityEvent
	return out, r.db.Where("community_id = ?", communityID).
		Order("starts_at ASC").Find(&out).Error
}

func (r *eventRepo) Invites(eventID uint) ([]entities.EventInvite, error) {
	var out []entities.EventInvite
	return out, r.db.Where("event_id = ?", eventID).Order("invite_id ASC").Find(&out).Error
}

func (r *eventRepo) InviteByID(id uint) (*entities.EventInvite, error) {
	var inv entities.EventInvite
	if err := r.db.First(&inv, id).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *eventRepo) UpdateInvite(inv *entities.EventInvite) error { return r.db.Save(inv).Error }
