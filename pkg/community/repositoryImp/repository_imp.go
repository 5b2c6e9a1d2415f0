package repositoryImp

import (
	"gorm.io/gorm"

	"haven/entities"
	"haven/pkg/community/repository"
)

type communityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CommunityRepository { return &communityRepo{db} }

func (r *communityRepo) CreateWithSetup(c *entities.Community, members []entities.CommunityMember,
	points []entities.MapPoint, invites []entities.CommunityInvitation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		for i := range members {
			members[i].CommunityID = c.CommunityID
		}
		if len(members) > 0 {
			if err := tx.Create(&members).Error; err != nil {
				return err
			}
		}
		for i := range points {
			points[i].CommunityID = c.CommunityID
		}
		if len(points) > 0 {
			if err := tx.Create(&points).Error; err != nil {
				return err
			}
		}
		for i := range invites {
			invites[i].CommunityID = c.CommunityID
		}
		if len(invites) > 0 {
			if err := tx.Create(&invites).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *communityRepo) FindByID(id uint) (*entities.Community, error) {
	var c entities.Community
	if err := r.db.First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *communityRepo) ListByUser(userID string) ([]entities.Community, error) {
	var out []entities.Community
	err := r.db.
		Joins("JOIN community_members ON community_members.community_id = communities.community_id").
		Where("community_members.user_id = ?", userID).
		Order("communities.community_id ASC").
		Find(&out).Error
	return out, err
}

func (r *communityRepo) Update(c *entities.Community) error { return r.db.Save(c).Error }

func (r *communityRepo) Members(communityID uint) ([]entities.CommunityMember, error) {
	var out []entities.CommunityMember
	return out, r.db.Where("community_id = ?", communityID).Order("member_id ASC").Find(&out).Error
}

func (r *communityRepo) MemberByID(id uint) (*entities.CommunityMember, error) {
	var m entities.CommunityMember
	if err := r.db.First(&m, id).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *communityRepo) AddMember(m *entities.CommunityMember) error { return r.db.Create(m).Error }

func (r *communityRepo) UpdateMember(m *entities.CommunityMember) error { return r.db.Save(m).Error }

func (r *communityRepo) DeleteMember(id uint) error {
	return r.db.Delete(&entities.CommunityMember{}, id).Error
}

func (r *communityRepo) CountAdmins(communityID uint) (int64, error) {
	var n int64
	err := r.db.Model(&entities.CommunityMember{}).
		Where("community_id = ? AND role = ?", communityID, "admin").Count(&n).Error
	return n, err
}

func (r *communityRepo) Invitations(communityID uint) ([]entities.CommunityInvitation, error) {
	var out []entities.CommunityInvitation
	return out, r.db.Where("community_id = ?", communityID).Order("invite_id ASC").Find(&out).Error
}

func (r *communityRepo) CreateInvitation(inv *entities.CommunityInvitation) error {
	return r.db.Create(inv).Error
}

func (r *communityRepo) InvitationByToken(token string) (*entities.CommunityInvitation, error) {
	var inv entities.CommunityInvitation
	if err := r.db.Where("token = ?", token).First(&inv).Error; err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *communityRepo) UpdateInvitation(inv *entities.CommunityInvitation) error {
	return r.db.Save(inv).Error
}

func (r *communityRepo) Points(communityID uint) ([]entities.MapPoint, error) {
	var out []entities.MapPoint
	return out, r.db.Where("community_id = ?", communityID).Order("ord ASC").Find(&out).Error
}
