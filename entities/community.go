package entities

import "time"

type Community struct {
	CommunityID      uint      `gorm:"primaryKey" json:"community_id"`
	OwnerID          string    `json:"owner_id" gorm:"index"`
	Name             string    `json:"name"`
	Description      string    `json:"description"`
	MeetingPointName string    `json:"meeting_point_name"`
	MeetingPointAddr string    `json:"meeting_point_addr"`
	MeetingLat       *float64  `json:"meeting_lat"`
	MeetingLng       *float64  `json:"meeting_lng"`
	Hazards          []string  `gorm:"serializer:json" json:"hazards"` // fire|flood|quake|storm|...
	RegionColor      string    `json:"region_color"`
	RegionOpacity    float64   `json:"region_opacity"`
	PromoTitle       string    `json:"promo_title"`
	PromoBody        string    `json:"promo_body"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type CommunityMember struct {
	MemberID    uint      `gorm:"primaryKey" json:"member_id"`
	CommunityID uint      `gorm:"index" json:"community_id"`
	UserID      string    `gorm:"index" json:"user_id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Role        string    `json:"role"` // admin|member
	GroupName   string    `json:"group_name"`
	CreatedAt   time.Time
}

type CommunityInvitation struct {
	InviteID    uint      `gorm:"primaryKey" json:"invite_id"`
	CommunityID uint      `gorm:"index" json:"community_id"`
	Email       string    `json:"email"`
	GroupName   string    `json:"group_name"`
	Token       string    `gorm:"uniqueIndex" json:"token"`
	Status      string    `gorm:"index" json:"status"` // pending|accepted|revoked
	CreatedAt   time.Time
}

// MapPoint is one vertex of a community's coverage polygon, ordered by Ord.
type MapPoint struct {
	PointID     uint      `gorm:"primaryKey" json:"point_id"`
	CommunityID uint      `gorm:"index" json:"community_id"`
	Ord         int       `json:"ord"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	CreatedAt   time.Time
}
