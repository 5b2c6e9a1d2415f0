package repository

import "haven/entities"

type AlertRepository interface {
	Create(a *entities.Alert) error
	Update(a *entities.Alert) error
	ListByCommunity(communityID uint) ([]entities.Alert, error)
}
