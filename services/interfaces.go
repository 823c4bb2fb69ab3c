package services

import "tierra-media/models"

// InhabitantRepository defines the interface for inhabitant data access
type InhabitantRepository interface {
	InsertInhabitant(h *models.Inhabitant) (int64, error)
	UpdateInhabitant(id int64, h *models.Inhabitant) error
	DeleteInhabitant(id int64) (int64, error)
	GetInhabitant(id int64) (*models.Inhabitant, error)
	CountInhabitants() (int, error)
	CountInhabitantsByRace(race string) (int, error)
	CountInhabitantsByProfession(profession string) (int, error)
	ListInhabitantsByRace(race string) ([]models.Inhabitant, error)
	ListInhabitantsByProfession(profession string) ([]models.Inhabitant, error)
}
