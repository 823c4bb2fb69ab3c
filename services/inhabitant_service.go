package services

import (
	"strings"
	"tierra-media/models"
)

// InhabitantService handles business logic for the catalog
type InhabitantService struct {
	repo InhabitantRepository
}

// NewInhabitantService creates a new inhabitant service
func NewInhabitantService(repo InhabitantRepository) *InhabitantService {
	return &InhabitantService{repo: repo}
}

// Create stores a new inhabitant and returns it with its assigned ID
func (s *InhabitantService) Create(h models.Inhabitant) (*models.Inhabitant, error) {
	h = normalize(h)

	id, err := s.repo.InsertInhabitant(&h)
	if err != nil {
		return nil, err
	}

	h.ID = id
	return &h, nil
}

// Get retrieves one inhabitant by ID
func (s *InhabitantService) Get(id int64) (*models.Inhabitant, error) {
	if id <= 0 {
		return nil, ErrInvalidID
	}

	h, err := s.repo.GetInhabitant(id)
	if err != nil {
		return nil, err
	}
	if h == nil {
		return nil, ErrInhabitantNotFound
	}
	return h, nil
}

// Update overwrites an inhabitant. Updating an unknown ID changes nothing
// and is not an error.
func (s *InhabitantService) Update(id int64, h models.Inhabitant) error {
	if id <= 0 {
		return ErrInvalidID
	}

	h = normalize(h)
	return s.repo.UpdateInhabitant(id, &h)
}

// Delete removes an inhabitant and returns the number of rows removed
func (s *InhabitantService) Delete(id int64) (int64, error) {
	if id <= 0 {
		return 0, ErrInvalidID
	}
	return s.repo.DeleteInhabitant(id)
}

func (s *InhabitantService) Count() (int, error) {
	return s.repo.CountInhabitants()
}

func (s *InhabitantService) CountByRace(race string) (int, error) {
	return s.repo.CountInhabitantsByRace(race)
}

func (s *InhabitantService) ListByRace(race string) ([]models.Inhabitant, error) {
	return s.repo.ListInhabitantsByRace(race)
}

func (s *InhabitantService) ListByProfession(profession string) ([]models.Inhabitant, error) {
	return s.repo.ListInhabitantsByProfession(profession)
}

// Summary counts inhabitants overall and per known race and profession
func (s *InhabitantService) Summary() (*models.Summary, error) {
	total, err := s.repo.CountInhabitants()
	if err != nil {
		return nil, err
	}

	summary := &models.Summary{
		Total:       total,
		Races:       make([]models.CategoryCount, 0, len(models.Races)),
		Professions: make([]models.CategoryCount, 0, len(models.Professions)),
	}

	for _, race := range models.Races {
		n, err := s.repo.CountInhabitantsByRace(race)
		if err != nil {
			return nil, err
		}
		summary.Races = append(summary.Races, models.CategoryCount{Value: race, Count: n})
	}

	for _, profession := range models.Professions {
		n, err := s.repo.CountInhabitantsByProfession(profession)
		if err != nil {
			return nil, err
		}
		summary.Professions = append(summary.Professions, models.CategoryCount{Value: profession, Count: n})
	}

	return summary, nil
}

// normalize trims surrounding whitespace from every text field
func normalize(h models.Inhabitant) models.Inhabitant {
	h.Name = strings.TrimSpace(h.Name)
	h.Surname = strings.TrimSpace(h.Surname)
	h.Race = strings.TrimSpace(h.Race)
	h.Location = strings.TrimSpace(h.Location)
	h.Profession = strings.TrimSpace(h.Profession)
	return h
}
