package models

// Inhabitant is one catalog record. ID is assigned by the store.
type Inhabitant struct {
	ID         int64  `json:"id" yaml:"-"`
	Name       string `json:"name" yaml:"name"`
	Surname    string `json:"surname" yaml:"surname"`
	Age        int    `json:"age" yaml:"age"`
	Race       string `json:"race" yaml:"race"`
	Location   string `json:"location" yaml:"location"`
	Profession string `json:"profession" yaml:"profession"`
}

// Known professions, in the order the home screen shows them.
var Professions = []string{
	"Caballero",
	"Arquero",
	"Herrero",
	"Juglar",
	"Campesino",
	"Alquimista",
	"Escriba",
	"Mercader",
	"Monje",
	"Carpintero",
}

// Known races, in the order the home screen shows them.
var Races = []string{
	"Humano",
	"Elfo",
	"Enano",
	"Hobbit",
	"Mago",
	"Orco",
}

// IsProfession reports whether p is one of Professions.
func IsProfession(p string) bool {
	for _, known := range Professions {
		if known == p {
			return true
		}
	}
	return false
}

// IsRace reports whether r is one of Races.
func IsRace(r string) bool {
	for _, known := range Races {
		if known == r {
			return true
		}
	}
	return false
}

type InhabitantRequest struct {
	Name       string `json:"name" validate:"required,min=1,max=100,personname"`
	Surname    string `json:"surname" validate:"required,min=1,max=100,personname"`
	Age        int    `json:"age" validate:"gte=0,lte=20000"`
	Race       string `json:"race" validate:"required,race"`
	Location   string `json:"location" validate:"required,min=1,max=100"`
	Profession string `json:"profession" validate:"required,profession"`
}

// ToInhabitant converts a validated request into an unsaved Inhabitant.
func (r InhabitantRequest) ToInhabitant() Inhabitant {
	return Inhabitant{
		Name:       r.Name,
		Surname:    r.Surname,
		Age:        r.Age,
		Race:       r.Race,
		Location:   r.Location,
		Profession: r.Profession,
	}
}

// CategoryCount is one row of the home screen summary.
type CategoryCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

type Summary struct {
	Total       int             `json:"total"`
	Races       []CategoryCount `json:"races"`
	Professions []CategoryCount `json:"professions"`
}
