package pages

// Display labels for the selector values the list screens accept.
var professionLabels = map[string]string{
	"Caballero":  "Caballero",
	"Arquero":    "Arquero",
	"Herrero":    "Herrero",
	"Juglar":     "Juglar",
	"Campesino":  "Campesino",
	"Alquimista": "Alquimista",
	"Escriba":    "Escriba",
	"Mercader":   "Mercader",
	"Monje":      "Monje",
	"Carpintero": "Carpintero",
}

var raceLabels = map[string]string{
	"Humano": "Humanos",
	"Elfo":   "Elfos",
	"Enano":  "Enanos",
	"Hobbit": "Hobbits",
	"Mago":   "Magos",
	"Orco":   "Orcos",
}

// ProfessionLabel resolves a profession selector to its heading.
func ProfessionLabel(profession string) string {
	if label, ok := professionLabels[profession]; ok {
		return label
	}
	return "Profesión desconocida: " + profession
}

// RaceLabel resolves a race selector to its heading.
func RaceLabel(race string) string {
	if label, ok := raceLabels[race]; ok {
		return label
	}
	return "Raza desconocida: " + race
}
