package model

// Canonical Portuguese vocabularies used by the cars table. Brand names are
// an open vocabulary; the lists below are closed and the store only ever
// holds these values.

var FuelTypes = []string{"Gasolina", "Gasóleo", "Elétrico", "Híbrido", "GPL"}

var Transmissions = []string{"Manual", "Automático", "Semi-automático"}

var BodyTypes = []string{
	"Berlina", "Hatchback", "SUV", "Coupé", "Descapotável",
	"Carrinha", "Comercial", "Pick-up", "Monovolume",
}

var Colors = []string{
	"Preto", "Branco", "Prata", "Cinzento", "Azul", "Vermelho",
	"Verde", "Castanho", "Bege", "Amarelo", "Laranja", "Roxo",
}

var Locations = []string{
	"Lisboa", "Porto", "Braga", "Faro", "Coimbra", "Setúbal",
	"Aveiro", "Leiria", "Viseu", "Santarém", "Évora",
	"Castelo Branco", "Viana do Castelo", "Vila Real", "Bragança",
	"Guarda", "Portalegre", "Beja", "Açores", "Madeira",
}
