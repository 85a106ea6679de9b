package utils

import "strings"

// The extraction prompt asks the model to answer in the Portuguese
// vocabulary the cars table uses, but models regularly slip into English or
// drop accents ("Diesel" for "Gasóleo", "Automatico" for "Automático").
// Equality filters would then silently match nothing, so extracted values
// are normalized here instead of trusting the model.

var fuelAliases = map[string]string{
	"gasolina": "Gasolina",
	"petrol":   "Gasolina",
	"gas":      "Gasolina",
	"gasoleo":  "Gasóleo",
	"diesel":   "Gasóleo",
	"eletrico": "Elétrico",
	"electric": "Elétrico",
	"ev":       "Elétrico",
	"hibrido":  "Híbrido",
	"hybrid":   "Híbrido",
	"gpl":      "GPL",
	"lpg":      "GPL",
}

var transmissionAliases = map[string]string{
	"manual":         "Manual",
	"automatico":     "Automático",
	"automatic":      "Automático",
	"auto":           "Automático",
	"semiautomatico": "Semi-automático",
	"semiautomatic":  "Semi-automático",
}

var bodyTypeAliases = map[string]string{
	"berlina":      "Berlina",
	"sedan":        "Berlina",
	"saloon":       "Berlina",
	"hatchback":    "Hatchback",
	"suv":          "SUV",
	"coupe":        "Coupé",
	"descapotavel": "Descapotável",
	"convertible":  "Descapotável",
	"cabrio":       "Descapotável",
	"carrinha":     "Carrinha",
	"estate":       "Carrinha",
	"wagon":        "Carrinha",
	"comercial":    "Comercial",
	"van":          "Comercial",
	"pickup":       "Pick-up",
	"monovolume":   "Monovolume",
	"minivan":      "Monovolume",
	"mpv":          "Monovolume",
}

var colorAliases = map[string]string{
	"preto":    "Preto",
	"black":    "Preto",
	"branco":   "Branco",
	"white":    "Branco",
	"prata":    "Prata",
	"silver":   "Prata",
	"cinzento": "Cinzento",
	"cinza":    "Cinzento",
	"grey":     "Cinzento",
	"gray":     "Cinzento",
	"azul":     "Azul",
	"blue":     "Azul",
	"vermelho": "Vermelho",
	"red":      "Vermelho",
	"verde":    "Verde",
	"green":    "Verde",
	"castanho": "Castanho",
	"brown":    "Castanho",
	"bege":     "Bege",
	"beige":    "Bege",
	"amarelo":  "Amarelo",
	"yellow":   "Amarelo",
	"laranja":  "Laranja",
	"orange":   "Laranja",
	"roxo":     "Roxo",
	"purple":   "Roxo",
}

// CanonicalFuelType maps a model-produced fuel value onto the store
// vocabulary. Unknown values pass through unchanged.
func CanonicalFuelType(v string) string { return canonical(fuelAliases, v) }

// CanonicalTransmission maps a transmission value onto the store vocabulary.
func CanonicalTransmission(v string) string { return canonical(transmissionAliases, v) }

// CanonicalBodyType maps a body type value onto the store vocabulary.
func CanonicalBodyType(v string) string { return canonical(bodyTypeAliases, v) }

// CanonicalColor maps a color value onto the store vocabulary.
func CanonicalColor(v string) string { return canonical(colorAliases, v) }

func canonical(aliases map[string]string, v string) string {
	if mapped, ok := aliases[aliasKey(v)]; ok {
		return mapped
	}
	return v
}

var accentFolder = strings.NewReplacer(
	"á", "a", "à", "a", "ã", "a", "â", "a",
	"é", "e", "ê", "e",
	"í", "i",
	"ó", "o", "õ", "o", "ô", "o",
	"ú", "u", "ü", "u",
	"ç", "c",
)

// aliasKey lower-cases, folds Portuguese accents and drops separators so
// "Semi-Automático" and "semi automatic" land on the same key.
func aliasKey(v string) string {
	s := strings.ToLower(strings.TrimSpace(v))
	s = accentFolder.Replace(s)
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, " ", "")
	return s
}
