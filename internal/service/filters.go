package service

import (
	"context"
	"log"

	"carrosusados/internal/model"
	"carrosusados/internal/utils"
)

// filterExtractionPrompt instructs the model to turn a free-text message
// into a sparse filter object, or to flag the message as not a search.
// Values must land in the Portuguese vocabulary the cars table uses.
const filterExtractionPrompt = `You are a filter extraction assistant for CarrosUsados.pt, a Portuguese car marketplace. Analyze the user message (in Portuguese or English) and extract car search filters.

Available filters:
- brand: car brand (Audi, BMW, Toyota, Mercedes-Benz, Citroën, Renault, Peugeot, Volkswagen, Fiat, Opel, etc.)
- minPrice / maxPrice: price range in EUR (euros)
- minYear / maxYear: year range
- fuelType: Gasolina, Gasóleo, Elétrico, Híbrido, GPL (or English: Petrol, Diesel, Electric, Hybrid, LPG)
- transmission: Manual, Automático, Semi-automático (or English: Manual, Automatic, Semi-automatic)
- bodyType: Berlina, Hatchback, Carrinha, SUV, Coupé, Descapotável, Monovolume, Comercial, Pick-up (or English equivalents)
- color: Preto, Branco, Cinzento, Prata, Azul, Vermelho, Verde, Castanho, Bege, Amarelo, Laranja, Roxo (or English equivalents)
- location: Lisboa, Porto, Braga, Faro, Coimbra, Setúbal, Aveiro, Leiria, Viseu, Santarém, Évora, Castelo Branco, Viana do Castelo, Vila Real, Bragança, Guarda, Portalegre, Beja, Açores, Madeira
- minMileage / maxMileage: kilometer range
- search: free text matched against title, brand and model

Respond ONLY with a JSON object containing the extracted filters. Use null for filters not mentioned.
Example: {"brand": "Toyota", "maxPrice": 15000, "fuelType": "Gasóleo", "location": "Lisboa"}

If the user is NOT asking about finding/searching cars (e.g., asking general questions, greetings, advice), respond with: {"isSearch": false}`

// FilterExtractor turns a free-text user message into structured search
// filters using a single model call.
type FilterExtractor struct {
	ai        ChatClient
	maxTokens int
}

// NewFilterExtractor creates a filter extractor.
func NewFilterExtractor(ai ChatClient, maxTokens int) *FilterExtractor {
	return &FilterExtractor{ai: ai, maxTokens: maxTokens}
}

// Extract returns the filters found in the message and whether the message
// was a car search at all. A malformed model response must never crash the
// conversation, so every failure path degrades to "no filters, not a
// search" rather than returning an error.
func (e *FilterExtractor) Extract(ctx context.Context, message string) (model.CarFilters, bool) {
	if e.ai == nil || !e.ai.IsEnabled() {
		log.Printf("filter extraction skipped: AI gateway is not enabled")
		return model.CarFilters{}, false
	}

	content, err := e.ai.Complete(ctx, []model.ChatMessage{
		{Role: "system", Content: filterExtractionPrompt},
		{Role: "user", Content: message},
	}, CompleteOptions{MaxTokens: e.maxTokens})
	if err != nil {
		log.Printf("filter extraction failed: %v", err)
		return model.CarFilters{}, false
	}

	var extracted model.ExtractedFilters
	if err := utils.ParseModelJSON(content, &extracted); err != nil {
		log.Printf("could not parse filters: %v", err)
		return model.CarFilters{}, false
	}

	if extracted.IsSearch != nil && !*extracted.IsSearch {
		return model.CarFilters{}, false
	}

	filters := extracted.CarFilters
	canonicalizeFilters(&filters)
	return filters, true
}

// canonicalizeFilters maps closed-vocabulary values onto the Portuguese
// forms the store uses, so equality filters keep matching when the model
// answers in English.
func canonicalizeFilters(f *model.CarFilters) {
	if f.FuelType != nil {
		v := utils.CanonicalFuelType(*f.FuelType)
		f.FuelType = &v
	}
	if f.Transmission != nil {
		v := utils.CanonicalTransmission(*f.Transmission)
		f.Transmission = &v
	}
	if f.BodyType != nil {
		v := utils.CanonicalBodyType(*f.BodyType)
		f.BodyType = &v
	}
	if f.Color != nil {
		v := utils.CanonicalColor(*f.Color)
		f.Color = &v
	}
}
