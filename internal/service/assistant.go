package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"carrosusados/internal/config"
	"carrosusados/internal/model"
	"carrosusados/internal/utils"
)

// CarStore is the listing query capability the assistant needs.
type CarStore interface {
	SearchPublic(ctx context.Context, filters *model.CarFilters, limit int) ([]model.Car, error)
}

// assistantFallbackReply is returned whenever the reply call fails; the
// chat must never surface a raw error to the user.
const assistantFallbackReply = "Peço desculpa, estou com dificuldades em responder neste momento. Tente novamente dentro de instantes."

const assistantPromptHeader = `You are a helpful car marketplace assistant for CarrosUsados.pt, a Portuguese used car marketplace. You help users in both Portuguese and English - respond in the same language they use.

You help users:
- Find cars based on their preferences (brand, budget, fuel type, location in Portugal, etc.)
- Answer questions about car listings
- Provide guidance on buying/selling cars in Portugal
- Give tips on car maintenance and ownership

When presenting car results:
- List the cars clearly with key details
- Always show prices in euros (€) formatted for Portugal (e.g., 15.000 €)
- Mention price, year, fuel type, transmission, mileage
- Be enthusiastic but honest
- Suggest users click on listings for more details`

const assistantPromptFooter = `Be friendly, concise, and helpful. Format your responses nicely with bullet points or numbered lists when appropriate. If the user writes in Portuguese, respond in Portuguese. If they write in English, respond in English.`

// Assistant runs the conversational search pipeline: one model call to
// extract filters, an optional listing query, and a second model call to
// produce the natural-language reply.
type Assistant struct {
	ai           ChatClient
	store        CarStore
	extractor    *FilterExtractor
	queryLimit   int
	displayLimit int
	replyTokens  int
}

// NewAssistant creates the conversational pipeline.
func NewAssistant(ai ChatClient, store CarStore, extractor *FilterExtractor, cfg *config.AssistantConfig) *Assistant {
	return &Assistant{
		ai:           ai,
		store:        store,
		extractor:    extractor,
		queryLimit:   cfg.QueryLimit,
		displayLimit: cfg.DisplayLimit,
		replyTokens:  cfg.ReplyMaxTokens,
	}
}

// Chat handles one message exchange. History is caller-supplied and never
// persisted here.
func (a *Assistant) Chat(ctx context.Context, message string, history []model.ChatMessage) *model.AssistantResponse {
	filters, isSearch := a.extractor.Extract(ctx, message)

	var matched []model.Car
	carsContext := ""
	if isSearch && !filters.IsEmpty() {
		cars, err := a.store.SearchPublic(ctx, &filters, a.queryLimit)
		switch {
		case err != nil:
			// A store failure degrades to an answer without results.
			log.Printf("assistant: database error: %v", err)
		case len(cars) > 0:
			matched = cars
			carsContext = renderCarsContext(cars)
		default:
			carsContext = "\n\nNão encontrei carros com esses critérios. Pode ajustar os filtros ou ver todos os anúncios disponíveis."
		}
	}

	messages := make([]model.ChatMessage, 0, len(history)+2)
	messages = append(messages, model.ChatMessage{Role: "system", Content: buildAssistantPrompt(carsContext)})
	messages = append(messages, history...)
	messages = append(messages, model.ChatMessage{Role: "user", Content: message})

	reply, err := a.ai.Complete(ctx, messages, CompleteOptions{MaxTokens: a.replyTokens})
	if err != nil || strings.TrimSpace(reply) == "" {
		if err != nil {
			log.Printf("assistant: reply generation failed: %v", err)
		}
		reply = assistantFallbackReply
	}

	display := matched
	if len(display) > a.displayLimit {
		display = display[:a.displayLimit]
	}
	if display == nil {
		display = []model.Car{}
	}

	resp := &model.AssistantResponse{
		Response: reply,
		Cars:     display,
	}
	if isSearch {
		f := filters
		resp.Filters = &f
	}
	return resp
}

func buildAssistantPrompt(carsContext string) string {
	if carsContext == "" {
		return assistantPromptHeader + "\n\n" + assistantPromptFooter
	}
	return assistantPromptHeader + "\n\nRESULTADOS DA PESQUISA:" + carsContext + "\n\n" + assistantPromptFooter
}

// renderCarsContext formats matched listings as the context block the
// reply prompt embeds.
func renderCarsContext(cars []model.Car) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n\nEncontrei %d carro(s) que correspondem aos critérios:\n", len(cars))

	lines := make([]string, 0, len(cars))
	for i, car := range cars {
		lines = append(lines, fmt.Sprintf(
			"%d. %s - %s %s (%d)\n   Preço: %s\n   %s | %s | %s\n   Localização: %s\n   ID: %s",
			i+1, car.Title, car.Brand, car.Model, car.Year,
			utils.FormatEuros(car.Price),
			orNA(car.FuelType), orNA(car.Transmission), utils.FormatKilometers(car.Mileage),
			orNA(car.Location), car.ID,
		))
	}
	b.WriteString(strings.Join(lines, "\n\n"))
	return b.String()
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
