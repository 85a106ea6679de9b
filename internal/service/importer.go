package service

import (
	"context"
	"log"
	"net/url"
	"strings"

	"carrosusados/internal/config"
	"carrosusados/internal/model"
	"carrosusados/internal/utils"

	"github.com/PuerkitoBio/goquery"
)

const (
	importMaxTokens   = 2000
	importTemperature = 0.1
)

// importExtractionPrompt instructs the model to turn raw listing markup
// into the CarDraft schema.
const importExtractionPrompt = `You are an expert at extracting structured car listing data from HTML.
Extract the following fields from the provided HTML of a Portuguese car listing website:
- title: The full title of the listing
- brand: Car manufacturer (e.g., BMW, Mercedes-Benz, Audi, Porsche)
- model: Car model (e.g., Série 3, Classe C, A4, 911)
- year: Year of manufacture (number)
- price: Price in euros (number only, no currency symbol)
- mileage: Kilometers driven (number only)
- fuel_type: Type of fuel (Gasolina, Gasóleo, Elétrico, Híbrido, GPL)
- transmission: Type of transmission (Manual, Automático, Semi-automático)
- body_type: Body type (Berlina, Hatchback, SUV, Carrinha, Coupé, Descapotável, Monovolume, Comercial, Pick-up)
- color: Color of the car in Portuguese
- location: City/region in Portugal
- description: Full description text
- images: Array of image URLs (only include direct image URLs, not thumbnails)

IMPORTANT:
- Return ONLY valid JSON, no markdown or explanations
- Use null for missing fields
- Price and mileage must be numbers without formatting
- Year must be a 4-digit number
- Extract all available images from the listing`

// Importer extracts a listing draft from a third-party marketplace page.
type Importer struct {
	ai             ChatClient
	fetcher        PageFetcher
	allowedDomains []string
	maxHTMLChars   int
}

// NewImporter creates the listing-import pipeline.
func NewImporter(ai ChatClient, fetcher PageFetcher, cfg *config.ImportConfig) *Importer {
	return &Importer{
		ai:             ai,
		fetcher:        fetcher,
		allowedDomains: cfg.AllowedDomains,
		maxHTMLChars:   cfg.MaxHTMLChars,
	}
}

// Import fetches a listing page and asks the model for a structured draft.
// Unlike filter extraction there is no safe default draft, so model and
// parse failures are hard errors.
func (imp *Importer) Import(ctx context.Context, rawURL string) (*model.ImportResult, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, errInput("URL é obrigatório")
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return nil, errInput("URL inválido")
	}
	if !imp.hostAllowed(u.Hostname()) {
		return nil, errInput("Domínio não suportado. Domínios permitidos: StandVirtual, OLX, CustoJusto, AutoScout24")
	}

	page, err := imp.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, errFetch("Não foi possível aceder ao anúncio. Verifique o URL.", err)
	}

	// Markup beyond the character budget is simply unavailable to
	// extraction; stripping non-content tags first stretches the budget.
	html := reduceHTML(page)
	if runes := []rune(html); len(runes) > imp.maxHTMLChars {
		html = string(runes[:imp.maxHTMLChars])
	}

	content, err := imp.ai.Complete(ctx, []model.ChatMessage{
		{Role: "system", Content: importExtractionPrompt},
		{Role: "user", Content: "Extract the car listing data from this HTML:\n\n" + html},
	}, CompleteOptions{MaxTokens: importMaxTokens, Temperature: importTemperature})
	if err != nil {
		return nil, errModel(KindModelCall, "Erro ao processar o anúncio. Tente novamente.", err)
	}
	if strings.TrimSpace(content) == "" {
		return nil, errModel(KindModelCall, "Não foi possível extrair dados do anúncio.", nil)
	}

	var draft model.CarDraft
	if err := utils.ParseModelJSON(content, &draft); err != nil {
		return nil, errModel(KindModelParse, "Erro ao processar dados extraídos.", err)
	}

	missing := draft.MissingFields()
	if len(missing) > 0 {
		log.Printf("import: draft from %s missing required fields: %v", u.Hostname(), missing)
	}

	return &model.ImportResult{
		Success:       true,
		Data:          &draft,
		SourceURL:     rawURL,
		MissingFields: missing,
	}, nil
}

// hostAllowed matches the host against the allow-list, accepting
// subdomains of allowed domains.
func (imp *Importer) hostAllowed(host string) bool {
	host = strings.ToLower(host)
	for _, domain := range imp.allowedDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// reduceHTML drops tags that never carry listing content. Unparseable
// markup passes through untouched.
func reduceHTML(raw string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return raw
	}
	doc.Find("script, style, noscript, svg, iframe").Remove()
	html, err := doc.Html()
	if err != nil {
		return raw
	}
	return html
}
