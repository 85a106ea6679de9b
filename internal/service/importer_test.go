package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"carrosusados/internal/config"
)

func testImportConfig() *config.ImportConfig {
	return &config.ImportConfig{
		AllowedDomains: []string{"standvirtual.com", "olx.pt", "custojusto.pt", "autoscout24.pt"},
		MaxHTMLChars:   50000,
	}
}

func TestImporterRejectsDisallowedURLs(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty URL", ""},
		{"not a URL", "://broken"},
		{"unknown domain", "https://example.com/carros/bmw-320d"},
		{"lookalike suffix", "https://evilolx.pt/anuncio/1"},
		{"allowed domain in path only", "https://example.com/olx.pt/anuncio"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fetcher := &stubFetcher{}
			imp := NewImporter(&stubChatClient{}, fetcher, testImportConfig())

			_, err := imp.Import(context.Background(), tt.url)
			if err == nil {
				t.Fatal("expected error")
			}
			var svcErr *Error
			if !errors.As(err, &svcErr) || svcErr.Kind != KindInvalidInput {
				t.Errorf("error = %v, want KindInvalidInput", err)
			}
			if fetcher.calls != 0 {
				t.Errorf("rejected URL was fetched %d times", fetcher.calls)
			}
		})
	}
}

func TestImporterAcceptsAllowedHosts(t *testing.T) {
	draft := `{"title": "BMW 320d Pack M", "brand": "BMW", "model": "320d", "year": 2019, "price": 18000}`

	for _, url := range []string{
		"https://www.olx.pt/anuncio/bmw-320d",
		"https://standvirtual.com/carros/bmw",
		"https://suv.autoscout24.pt/listing/42",
	} {
		ai := &stubChatClient{replies: []string{draft}}
		fetcher := &stubFetcher{page: "<html><body>BMW 320d</body></html>"}
		imp := NewImporter(ai, fetcher, testImportConfig())

		result, err := imp.Import(context.Background(), url)
		if err != nil {
			t.Errorf("Import(%q) unexpected error: %v", url, err)
			continue
		}
		if fetcher.calls != 1 {
			t.Errorf("Import(%q) fetched %d times", url, fetcher.calls)
		}
		if result.SourceURL != url {
			t.Errorf("sourceURL = %q, want %q", result.SourceURL, url)
		}
	}
}

func TestImporterExtractsDraft(t *testing.T) {
	ai := &stubChatClient{replies: []string{
		"```json\n" + `{"title": "BMW 320d Pack M", "brand": "BMW", "model": "320d", "year": 2019, "price": 18000, "fuel_type": "Gasóleo", "images": []}` + "\n```",
	}}
	fetcher := &stubFetcher{page: "<html><body><h1>BMW 320d Pack M</h1><p>18.000 €</p></body></html>"}
	imp := NewImporter(ai, fetcher, testImportConfig())

	result, err := imp.Import(context.Background(), "https://www.standvirtual.com/anuncio/bmw-320d")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	if !result.Success {
		t.Error("result.Success = false")
	}

	d := result.Data
	if d.Title != "BMW 320d Pack M" || d.Brand != "BMW" || d.Model != "320d" {
		t.Errorf("draft = %+v", d)
	}
	if d.Year == nil || *d.Year != 2019 {
		t.Errorf("year = %v, want 2019", d.Year)
	}
	if d.Price == nil || *d.Price != 18000 {
		t.Errorf("price = %v, want 18000", d.Price)
	}
	if d.FuelType == nil || *d.FuelType != "Gasóleo" {
		t.Errorf("fuel_type = %v", d.FuelType)
	}
	if len(result.MissingFields) != 0 {
		t.Errorf("missingFields = %v, want none", result.MissingFields)
	}
}

func TestImporterFlagsMissingFields(t *testing.T) {
	ai := &stubChatClient{replies: []string{
		`{"title": "Carro sem detalhes", "brand": "", "year": null, "price": null}`,
	}}
	fetcher := &stubFetcher{page: "<html></html>"}
	imp := NewImporter(ai, fetcher, testImportConfig())

	result, err := imp.Import(context.Background(), "https://olx.pt/anuncio/1")
	if err != nil {
		t.Fatalf("Import: %v", err)
	}
	want := []string{"brand", "year", "price"}
	if len(result.MissingFields) != len(want) {
		t.Fatalf("missingFields = %v, want %v", result.MissingFields, want)
	}
	for i, f := range want {
		if result.MissingFields[i] != f {
			t.Errorf("missingFields[%d] = %q, want %q", i, result.MissingFields[i], f)
		}
	}
}

func TestImporterFetchFailure(t *testing.T) {
	fetcher := &stubFetcher{err: errors.New("connection timed out")}
	imp := NewImporter(&stubChatClient{}, fetcher, testImportConfig())

	_, err := imp.Import(context.Background(), "https://olx.pt/anuncio/1")
	var svcErr *Error
	if !errors.As(err, &svcErr) || svcErr.Kind != KindUpstreamFetch {
		t.Errorf("error = %v, want KindUpstreamFetch", err)
	}
}

func TestImporterModelFailures(t *testing.T) {
	t.Run("call failure", func(t *testing.T) {
		ai := &stubChatClient{err: errors.New("gateway 502")}
		imp := NewImporter(ai, &stubFetcher{page: "<html></html>"}, testImportConfig())

		_, err := imp.Import(context.Background(), "https://olx.pt/anuncio/1")
		var svcErr *Error
		if !errors.As(err, &svcErr) || svcErr.Kind != KindModelCall {
			t.Errorf("error = %v, want KindModelCall", err)
		}
	})

	t.Run("unparseable reply", func(t *testing.T) {
		ai := &stubChatClient{replies: []string{"I could not read that page."}}
		imp := NewImporter(ai, &stubFetcher{page: "<html></html>"}, testImportConfig())

		_, err := imp.Import(context.Background(), "https://olx.pt/anuncio/1")
		var svcErr *Error
		if !errors.As(err, &svcErr) || svcErr.Kind != KindModelParse {
			t.Errorf("error = %v, want KindModelParse", err)
		}
	})
}

func TestImporterStripsScriptsAndTruncates(t *testing.T) {
	cfg := testImportConfig()
	cfg.MaxHTMLChars = 500

	body := "<html><head><script>var tracking = 'noise';</script></head><body>" +
		"<h1>Audi A4 Avant</h1>" + strings.Repeat("<p>specs</p>", 200) + "</body></html>"

	ai := &stubChatClient{replies: []string{`{"title": "Audi A4 Avant", "brand": "Audi", "model": "A4", "year": 2020, "price": 25000}`}}
	imp := NewImporter(ai, &stubFetcher{page: body}, cfg)

	if _, err := imp.Import(context.Background(), "https://olx.pt/anuncio/1"); err != nil {
		t.Fatalf("Import: %v", err)
	}

	sent := ai.calls[0][1].Content
	if strings.Contains(sent, "tracking") {
		t.Error("script content was sent to the model")
	}
	const preamble = "Extract the car listing data from this HTML:\n\n"
	html := strings.TrimPrefix(sent, preamble)
	if len([]rune(html)) > cfg.MaxHTMLChars {
		t.Errorf("HTML sent to model is %d runes, budget is %d", len([]rune(html)), cfg.MaxHTMLChars)
	}
	if !strings.Contains(html, "Audi A4 Avant") {
		t.Error("listing content missing from truncated HTML")
	}
}
