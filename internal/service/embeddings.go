package service

import (
	"context"
	"fmt"
	"strings"

	"carrosusados/internal/model"
	"carrosusados/internal/repository"
)

// EmbeddingService maintains the per-listing embedding vectors behind the
// related-listings query.
type EmbeddingService struct {
	repo *repository.PostgresRepository
	ai   ChatClient
}

// NewEmbeddingService creates the embedding maintenance service.
func NewEmbeddingService(repo *repository.PostgresRepository, ai ChatClient) *EmbeddingService {
	return &EmbeddingService{repo: repo, ai: ai}
}

// Refresh recomputes and stores embeddings for the given listings. It
// returns the number updated plus per-listing error strings; one bad
// listing does not abort the batch.
func (s *EmbeddingService) Refresh(ctx context.Context, carIDs []string) (int, []string) {
	var errs []string

	if s.ai == nil || !s.ai.IsEnabled() {
		return 0, []string{"AI gateway is not enabled"}
	}

	cars := make([]*model.Car, 0, len(carIDs))
	texts := make([]string, 0, len(carIDs))
	for _, id := range carIDs {
		car, err := s.repo.GetCarByID(ctx, id)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", id, err))
			continue
		}
		if car == nil {
			errs = append(errs, fmt.Sprintf("%s: not found", id))
			continue
		}
		cars = append(cars, car)
		texts = append(texts, embeddingText(car))
	}
	if len(cars) == 0 {
		return 0, errs
	}

	embeddings, err := s.ai.CreateEmbeddings(ctx, texts)
	if err != nil {
		errs = append(errs, fmt.Sprintf("embedding call failed: %v", err))
		return 0, errs
	}

	success := 0
	for i, car := range cars {
		if i >= len(embeddings) || embeddings[i] == nil {
			errs = append(errs, fmt.Sprintf("%s: no embedding returned", car.ID))
			continue
		}
		if err := s.repo.UpdateEmbedding(ctx, car.ID, embeddings[i]); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", car.ID, err))
			continue
		}
		success++
	}
	return success, errs
}

// embeddingText flattens the searchable facts of a listing into one line.
func embeddingText(car *model.Car) string {
	parts := []string{
		car.Title,
		car.Brand,
		car.Model,
		fmt.Sprintf("%d", car.Year),
	}
	for _, opt := range []*string{car.FuelType, car.Transmission, car.BodyType, car.Color, car.Location, car.Description} {
		if opt != nil && *opt != "" {
			parts = append(parts, *opt)
		}
	}
	return strings.Join(parts, " ")
}
