package service

import (
	"context"
	"fmt"

	"carrosusados/internal/model"
	"carrosusados/internal/repository"

	"github.com/google/uuid"
)

const relatedLimit = 6

// CarService wraps listing CRUD, moderation, favorites and stand branding
// with the role checks the API enforces.
type CarService struct {
	repo *repository.PostgresRepository
}

// NewCarService creates the listing service.
func NewCarService(repo *repository.PostgresRepository) *CarService {
	return &CarService{repo: repo}
}

// Browse returns publicly visible listings matching the filters.
func (s *CarService) Browse(ctx context.Context, filters *model.CarFilters) ([]model.Car, error) {
	return s.repo.SearchPublic(ctx, filters, 0)
}

// GetByID returns a single listing.
func (s *CarService) GetByID(ctx context.Context, id string) (*model.Car, error) {
	return s.repo.GetCarByID(ctx, id)
}

// GetBySlug resolves a slug to a listing.
func (s *CarService) GetBySlug(ctx context.Context, slug string) (*model.Car, error) {
	return s.repo.GetCarBySlug(ctx, slug)
}

// Related returns listings similar to the given one.
func (s *CarService) Related(ctx context.Context, id string) ([]model.Car, error) {
	return s.repo.RelatedCars(ctx, id, relatedLimit)
}

// MyCars returns the caller's own listings, sold and pending included.
func (s *CarService) MyCars(ctx context.Context, userID string) ([]model.Car, error) {
	return s.repo.CarsByOwner(ctx, userID)
}

// UserRole returns the caller's elevated role, "" for plain buyers.
func (s *CarService) UserRole(ctx context.Context, userID string) (string, error) {
	return s.repo.GetUserRole(ctx, userID)
}

// Create posts a new listing. New listings start unapproved and enter the
// moderation queue.
func (s *CarService) Create(ctx context.Context, userID string, car *model.Car) (*model.Car, error) {
	role, err := s.repo.GetUserRole(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !model.CanCreateListings(role) {
		return nil, errForbidden("a conta não tem permissões para criar anúncios")
	}
	if err := validateCar(car); err != nil {
		return nil, err
	}

	car.ID = uuid.NewString()
	car.UserID = userID
	car.IsSold = false
	car.IsApproved = false
	car.ApprovedBy = nil
	car.ApprovedAt = nil
	if car.Images == nil {
		car.Images = model.JSONArray{}
	}

	if err := s.repo.CreateCar(ctx, car); err != nil {
		return nil, err
	}
	return car, nil
}

// Update overwrites a listing's mutable fields. Owners may edit their own
// ads; admin and stand roles may edit any.
func (s *CarService) Update(ctx context.Context, userID, carID string, input *model.Car) (*model.Car, error) {
	existing, err := s.authorizeManage(ctx, userID, carID)
	if err != nil {
		return nil, err
	}
	if err := validateCar(input); err != nil {
		return nil, err
	}

	input.ID = existing.ID
	input.UserID = existing.UserID
	if input.Images == nil {
		input.Images = model.JSONArray{}
	}
	if err := s.repo.UpdateCar(ctx, input); err != nil {
		return nil, err
	}
	return s.repo.GetCarByID(ctx, carID)
}

// Delete removes a listing, subject to the same ownership rules as Update.
func (s *CarService) Delete(ctx context.Context, userID, carID string) error {
	if _, err := s.authorizeManage(ctx, userID, carID); err != nil {
		return err
	}
	return s.repo.DeleteCar(ctx, carID)
}

// SetSold toggles the sold flag of a listing.
func (s *CarService) SetSold(ctx context.Context, userID, carID string, sold bool) error {
	if _, err := s.authorizeManage(ctx, userID, carID); err != nil {
		return err
	}
	return s.repo.MarkSold(ctx, carID, sold)
}

// PendingCars returns the moderation queue.
func (s *CarService) PendingCars(ctx context.Context) ([]model.Car, error) {
	return s.repo.PendingCars(ctx)
}

// AllCars returns every listing for the admin dashboard.
func (s *CarService) AllCars(ctx context.Context) ([]model.Car, error) {
	return s.repo.AllCars(ctx)
}

// Approve marks a listing as moderated and visible. The HTTP layer already
// restricts this to admins; adminID is recorded for the audit trail.
func (s *CarService) Approve(ctx context.Context, adminID, carID string) error {
	existing, err := s.repo.GetCarByID(ctx, carID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errNotFound("anúncio não encontrado")
	}
	return s.repo.ApproveCar(ctx, carID, adminID)
}

// FavoriteIDs returns the identifiers of the caller's favorited listings.
func (s *CarService) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	return s.repo.FavoriteIDs(ctx, userID)
}

// FavoriteCars returns the caller's favorited listings.
func (s *CarService) FavoriteCars(ctx context.Context, userID string) ([]model.Car, error) {
	return s.repo.FavoriteCars(ctx, userID)
}

// ToggleFavorite flips a listing in or out of the caller's wishlist and
// reports whether it is now favorited.
func (s *CarService) ToggleFavorite(ctx context.Context, userID, carID string) (bool, error) {
	car, err := s.repo.GetCarByID(ctx, carID)
	if err != nil {
		return false, err
	}
	if car == nil {
		return false, errNotFound("anúncio não encontrado")
	}

	favorited, err := s.repo.IsFavorite(ctx, userID, carID)
	if err != nil {
		return false, err
	}
	if favorited {
		return false, s.repo.RemoveFavorite(ctx, userID, carID)
	}
	return true, s.repo.AddFavorite(ctx, userID, carID)
}

// StandByID returns a stand's public branding.
func (s *CarService) StandByID(ctx context.Context, id string) (*model.StandProfile, error) {
	return s.repo.StandProfileByID(ctx, id)
}

// MyStand returns the caller's stand branding, nil when none exists yet.
func (s *CarService) MyStand(ctx context.Context, userID string) (*model.StandProfile, error) {
	return s.repo.StandProfileByUser(ctx, userID)
}

// SaveStand creates or updates the caller's stand branding. Only stand and
// admin accounts carry dealership branding.
func (s *CarService) SaveStand(ctx context.Context, userID string, p *model.StandProfile) (*model.StandProfile, error) {
	role, err := s.repo.GetUserRole(ctx, userID)
	if err != nil {
		return nil, err
	}
	if role != model.RoleStand && role != model.RoleAdmin {
		return nil, errForbidden("a conta não é um stand")
	}
	if p.BusinessName == "" {
		return nil, errInput("nome do stand é obrigatório")
	}

	existing, err := s.repo.StandProfileByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		p.ID = existing.ID
	} else {
		p.ID = uuid.NewString()
	}
	p.UserID = userID

	if err := s.repo.UpsertStandProfile(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.StandProfileByUser(ctx, userID)
}

// authorizeManage loads a listing and checks the caller may modify it.
func (s *CarService) authorizeManage(ctx context.Context, userID, carID string) (*model.Car, error) {
	car, err := s.repo.GetCarByID(ctx, carID)
	if err != nil {
		return nil, err
	}
	if car == nil {
		return nil, errNotFound("anúncio não encontrado")
	}
	if car.UserID == userID {
		return car, nil
	}

	role, err := s.repo.GetUserRole(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !model.CanManageListings(role) {
		return nil, errForbidden("sem permissões para gerir este anúncio")
	}
	return car, nil
}

func validateCar(car *model.Car) error {
	switch {
	case car.Title == "":
		return errInput("título é obrigatório")
	case car.Brand == "":
		return errInput("marca é obrigatória")
	case car.Model == "":
		return errInput("modelo é obrigatório")
	case car.Year <= 0:
		return errInput(fmt.Sprintf("ano inválido: %d", car.Year))
	case car.Price <= 0:
		return errInput(fmt.Sprintf("preço inválido: %d", car.Price))
	case car.Mileage != nil && *car.Mileage < 0:
		return errInput("quilometragem inválida")
	}
	return nil
}
