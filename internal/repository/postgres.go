package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"carrosusados/internal/model"
	"carrosusados/internal/utils"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// Listing ordering: newest first, identifier ascending on ties so
// pagination and display stay deterministic.
const carOrder = "created_at DESC, id ASC"

var carColumns = []string{
	"id", "user_id", "title", "brand", "model", "year", "price", "mileage",
	"fuel_type", "transmission", "body_type", "color", "location",
	"description", "images", "is_sold", "is_approved", "approved_by",
	"approved_at", "created_at", "updated_at",
}

// carColumnList joins the car column names, optionally table-prefixed.
// The embedding vector is deliberately excluded from reads.
func carColumnList(prefix string) string {
	if prefix == "" {
		return strings.Join(carColumns, ", ")
	}
	cols := make([]string, len(carColumns))
	for i, c := range carColumns {
		cols[i] = prefix + "." + c
	}
	return strings.Join(cols, ", ")
}

// PostgresRepository handles database operations.
type PostgresRepository struct {
	db *sqlx.DB
}

// NewPostgresRepository connects to PostgreSQL and configures the pool.
func NewPostgresRepository(dsn string, maxConn, maxIdleConn int) (*PostgresRepository, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(2 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// Close closes the database connection.
func (r *PostgresRepository) Close() error {
	return r.db.Close()
}

// SearchPublic returns publicly visible listings matching the filters,
// newest first. limit <= 0 means unbounded (the public browse path).
func (r *PostgresRepository) SearchPublic(ctx context.Context, filters *model.CarFilters, limit int) ([]model.Car, error) {
	where := []string{scopePublic}
	clauses, args := buildFilterClauses(filters, 1)
	where = append(where, clauses...)

	query := fmt.Sprintf("SELECT %s FROM cars WHERE %s ORDER BY %s",
		carColumnList(""), strings.Join(where, " AND "), carOrder)
	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", len(args)+1)
		args = append(args, limit)
	}

	cars := []model.Car{}
	if err := r.db.SelectContext(ctx, &cars, query, args...); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return cars, nil
}

// PendingCars returns listings awaiting moderation, newest first.
func (r *PostgresRepository) PendingCars(ctx context.Context) ([]model.Car, error) {
	query := fmt.Sprintf("SELECT %s FROM cars WHERE %s ORDER BY %s",
		carColumnList(""), scopePending, carOrder)

	cars := []model.Car{}
	if err := r.db.SelectContext(ctx, &cars, query); err != nil {
		return nil, fmt.Errorf("failed to fetch pending listings: %w", err)
	}
	return cars, nil
}

// AllCars returns every listing regardless of state, newest first.
func (r *PostgresRepository) AllCars(ctx context.Context) ([]model.Car, error) {
	query := fmt.Sprintf("SELECT %s FROM cars ORDER BY %s", carColumnList(""), carOrder)

	cars := []model.Car{}
	if err := r.db.SelectContext(ctx, &cars, query); err != nil {
		return nil, fmt.Errorf("failed to fetch listings: %w", err)
	}
	return cars, nil
}

// CarsByOwner returns the listings owned by a user, newest first.
func (r *PostgresRepository) CarsByOwner(ctx context.Context, userID string) ([]model.Car, error) {
	query := fmt.Sprintf("SELECT %s FROM cars WHERE user_id = $1 ORDER BY %s",
		carColumnList(""), carOrder)

	cars := []model.Car{}
	if err := r.db.SelectContext(ctx, &cars, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch user listings: %w", err)
	}
	return cars, nil
}

// GetCarByID retrieves a single listing, nil when absent.
func (r *PostgresRepository) GetCarByID(ctx context.Context, id string) (*model.Car, error) {
	query := fmt.Sprintf("SELECT %s FROM cars WHERE id = $1", carColumnList(""))

	var car model.Car
	if err := r.db.GetContext(ctx, &car, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &car, nil
}

// GetCarBySlug resolves a slug back to a listing. The slug suffix is only a
// hint: candidates whose identifier ends with the suffix are re-encoded and
// compared against the full slug. When two listings collide on both suffix
// and slug the first match wins.
func (r *PostgresRepository) GetCarBySlug(ctx context.Context, slug string) (*model.Car, error) {
	shortID := utils.ShortIDFromSlug(slug)
	query := fmt.Sprintf("SELECT %s FROM cars WHERE RIGHT(id::text, 10) = $1 ORDER BY %s",
		carColumnList(""), carOrder)

	candidates := []model.Car{}
	if err := r.db.SelectContext(ctx, &candidates, query, shortID); err != nil {
		return nil, fmt.Errorf("failed to resolve slug: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	for i := range candidates {
		if utils.MakeSlug(candidates[i].Title, candidates[i].ID) == slug {
			return &candidates[i], nil
		}
	}
	return &candidates[0], nil
}

// CreateCar inserts a new listing.
func (r *PostgresRepository) CreateCar(ctx context.Context, car *model.Car) error {
	query := `
		INSERT INTO cars (
			id, user_id, title, brand, model, year, price, mileage,
			fuel_type, transmission, body_type, color, location,
			description, images, is_sold, is_approved, created_at, updated_at
		) VALUES (
			:id, :user_id, :title, :brand, :model, :year, :price, :mileage,
			:fuel_type, :transmission, :body_type, :color, :location,
			:description, :images, :is_sold, :is_approved, NOW(), NOW()
		)`
	if _, err := r.db.NamedExecContext(ctx, query, car); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// UpdateCar overwrites the mutable fields of a listing.
func (r *PostgresRepository) UpdateCar(ctx context.Context, car *model.Car) error {
	query := `
		UPDATE cars SET
			title = :title, brand = :brand, model = :model, year = :year,
			price = :price, mileage = :mileage, fuel_type = :fuel_type,
			transmission = :transmission, body_type = :body_type,
			color = :color, location = :location, description = :description,
			images = :images, is_sold = :is_sold, updated_at = NOW()
		WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, car); err != nil {
		return fmt.Errorf("failed to update listing: %w", err)
	}
	return nil
}

// DeleteCar removes a listing.
func (r *PostgresRepository) DeleteCar(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM cars WHERE id = $1", id); err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}
	return nil
}

// ApproveCar marks a listing as moderated and publicly visible.
func (r *PostgresRepository) ApproveCar(ctx context.Context, id, adminID string) error {
	query := `
		UPDATE cars SET is_approved = true, approved_by = $2, approved_at = NOW(), updated_at = NOW()
		WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, adminID); err != nil {
		return fmt.Errorf("failed to approve listing: %w", err)
	}
	return nil
}

// MarkSold toggles the sold flag of a listing.
func (r *PostgresRepository) MarkSold(ctx context.Context, id string, sold bool) error {
	query := "UPDATE cars SET is_sold = $2, updated_at = NOW() WHERE id = $1"
	if _, err := r.db.ExecContext(ctx, query, id, sold); err != nil {
		return fmt.Errorf("failed to mark listing sold: %w", err)
	}
	return nil
}

// FavoriteIDs returns the listing identifiers a user has favorited.
func (r *PostgresRepository) FavoriteIDs(ctx context.Context, userID string) ([]string, error) {
	ids := []string{}
	query := "SELECT car_id FROM favorites WHERE user_id = $1"
	if err := r.db.SelectContext(ctx, &ids, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch favorites: %w", err)
	}
	return ids, nil
}

// FavoriteCars returns the full listings a user has favorited.
func (r *PostgresRepository) FavoriteCars(ctx context.Context, userID string) ([]model.Car, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM cars c
		JOIN favorites f ON f.car_id = c.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC`, carColumnList("c"))

	cars := []model.Car{}
	if err := r.db.SelectContext(ctx, &cars, query, userID); err != nil {
		return nil, fmt.Errorf("failed to fetch favorite listings: %w", err)
	}
	return cars, nil
}

// AddFavorite saves a listing to the user's wishlist. Adding twice is a no-op.
func (r *PostgresRepository) AddFavorite(ctx context.Context, userID, carID string) error {
	query := `
		INSERT INTO favorites (user_id, car_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id, car_id) DO NOTHING`
	if _, err := r.db.ExecContext(ctx, query, userID, carID); err != nil {
		return fmt.Errorf("failed to add favorite: %w", err)
	}
	return nil
}

// RemoveFavorite removes a listing from the user's wishlist.
func (r *PostgresRepository) RemoveFavorite(ctx context.Context, userID, carID string) error {
	query := "DELETE FROM favorites WHERE user_id = $1 AND car_id = $2"
	if _, err := r.db.ExecContext(ctx, query, userID, carID); err != nil {
		return fmt.Errorf("failed to remove favorite: %w", err)
	}
	return nil
}

// IsFavorite reports whether a listing is on the user's wishlist.
func (r *PostgresRepository) IsFavorite(ctx context.Context, userID, carID string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT 1 FROM favorites WHERE user_id = $1 AND car_id = $2)"
	if err := r.db.GetContext(ctx, &exists, query, userID, carID); err != nil {
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
	return exists, nil
}

// GetUserRole returns the elevated role of a user, or "" for plain buyers.
func (r *PostgresRepository) GetUserRole(ctx context.Context, userID string) (string, error) {
	var role string
	query := "SELECT role FROM user_roles WHERE user_id = $1"
	if err := r.db.GetContext(ctx, &role, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("failed to fetch user role: %w", err)
	}
	return role, nil
}

// StandProfileByUser returns the stand profile owned by a user, nil when absent.
func (r *PostgresRepository) StandProfileByUser(ctx context.Context, userID string) (*model.StandProfile, error) {
	var p model.StandProfile
	query := "SELECT * FROM stand_profiles WHERE user_id = $1"
	if err := r.db.GetContext(ctx, &p, query, userID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch stand profile: %w", err)
	}
	return &p, nil
}

// StandProfileByID returns a stand profile by its identifier, nil when absent.
func (r *PostgresRepository) StandProfileByID(ctx context.Context, id string) (*model.StandProfile, error) {
	var p model.StandProfile
	query := "SELECT * FROM stand_profiles WHERE id = $1"
	if err := r.db.GetContext(ctx, &p, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch stand profile: %w", err)
	}
	return &p, nil
}

// UpsertStandProfile creates or updates the stand branding for a user.
func (r *PostgresRepository) UpsertStandProfile(ctx context.Context, p *model.StandProfile) error {
	query := `
		INSERT INTO stand_profiles (
			id, user_id, business_name, logo_url, description,
			primary_color, secondary_color, phone, email, website,
			address, city, created_at, updated_at
		) VALUES (
			:id, :user_id, :business_name, :logo_url, :description,
			:primary_color, :secondary_color, :phone, :email, :website,
			:address, :city, NOW(), NOW()
		)
		ON CONFLICT (user_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			logo_url = EXCLUDED.logo_url,
			description = EXCLUDED.description,
			primary_color = EXCLUDED.primary_color,
			secondary_color = EXCLUDED.secondary_color,
			phone = EXCLUDED.phone,
			email = EXCLUDED.email,
			website = EXCLUDED.website,
			address = EXCLUDED.address,
			city = EXCLUDED.city,
			updated_at = NOW()`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("failed to upsert stand profile: %w", err)
	}
	return nil
}

// UpdateEmbedding stores the embedding vector for a listing.
func (r *PostgresRepository) UpdateEmbedding(ctx context.Context, carID string, embedding []float32) error {
	vec := pgvector.NewVector(embedding)
	query := "UPDATE cars SET embedding = $1, updated_at = NOW() WHERE id = $2"
	if _, err := r.db.ExecContext(ctx, query, vec, carID); err != nil {
		return fmt.Errorf("failed to update embedding: %w", err)
	}
	return nil
}

// RelatedCars returns public listings similar to the given one, nearest by
// embedding distance. Listings without embeddings fall back to recent
// same-brand results.
func (r *PostgresRepository) RelatedCars(ctx context.Context, carID string, limit int) ([]model.Car, error) {
	var hasEmbedding bool
	check := "SELECT embedding IS NOT NULL FROM cars WHERE id = $1"
	if err := r.db.GetContext(ctx, &hasEmbedding, check, carID); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to check embedding: %w", err)
	}

	cars := []model.Car{}
	if hasEmbedding {
		query := fmt.Sprintf(`
			SELECT %s FROM cars
			WHERE %s AND id <> $1 AND embedding IS NOT NULL
			ORDER BY embedding <-> (SELECT embedding FROM cars WHERE id = $1)
			LIMIT $2`, carColumnList(""), scopePublic)
		if err := r.db.SelectContext(ctx, &cars, query, carID, limit); err != nil {
			return nil, fmt.Errorf("failed to fetch related listings: %w", err)
		}
		if len(cars) > 0 {
			return cars, nil
		}
	}

	query := fmt.Sprintf(`
		SELECT %s FROM cars
		WHERE %s AND id <> $1 AND brand = (SELECT brand FROM cars WHERE id = $1)
		ORDER BY %s
		LIMIT $2`, carColumnList(""), scopePublic, carOrder)
	if err := r.db.SelectContext(ctx, &cars, query, carID, limit); err != nil {
		return nil, fmt.Errorf("failed to fetch related listings: %w", err)
	}
	return cars, nil
}
