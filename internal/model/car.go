package model

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/pgvector/pgvector-go"
)

// Car represents a single car-for-sale listing.
type Car struct {
	ID           string          `json:"id" db:"id"`
	UserID       string          `json:"user_id" db:"user_id"`
	Title        string          `json:"title" db:"title"`
	Brand        string          `json:"brand" db:"brand"`
	Model        string          `json:"model" db:"model"`
	Year         int             `json:"year" db:"year"`
	Price        int             `json:"price" db:"price"`
	Mileage      *int            `json:"mileage,omitempty" db:"mileage"`
	FuelType     *string         `json:"fuel_type,omitempty" db:"fuel_type"`
	Transmission *string         `json:"transmission,omitempty" db:"transmission"`
	BodyType     *string         `json:"body_type,omitempty" db:"body_type"`
	Color        *string         `json:"color,omitempty" db:"color"`
	Location     *string         `json:"location,omitempty" db:"location"`
	Description  *string         `json:"description,omitempty" db:"description"`
	Images       JSONArray       `json:"images" db:"images"`
	IsSold       bool            `json:"is_sold" db:"is_sold"`
	IsApproved   bool            `json:"is_approved" db:"is_approved"`
	ApprovedBy   *string         `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt   *time.Time      `json:"approved_at,omitempty" db:"approved_at"`
	Embedding    pgvector.Vector `json:"-" db:"embedding"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// CarDraft is an unvalidated, unpersisted listing produced by the import
// pipeline. Scalar numerics are pointers so a missing field is
// distinguishable from zero; the caller confirms the draft before it
// becomes a Car.
type CarDraft struct {
	Title        string   `json:"title"`
	Brand        string   `json:"brand"`
	Model        string   `json:"model"`
	Year         *int     `json:"year"`
	Price        *int     `json:"price"`
	Mileage      *int     `json:"mileage,omitempty"`
	FuelType     *string  `json:"fuel_type,omitempty"`
	Transmission *string  `json:"transmission,omitempty"`
	BodyType     *string  `json:"body_type,omitempty"`
	Color        *string  `json:"color,omitempty"`
	Location     *string  `json:"location,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Images       []string `json:"images,omitempty"`
}

// MissingFields returns the names of required listing fields absent from
// the draft. Drafts with missing fields are flagged, not rejected; the
// ad-creation form enforces completeness before persisting.
func (d *CarDraft) MissingFields() []string {
	var missing []string
	if d.Title == "" {
		missing = append(missing, "title")
	}
	if d.Brand == "" {
		missing = append(missing, "brand")
	}
	if d.Year == nil {
		missing = append(missing, "year")
	}
	if d.Price == nil {
		missing = append(missing, "price")
	}
	return missing
}

// StandProfile holds the branding of a dealership ("stand") account.
type StandProfile struct {
	ID             string    `json:"id" db:"id"`
	UserID         string    `json:"user_id" db:"user_id"`
	BusinessName   string    `json:"business_name" db:"business_name"`
	LogoURL        *string   `json:"logo_url,omitempty" db:"logo_url"`
	Description    *string   `json:"description,omitempty" db:"description"`
	PrimaryColor   *string   `json:"primary_color,omitempty" db:"primary_color"`
	SecondaryColor *string   `json:"secondary_color,omitempty" db:"secondary_color"`
	Phone          *string   `json:"phone,omitempty" db:"phone"`
	Email          *string   `json:"email,omitempty" db:"email"`
	Website        *string   `json:"website,omitempty" db:"website"`
	Address        *string   `json:"address,omitempty" db:"address"`
	City           *string   `json:"city,omitempty" db:"city"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// Application roles. Accounts without a row in user_roles are plain buyers.
const (
	RoleAdmin  = "admin"
	RoleVendor = "vendor"
	RoleStand  = "stand"
)

// CanCreateListings reports whether the role may post ads.
func CanCreateListings(role string) bool {
	return role == RoleAdmin || role == RoleVendor || role == RoleStand
}

// CanManageListings reports whether the role may edit or delete listings
// it does not own.
func CanManageListings(role string) bool {
	return role == RoleAdmin || role == RoleStand
}

// JSONArray maps a jsonb string array column.
type JSONArray []string

// Value implements driver.Valuer.
func (j JSONArray) Value() (driver.Value, error) {
	if j == nil {
		return json.Marshal([]string{})
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner.
func (j *JSONArray) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
