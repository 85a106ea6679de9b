package model

// CarFilters is a sparse set of search predicates. A nil field means "no
// constraint on this field", never "exclude everything".
type CarFilters struct {
	Brand        *string `json:"brand,omitempty" form:"brand"`
	Model        *string `json:"model,omitempty" form:"model"`
	MinPrice     *int    `json:"minPrice,omitempty" form:"minPrice"`
	MaxPrice     *int    `json:"maxPrice,omitempty" form:"maxPrice"`
	MinYear      *int    `json:"minYear,omitempty" form:"minYear"`
	MaxYear      *int    `json:"maxYear,omitempty" form:"maxYear"`
	FuelType     *string `json:"fuelType,omitempty" form:"fuelType"`
	Transmission *string `json:"transmission,omitempty" form:"transmission"`
	BodyType     *string `json:"bodyType,omitempty" form:"bodyType"`
	Color        *string `json:"color,omitempty" form:"color"`
	MinMileage   *int    `json:"minMileage,omitempty" form:"minMileage"`
	MaxMileage   *int    `json:"maxMileage,omitempty" form:"maxMileage"`
	Location     *string `json:"location,omitempty" form:"location"`
	Search       *string `json:"search,omitempty" form:"search"`
}

// IsEmpty reports whether no predicate is set.
func (f *CarFilters) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.Brand == nil && f.Model == nil &&
		f.MinPrice == nil && f.MaxPrice == nil &&
		f.MinYear == nil && f.MaxYear == nil &&
		f.FuelType == nil && f.Transmission == nil &&
		f.BodyType == nil && f.Color == nil &&
		f.MinMileage == nil && f.MaxMileage == nil &&
		f.Location == nil && f.Search == nil
}

// ExtractedFilters is the raw shape the model returns from filter
// extraction. IsSearch is nil unless the model explicitly said
// {"isSearch": false}.
type ExtractedFilters struct {
	CarFilters
	IsSearch *bool `json:"isSearch,omitempty"`
}

// ChatMessage is a single turn in the assistant conversation.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// AssistantRequest is the body of POST /api/v1/assistant.
type AssistantRequest struct {
	Message string        `json:"message" binding:"required"`
	History []ChatMessage `json:"history"`
}

// AssistantResponse is the assistant reply plus the listings matched this
// turn. Filters is nil when the turn was not treated as a search.
type AssistantResponse struct {
	Response string      `json:"response"`
	Cars     []Car       `json:"cars"`
	Filters  *CarFilters `json:"filters"`
}

// ImportRequest is the body of POST /api/v1/import.
type ImportRequest struct {
	URL string `json:"url"`
}

// ImportResult wraps a draft extracted from a third-party listing page.
type ImportResult struct {
	Success       bool      `json:"success"`
	Data          *CarDraft `json:"data"`
	SourceURL     string    `json:"source_url"`
	MissingFields []string  `json:"missing_fields,omitempty"`
}
