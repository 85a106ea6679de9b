package model

import (
	"reflect"
	"testing"
)

func TestCarDraftMissingFields(t *testing.T) {
	year := 2019
	price := 18000

	tests := []struct {
		name    string
		draft   CarDraft
		missing []string
	}{
		{
			name:  "complete draft",
			draft: CarDraft{Title: "BMW 320d", Brand: "BMW", Model: "320d", Year: &year, Price: &price},
		},
		{
			name:    "everything missing",
			draft:   CarDraft{},
			missing: []string{"title", "brand", "year", "price"},
		},
		{
			name:    "only price missing",
			draft:   CarDraft{Title: "BMW 320d", Brand: "BMW", Year: &year},
			missing: []string{"price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.draft.MissingFields()
			if !reflect.DeepEqual(got, tt.missing) {
				t.Errorf("MissingFields() = %v, want %v", got, tt.missing)
			}
		})
	}
}

func TestRolePermissions(t *testing.T) {
	tests := []struct {
		role      string
		canCreate bool
		canManage bool
	}{
		{RoleAdmin, true, true},
		{RoleStand, true, true},
		{RoleVendor, true, false},
		{"", false, false},
		{"moderator", false, false},
	}

	for _, tt := range tests {
		if got := CanCreateListings(tt.role); got != tt.canCreate {
			t.Errorf("CanCreateListings(%q) = %v, want %v", tt.role, got, tt.canCreate)
		}
		if got := CanManageListings(tt.role); got != tt.canManage {
			t.Errorf("CanManageListings(%q) = %v, want %v", tt.role, got, tt.canManage)
		}
	}
}

func TestCarFiltersIsEmpty(t *testing.T) {
	var nilFilters *CarFilters
	if !nilFilters.IsEmpty() {
		t.Error("nil filters should be empty")
	}
	if !(&CarFilters{}).IsEmpty() {
		t.Error("zero filters should be empty")
	}

	brand := "Toyota"
	if (&CarFilters{Brand: &brand}).IsEmpty() {
		t.Error("filters with a brand should not be empty")
	}
	max := 10000
	if (&CarFilters{MaxMileage: &max}).IsEmpty() {
		t.Error("filters with a mileage bound should not be empty")
	}
}

func TestJSONArrayValue(t *testing.T) {
	v, err := JSONArray(nil).Value()
	if err != nil {
		t.Fatalf("Value(nil): %v", err)
	}
	if string(v.([]byte)) != "[]" {
		t.Errorf("nil JSONArray Value = %s, want []", v)
	}

	v, err = JSONArray{"a.jpg", "b.jpg"}.Value()
	if err != nil {
		t.Fatalf("Value: %v", err)
	}
	if string(v.([]byte)) != `["a.jpg","b.jpg"]` {
		t.Errorf("Value = %s", v)
	}
}

func TestJSONArrayScan(t *testing.T) {
	var arr JSONArray
	if err := arr.Scan([]byte(`["x.jpg"]`)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	if len(arr) != 1 || arr[0] != "x.jpg" {
		t.Errorf("scanned = %v", arr)
	}

	if err := arr.Scan(nil); err != nil {
		t.Fatalf("Scan(nil): %v", err)
	}
	if arr != nil {
		t.Errorf("Scan(nil) left %v", arr)
	}
}
