package repository

import (
	"reflect"
	"strings"
	"testing"

	"carrosusados/internal/model"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestBuildFilterClausesEmpty(t *testing.T) {
	clauses, args := buildFilterClauses(&model.CarFilters{}, 1)
	if len(clauses) != 0 {
		t.Errorf("empty filters produced clauses: %v", clauses)
	}
	if len(args) != 0 {
		t.Errorf("empty filters produced args: %v", args)
	}

	clauses, args = buildFilterClauses(nil, 1)
	if len(clauses) != 0 || len(args) != 0 {
		t.Errorf("nil filters produced clauses %v args %v", clauses, args)
	}
}

func TestBuildFilterClausesSingleBound(t *testing.T) {
	filters := &model.CarFilters{MaxPrice: intPtr(15000)}

	clauses, args := buildFilterClauses(filters, 1)
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %v", clauses)
	}
	if clauses[0] != "price <= $1" {
		t.Errorf("clause = %q, want %q", clauses[0], "price <= $1")
	}
	if !reflect.DeepEqual(args, []interface{}{15000}) {
		t.Errorf("args = %v, want [15000]", args)
	}
}

func TestBuildFilterClausesEquality(t *testing.T) {
	filters := &model.CarFilters{
		Brand:    strPtr("Toyota"),
		FuelType: strPtr("Gasóleo"),
	}

	clauses, args := buildFilterClauses(filters, 1)
	if len(clauses) != 2 {
		t.Fatalf("expected 2 clauses, got %v", clauses)
	}
	if clauses[0] != "brand ILIKE $1" {
		t.Errorf("clauses[0] = %q", clauses[0])
	}
	if clauses[1] != "fuel_type ILIKE $2" {
		t.Errorf("clauses[1] = %q", clauses[1])
	}
	// Exact-match filters must not be wrapped in wildcards.
	if args[0] != "Toyota" {
		t.Errorf("args[0] = %v, want Toyota", args[0])
	}
}

func TestBuildFilterClausesLocationContains(t *testing.T) {
	filters := &model.CarFilters{Location: strPtr("Lisboa")}

	clauses, args := buildFilterClauses(filters, 1)
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %v", clauses)
	}
	if args[0] != "%Lisboa%" {
		t.Errorf("location arg = %v, want %%Lisboa%%", args[0])
	}
}

func TestBuildFilterClausesSearch(t *testing.T) {
	filters := &model.CarFilters{Search: strPtr("golf")}

	clauses, args := buildFilterClauses(filters, 1)
	if len(clauses) != 1 {
		t.Fatalf("expected 1 clause, got %v", clauses)
	}
	want := "(title ILIKE $1 OR brand ILIKE $2 OR model ILIKE $3)"
	if clauses[0] != want {
		t.Errorf("search clause = %q, want %q", clauses[0], want)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %v", args)
	}
	for i, arg := range args {
		if arg != "%golf%" {
			t.Errorf("args[%d] = %v, want %%golf%%", i, arg)
		}
	}
}

func TestBuildFilterClausesPlaceholderSequence(t *testing.T) {
	filters := &model.CarFilters{
		Brand:    strPtr("BMW"),
		MinPrice: intPtr(5000),
		MaxPrice: intPtr(20000),
		MinYear:  intPtr(2015),
		Search:   strPtr("touring"),
	}

	// Start above 1 to mirror queries that prepend scope arguments.
	clauses, args := buildFilterClauses(filters, 3)
	if len(args) != 7 {
		t.Fatalf("expected 7 args, got %d: %v", len(args), args)
	}

	joined := strings.Join(clauses, " AND ")
	for _, ph := range []string{"$3", "$4", "$5", "$6", "$7", "$8", "$9"} {
		if !strings.Contains(joined, ph) {
			t.Errorf("placeholder %s missing from %q", ph, joined)
		}
	}
	if strings.Contains(joined, "$10") || strings.Contains(joined, "$2") {
		t.Errorf("unexpected placeholder in %q", joined)
	}
}
