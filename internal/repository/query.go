package repository

import (
	"fmt"

	"carrosusados/internal/model"
)

// Scope predicates for the three browse contexts. These are separate on
// purpose: public search, the moderation queue and own-listing views have
// different authorization preconditions and must not be toggled by flags.
const (
	scopePublic  = "is_sold = false AND is_approved = true"
	scopePending = "is_approved = false"
)

// buildFilterClauses translates a sparse filter set into WHERE predicates
// with $n placeholders starting at startIdx. String filters are
// case-insensitive: exact match for closed-vocabulary fields, contains for
// location and free-text search. Numeric filters are inclusive bounds; an
// absent bound leaves that side unconstrained.
func buildFilterClauses(f *model.CarFilters, startIdx int) ([]string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}
	idx := startIdx

	if f == nil {
		return clauses, args
	}

	eq := func(column string, value string) {
		clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", column, idx))
		args = append(args, value)
		idx++
	}
	contains := func(column string, value string) {
		clauses = append(clauses, fmt.Sprintf("%s ILIKE $%d", column, idx))
		args = append(args, "%"+value+"%")
		idx++
	}
	bound := func(column, op string, value int) {
		clauses = append(clauses, fmt.Sprintf("%s %s $%d", column, op, idx))
		args = append(args, value)
		idx++
	}

	if f.Brand != nil {
		eq("brand", *f.Brand)
	}
	if f.Model != nil {
		eq("model", *f.Model)
	}
	if f.FuelType != nil {
		eq("fuel_type", *f.FuelType)
	}
	if f.Transmission != nil {
		eq("transmission", *f.Transmission)
	}
	if f.BodyType != nil {
		eq("body_type", *f.BodyType)
	}
	if f.Color != nil {
		eq("color", *f.Color)
	}
	if f.MinPrice != nil {
		bound("price", ">=", *f.MinPrice)
	}
	if f.MaxPrice != nil {
		bound("price", "<=", *f.MaxPrice)
	}
	if f.MinYear != nil {
		bound("year", ">=", *f.MinYear)
	}
	if f.MaxYear != nil {
		bound("year", "<=", *f.MaxYear)
	}
	if f.MinMileage != nil {
		bound("mileage", ">=", *f.MinMileage)
	}
	if f.MaxMileage != nil {
		bound("mileage", "<=", *f.MaxMileage)
	}
	if f.Location != nil {
		contains("location", *f.Location)
	}
	if f.Search != nil {
		clauses = append(clauses, fmt.Sprintf(
			"(title ILIKE $%d OR brand ILIKE $%d OR model ILIKE $%d)",
			idx, idx+1, idx+2))
		term := "%" + *f.Search + "%"
		args = append(args, term, term, term)
		idx += 3
	}

	return clauses, args
}
