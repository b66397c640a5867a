// Package inventory implements the shirt CRUD operations on top of the
// store's single inventory slot. It is the only writer: every mutation loads
// the current snapshot, applies the change in memory, and persists the whole
// sequence back.
package inventory

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lmoreno/camisas/internal/model"
	"github.com/lmoreno/camisas/internal/store"
)

// Fields are the caller-supplied attributes of a shirt. The id is never
// caller-supplied; Create assigns it and Update preserves it.
type Fields struct {
	Code     string
	Color    string
	Size     string
	Brand    string
	Price    float64
	ImageURL string
}

// List returns the current inventory snapshot in insertion order.
func List(ctx context.Context, db *sql.DB) ([]model.Shirt, error) {
	return store.LoadShirts(ctx, db)
}

// Get returns the shirt with the given id, or ErrNotFound.
func Get(ctx context.Context, db *sql.DB, id int64) (*model.Shirt, error) {
	shirts, err := store.LoadShirts(ctx, db)
	if err != nil {
		return nil, err
	}
	for i := range shirts {
		if shirts[i].ID == id {
			return &shirts[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create validates the fields, assigns the next id (max existing + 1, so ids
// are never reused after deletion), appends the shirt, and persists.
func Create(ctx context.Context, db *sql.DB, fields Fields) (*model.Shirt, error) {
	if err := validate(fields); err != nil {
		return nil, err
	}

	shirts, err := store.LoadShirts(ctx, db)
	if err != nil {
		return nil, err
	}

	if err := checkCodeUnique(shirts, fields.Code, 0); err != nil {
		return nil, err
	}

	var maxID int64
	for _, s := range shirts {
		if s.ID > maxID {
			maxID = s.ID
		}
	}

	shirt := model.Shirt{
		ID:       maxID + 1,
		Code:     fields.Code,
		Color:    fields.Color,
		Size:     fields.Size,
		Brand:    fields.Brand,
		Price:    fields.Price,
		ImageURL: fields.ImageURL,
	}

	shirts = append(shirts, shirt)
	if err := store.SaveShirts(ctx, db, shirts); err != nil {
		return nil, err
	}
	return &shirt, nil
}

// Update validates the fields, replaces all mutable fields of the shirt with
// the given id, and persists. The id is preserved. Returns ErrNotFound if no
// shirt has that id; the snapshot is left untouched in that case.
func Update(ctx context.Context, db *sql.DB, id int64, fields Fields) (*model.Shirt, error) {
	if err := validate(fields); err != nil {
		return nil, err
	}

	shirts, err := store.LoadShirts(ctx, db)
	if err != nil {
		return nil, err
	}

	if err := checkCodeUnique(shirts, fields.Code, id); err != nil {
		return nil, err
	}

	for i := range shirts {
		if shirts[i].ID != id {
			continue
		}
		shirts[i] = model.Shirt{
			ID:       id,
			Code:     fields.Code,
			Color:    fields.Color,
			Size:     fields.Size,
			Brand:    fields.Brand,
			Price:    fields.Price,
			ImageURL: fields.ImageURL,
		}
		if err := store.SaveShirts(ctx, db, shirts); err != nil {
			return nil, err
		}
		return &shirts[i], nil
	}

	return nil, ErrNotFound
}

// Remove deletes the shirt with the given id in place and persists.
// Returns ErrNotFound if no shirt has that id.
func Remove(ctx context.Context, db *sql.DB, id int64) error {
	shirts, err := store.LoadShirts(ctx, db)
	if err != nil {
		return err
	}

	kept := shirts[:0]
	found := false
	for _, s := range shirts {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}
	if !found {
		return ErrNotFound
	}

	return store.SaveShirts(ctx, db, kept)
}

// ParsePrice converts text input into a price. Non-numeric, NaN, infinite and
// negative values are rejected so they can never reach the store.
func ParsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &ValidationError{Field: "precio", Reason: "required"}
	}
	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &ValidationError{Field: "precio", Reason: fmt.Sprintf("not a number: %q", s)}
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, &ValidationError{Field: "precio", Reason: "not a finite number"}
	}
	if price < 0 {
		return 0, &ValidationError{Field: "precio", Reason: "must not be negative"}
	}
	return price, nil
}

func validate(fields Fields) error {
	required := []struct {
		field, value string
	}{
		{"codigo", fields.Code},
		{"color", fields.Color},
		{"talla", fields.Size},
		{"marca", fields.Brand},
		{"imagen", fields.ImageURL},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "required"}
		}
	}

	if math.IsNaN(fields.Price) || math.IsInf(fields.Price, 0) {
		return &ValidationError{Field: "precio", Reason: "not a finite number"}
	}
	if fields.Price < 0 {
		return &ValidationError{Field: "precio", Reason: "must not be negative"}
	}
	return nil
}

// checkCodeUnique rejects a code already used by a different shirt. Duplicate
// codes would be shadowed by the lookup index, silently hiding an item.
func checkCodeUnique(shirts []model.Shirt, code string, selfID int64) error {
	for _, s := range shirts {
		if s.Code == code && s.ID != selfID {
			return &ValidationError{Field: "codigo", Reason: fmt.Sprintf("already in use by item %d", s.ID)}
		}
	}
	return nil
}
