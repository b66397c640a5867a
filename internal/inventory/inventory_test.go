package inventory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/lmoreno/camisas/internal/db"
	"github.com/lmoreno/camisas/internal/lookup"
	"github.com/lmoreno/camisas/internal/model"
	"github.com/lmoreno/camisas/internal/store"
)

func seededDB(t *testing.T) *sql.DB {
	t.Helper()
	database := db.NewTestDB(t)
	if err := store.SaveShirts(context.Background(), database, model.SeedShirts()); err != nil {
		t.Fatalf("seeding store: %v", err)
	}
	return database
}

func validFields(code string) Fields {
	return Fields{
		Code:     code,
		Color:    "Rojo",
		Size:     "S",
		Brand:    "Puma",
		Price:    20.00,
		ImageURL: "http://x",
	}
}

func TestCreateAssignsNextID(t *testing.T) {
	database := seededDB(t)
	ctx := context.Background()

	shirt, err := Create(ctx, database, validFields("CAM-004"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if shirt.ID != 4 {
		t.Errorf("expected id 4 on 3-seed store, got %d", shirt.ID)
	}

	shirts, _ := List(ctx, database)
	if len(shirts) != 4 {
		t.Errorf("expected 4 shirts, got %d", len(shirts))
	}
}

func TestCreateFirstIDIsOne(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	// Explicitly empty store, not the seed.
	store.SaveShirts(ctx, database, nil)

	shirt, err := Create(ctx, database, validFields("CAM-100"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if shirt.ID != 1 {
		t.Errorf("expected first id 1, got %d", shirt.ID)
	}
}

func TestIDsNotReusedAfterMiddleDelete(t *testing.T) {
	database := seededDB(t)
	ctx := context.Background()

	if err := Remove(ctx, database, 2); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	shirt, err := Create(ctx, database, validFields("CAM-004"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	// Ids come from max(existing)+1, so the freed id 2 is never handed out
	// while a higher id remains.
	if shirt.ID != 4 {
		t.Errorf("expected id 4, got %d", shirt.ID)
	}
}

func TestCreateValidation(t *testing.T) {
	database := seededDB(t)
	ctx := context.Background()

	cases := []struct {
		name   string
		fields Fields
	}{
		{"missing code", Fields{Color: "Rojo", Size: "S", Brand: "Puma", Price: 1, ImageURL: "http://x"}},
		{"missing color", Fields{Code: "X-1", Size: "S", Brand: "Puma", Price: 1, ImageURL: "http://x"}},
		{"missing size", Fields{Code: "X-1", Color: "Rojo", Brand: "Puma", Price: 1, ImageURL: "http://x"}},
		{"missing brand", Fields{Code: "X-1", Color: "Rojo", Size: "S", Price: 1, ImageURL: "http://x"}},
		{"missing image", Fields{Code: "X-1", Color: "Rojo", Size: "S", Brand: "Puma", Price: 1}},
		{"negative price", validFieldsWithPrice("X-1", -1)},
		{"duplicate code", validFields("CAM-001-XL-AZUL")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Create(ctx, database, tc.fields)
			if !IsValidation(err) {
				t.Errorf("expected ValidationError, got %v", err)
			}
		})
	}

	// Nothing may have reached the store.
	shirts, _ := List(ctx, database)
	if len(shirts) != 3 {
		t.Errorf("store changed by rejected creates: %d items", len(shirts))
	}
}

func validFieldsWithPrice(code string, price float64) Fields {
	f := validFields(code)
	f.Price = price
	return f
}

func TestUpdatePreservesIDAndCode(t *testing.T) {
	database := seededDB(t)
	ctx := context.Background()

	original, err := Get(ctx, database, 1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}

	updated, err := Update(ctx, database, 1, Fields{
		Code:     original.Code,
		Color:    original.Color,
		Size:     original.Size,
		Brand:    original.Brand,
		Price:    50.00,
		ImageURL: original.ImageURL,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	if updated.ID != 1 {
		t.Errorf("id changed: %d", updated.ID)
	}
	if updated.Code != original.Code {
		t.Errorf("code changed: %q", updated.Code)
	}
	if updated.Price != 50.00 {
		t.Errorf("expected price 50.00, got %v", updated.Price)
	}
}

func TestUpdateMissingIDIsNotFound(t *testing.T) {
	database := seededDB(t)
	ctx := context.Background()

	before, _ := List(ctx, database)

	_, err := Update(ctx, database, 999, validFields("CAM-NEW"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	after, _ := List(ctx, database)
	if !reflect.DeepEqual(before, after) {
		t.Error("failed update changed the snapshot")
	}
}

func TestUpdateAllowsKeepingOwnCode(t *testing.T) {
	database := seededDB(t)
	ctx := context.Background()

	_, err := Update(ctx, database, 2, Fields{
		Code:     "CAM-002-M-BLANCA",
		Color:    "Blanca",
		Size:     "M",
		Brand:    "Adidas",
		Price:    41.00,
		ImageURL: "http://x",
	})
	if err != nil {
		t.Errorf("updating an item with its own code should pass: %v", err)
	}

	_, err = Update(ctx, database, 2, validFields("CAM-001-XL-AZUL"))
	if !IsValidation(err) {
		t.Errorf("expected ValidationError for another item's code, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	database := seededDB(t)
	ctx := context.Background()

	if err := Remove(ctx, database, 2); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	shirts, _ := List(ctx, database)
	if len(shirts) != 2 {
		t.Errorf("expected 2 shirts, got %d", len(shirts))
	}

	if _, ok := lookup.Build(shirts).Resolve("CAM-002-M-BLANCA"); ok {
		t.Error("removed shirt still resolves by code")
	}

	if err := Remove(ctx, database, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for repeated remove, got %v", err)
	}
}

func TestParsePrice(t *testing.T) {
	cases := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{"45.99", 45.99, false},
		{"0", 0, false},
		{" 20.00 ", 20, false},
		{"", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"Inf", 0, true},
		{"-1", 0, true},
	}

	for _, tc := range cases {
		got, err := ParsePrice(tc.in)
		if tc.wantErr {
			if !IsValidation(err) {
				t.Errorf("ParsePrice(%q): expected ValidationError, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePrice(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParsePrice(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestReplayAgainstReferenceModel drives a sequence of mutations through the
// repository and mirrors each successful one on a plain in-memory slice. The
// final store snapshot must match the reference exactly.
func TestReplayAgainstReferenceModel(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()
	store.SaveShirts(ctx, database, nil)

	var ref []model.Shirt

	refCreate := func(f Fields) {
		var maxID int64
		for _, s := range ref {
			if s.ID > maxID {
				maxID = s.ID
			}
		}
		ref = append(ref, model.Shirt{
			ID: maxID + 1, Code: f.Code, Color: f.Color, Size: f.Size,
			Brand: f.Brand, Price: f.Price, ImageURL: f.ImageURL,
		})
	}
	refUpdate := func(id int64, f Fields) {
		for i := range ref {
			if ref[i].ID == id {
				ref[i] = model.Shirt{
					ID: id, Code: f.Code, Color: f.Color, Size: f.Size,
					Brand: f.Brand, Price: f.Price, ImageURL: f.ImageURL,
				}
			}
		}
	}
	refRemove := func(id int64) {
		kept := ref[:0]
		for _, s := range ref {
			if s.ID != id {
				kept = append(kept, s)
			}
		}
		ref = kept
	}

	type op struct {
		kind   string
		id     int64
		fields Fields
	}
	ops := []op{
		{kind: "create", fields: validFields("R-001")},
		{kind: "create", fields: validFields("R-002")},
		{kind: "create", fields: validFields("R-003")},
		{kind: "remove", id: 2},
		{kind: "create", fields: validFields("R-004")},
		{kind: "update", id: 1, fields: validFieldsWithPrice("R-001", 99.95)},
		{kind: "remove", id: 3},
		{kind: "update", id: 999, fields: validFields("R-ghost")}, // no-op, NotFound
		{kind: "remove", id: 999},                                 // no-op, NotFound
		{kind: "create", fields: validFields("R-005")},
	}

	for i, o := range ops {
		switch o.kind {
		case "create":
			if _, err := Create(ctx, database, o.fields); err != nil {
				t.Fatalf("op %d create: %v", i, err)
			}
			refCreate(o.fields)
		case "update":
			_, err := Update(ctx, database, o.id, o.fields)
			if err == nil {
				refUpdate(o.id, o.fields)
			} else if !errors.Is(err, ErrNotFound) {
				t.Fatalf("op %d update: %v", i, err)
			}
		case "remove":
			err := Remove(ctx, database, o.id)
			if err == nil {
				refRemove(o.id)
			} else if !errors.Is(err, ErrNotFound) {
				t.Fatalf("op %d remove: %v", i, err)
			}
		default:
			t.Fatalf("unknown op %q", o.kind)
		}

		got, err := List(ctx, database)
		if err != nil {
			t.Fatalf("op %d list: %v", i, err)
		}
		want := ref
		if want == nil {
			want = []model.Shirt{}
		}
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("op %d (%s) diverged:\n got %s\nwant %s", i, o.kind, dump(got), dump(want))
		}
	}
}

func dump(shirts []model.Shirt) string {
	out := ""
	for _, s := range shirts {
		out += fmt.Sprintf("{%d %s %.2f} ", s.ID, s.Code, s.Price)
	}
	return out
}
