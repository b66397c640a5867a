package lookup

import (
	"testing"

	"github.com/lmoreno/camisas/internal/model"
)

func TestResolveSeedScenario(t *testing.T) {
	idx := Build(model.SeedShirts())

	shirt, ok := idx.Resolve("CAM-002-M-BLANCA")
	if !ok {
		t.Fatal("expected CAM-002-M-BLANCA to resolve")
	}
	if shirt.Brand != "Adidas" || shirt.Color != "Blanca" || shirt.Size != "M" {
		t.Errorf("wrong shirt resolved: %+v", shirt)
	}
	if shirt.Price != 39.99 {
		t.Errorf("expected price 39.99, got %v", shirt.Price)
	}

	if _, ok := idx.Resolve("CAM-999-XX"); ok {
		t.Error("expected CAM-999-XX to be absent")
	}
}

func TestResolveEveryItemInSnapshot(t *testing.T) {
	shirts := model.SeedShirts()
	idx := Build(shirts)

	for _, want := range shirts {
		got, ok := idx.Resolve(want.Code)
		if !ok {
			t.Errorf("code %s did not resolve", want.Code)
			continue
		}
		if got != want {
			t.Errorf("code %s resolved to %+v, want %+v", want.Code, got, want)
		}
	}
}

func TestBuildEmptySnapshot(t *testing.T) {
	idx := Build(nil)
	if len(idx) != 0 {
		t.Errorf("expected empty index, got %d entries", len(idx))
	}
	if _, ok := idx.Resolve("anything"); ok {
		t.Error("empty index resolved a code")
	}
}

func TestDuplicateCodeLastWins(t *testing.T) {
	shirts := []model.Shirt{
		{ID: 1, Code: "DUP", Brand: "First"},
		{ID: 2, Code: "DUP", Brand: "Second"},
	}

	shirt, ok := Build(shirts).Resolve("DUP")
	if !ok {
		t.Fatal("expected DUP to resolve")
	}
	if shirt.Brand != "Second" {
		t.Errorf("expected later duplicate to win, got %q", shirt.Brand)
	}
}

func TestBuildDoesNotAliasSnapshot(t *testing.T) {
	shirts := model.SeedShirts()
	idx := Build(shirts)

	shirts[0].Brand = "Changed"

	got, _ := idx.Resolve("CAM-001-XL-AZUL")
	if got.Brand != "Nike" {
		t.Errorf("index aliased the snapshot: %q", got.Brand)
	}
}
