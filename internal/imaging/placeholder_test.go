package imaging

import (
	"bytes"
	"image/png"
	"testing"
)

func TestPlaceholder(t *testing.T) {
	data, err := Placeholder(300, 300)
	if err != nil {
		t.Fatalf("Placeholder: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decoding result: %v", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() != 300 || bounds.Dy() != 300 {
		t.Errorf("expected 300x300, got %dx%d", bounds.Dx(), bounds.Dy())
	}
}

func TestPlaceholderInvalidSize(t *testing.T) {
	if _, err := Placeholder(0, 300); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := Placeholder(300, -1); err == nil {
		t.Error("expected error for negative height")
	}
}
