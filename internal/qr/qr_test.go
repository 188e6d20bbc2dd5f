package qr

import (
	"strings"
	"testing"
)

func TestPublicURL(t *testing.T) {
	got := PublicURL("https", "dinehub.example.com", "tasty-spoon")
	want := "https://dinehub.example.com/menu/tasty-spoon"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestDataURL(t *testing.T) {
	dataURL, err := DataURL("https://dinehub.example.com/menu/tasty-spoon")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(dataURL, "data:image/png;base64,") {
		t.Fatalf("expected a PNG data URI, got %q", dataURL[:32])
	}
	if len(dataURL) < 100 {
		t.Fatal("encoded payload suspiciously small")
	}
}

func TestDataURLDeterministic(t *testing.T) {
	a, _ := DataURL("http://localhost:8080/menu/bistro")
	b, _ := DataURL("http://localhost:8080/menu/bistro")
	if a != b {
		t.Fatal("expected identical encodings for identical input")
	}
}
