package domain

import "testing"

func TestClassificationGlyph(t *testing.T) {
	known := []string{"Extreme Fear", "Fear", "Neutral", "Greed", "Extreme Greed"}
	seen := make(map[string]bool)
	for _, c := range known {
		glyph := ClassificationGlyph(c)
		if glyph == "" {
			t.Fatalf("expected glyph for %q", c)
		}
		if seen[glyph] {
			t.Fatalf("glyph %q reused for %q", glyph, c)
		}
		seen[glyph] = true
	}
}

func TestClassificationGlyphUnknown(t *testing.T) {
	if glyph := ClassificationGlyph("Mild Panic"); glyph != "" {
		t.Fatalf("expected empty glyph for unknown classification, got %q", glyph)
	}
	if glyph := ClassificationGlyph(""); glyph != "" {
		t.Fatalf("expected empty glyph for empty classification, got %q", glyph)
	}
}
