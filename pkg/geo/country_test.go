package geo

import (
	"errors"
	"testing"
)

func TestParseCountry(t *testing.T) {
	t.Run("usa", func(t *testing.T) {
		country, err := ParseCountry("USA")
		if err != nil {
			t.Fatalf("ParseCountry failed: %v", err)
		}
		if country != USA {
			t.Errorf("Expected USA, got %v", country)
		}
	})

	t.Run("multi_word", func(t *testing.T) {
		country, err := ParseCountry("NewZealand")
		if err != nil {
			t.Fatalf("ParseCountry failed: %v", err)
		}
		if country != NewZealand {
			t.Errorf("Expected NewZealand, got %v", country)
		}
	})

	t.Run("case_sensitive", func(t *testing.T) {
		if _, err := ParseCountry("usa"); err == nil {
			t.Error("Expected error for lowercase country name")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseCountry("Atlantis")
		if err == nil {
			t.Fatal("Expected error for unknown country")
		}
		if !errors.Is(err, ErrVariantNotFound) {
			t.Errorf("Expected ErrVariantNotFound, got %v", err)
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := ParseCountry(""); err == nil {
			t.Error("Expected error for empty country name")
		}
	})
}

func TestCountryString(t *testing.T) {
	if got := USA.String(); got != "USA" {
		t.Errorf("Expected \"USA\", got %q", got)
	}
	if got := SouthAfrica.String(); got != "SouthAfrica" {
		t.Errorf("Expected \"SouthAfrica\", got %q", got)
	}
	if got := Country(9999).String(); got != "Country(9999)" {
		t.Errorf("Expected placeholder for out-of-range country, got %q", got)
	}
}

func TestCountryRoundTrip(t *testing.T) {
	for _, country := range Countries() {
		parsed, err := ParseCountry(country.String())
		if err != nil {
			t.Fatalf("ParseCountry(%q) failed: %v", country.String(), err)
		}
		if parsed != country {
			t.Errorf("Round trip of %v produced %v", country, parsed)
		}
	}
}

func TestHasSubdivisions(t *testing.T) {
	if !USA.HasSubdivisions() {
		t.Error("USA should have subdivisions")
	}
	if Japan.HasSubdivisions() {
		t.Error("Japan should have no modeled subdivisions")
	}
}
