package langdetect_test

import (
	"testing"

	"health-info-bot/pkg/langdetect"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		code string
		want string
	}{
		{"Hindi passes through", "hi", "hi"},
		{"Telugu passes through", "te", "te"},
		{"Kashmiri passes through", "ks", "ks"},
		{"English stays English", "en", "en"},
		{"French normalizes to English", "fr", "en"},
		{"German normalizes to English", "de", "en"},
		{"Uppercase whitelisted code", "HI", "hi"},
		{"Empty normalizes to English", "", "en"},
		{"Garbage normalizes to English", "xx", "en"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := langdetect.Normalize(tt.code); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.code, got, tt.want)
			}
		})
	}
}

func TestIsIndianLanguage(t *testing.T) {
	if !langdetect.IsIndianLanguage("hi") {
		t.Errorf("expected hi to be whitelisted")
	}
	if langdetect.IsIndianLanguage("en") {
		t.Errorf("en must not count as an Indian language")
	}
	if langdetect.IsIndianLanguage("fr") {
		t.Errorf("fr must not count as an Indian language")
	}
}

func TestDetect(t *testing.T) {
	d := langdetect.New()

	t.Run("English sentence", func(t *testing.T) {
		code, err := d.Detect("what are the symptoms of malaria")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != "en" {
			t.Errorf("expected en, got %q", code)
		}
	})

	t.Run("Hindi script", func(t *testing.T) {
		code, err := d.Detect("मलेरिया के लक्षण क्या हैं")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if code != "hi" {
			t.Errorf("expected hi, got %q", code)
		}
	})

	t.Run("Empty input", func(t *testing.T) {
		if _, err := d.Detect("   "); err == nil {
			t.Fatalf("expected error for empty input")
		}
	})
}
