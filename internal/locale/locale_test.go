package locale_test

import (
	"errors"
	"testing"

	"github.com/blog-backend-api/internal/locale"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"zh-TW", "zh-TW"},
		{"zh-tw", "zh-TW"},
		{"zh", "zh-TW"},
		{"zh-TW,zh;q=0.9,en;q=0.8", "zh-TW"},
		{"en-US", "en-US"},
		{"fr-FR", "en-US"},
		{"", "en-US"},
	}
	for _, tc := range cases {
		if got := locale.Normalize(tc.in); got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMessageFallsBackToDefault(t *testing.T) {
	msg, ok := locale.Message("fr-FR", "success-indexApi-1000")
	if !ok || msg != "Login success" {
		t.Errorf("Expected default language fallback, got %q %v", msg, ok)
	}

	if _, ok := locale.Message("en-US", "error-nothing-9999"); ok {
		t.Errorf("Unknown key should not resolve")
	}
}

func TestMessageTranslates(t *testing.T) {
	en, _ := locale.Message("en-US", "error-articleApi-1003")
	zh, ok := locale.Message("zh-TW", "error-articleApi-1003")
	if !ok {
		t.Fatal("Expected zh-TW translation present")
	}
	if en == zh {
		t.Errorf("Expected distinct translation, both %q", en)
	}
}

func TestLevelDefaultsToError(t *testing.T) {
	if got := locale.Level("articleApi-1000"); got != "warning" {
		t.Errorf("Expected warning, got %q", got)
	}
	if got := locale.Level("articleApi-1001"); got != "error" {
		t.Errorf("Expected error default, got %q", got)
	}
}

func TestCodedRoundTrip(t *testing.T) {
	err := locale.Coded("article", "model", "1000")
	domain, layer, code, ok := locale.ParseCoded(err)
	if !ok {
		t.Fatal("Expected coded error to parse")
	}
	if domain != "article" || layer != "model" || code != "1000" {
		t.Errorf("Parsed triple wrong: %s %s %s", domain, layer, code)
	}

	key := locale.CodedKey(domain, layer, code)
	if key != "error-articleModel-1000" {
		t.Errorf("Unexpected key %q", key)
	}
	if _, ok := locale.Message("en-US", key); !ok {
		t.Errorf("Coded key %q not in message table", key)
	}
}

func TestParseCodedRejectsPlainErrors(t *testing.T) {
	if _, _, _, ok := locale.ParseCoded(errors.New("connection reset")); ok {
		t.Errorf("Plain error should not parse as coded")
	}
	if _, _, _, ok := locale.ParseCoded(nil); ok {
		t.Errorf("Nil error should not parse as coded")
	}
}
