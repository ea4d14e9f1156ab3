package safety

import (
	"errors"
	"testing"
)

func TestCheckDisclaimer_Exact(t *testing.T) {
	canonical := Disclaimer(DocumentImaging, LanguageEnglish)

	if err := CheckDisclaimer("limitations", canonical, DocumentImaging, LanguageEnglish); err != nil {
		t.Errorf("exact canonical string rejected: %v", err)
	}

	// Surrounding whitespace is tolerated, nothing else is.
	if err := CheckDisclaimer("limitations", "  "+canonical+"\n", DocumentImaging, LanguageEnglish); err != nil {
		t.Errorf("whitespace-padded canonical string rejected: %v", err)
	}
}

func TestCheckDisclaimer_SingleCharacterDeviation(t *testing.T) {
	canonical := Disclaimer(DocumentImaging, LanguageEnglish)
	deviations := []string{
		canonical[:len(canonical)-1],       // trailing period dropped
		canonical + "!",                    // appended character
		"this" + canonical[4:],             // case change
		canonical[:10] + "x" + canonical[11:], // substituted character
	}
	for _, d := range deviations {
		err := CheckDisclaimer("limitations", d, DocumentImaging, LanguageEnglish)
		var ide *IncorrectDisclaimerError
		if !errors.As(err, &ide) {
			t.Errorf("deviation %q returned %v, want IncorrectDisclaimerError", d, err)
			continue
		}
		if ide.Field != "limitations" {
			t.Errorf("error field = %q, want limitations", ide.Field)
		}
	}
}

func TestCheckDisclaimer_Missing(t *testing.T) {
	for _, got := range []string{"", "   ", "\t\n"} {
		err := CheckDisclaimer("limitations", got, DocumentLab, LanguageEnglish)
		var mde *MissingDisclaimerError
		if !errors.As(err, &mde) {
			t.Errorf("value %q returned %v, want MissingDisclaimerError", got, err)
		}
	}
}

func TestDisclaimer_AllKindsAndLanguages(t *testing.T) {
	kinds := []DocumentKind{DocumentImaging, DocumentLab, DocumentSOAPNote}
	langs := []Language{LanguageEnglish, LanguageSpanish, LanguageFrench, LanguagePortuguese}
	seen := map[string]bool{}
	for _, k := range kinds {
		for _, l := range langs {
			s := Disclaimer(k, l)
			if s == "" {
				t.Errorf("no disclaimer registered for %s/%s", k, l)
			}
			if seen[s] {
				t.Errorf("duplicate disclaimer text for %s/%s", k, l)
			}
			seen[s] = true
		}
	}
}

func TestDisclaimer_UnknownLanguageFallsBack(t *testing.T) {
	if Disclaimer(DocumentImaging, Language("klingon")) != Disclaimer(DocumentImaging, LanguageEnglish) {
		t.Error("unknown language must fall back to the English disclaimer")
	}
}

func TestParseLanguage(t *testing.T) {
	tests := []struct {
		in      string
		want    Language
		wantErr bool
	}{
		{"english", LanguageEnglish, false},
		{"spanish", LanguageSpanish, false},
		{"french", LanguageFrench, false},
		{"portuguese", LanguagePortuguese, false},
		{"", LanguageEnglish, false},
		{"german", "", true},
		{"EN", "", true},
	}
	for _, tt := range tests {
		got, err := ParseLanguage(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLanguage(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseLanguage(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
