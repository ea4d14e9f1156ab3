package safety

import (
	"errors"
	"strings"
	"testing"
)

func TestFindForbidden_Basic(t *testing.T) {
	phrases := []string{"pneumonia", "fracture"}

	phrase, found := FindForbidden("Evidence of pneumonia in the right lobe", phrases)
	if !found || phrase != "pneumonia" {
		t.Errorf("FindForbidden = (%q, %v), want (pneumonia, true)", phrase, found)
	}

	if _, found := FindForbidden("Clear lung fields bilaterally", phrases); found {
		t.Error("FindForbidden matched clean text")
	}

	if _, found := FindForbidden("", phrases); found {
		t.Error("FindForbidden matched empty text")
	}
}

func TestFindForbidden_ObfuscationInvariance(t *testing.T) {
	// Obfuscated renderings of a canonical phrase must still match it.
	obfuscations := []string{
		"p n e u m o n i a",
		"p.neumon.ia",
		"pné umònia",
		"P-N-E-U-M-O-N-I-A",
		"pne\tumo\nnia",
		"p,n;e:u!m?o(n)i[a]",
	}
	for _, text := range obfuscations {
		phrase, found := FindForbidden(text, []string{"pneumonia"})
		if !found || phrase != "pneumonia" {
			t.Errorf("FindForbidden(%q) = (%q, %v), want (pneumonia, true)", text, phrase, found)
		}
	}
}

func TestFindForbidden_FirstMatchWins(t *testing.T) {
	phrases := []string{"edema", "pneumonia"}
	phrase, found := FindForbidden("pneumonia with surrounding edema", phrases)
	if !found || phrase != "edema" {
		t.Errorf("expected first listed phrase to win, got (%q, %v)", phrase, found)
	}
}

func TestFindForbidden_SubstringIsIntentional(t *testing.T) {
	// Collapsed-substring matching flags super-strings of a phrase too.
	// That is the accepted conservative trade-off: false-positive-tolerant,
	// false-negative-intolerant.
	phrase, found := FindForbidden("bronchopneumonial pattern", []string{"pneumonia"})
	if !found || phrase != "pneumonia" {
		t.Errorf("substring match = (%q, %v), want (pneumonia, true)", phrase, found)
	}

	// "likely" matching inside "unlikely" is flagged as well.
	if _, found := FindForbidden("findings are unlikely artifacts", []string{"likely"}); !found {
		t.Error("expected conservative match of phrase inside longer word")
	}
}

func TestFindForbidden_AcrossWordBoundaries(t *testing.T) {
	// Collapsing also joins adjacent words, so a phrase split across text
	// word boundaries still matches.
	phrase, found := FindForbidden("rule\nout process", []string{"rule out"})
	if !found || phrase != "rule out" {
		t.Errorf("FindForbidden = (%q, %v), want (rule out, true)", phrase, found)
	}
}

func TestFindForbidden_EmptyPhraseSkipped(t *testing.T) {
	if _, found := FindForbidden("anything at all", []string{"", "   ", "!!"}); found {
		t.Error("phrases that normalize to empty must never match")
	}
}

func TestScanField(t *testing.T) {
	err := ScanField("anatomical_observations.lungs", "Evidence of pneumonia", LanguageEnglish)
	var fpe *ForbiddenPhraseError
	if !errors.As(err, &fpe) {
		t.Fatalf("ScanField returned %v, want ForbiddenPhraseError", err)
	}
	if fpe.Field != "anatomical_observations.lungs" || fpe.Phrase != "pneumonia" {
		t.Errorf("error carried (%q, %q), want (anatomical_observations.lungs, pneumonia)", fpe.Field, fpe.Phrase)
	}

	if err := ScanField("observations", "Clear costophrenic angles", LanguageEnglish); err != nil {
		t.Errorf("clean text returned %v", err)
	}
}

func TestForbiddenPhrases_AllLanguages(t *testing.T) {
	for _, lang := range []Language{LanguageEnglish, LanguageSpanish, LanguageFrench, LanguagePortuguese} {
		phrases := ForbiddenPhrases(lang)
		if len(phrases) == 0 {
			t.Errorf("language %s has an empty phrase table", lang)
		}
		for _, p := range phrases {
			if Normalize(p).Collapsed == "" {
				t.Errorf("language %s phrase %q normalizes to empty", lang, p)
			}
			if p != strings.TrimSpace(p) {
				t.Errorf("language %s phrase %q has stray whitespace", lang, p)
			}
		}
	}
}

func TestForbiddenPhrases_UnknownLanguageFallsBack(t *testing.T) {
	got := ForbiddenPhrases(Language("klingon"))
	want := ForbiddenPhrases(LanguageEnglish)
	if len(got) != len(want) || got[0] != want[0] {
		t.Error("unknown language must fall back to the English table")
	}
}

func TestPerLanguageDetection(t *testing.T) {
	tests := []struct {
		lang   Language
		text   string
		phrase string
	}{
		{LanguageSpanish, "Hallazgos con sospecha de neumonía", "neumonia"},
		{LanguageFrench, "Aspect évocateur de pneumonie", "pneumonie"},
		{LanguagePortuguese, "Achados com suspeita de pneumonia", "pneumonia"},
	}
	for _, tt := range tests {
		phrase, found := FindForbidden(tt.text, ForbiddenPhrases(tt.lang))
		if !found || phrase != tt.phrase {
			t.Errorf("%s: FindForbidden(%q) = (%q, %v), want (%q, true)", tt.lang, tt.text, phrase, found, tt.phrase)
		}
	}
}
