package imaging

import (
	"errors"
	"testing"

	"github.com/mediscribe/mediscribe/internal/platform/safety"
)

const englishLimitations = "This summary describes visible image features only and does not assess clinical significance or provide a diagnosis."

func TestDecodeAndValidateAccepts(t *testing.T) {
	raw := `{
		"image_type": "chest x-ray",
		"anatomical_observations": {
			"lungs": ["Increased opacity in the lower left region"],
			"heart": ["Cardiac silhouette within described bounds"]
		},
		"quality_assessment": "Image is well exposed and centered",
		"limitations": "` + englishLimitations + `"
	}`
	data, err := DecodeAndValidate([]byte(raw), safety.LanguageEnglish)
	if err != nil {
		t.Fatalf("DecodeAndValidate: %v", err)
	}
	if data.ImageType != "chest x-ray" {
		t.Errorf("image_type = %q", data.ImageType)
	}
	if len(data.AnatomicalObservations["lungs"]) != 1 {
		t.Error("observations not decoded")
	}
}

// A summary that reads as an interpretation must be rejected with the exact
// field path and the matched phrase.
func TestDecodeAndValidateRejectsInterpretation(t *testing.T) {
	raw := `{"limitations": "` + englishLimitations + `", "anatomical_observations": {"lungs": ["Evidence of pneumonia"]}}`

	_, err := DecodeAndValidate([]byte(raw), safety.LanguageEnglish)
	var fp *safety.ForbiddenPhraseError
	if !errors.As(err, &fp) {
		t.Fatalf("err = %v, want ForbiddenPhraseError", err)
	}
	if fp.Field != "anatomical_observations.lungs" {
		t.Errorf("Field = %q, want %q", fp.Field, "anatomical_observations.lungs")
	}
	if fp.Phrase != "pneumonia" {
		t.Errorf("Phrase = %q, want %q", fp.Phrase, "pneumonia")
	}
}

func TestDecodeAndValidateDisclaimerExactness(t *testing.T) {
	_, err := DecodeAndValidate([]byte(`{"image_type": "chest x-ray"}`), safety.LanguageEnglish)
	var missing *safety.MissingDisclaimerError
	if !errors.As(err, &missing) {
		t.Fatalf("absent limitations: err = %v, want MissingDisclaimerError", err)
	}

	// A single-character deviation from the canonical text is incorrect.
	altered := englishLimitations[:len(englishLimitations)-1] + "!"
	_, err = DecodeAndValidate([]byte(`{"limitations": "`+altered+`"}`), safety.LanguageEnglish)
	var incorrect *safety.IncorrectDisclaimerError
	if !errors.As(err, &incorrect) {
		t.Fatalf("altered limitations: err = %v, want IncorrectDisclaimerError", err)
	}
}

func TestDecodeAndValidateMalformed(t *testing.T) {
	for _, raw := range []string{
		"not json",
		`{"limitations": "` + englishLimitations + `", "unexpected": true}`,
		`{"anatomical_observations": "should be an object"}`,
	} {
		_, err := DecodeAndValidate([]byte(raw), safety.LanguageEnglish)
		var malformed *safety.MalformedInputError
		if !errors.As(err, &malformed) {
			t.Errorf("raw %q: err = %v, want MalformedInputError", raw, err)
		}
	}
}

func TestDecodeAndValidateEmptyObservationsValid(t *testing.T) {
	raw := `{"image_type": "chest x-ray", "anatomical_observations": {}, "limitations": "` + englishLimitations + `"}`
	if _, err := DecodeAndValidate([]byte(raw), safety.LanguageEnglish); err != nil {
		t.Fatalf("empty observation map should be valid: %v", err)
	}
}

func TestDecodeAndValidateScansQualityAssessment(t *testing.T) {
	raw := `{"quality_assessment": "Quality consistent with standard exposure", "limitations": "` + englishLimitations + `"}`
	_, err := DecodeAndValidate([]byte(raw), safety.LanguageEnglish)
	var fp *safety.ForbiddenPhraseError
	if !errors.As(err, &fp) {
		t.Fatalf("err = %v, want ForbiddenPhraseError", err)
	}
	if fp.Field != "quality_assessment" || fp.Phrase != "consistent with" {
		t.Errorf("got (%q, %q)", fp.Field, fp.Phrase)
	}
}
