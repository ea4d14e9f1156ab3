package safety

import "strings"

// DocumentKind identifies which canonical disclaimer applies to a generated
// document.
type DocumentKind string

const (
	DocumentImaging  DocumentKind = "imaging"
	DocumentLab      DocumentKind = "lab"
	DocumentSOAPNote DocumentKind = "soap_note"
)

// Canonical disclaimer strings. The model is prompted to emit these verbatim;
// the validators reject any output whose disclaimer field does not match
// exactly (after whitespace trimming only, never full normalization).
var disclaimers = map[DocumentKind]map[Language]string{
	DocumentImaging: {
		LanguageEnglish:    "This summary describes visible image features only and does not assess clinical significance or provide a diagnosis.",
		LanguageSpanish:    "Este resumen describe únicamente las características visibles de la imagen y no evalúa la importancia clínica ni proporciona un diagnóstico.",
		LanguageFrench:     "Ce résumé décrit uniquement les caractéristiques visibles de l'image et n'évalue pas la signification clinique ni ne fournit de diagnostic.",
		LanguagePortuguese: "Este resumo descreve apenas as características visíveis da imagem e não avalia a relevância clínica nem fornece um diagnóstico.",
	},
	DocumentLab: {
		LanguageEnglish:    "This summary restates the reported test values only and does not interpret results or provide a diagnosis.",
		LanguageSpanish:    "Este resumen transcribe únicamente los valores informados y no interpreta los resultados ni proporciona un diagnóstico.",
		LanguageFrench:     "Ce résumé retranscrit uniquement les valeurs rapportées et n'interprète pas les résultats ni ne fournit de diagnostic.",
		LanguagePortuguese: "Este resumo transcreve apenas os valores informados e não interpreta os resultados nem fornece um diagnóstico.",
	},
	DocumentSOAPNote: {
		LanguageEnglish:    "This draft note was generated from dictation and must be verified by a licensed clinician before clinical use.",
		LanguageSpanish:    "Este borrador de nota se generó a partir del dictado y debe ser verificado por un clínico autorizado antes de su uso clínico.",
		LanguageFrench:     "Ce brouillon de note a été généré à partir de la dictée et doit être vérifié par un clinicien autorisé avant toute utilisation clinique.",
		LanguagePortuguese: "Este rascunho de nota foi gerado a partir do ditado e deve ser verificado por um clínico habilitado antes do uso clínico.",
	},
}

// Disclaimer returns the canonical disclaimer string for a document kind and
// language. Unknown languages fall back to English.
func Disclaimer(kind DocumentKind, lang Language) string {
	table := disclaimers[kind]
	if s, ok := table[lang]; ok {
		return s
	}
	return table[LanguageEnglish]
}

// CheckDisclaimer verifies that got equals the canonical disclaimer for the
// document kind and language, comparing after whitespace trimming only.
// A missing value yields MissingDisclaimerError, any textual deviation yields
// IncorrectDisclaimerError.
func CheckDisclaimer(field, got string, kind DocumentKind, lang Language) error {
	trimmed := strings.TrimSpace(got)
	if trimmed == "" {
		return &MissingDisclaimerError{Field: field}
	}
	if trimmed != Disclaimer(kind, lang) {
		return &IncorrectDisclaimerError{Field: field}
	}
	return nil
}
