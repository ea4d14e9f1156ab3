package safety

// Forbidden-phrase tables, one per supported language. Each table lists, in
// match-priority order: disease and condition names, diagnostic verbs,
// probabilistic qualifiers, and prescriptive directives. AI-generated
// clinical text must never contain any of these under normalized comparison.
//
// Adding a language is a data change only; the detector itself is
// language-agnostic.
var forbiddenPhrases = map[Language][]string{
	LanguageEnglish: {
		// disease and condition names
		"pneumonia",
		"pneumothorax",
		"tuberculosis",
		"carcinoma",
		"malignancy",
		"malignant",
		"cancer",
		"tumor",
		"lymphoma",
		"metastasis",
		"emphysema",
		"fibrosis",
		"cardiomegaly",
		"atelectasis",
		"edema",
		"embolism",
		"infarct",
		"aneurysm",
		"sepsis",
		"stroke",
		"fracture",
		"appendicitis",
		"meningitis",
		"covid",
		// diagnostic verbs
		"diagnosis",
		"diagnosed",
		"diagnostic impression",
		"confirms",
		"confirmed",
		"rule out",
		"ruled out",
		"pathognomonic",
		"indicative of",
		// probabilistic qualifiers
		"likely",
		"probable",
		"probably",
		"possibly",
		"suspected",
		"suspicious for",
		"consistent with",
		"suggestive of",
		"cannot exclude",
		"cannot rule out",
		"differential includes",
		// prescriptive directives
		"prescribe",
		"prescribed",
		"you should take",
		"should be treated with",
		"start antibiotics",
		"initiate therapy",
		"increase the dose",
		"discontinue the medication",
		"requires surgery",
		"needs surgery",
	},
	LanguageSpanish: {
		"neumonia",
		"neumotorax",
		"tuberculosis",
		"carcinoma",
		"malignidad",
		"maligno",
		"cancer",
		"tumor",
		"linfoma",
		"metastasis",
		"enfisema",
		"fibrosis",
		"cardiomegalia",
		"atelectasia",
		"edema",
		"embolia",
		"infarto",
		"aneurisma",
		"sepsis",
		"fractura",
		"apendicitis",
		"meningitis",
		"covid",
		"diagnostico",
		"diagnosticado",
		"confirma",
		"descartar",
		"patognomonico",
		"indicativo de",
		"probable",
		"probablemente",
		"posiblemente",
		"sospecha de",
		"sospechoso de",
		"compatible con",
		"sugestivo de",
		"no se puede excluir",
		"no se puede descartar",
		"prescribir",
		"recetar",
		"debe tomar",
		"debe tratarse con",
		"iniciar tratamiento",
		"aumentar la dosis",
		"suspender el medicamento",
		"requiere cirugia",
	},
	LanguageFrench: {
		"pneumonie",
		"pneumothorax",
		"tuberculose",
		"carcinome",
		"malignite",
		"malin",
		"cancer",
		"tumeur",
		"lymphome",
		"metastase",
		"emphyseme",
		"fibrose",
		"cardiomegalie",
		"atelectasie",
		"oedeme",
		"embolie",
		"infarctus",
		"anevrisme",
		"septicemie",
		"fracture",
		"appendicite",
		"meningite",
		"covid",
		"diagnostic",
		"diagnostique",
		"confirme",
		"eliminer le diagnostic",
		"pathognomonique",
		"indicatif de",
		"probable",
		"probablement",
		"possiblement",
		"suspicion de",
		"suspect de",
		"compatible avec",
		"evocateur de",
		"ne peut pas exclure",
		"prescrire",
		"ordonnance",
		"doit prendre",
		"doit etre traite par",
		"commencer le traitement",
		"augmenter la dose",
		"arreter le traitement",
		"necessite une chirurgie",
	},
	LanguagePortuguese: {
		"pneumonia",
		"pneumotorax",
		"tuberculose",
		"carcinoma",
		"malignidade",
		"maligno",
		"cancer",
		"tumor",
		"linfoma",
		"metastase",
		"enfisema",
		"fibrose",
		"cardiomegalia",
		"atelectasia",
		"edema",
		"embolia",
		"infarto",
		"aneurisma",
		"sepse",
		"fratura",
		"apendicite",
		"meningite",
		"covid",
		"diagnostico",
		"diagnosticado",
		"confirma",
		"descartar",
		"patognomonico",
		"indicativo de",
		"provavel",
		"provavelmente",
		"possivelmente",
		"suspeita de",
		"suspeito de",
		"compativel com",
		"sugestivo de",
		"nao se pode excluir",
		"nao se pode descartar",
		"prescrever",
		"receitar",
		"deve tomar",
		"deve ser tratado com",
		"iniciar tratamento",
		"aumentar a dose",
		"suspender a medicacao",
		"requer cirurgia",
	},
}

// ForbiddenPhrases returns the phrase table for the language. Unknown
// languages fall back to the English table so that an unmapped selector can
// never disable the scan.
func ForbiddenPhrases(lang Language) []string {
	if phrases, ok := forbiddenPhrases[lang]; ok {
		return phrases
	}
	return forbiddenPhrases[LanguageEnglish]
}
