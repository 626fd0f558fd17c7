package model

// MethodologyType classifies the research design of a study.
type MethodologyType string

const (
	MethodQualitative      MethodologyType = "qualitative"
	MethodQuantitative     MethodologyType = "quantitative"
	MethodMixed            MethodologyType = "mixed_methods"
	MethodMetaAnalysis     MethodologyType = "meta_analysis"
	MethodComputational    MethodologyType = "computational"
	MethodExperimental     MethodologyType = "experimental"
	MethodCaseStudy        MethodologyType = "case_study"
	MethodSystematicReview MethodologyType = "systematic_review"
	MethodUnknown          MethodologyType = "unknown"
)

// MethodologyInfo is the structured result of methodology extraction.
// Confidence is in [0,1] and scales with the number of independent keyword
// families that matched.
type MethodologyInfo struct {
	MethodologyType    MethodologyType `json:"methodology_type"`
	SpecificMethods    []string        `json:"specific_methods,omitempty"`
	DataCollection     string          `json:"data_collection,omitempty"`
	AnalysisTechniques []string        `json:"analysis_techniques,omitempty"`
	SampleInfo         string          `json:"sample_info,omitempty"`
	Limitations        []string        `json:"limitations,omitempty"`
	Confidence         float64         `json:"confidence"`
}

// TheoryType classifies a theory by discipline.
type TheoryType string

const (
	TheoryPsychological  TheoryType = "psychological"
	TheorySociological   TheoryType = "sociological"
	TheoryEconomic       TheoryType = "economic"
	TheoryEducational    TheoryType = "educational"
	TheoryOrganizational TheoryType = "organizational"
	TheoryGeneral        TheoryType = "general"
)

// TheoryInfo describes one theoretical framework detected in a text.
// KeyConstructs preserve order of first mention.
type TheoryInfo struct {
	TheoryName    string            `json:"theory_name"`
	TheoryType    TheoryType        `json:"theory_type"`
	KeyConstructs []string          `json:"key_constructs,omitempty"`
	Definitions   map[string]string `json:"definitions,omitempty"`
	Confidence    float64           `json:"confidence"`
}

// EthicalCategory is the fixed vocabulary of ethics annotations.
type EthicalCategory string

const (
	EthicsInformedConsent      EthicalCategory = "informed_consent"
	EthicsPrivacy              EthicalCategory = "privacy"
	EthicsVulnerablePopulation EthicalCategory = "vulnerable_population"
	EthicsHarm                 EthicalCategory = "harm"
	EthicsDataSecurity         EthicalCategory = "data_security"
	EthicsAnimalWelfare        EthicalCategory = "animal_welfare"
	EthicsConfidentiality      EthicalCategory = "confidentiality"
	EthicsConflictOfInterest   EthicalCategory = "conflict_of_interest"
	EthicsDeception            EthicalCategory = "deception"
	EthicsCulturalSensitivity  EthicalCategory = "cultural_sensitivity"
)

// EthicalConsideration is a free-text-derived ethics annotation. It is not
// cross-referenced with citations; it is a parallel output of the same
// input text.
type EthicalConsideration struct {
	Category   EthicalCategory `json:"category"`
	Statement  string          `json:"statement"`
	Confidence float64         `json:"confidence"`
}

// IRBApproval records a detected institutional review statement.
type IRBApproval struct {
	Statement  string  `json:"statement"`
	Board      string  `json:"board,omitempty"`
	Confidence float64 `json:"confidence"`
}

// EthicalSafeguard records a detected protective measure (anonymization,
// encryption, withdrawal rights).
type EthicalSafeguard struct {
	Category   EthicalCategory `json:"category"`
	Measure    string          `json:"measure"`
	Confidence float64         `json:"confidence"`
}
