package model

// MeasureType identifies the kind of statistical measure extracted.
type MeasureType string

const (
	MeasureMean        MeasureType = "mean"
	MeasureSD          MeasureType = "standard_deviation"
	MeasurePValue      MeasureType = "p_value"
	MeasureCI          MeasureType = "confidence_interval"
	MeasureSampleSize  MeasureType = "sample_size"
	MeasureCohensD     MeasureType = "cohens_d"
	MeasureEtaSquared  MeasureType = "eta_squared"
	MeasureCorrelation MeasureType = "correlation"
	MeasureOddsRatio   MeasureType = "odds_ratio"
)

// StatisticalMeasure is one numeric statistic found in text, in order of
// appearance. Repeated mentions are distinct measures; no deduplication.
type StatisticalMeasure struct {
	Type     MeasureType `json:"type"`
	Value    float64     `json:"value"`
	Raw      string      `json:"raw"`
	Position int         `json:"position"`
}

// StatisticalResult is the interpretation of a p-value against an alpha
// level. IsSignificant is always derived as p < alpha, never set
// independently.
type StatisticalResult struct {
	PValue         float64 `json:"p_value"`
	AlphaLevel     float64 `json:"alpha_level"`
	IsSignificant  bool    `json:"is_significant"`
	Strength       string  `json:"strength_of_evidence"`
	Interpretation string  `json:"interpretation"`
}

// EffectSizeType identifies the family an effect size belongs to.
type EffectSizeType string

const (
	EffectCohensD     EffectSizeType = "cohens_d"
	EffectCorrelation EffectSizeType = "r"
	EffectEtaSquared  EffectSizeType = "eta_squared"
	EffectOddsRatio   EffectSizeType = "odds_ratio"
)

// EffectInterpretation is the categorical magnitude of an effect size.
type EffectInterpretation string

const (
	EffectNegligible EffectInterpretation = "negligible"
	EffectSmall      EffectInterpretation = "small"
	EffectMedium     EffectInterpretation = "medium"
	EffectLarge      EffectInterpretation = "large"
)

// EffectSize pairs a measured effect with its derived interpretation.
type EffectSize struct {
	Type           EffectSizeType       `json:"type"`
	Value          float64              `json:"value"`
	Interpretation EffectInterpretation `json:"interpretation"`
}

// StatisticalTest identifies a named statistical test mentioned in text.
type StatisticalTest string

const (
	TestTTest          StatisticalTest = "t_test"
	TestANOVA          StatisticalTest = "anova"
	TestANCOVA         StatisticalTest = "ancova"
	TestMANOVA         StatisticalTest = "manova"
	TestRegression     StatisticalTest = "regression"
	TestMannWhitney    StatisticalTest = "mann_whitney"
	TestWilcoxon       StatisticalTest = "wilcoxon"
	TestKruskalWallis  StatisticalTest = "kruskal_wallis"
	TestChiSquare      StatisticalTest = "chi_square"
	TestFishersExact   StatisticalTest = "fishers_exact"
	TestFactorAnalysis StatisticalTest = "factor_analysis"
	TestSEM            StatisticalTest = "sem"
	TestMetaAnalysis   StatisticalTest = "meta_analysis"
)

// TestContext describes the data a test was applied to, for
// appropriateness assessment.
type TestContext struct {
	DataType string `json:"data_type"` // continuous, ordinal, categorical
	Groups   int    `json:"groups"`
}

// TestAssessment is the appropriateness judgment for a (test, context)
// pair. Warnings are advisory, not errors.
type TestAssessment struct {
	Test        StatisticalTest `json:"test"`
	Appropriate bool            `json:"appropriate"`
	Warnings    []string        `json:"warnings,omitempty"`
}
