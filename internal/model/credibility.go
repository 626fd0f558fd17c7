package model

// QualityLevel is the qualitative band a credibility score falls into.
type QualityLevel string

const (
	QualityExcellent QualityLevel = "excellent"
	QualityHigh      QualityLevel = "high"
	QualityGood      QualityLevel = "good"
	QualityModerate  QualityLevel = "moderate"
	QualityLow       QualityLevel = "low"
	QualityVeryLow   QualityLevel = "very_low"
)

// QualityForScore maps a 0-10 credibility score to its quality level.
// These thresholds are the binding contract for downstream consumers.
func QualityForScore(score float64) QualityLevel {
	switch {
	case score >= 9.0:
		return QualityExcellent
	case score >= 7.5:
		return QualityHigh
	case score >= 6.0:
		return QualityGood
	case score >= 4.0:
		return QualityModerate
	case score >= 2.0:
		return QualityLow
	default:
		return QualityVeryLow
	}
}

// SourceCredibility is the scoring result for one source. It has no
// persisted identity; it is recomputed per evaluation call.
type SourceCredibility struct {
	Score           float64            `json:"score"`
	OverallQuality  QualityLevel       `json:"overall_quality"`
	IsPeerReviewed  bool               `json:"is_peer_reviewed"`
	ComponentScores map[string]float64 `json:"component_scores,omitempty"`
	Warnings        []string           `json:"warnings,omitempty"`
	Strengths       []string           `json:"strengths,omitempty"`
}
