package credibility

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/scholar-cli/internal/model"
)

// Source holds the bibliographic facts a credibility evaluation needs.
// CitationCount is nil when the count is unknown, which is different
// from a known count of zero.
type Source struct {
	Title         string
	Venue         string
	URL           string
	VenueType     model.VenueType
	CitationCount *int
	Year          int
	IsOpenAccess  bool
}

// recencyBlendWeight is the share of the final score contributed by the
// recency factor; the remainder comes from the venue score plus additive
// bonuses. The score-to-quality thresholds are the binding contract, not
// this intermediate arithmetic.
const recencyBlendWeight = 0.10

// Evaluator scores sources against venue reputation lists. A zero-value
// Lists falls back to the built-in defaults.
type Evaluator struct {
	lists Lists
}

// NewEvaluator creates an Evaluator with the given reputation lists,
// filling empty list fields from the defaults.
func NewEvaluator(lists Lists) *Evaluator {
	def := DefaultLists()
	if len(lists.HighImpactVenues) == 0 {
		lists.HighImpactVenues = def.HighImpactVenues
	}
	if len(lists.KnownPublishers) == 0 {
		lists.KnownPublishers = def.KnownPublishers
	}
	if len(lists.PeerReviewKeywords) == 0 {
		lists.PeerReviewKeywords = def.PeerReviewKeywords
	}
	return &Evaluator{lists: lists}
}

// Evaluate scores one source. The composition is deterministic: venue
// score (base or reputation override) plus citation and open-access
// bonuses, blended 90/10 with a recency factor, clamped to [0,10].
func (e *Evaluator) Evaluate(src Source) model.SourceCredibility {
	now := time.Now().Year()

	venue := e.venueScore(src.Venue, src.VenueType)
	bonus := citationBonus(src.CitationCount)
	oa := openAccessBonus(src.IsOpenAccess)
	recency := recencyFactor(src.Year, now)

	raw := venue + bonus + oa
	score := (1-recencyBlendWeight)*raw + recencyBlendWeight*(10*recency)
	score = math.Min(10, math.Max(0, score))
	score = math.Round(score*100) / 100

	cred := model.SourceCredibility{
		Score:          score,
		OverallQuality: model.QualityForScore(score),
		IsPeerReviewed: e.isPeerReviewed(src.Venue, src.VenueType),
		ComponentScores: map[string]float64{
			"venue":       venue,
			"citations":   bonus,
			"open_access": oa,
			"recency":     recency,
		},
	}
	cred.Warnings = e.warnings(src, score, now)
	cred.Strengths = e.strengths(src, cred)

	zap.L().Debug("credibility: evaluated source",
		zap.String("title", src.Title),
		zap.Float64("score", score),
		zap.String("quality", string(cred.OverallQuality)),
	)
	return cred
}

// venueScore returns the reputation-list override when the venue name
// matches, otherwise the venue-type base score.
func (e *Evaluator) venueScore(venue string, vt model.VenueType) float64 {
	v := strings.ToLower(venue)
	if v != "" {
		if matchAny(v, e.lists.HighImpactVenues) {
			return 10.0
		}
		if matchAny(v, e.lists.KnownPublishers) {
			return 8.5
		}
	}
	return venueBaseScore(vt)
}

// venueBaseScore is the base credibility of a venue type on the 0-10
// scale.
func venueBaseScore(vt model.VenueType) float64 {
	switch vt {
	case model.VenueJournal:
		return 10.0
	case model.VenueConference:
		return 9.0
	case model.VenueBook:
		return 9.0
	case model.VenueThesis:
		return 7.0
	case model.VenuePreprint:
		return 6.0
	case model.VenueWeb:
		return 3.0
	default:
		return 2.0
	}
}

// citationBonus maps a citation count to its additive bonus band.
// Unknown counts get no bonus.
func citationBonus(count *int) float64 {
	if count == nil {
		return 0
	}
	switch n := *count; {
	case n >= 1000:
		return 1.0
	case n >= 500:
		return 0.8
	case n >= 100:
		return 0.6
	case n >= 50:
		return 0.4
	case n >= 10:
		return 0.2
	default:
		return 0
	}
}

// recencyFactor returns the age-based weight in [0,1]. An unknown year
// is treated as neutral rather than penalized.
func recencyFactor(year, now int) float64 {
	if year <= 0 {
		return 0.8
	}
	switch age := now - year; {
	case age <= 2:
		return 1.0
	case age <= 5:
		return 0.9
	case age <= 10:
		return 0.75
	case age <= 20:
		return 0.6
	default:
		return 0.4
	}
}

// openAccessBonus is a flat bonus for openly accessible sources.
func openAccessBonus(oa bool) float64 {
	if oa {
		return 0.2
	}
	return 0
}

// isPeerReviewed reports whether the source went through editorial
// review: peer-reviewed venue types, or venue text matching review
// indicator keywords or a known publisher.
func (e *Evaluator) isPeerReviewed(venue string, vt model.VenueType) bool {
	switch vt {
	case model.VenueJournal, model.VenueConference, model.VenueBook:
		return true
	}
	v := strings.ToLower(venue)
	if v == "" {
		return false
	}
	return matchAny(v, e.lists.PeerReviewKeywords) || matchAny(v, e.lists.KnownPublishers)
}

// warnings emits every applicable advisory; they are non-exclusive.
func (e *Evaluator) warnings(src Source, score float64, now int) []string {
	var w []string
	if score < 4.0 {
		w = append(w, "low credibility score")
	}
	if src.VenueType == model.VenueWeb {
		w = append(w, "non-academic source")
	}
	if src.VenueType == model.VenuePreprint {
		w = append(w, "not yet peer-reviewed")
	}
	if src.CitationCount != nil && *src.CitationCount < 5 {
		w = append(w, "low citation count")
	}
	if src.Year > 0 && now-src.Year > 20 {
		w = append(w, "outdated source")
	}
	if strings.TrimSpace(src.Venue) == "" {
		w = append(w, "missing venue information")
	}
	return w
}

// strengths emits positive signals for report annotations.
func (e *Evaluator) strengths(src Source, cred model.SourceCredibility) []string {
	var s []string
	if cred.IsPeerReviewed {
		s = append(s, "peer-reviewed venue")
	}
	if matchAny(strings.ToLower(src.Venue), e.lists.HighImpactVenues) {
		s = append(s, "high-impact venue")
	}
	if src.CitationCount != nil && *src.CitationCount >= 100 {
		s = append(s, fmt.Sprintf("highly cited (%d citations)", *src.CitationCount))
	}
	if src.IsOpenAccess {
		s = append(s, "open access")
	}
	return s
}

// SourceAnnotation pairs a citation with its credibility result.
// Filtering never removes entries; BelowThreshold marks the ones that
// failed the bar.
type SourceAnnotation struct {
	Citation       model.Citation          `json:"citation"`
	Credibility    model.SourceCredibility `json:"credibility"`
	BelowThreshold bool                    `json:"below_threshold"`
}

// FilterLowQuality annotates every citation with its credibility score
// and warnings. Entries below the threshold are flagged, not dropped.
// The threshold must be within [0,10]; out-of-range values are rejected,
// never clamped.
func (e *Evaluator) FilterLowQuality(citations []model.Citation, threshold float64) ([]SourceAnnotation, error) {
	if threshold < 0 || threshold > 10 {
		return nil, eris.Errorf("credibility: threshold %.2f outside [0,10]", threshold)
	}

	out := make([]SourceAnnotation, 0, len(citations))
	for _, c := range citations {
		src := Source{
			Title:        c.Title,
			Venue:        c.Venue,
			URL:          c.URL,
			VenueType:    c.VenueType,
			Year:         c.Year,
			IsOpenAccess: c.IsOpenAccess,
		}
		if c.CitationCount > 0 {
			n := c.CitationCount
			src.CitationCount = &n
		}

		cred := e.Evaluate(src)
		ann := SourceAnnotation{Citation: c, Credibility: cred}
		if cred.Score < threshold {
			ann.BelowThreshold = true
			ann.Credibility.Warnings = append(ann.Credibility.Warnings,
				fmt.Sprintf("below quality threshold %.1f", threshold))
		}
		out = append(out, ann)
	}
	return out, nil
}

// matchAny reports whether s contains any of the given lower-cased
// patterns.
func matchAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(s, strings.ToLower(p)) {
			return true
		}
	}
	return false
}
