package credibility

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scholar-cli/internal/model"
)

func intPtr(n int) *int { return &n }

func TestVenueBaseScore(t *testing.T) {
	tests := []struct {
		vt   model.VenueType
		want float64
	}{
		{model.VenueJournal, 10.0},
		{model.VenueConference, 9.0},
		{model.VenueBook, 9.0},
		{model.VenueThesis, 7.0},
		{model.VenuePreprint, 6.0},
		{model.VenueWeb, 3.0},
		{model.VenueOther, 2.0},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, venueBaseScore(tt.vt), 0.001, "type %s", tt.vt)
	}
}

func TestCitationBonus(t *testing.T) {
	tests := []struct {
		name  string
		count *int
		want  float64
	}{
		{"unknown", nil, 0},
		{"zero", intPtr(0), 0},
		{"nine", intPtr(9), 0},
		{"ten", intPtr(10), 0.2},
		{"fifty", intPtr(50), 0.4},
		{"hundred", intPtr(100), 0.6},
		{"five hundred", intPtr(500), 0.8},
		{"thousand", intPtr(1000), 1.0},
		{"fifty thousand", intPtr(50000), 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, citationBonus(tt.count), 0.001)
		})
	}
}

func TestRecencyFactor(t *testing.T) {
	now := 2026
	tests := []struct {
		year int
		want float64
	}{
		{0, 0.8},
		{2026, 1.0},
		{2024, 1.0},
		{2022, 0.9},
		{2018, 0.75},
		{2008, 0.6},
		{1999, 0.4},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, recencyFactor(tt.year, now), 0.001, "year %d", tt.year)
	}
}

func TestEvaluateNatureScenario(t *testing.T) {
	e := NewEvaluator(Lists{})
	cred := e.Evaluate(Source{
		Title:         "X",
		Venue:         "Nature",
		VenueType:     model.VenueJournal,
		CitationCount: intPtr(500),
		Year:          time.Now().Year(),
		IsOpenAccess:  true,
	})

	assert.InDelta(t, 10.0, cred.Score, 0.001, "score must clamp to 10")
	assert.Equal(t, model.QualityExcellent, cred.OverallQuality)
	assert.True(t, cred.IsPeerReviewed)
	assert.Empty(t, cred.Warnings)
	assert.Contains(t, cred.Strengths, "high-impact venue")
}

func TestEvaluateKnownPublisher(t *testing.T) {
	e := NewEvaluator(Lists{})
	cred := e.Evaluate(Source{
		Venue:     "IEEE Transactions on Pattern Analysis and Machine Intelligence",
		VenueType: model.VenuePreprint, // reputation override beats the low base
		Year:      time.Now().Year(),
	})
	assert.Greater(t, cred.Score, 7.0)
	assert.True(t, cred.IsPeerReviewed, "publisher match implies review")
}

func TestEvaluateWebSourceWarnings(t *testing.T) {
	e := NewEvaluator(Lists{})
	cred := e.Evaluate(Source{
		Title:         "Some Post",
		VenueType:     model.VenueWeb,
		CitationCount: intPtr(2),
		Year:          1999,
	})

	assert.Less(t, cred.Score, 4.0)
	assert.Contains(t, cred.Warnings, "low credibility score")
	assert.Contains(t, cred.Warnings, "non-academic source")
	assert.Contains(t, cred.Warnings, "low citation count")
	assert.Contains(t, cred.Warnings, "outdated source")
	assert.Contains(t, cred.Warnings, "missing venue information")
	assert.False(t, cred.IsPeerReviewed)
}

func TestEvaluatePreprintWarning(t *testing.T) {
	e := NewEvaluator(Lists{})
	cred := e.Evaluate(Source{
		Venue:     "arXiv",
		VenueType: model.VenuePreprint,
		Year:      time.Now().Year(),
	})
	assert.Contains(t, cred.Warnings, "not yet peer-reviewed")
}

func TestEvaluateDeterministic(t *testing.T) {
	e := NewEvaluator(Lists{})
	src := Source{Venue: "Nature", VenueType: model.VenueJournal, Year: 2020}
	assert.Equal(t, e.Evaluate(src), e.Evaluate(src))
}

func TestFilterLowQualityAnnotatesNeverDeletes(t *testing.T) {
	e := NewEvaluator(Lists{})
	citations := []model.Citation{
		{Title: "Good", Venue: "Nature", VenueType: model.VenueJournal, Year: time.Now().Year()},
		{Title: "Weak", VenueType: model.VenueWeb, Year: 2001},
	}

	anns, err := e.FilterLowQuality(citations, 6.0)
	require.NoError(t, err)
	require.Len(t, anns, 2, "filtering must not drop entries")

	assert.False(t, anns[0].BelowThreshold)
	assert.True(t, anns[1].BelowThreshold)
	assert.Contains(t, anns[1].Credibility.Warnings, "below quality threshold 6.0")
}

func TestFilterLowQualityRejectsBadThreshold(t *testing.T) {
	e := NewEvaluator(Lists{})
	_, err := e.FilterLowQuality(nil, 11.0)
	assert.Error(t, err)
	_, err = e.FilterLowQuality(nil, -0.1)
	assert.Error(t, err)
}

func TestLoadLists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lists.yaml")
	require.NoError(t, os.WriteFile(path, []byte("high_impact_venues:\n  - journal of niche studies\n"), 0o644))

	lists, err := LoadLists(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"journal of niche studies"}, lists.HighImpactVenues)
	assert.NotEmpty(t, lists.KnownPublishers, "unset lists fall back to defaults")

	_, err = LoadLists(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
