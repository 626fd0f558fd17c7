package citation

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scholar-cli/internal/model"
)

func TestExtractFromScholarResultAttention(t *testing.T) {
	res := ScholarResult{
		Title:         "Attention Is All You Need",
		Authors:       SplitAuthors("Vaswani, Ashish, Shazeer, Noam"),
		Year:          2017,
		Venue:         "NeurIPS",
		CitationCount: 50000,
		URL:           "https://arxiv.org/abs/1706.03762",
	}

	c := ExtractFromScholarResult(res)
	require.NotNil(t, c)
	assert.Equal(t, []string{"Vaswani, Ashish", "Shazeer, Noam"}, []string(c.Authors))
	assert.Equal(t, model.VenueConference, c.VenueType)
	assert.Equal(t, 50000, c.CitationCount)
	assert.False(t, c.IsIncomplete())
}

func TestExtractFromScholarResultTotalFailure(t *testing.T) {
	assert.Nil(t, ExtractFromScholarResult(ScholarResult{Abstract: "text only"}))
}

func TestExtractFromScholarResultPartial(t *testing.T) {
	c := ExtractFromScholarResult(ScholarResult{URL: "https://example.org/paper"})
	require.NotNil(t, c, "partial data must not be dropped")
	assert.True(t, c.IsIncomplete())
}

func TestAuthorListUnion(t *testing.T) {
	t.Run("json array", func(t *testing.T) {
		var r ScholarResult
		raw := `{"title":"T","authors":["Smith, J.","Doe, A."]}`
		require.NoError(t, json.Unmarshal([]byte(raw), &r))
		assert.Equal(t, AuthorList{"Smith, J.", "Doe, A."}, r.Authors)
	})

	t.Run("comma string", func(t *testing.T) {
		var r ScholarResult
		raw := `{"title":"T","authors":"Vaswani, Ashish, Shazeer, Noam"}`
		require.NoError(t, json.Unmarshal([]byte(raw), &r))
		assert.Equal(t, AuthorList{"Vaswani, Ashish", "Shazeer, Noam"}, r.Authors)
	})

	t.Run("year as string", func(t *testing.T) {
		var r ScholarResult
		raw := `{"title":"T","year":"2017"}`
		require.NoError(t, json.Unmarshal([]byte(raw), &r))
		assert.Equal(t, FlexInt(2017), r.Year)
	})
}

func TestSplitAuthors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"semicolons", "Smith, John; Doe, Alice", []string{"Smith, John", "Doe, Alice"}},
		{"and joined", "John Smith and Alice Doe", []string{"John Smith", "Alice Doe"}},
		{"inverted pairs", "Vaswani, Ashish, Shazeer, Noam", []string{"Vaswani, Ashish", "Shazeer, Noam"}},
		{"single inverted", "Smith, J.", []string{"Smith, J."}},
		{"natural comma list", "John Michael Smith, Jane Ellen Doe", []string{"John Michael Smith", "Jane Ellen Doe"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitAuthors(tt.in))
		})
	}
}

func TestInferVenueType(t *testing.T) {
	tests := []struct {
		venue string
		want  model.VenueType
	}{
		{"Proceedings of the 38th International Conference on Machine Learning", model.VenueConference},
		{"NeurIPS", model.VenueConference},
		{"arXiv preprint arXiv:1706.03762", model.VenuePreprint},
		{"Nature", model.VenueJournal},
		{"PhD Thesis, MIT", model.VenueThesis},
		{"Handbook of Social Psychology", model.VenueBook},
		{"Some Research Blog", model.VenueWeb},
		{"Journal of Applied Psychology", model.VenueJournal},
		{"", model.VenueOther},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, InferVenueType(tt.venue), "venue %q", tt.venue)
	}
}
