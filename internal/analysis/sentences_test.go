package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitSentences(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "basic split",
			text: "The study was large. It ran for two years.",
			want: []string{"The study was large.", "It ran for two years."},
		},
		{
			name: "abbreviations protected",
			text: "Dr. Smith et al. collected the data. Results followed prior work (cf. early studies).",
			want: []string{
				"Dr. Smith et al. collected the data.",
				"Results followed prior work (cf. early studies).",
			},
		},
		{
			name: "short fragments dropped",
			text: "Ok. This sentence is long enough to keep.",
			want: []string{"This sentence is long enough to keep."},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitSentences(tt.text))
		})
	}
}
