package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/scholar-cli/internal/model"
)

func TestExtractEthics(t *testing.T) {
	content := "All participants provided informed consent and could withdraw at any time. " +
		"The study was approved by the Stanford University Institutional Review Board (protocol 42). " +
		"Interview transcripts were anonymized and stored on an encrypted server."

	info := ExtractEthics(content)

	categories := make([]model.EthicalCategory, 0, len(info.Considerations))
	for _, c := range info.Considerations {
		categories = append(categories, c.Category)
		assert.GreaterOrEqual(t, c.Confidence, 0.5)
		assert.LessOrEqual(t, c.Confidence, 1.0)
	}
	assert.Contains(t, categories, model.EthicsInformedConsent)
	assert.Contains(t, categories, model.EthicsConfidentiality)
	assert.Contains(t, categories, model.EthicsDataSecurity)

	require.Len(t, info.IRBApprovals, 1)
	assert.Equal(t, "Stanford University Institutional Review Board", info.IRBApprovals[0].Board)
	assert.InDelta(t, 0.9, info.IRBApprovals[0].Confidence, 0.001)

	measures := make([]string, 0, len(info.Safeguards))
	for _, s := range info.Safeguards {
		measures = append(measures, s.Measure)
	}
	assert.Contains(t, measures, "could withdraw")
	assert.Contains(t, measures, "anonymized")
	assert.Contains(t, measures, "encrypted")
}

func TestExtractEthicsIRBWithoutBoardName(t *testing.T) {
	info := ExtractEthics("Ethical approval was obtained before recruitment began.")

	require.Len(t, info.IRBApprovals, 1)
	assert.Empty(t, info.IRBApprovals[0].Board)
	assert.InDelta(t, 0.7, info.IRBApprovals[0].Confidence, 0.001)
}

func TestExtractEthicsCategories(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    model.EthicalCategory
	}{
		{"deception", "Participants were debriefed after the deception was revealed.", model.EthicsDeception},
		{"animal welfare", "The IACUC reviewed all animal care procedures.", model.EthicsAnimalWelfare},
		{"conflict of interest", "The authors declare no conflict of interest.", model.EthicsConflictOfInterest},
		{"vulnerable population", "Extra protections applied because minors took part.", model.EthicsVulnerablePopulation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ExtractEthics(tt.content)
			require.NotEmpty(t, info.Considerations)
			assert.Equal(t, tt.want, info.Considerations[0].Category)
		})
	}
}

func TestExtractEthicsNoisyInput(t *testing.T) {
	info := ExtractEthics("completely unrelated text about astronomy observations")
	assert.Empty(t, info.Considerations)
	assert.Empty(t, info.IRBApprovals)
	assert.Empty(t, info.Safeguards)
}
