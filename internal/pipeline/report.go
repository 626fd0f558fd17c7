package pipeline

import (
	"fmt"
	"strings"

	"github.com/sells-group/scholar-cli/internal/citation"
	"github.com/sells-group/scholar-cli/internal/model"
)

// FormatReport generates a human-readable analysis report. Incomplete
// citations keep their marker; credibility warnings are listed next to
// each source.
func FormatReport(a *model.Analysis, style citation.Style) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Analysis Report: %s\n", titleOf(a.Document))
	if a.Document.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", a.Document.Source)
	}
	if a.RunID != "" {
		fmt.Fprintf(&b, "Run: %s\n", a.RunID)
	}
	b.WriteString("\n")

	// Summary.
	b.WriteString("## Summary\n")
	fmt.Fprintf(&b, "- Citations: %d\n", len(a.Citations))
	fmt.Fprintf(&b, "- Statistical measures: %d\n", len(a.Measures))
	fmt.Fprintf(&b, "- Theories: %d\n", len(a.Theories))
	fmt.Fprintf(&b, "- Ethical considerations: %d\n\n", len(a.Ethics))

	// Sources with credibility annotations.
	b.WriteString("## Sources\n")
	if len(a.Citations) == 0 {
		b.WriteString("No citations extracted.\n\n")
	} else {
		for i, c := range a.Citations {
			fmt.Fprintf(&b, "- %s\n", citation.Format(&c, style, i+1))
			if i < len(a.Credibility) {
				cred := a.Credibility[i]
				fmt.Fprintf(&b, "  Credibility: %.1f/10 (%s)\n", cred.Score, cred.OverallQuality)
				for _, w := range cred.Warnings {
					fmt.Fprintf(&b, "  Warning: %s\n", w)
				}
			}
		}
		b.WriteString("\n")
	}

	// Methodology.
	if a.Methodology != nil && a.Methodology.MethodologyType != model.MethodUnknown {
		b.WriteString("## Methodology\n")
		fmt.Fprintf(&b, "- Design: %s (confidence %.1f)\n",
			strings.ReplaceAll(string(a.Methodology.MethodologyType), "_", " "),
			a.Methodology.Confidence)
		if a.Methodology.SampleInfo != "" {
			fmt.Fprintf(&b, "- Sample: %s\n", a.Methodology.SampleInfo)
		}
		if len(a.Methodology.AnalysisTechniques) > 0 {
			fmt.Fprintf(&b, "- Techniques: %s\n", strings.Join(a.Methodology.AnalysisTechniques, ", "))
		}
		for _, lim := range a.Methodology.Limitations {
			fmt.Fprintf(&b, "- Limitation: %s\n", lim)
		}
		b.WriteString("\n")
	}

	// Theories.
	if len(a.Theories) > 0 {
		b.WriteString("## Theoretical Frameworks\n")
		for _, th := range a.Theories {
			fmt.Fprintf(&b, "- %s (%s, confidence %.1f)\n", th.TheoryName, th.TheoryType, th.Confidence)
			if len(th.KeyConstructs) > 0 {
				fmt.Fprintf(&b, "  Constructs: %s\n", strings.Join(th.KeyConstructs, ", "))
			}
		}
		b.WriteString("\n")
	}

	// Ethics.
	if len(a.Ethics) > 0 {
		b.WriteString("## Ethical Considerations\n")
		for _, e := range a.Ethics {
			fmt.Fprintf(&b, "- [%s] %s\n", e.Category, e.Statement)
		}
		b.WriteString("\n")
	}

	// Statistics.
	if len(a.Measures) > 0 || len(a.Tests) > 0 {
		b.WriteString("## Statistics\n")
		for _, m := range a.Measures {
			fmt.Fprintf(&b, "- %s: %s\n", m.Type, m.Raw)
		}
		if len(a.Tests) > 0 {
			names := make([]string, len(a.Tests))
			for i, tst := range a.Tests {
				names[i] = string(tst)
			}
			fmt.Fprintf(&b, "- Tests identified: %s\n", strings.Join(names, ", "))
		}
		b.WriteString("\n")
	}

	return b.String()
}
