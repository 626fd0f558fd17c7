package credibility

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Lists holds the venue reputation vocabularies. They are matched
// case-insensitively as substrings of the venue name.
type Lists struct {
	HighImpactVenues   []string `yaml:"high_impact_venues"`
	KnownPublishers    []string `yaml:"known_publishers"`
	PeerReviewKeywords []string `yaml:"peer_review_keywords"`
}

// DefaultLists returns the built-in reputation vocabularies.
func DefaultLists() Lists {
	return Lists{
		HighImpactVenues: []string{
			"nature", "science", "cell", "lancet",
			"new england journal of medicine", "nejm",
			"jama", "proceedings of the national academy",
		},
		KnownPublishers: []string{
			"ieee", "acm", "springer", "elsevier", "wiley",
			"oxford university press", "cambridge university press",
			"taylor & francis", "sage",
		},
		PeerReviewKeywords: []string{
			"peer-reviewed", "peer reviewed", "refereed",
			"journal of", "transactions on", "annals of",
		},
	}
}

// LoadLists reads reputation lists from a YAML file, filling any list
// left empty from the defaults.
func LoadLists(path string) (Lists, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Lists{}, eris.Wrapf(err, "credibility: read lists %s", path)
	}
	var lists Lists
	if err := yaml.Unmarshal(data, &lists); err != nil {
		return Lists{}, eris.Wrap(err, "credibility: parse lists")
	}
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
	return lists, nil
}
