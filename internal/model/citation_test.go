package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCitationIsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		c    Citation
		want bool
	}{
		{"all populated", Citation{Title: "Deep Learning", Authors: []string{"Smith, J."}, Year: 2016}, false},
		{"missing title", Citation{Authors: []string{"Smith, J."}, Year: 2016}, true},
		{"missing authors", Citation{Title: "Deep Learning", Year: 2016}, true},
		{"missing year", Citation{Title: "Deep Learning", Authors: []string{"Smith, J."}}, true},
		{"empty authors and no year", Citation{Title: "Deep Learning"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.c.IsIncomplete())
		})
	}
}

func TestFirstAuthor(t *testing.T) {
	c := Citation{Authors: []string{"Vaswani, Ashish", "Shazeer, Noam"}}
	assert.Equal(t, "Vaswani, Ashish", c.FirstAuthor())

	var empty Citation
	assert.Equal(t, "", empty.FirstAuthor())
}
