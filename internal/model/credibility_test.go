package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQualityForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  QualityLevel
	}{
		{10.0, QualityExcellent},
		{9.0, QualityExcellent},
		{8.9, QualityHigh},
		{7.5, QualityHigh},
		{6.0, QualityGood},
		{5.9, QualityModerate},
		{4.0, QualityModerate},
		{3.9, QualityLow},
		{2.0, QualityLow},
		{1.9, QualityVeryLow},
		{0.0, QualityVeryLow},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, QualityForScore(tt.score), "score %.1f", tt.score)
	}
}
