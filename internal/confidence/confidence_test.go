package confidence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func sim(v float64) *float64 { return &v }

func TestScoreBounds(t *testing.T) {
	cases := []struct {
		hasParser, hasOcr, geom bool
		sim                     *float64
	}{
		{true, true, true, sim(0.95)},
		{true, false, false, nil},
		{false, true, true, sim(0.1)},
		{false, false, false, nil},
	}
	for _, c := range cases {
		v := Score(c.hasParser, c.hasOcr, c.sim, c.geom)
		assert.GreaterOrEqual(t, v, 0.0)
		assert.LessOrEqual(t, v, 1.0)
	}
}

func TestScoreHighSimilarityAndGeometry(t *testing.T) {
	v := Score(true, true, sim(0.95), true)
	assert.Equal(t, 1.0, v)
}

func TestScoreNoContributionIsZero(t *testing.T) {
	v := Score(false, false, nil, false)
	assert.Equal(t, 0.0, v)
}
