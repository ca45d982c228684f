package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexanderramin/capplan/internal/domain"
)

func TestScoresFlag_Set(t *testing.T) {
	var f scoresFlag
	require.NoError(t, f.Set("productRisk=4, discoveryDepth=2"))
	require.NoError(t, f.Set("problemAmbiguity=1"))

	assert.Equal(t, domain.FactorScores{
		"productRisk":      4,
		"discoveryDepth":   2,
		"problemAmbiguity": 1,
	}, f.scores)
	assert.Equal(t, "discoveryDepth=2,problemAmbiguity=1,productRisk=4", f.String())
}

func TestScoresFlag_LaterValueWins(t *testing.T) {
	var f scoresFlag
	require.NoError(t, f.Set("productRisk=2"))
	require.NoError(t, f.Set("productRisk=5"))
	assert.Equal(t, 5.0, f.scores["productRisk"])
}

func TestScoresFlag_Invalid(t *testing.T) {
	cases := []string{"productRisk", "=3", "productRisk=high"}
	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			var f scoresFlag
			assert.Error(t, f.Set(raw))
		})
	}
}
