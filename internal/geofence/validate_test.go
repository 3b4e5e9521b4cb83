package geofence

import (
	"testing"

	"storesense/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Run("valid circle", func(t *testing.T) {
		assert.NoError(t, Validate(Circle{Center: center, RadiusM: 50}))
	})

	t.Run("zero or negative radius rejected", func(t *testing.T) {
		assert.ErrorIs(t, Validate(Circle{Center: center}), ErrInvalidDefinition)
		assert.ErrorIs(t, Validate(Circle{Center: center, RadiusM: -10}), ErrInvalidDefinition)
	})

	t.Run("polygon needs three vertices", func(t *testing.T) {
		assert.ErrorIs(t, Validate(Polygon{}), ErrInvalidDefinition)
		assert.ErrorIs(t, Validate(Polygon{Vertices: []geo.Point{center, offsetM(center, 10, 0)}}), ErrInvalidDefinition)
		assert.NoError(t, Validate(squareAround(center, 40)))
	})

	t.Run("oversized circle validates but is suspicious", func(t *testing.T) {
		big := Circle{Center: center, RadiusM: 800}
		require.NoError(t, Validate(big))
		assert.True(t, IsSuspicious(big))
		assert.False(t, IsSuspicious(Circle{Center: center, RadiusM: 500}))
	})
}

func TestSynthesizeDefault(t *testing.T) {
	cases := []struct {
		chain string
		name  string
		want  float64
	}{
		{"Walmart", "Walmart Supercenter #1044", 100},
		{"Costco", "Costco Wholesale", 100},
		{"CVS", "CVS Pharmacy", 30},
		{"Walgreens", "Walgreens #512", 30},
		{"", "Joe's Corner Market", 50},
		{"", "Target Store T-2141", 100}, // chain missing, name carries the category
	}
	for _, tc := range cases {
		fence := SynthesizeDefault(center, tc.chain, tc.name)
		assert.Equal(t, tc.want, fence.RadiusM, "%s / %s", tc.chain, tc.name)
		assert.Equal(t, center, fence.Center)
		assert.NoError(t, Validate(fence), "synthesized fences must always validate")
		assert.False(t, IsSuspicious(fence))
	}
}
