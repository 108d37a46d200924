package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

func TestStyles_CatalogShape(t *testing.T) {
	styles := Styles()
	require.Len(t, styles, 3)
	assert.Equal(t, types.StyleBudget, styles[0].ID)
	assert.Equal(t, types.StyleMid, styles[1].ID)
	assert.Equal(t, types.StyleLuxury, styles[2].ID)

	for _, s := range styles {
		t.Run(string(s.ID), func(t *testing.T) {
			require.NotEmpty(t, s.Costs)
			seen := map[string]bool{}
			for _, c := range s.Costs {
				assert.False(t, seen[c.Category], "duplicate category %q", c.Category)
				seen[c.Category] = true
				assert.GreaterOrEqual(t, c.CostLow, 0.0)
				assert.LessOrEqual(t, c.CostLow, c.CostHigh)
				assert.Contains(t, []types.Frequency{types.FrequencyDaily, types.FrequencyOnce}, c.Frequency)
			}
		})
	}
}

func TestStyles_ReturnsCopies(t *testing.T) {
	styles := Styles()
	styles[0].Costs[0].CostLow = -1
	styles[0].Label = "changed"

	again := Styles()
	assert.Equal(t, 60000.0, again[0].Costs[0].CostLow)
	assert.Equal(t, "Económico", again[0].Label)
}

func TestLookup(t *testing.T) {
	s, err := Lookup(types.StyleMid)
	require.NoError(t, err)
	assert.Equal(t, "Gama Media", s.Label)
	assert.Equal(t, "Alojamiento", s.Costs[0].Category)

	_, err = Lookup("backpacker")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestMustStyle(t *testing.T) {
	assert.NotPanics(t, func() { MustStyle(types.StyleLuxury) })
	assert.Panics(t, func() { MustStyle("backpacker") })
}

func TestIsValidStyle(t *testing.T) {
	assert.True(t, IsValidStyle(types.StyleBudget))
	assert.False(t, IsValidStyle(""))
}
