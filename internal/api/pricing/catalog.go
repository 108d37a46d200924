// Package pricing holds the immutable travel style catalog used by the
// budget estimator.
package pricing

import (
	"errors"
	"fmt"
	"slices"

	"github.com/FACorreiaa/go-eje-planner/internal/types"
)

var ErrUnknownStyle = errors.New("unknown travel style")

var travelStyles = []types.TravelStyle{
	{
		ID:          types.StyleBudget,
		Label:       "Económico",
		Description: "Auto pequeño/económico, hostales con parqueadero, comidas típicas.",
		Costs: []types.CostItem{
			{Category: "Alojamiento", CostLow: 60000, CostHigh: 100000, PerPerson: false, Frequency: types.FrequencyDaily},
			{Category: "Alimentación", CostLow: 45000, CostHigh: 65000, PerPerson: true, Frequency: types.FrequencyDaily},
			{Category: "Entradas/Actividades", CostLow: 30000, CostHigh: 50000, PerPerson: true, Frequency: types.FrequencyDaily},
			{Category: "Gasolina Local/Parqueo", CostLow: 15000, CostHigh: 25000, PerPerson: false, Frequency: types.FrequencyDaily},
			{Category: "Ruta Bogotá (Gas+Peajes)", CostLow: 450000, CostHigh: 550000, PerPerson: false, Frequency: types.FrequencyOnce},
		},
	},
	{
		ID:          types.StyleMid,
		Label:       "Gama Media",
		Description: "Camioneta/Sedán, hoteles boutique, buenos restaurantes.",
		Costs: []types.CostItem{
			{Category: "Alojamiento", CostLow: 180000, CostHigh: 350000, PerPerson: false, Frequency: types.FrequencyDaily},
			{Category: "Alimentación", CostLow: 80000, CostHigh: 110000, PerPerson: true, Frequency: types.FrequencyDaily},
			{Category: "Entradas/Tours", CostLow: 70000, CostHigh: 120000, PerPerson: true, Frequency: types.FrequencyDaily},
			{Category: "Gasolina Local/Parqueo", CostLow: 30000, CostHigh: 50000, PerPerson: false, Frequency: types.FrequencyDaily},
			{Category: "Ruta Bogotá (Gas+Peajes)", CostLow: 550000, CostHigh: 700000, PerPerson: false, Frequency: types.FrequencyOnce},
		},
	},
	{
		ID:          types.StyleLuxury,
		Label:       "Premium",
		Description: "SUV de lujo, hoteles campestres 5 estrellas, experiencias privadas.",
		Costs: []types.CostItem{
			{Category: "Alojamiento", CostLow: 450000, CostHigh: 950000, PerPerson: false, Frequency: types.FrequencyDaily},
			{Category: "Alimentación", CostLow: 150000, CostHigh: 280000, PerPerson: true, Frequency: types.FrequencyDaily},
			{Category: "Exp. Exclusivas", CostLow: 150000, CostHigh: 350000, PerPerson: true, Frequency: types.FrequencyDaily},
			{Category: "Gasolina Local/Valet", CostLow: 50000, CostHigh: 100000, PerPerson: false, Frequency: types.FrequencyDaily},
			{Category: "Ruta Bogotá (Gas+Peajes)", CostLow: 700000, CostHigh: 900000, PerPerson: false, Frequency: types.FrequencyOnce},
		},
	},
}

// Styles returns every travel style in catalog order. The result is a copy.
func Styles() []types.TravelStyle {
	out := make([]types.TravelStyle, len(travelStyles))
	for i, s := range travelStyles {
		out[i] = clone(s)
	}
	return out
}

// Lookup returns the style with the given id.
func Lookup(id types.StyleID) (types.TravelStyle, error) {
	for _, s := range travelStyles {
		if s.ID == id {
			return clone(s), nil
		}
	}
	return types.TravelStyle{}, fmt.Errorf("%w: %q", ErrUnknownStyle, id)
}

// MustStyle is Lookup for ids that can only come from the closed style set.
// A miss is a programming error and panics.
func MustStyle(id types.StyleID) types.TravelStyle {
	s, err := Lookup(id)
	if err != nil {
		panic(err)
	}
	return s
}

func IsValidStyle(id types.StyleID) bool {
	return slices.ContainsFunc(travelStyles, func(s types.TravelStyle) bool { return s.ID == id })
}

func clone(s types.TravelStyle) types.TravelStyle {
	s.Costs = slices.Clone(s.Costs)
	return s
}
