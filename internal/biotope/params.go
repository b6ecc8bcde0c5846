package biotope

import (
	"strings"

	"galapagos/internal/core"
)

// Parameters reports the active configuration grouped for display.
func (b *Biotope) Parameters() core.ParameterSnapshot {
	c := b.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", c.Width),
				core.IntParam("h", "Height", c.Height),
				core.Int64Param("seed", "Seed", c.Seed),
				core.IntParam("round", "Round", b.round),
			},
		},
		{
			Name: "Finches",
			Params: []core.Parameter{
				core.FloatParam("breeding_probability", "Breeding probability", c.BreedingProbability),
				core.IntParam("initial_vitality", "Initial vitality", c.InitialVitality),
				core.IntParam("max_vitality", "Max vitality", c.MaxVitality),
				core.IntParam("vitality_per_round", "Vitality per cleaning", c.VitalityPerRound),
				core.IntParam("upkeep_per_round", "Upkeep per round", c.UpkeepPerRound),
				core.IntParam("cleaning_cost", "Cleaning cost", c.CleaningCost),
				core.IntParam("min_max_age", "Min max age", c.MinMaxAge),
				core.IntParam("max_max_age", "Max max age", c.MaxMaxAge),
			},
		},
		{
			Name: "Population",
			Params: []core.Parameter{
				core.IntParam("finches_per_kind", "Finches per kind", c.FinchesPerKind),
				core.StringParam("kinds", "Kinds", strings.Join(c.Kinds, ",")),
			},
		},
	}}
}
