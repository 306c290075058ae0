package entity

// MaxEfficiencyBoost caps the combined heating demand reduction.
const MaxEfficiencyBoost = 1.0

// EfficiencyMeasure is a retrofit that lowers space heating demand.
type EfficiencyMeasure struct {
	ID        string  `json:"id"`
	Label     string  `json:"label"`
	Reduction float64 `json:"reduction"`
}

// CustomMeasureID selects a user-supplied reduction.
const CustomMeasureID = "custom"

// DefaultCustomSaving is used when "custom" is selected without a value.
const DefaultCustomSaving = 0.20

// EfficiencyMeasures lists conservative measured (not quoted) reductions.
var EfficiencyMeasures = []EfficiencyMeasure{
	{ID: "draft-proofing", Label: "Draft proofing and/or door insulation", Reduction: 0.03},
	{ID: "loft-insulation", Label: "Increased loft insulation", Reduction: 0.05},
	{ID: "glazing", Label: "Improved window glazing", Reduction: 0.05},
	{ID: "cavity-wall", Label: "Cavity wall insulation", Reduction: 0.10},
	{ID: "underfloor", Label: "Underfloor insulation", Reduction: 0.10},
	{ID: "solid-wall", Label: "Internal or external solid wall insulation", Reduction: 0.15},
}

// LookupMeasure finds a catalogue measure by id.
func LookupMeasure(id string) (EfficiencyMeasure, bool) {
	for _, m := range EfficiencyMeasures {
		if m.ID == id {
			return m, true
		}
	}
	return EfficiencyMeasure{}, false
}

// SumReductions adds fractional reductions, capped at MaxEfficiencyBoost.
func SumReductions(reductions []float64) float64 {
	total := 0.0
	for _, r := range reductions {
		total += r
	}
	if total > MaxEfficiencyBoost {
		return MaxEfficiencyBoost
	}
	if total < 0 {
		return 0
	}
	return total
}

// PolicyToggles are the choices made for the heat pump scenarios.
type PolicyToggles struct {
	EfficiencyBoost    float64 `json:"efficiency_boost"`
	DisconnectGas      bool    `json:"disconnect_gas"`
	SwitchTariff       bool    `json:"switch_tariff"`
	PeakShutoff        bool    `json:"peak_shutoff"`
	FreeSummerHotWater bool    `json:"free_summer_hot_water"`
}
