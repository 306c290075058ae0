// Package calculator splits a household's annual energy use into end uses
// and projects it onto heat pump installations.
package calculator

const (
	// WaterSpecificHeat is J per kg per °C; a litre of water is taken as 1 kg.
	WaterSpecificHeat = 4200
	JoulesPerKWh      = 3600 * 1000

	DaysPerYear = 365
	// StandingDaysPerYear annualises daily standing charges.
	StandingDaysPerYear = 365.25
	PencePerPound       = 100

	// FreeSummerHotWaterFraction is the share of hot water supplied free by
	// solar over the four summer months.
	FreeSummerHotWaterFraction = 1.0 / 3.0
)

// EnergyPerLitre is the kWh needed to heat one litre by riseC with a heater
// of efficiency eff.
func EnergyPerLitre(riseC, eff float64) float64 {
	return WaterSpecificHeat * riseC / (JoulesPerKWh * eff)
}

func annualStanding(pencePerDay float64) float64 {
	return pencePerDay * StandingDaysPerYear / PencePerPound
}
