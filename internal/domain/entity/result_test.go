package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() EstimateResult {
	current := UsageBreakdown{Case: CurrentCase, Categories: []CategoryUsage{
		{Category: CategoryHeating, GasKWh: 8000, EnergyKWh: 8000, EmissionsKg: 1680},
		{Category: CategoryHotWater, GasKWh: 4000, EnergyKWh: 4000, EmissionsKg: 840},
		{Category: CategoryCooking},
		{Category: CategoryEV},
		{Category: CategoryOtherElec, ElecKWh: 3000, EnergyKWh: 3000, EmissionsKg: 408},
	}}
	hp := UsageBreakdown{Case: "Typical HP Install", Categories: []CategoryUsage{
		{Category: CategoryHeating, ElecKWh: 2000, EnergyKWh: 2000, EmissionsKg: 272},
		{Category: CategoryHotWater, ElecKWh: 1300, EnergyKWh: 1300, EmissionsKg: 176.8},
		{Category: CategoryCooking},
		{Category: CategoryEV},
		{Category: CategoryOtherElec, ElecKWh: 3000, EnergyKWh: 3000, EmissionsKg: 408},
	}}
	return EstimateResult{
		Cases: []CaseResult{
			{Usage: current, Cost: NewCostBreakdown(CurrentCase, 124.29, 754.8, 196.07, 790.5)},
			{Usage: hp, Cost: NewCostBreakdown("Typical HP Install", 0, 0, 196.07, 1660.5)},
		},
	}
}

func TestEstimateResultRows(t *testing.T) {
	r := sampleResult()

	energy := r.EnergyRows()
	assert.Len(t, energy, 10)
	nonZero := NonZeroEnergyRows(energy)
	assert.Len(t, nonZero, 6)
	for _, row := range nonZero {
		assert.NotEqual(t, CategoryEV, row.Category)
		assert.NotEqual(t, CategoryCooking, row.Category)
	}

	costs := r.CostRows()
	assert.Len(t, costs, 8)
	assert.Len(t, NonZeroCostRows(costs), 6)

	assert.Equal(t, []Category{CategoryHeating, CategoryHotWater, CategoryOtherElec}, r.PresentCategories())
}

func TestNewCostBreakdownTotal(t *testing.T) {
	c := NewCostBreakdown("x", 1, 2, 3, 4.5)
	assert.Equal(t, 10.5, c.Total)
	assert.Equal(t, 3.0, c.Get(ChargeElecStanding))
	assert.Len(t, c.Charges, len(ChargeTypes))
}

func TestTariffMarshalJSON(t *testing.T) {
	data, err := json.Marshal(DefaultTariff())
	require.NoError(t, err)

	var doc map[string]map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, string(TariffFlat), doc["electricity"]["kind"])
	assert.Equal(t, string(TariffThreeBand), doc["heat_pump"]["kind"])
	assert.Contains(t, doc["heat_pump"]["rates"], "peak")
	assert.InDelta(t, PriceCapGasUnit, doc["gas"]["unit_pence_per_kwh"], 1e-9)
}

func TestTariffJSONRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		tariff Tariff
	}{
		{"default", DefaultTariff()},
		{"two-band", Tariff{
			Gas: GasTariff{StandingPencePerDay: 30, UnitPencePerKWh: 6},
			Electricity: TwoBandTariff{
				StandingPencePerDay:     50,
				StandardPencePerKWh:     28,
				OffPeak:                 Band{UnitPencePerKWh: 8.5, HoursPerDay: 7, OtherShare: 0.3},
				OffPeakHeatDemandFactor: NightOffPeakHeatDemandFactor,
			},
			HeatPump: DefaultHeatPumpTariff(50),
		}},
		{"no heat pump tariff", Tariff{Electricity: FlatTariff{StandingPencePerDay: 50, UnitPencePerKWh: 25}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.tariff)
			require.NoError(t, err)

			var got Tariff
			require.NoError(t, json.Unmarshal(data, &got))
			assert.Equal(t, tt.tariff, got)
		})
	}
}

func TestTariffUnmarshalJSON_UnknownKind(t *testing.T) {
	var got Tariff
	err := json.Unmarshal([]byte(`{"electricity":{"kind":"four-band","rates":{}}}`), &got)
	assert.ErrorContains(t, err, "four-band")
}

func TestEstimateResultJSONRoundTrip(t *testing.T) {
	want := sampleResult()
	want.GeneratedAt = time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)
	want.Inputs = DefaultInputs()
	want.Inputs.Household.EV = &EVCharging{KWhPerCharge: 40, ChargesPerWeek: 2}
	want.Inputs.Household.Secondary = &SecondaryHeatSource{
		Type:        SecondaryElectric,
		Disposition: SecondaryRemoved,
		AnnualKWh:   600,
	}

	data, err := json.Marshal(want)
	require.NoError(t, err)

	var got EstimateResult
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want.Inputs, got.Inputs)
	assert.Equal(t, want.Cases, got.Cases)
	assert.True(t, want.GeneratedAt.Equal(got.GeneratedAt))
}
