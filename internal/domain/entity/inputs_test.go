package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatpump-estimator/hp-estimator-go/internal/shared/types"
)

func TestDefaultInputsValidate(t *testing.T) {
	in := DefaultInputs().Clamp()
	require.NoError(t, in.Validate())
	assert.Len(t, in.Devices.Tiers, 2)
}

func TestInputsClamp(t *testing.T) {
	in := DefaultInputs()
	in.Household.ElecTotalKWh = 250000
	in.Household.GasTotalKWh = -10
	in.Household.HotWaterLitresPerDay = 5000
	in.Household.GasCookKWhPerWeek = 400
	in.Household.EV = &EVCharging{KWhPerCharge: 150, ChargesPerWeek: 21}
	in.Household.Secondary = &SecondaryHeatSource{Type: SecondaryGas, Disposition: SecondaryRetained, AnnualKWh: 1e6}
	in.Devices.BoilerHeatingEff = 1.3
	in.Devices.TempRiseC = 0
	in.Devices.Tiers[0].SCOP = 25
	in.Devices.Tiers[1].HotWaterCOP = 0
	in.Tariff.Gas.UnitPencePerKWh = 250
	in.Policy.EfficiencyBoost = 1.4

	out := in.Clamp()

	h := out.Household
	assert.Equal(t, float64(MaxAnnualKWh), h.ElecTotalKWh)
	assert.Zero(t, h.GasTotalKWh)
	assert.Equal(t, float64(MaxLitresPerDay), h.HotWaterLitresPerDay)
	assert.Equal(t, float64(MaxCookKWhPerWeek), h.GasCookKWhPerWeek)
	assert.Equal(t, float64(MaxEVKWhPerCharge), h.EV.KWhPerCharge)
	assert.Equal(t, float64(MaxChargesPerWeek), h.EV.ChargesPerWeek)
	assert.Equal(t, float64(MaxAnnualKWh), h.Secondary.AnnualKWh)
	assert.Equal(t, 1.0, out.Devices.BoilerHeatingEff)
	assert.Equal(t, float64(MinTempRiseC), out.Devices.TempRiseC)
	assert.Equal(t, float64(MaxCOP), out.Devices.Tiers[0].SCOP)
	assert.Equal(t, MinCOP, out.Devices.Tiers[1].HotWaterCOP)
	assert.Equal(t, float64(MaxPencePrice), out.Tariff.Gas.UnitPencePerKWh)
	assert.Equal(t, MaxEfficiencyBoost, out.Policy.EfficiencyBoost)

	// the original is untouched
	assert.Equal(t, 25.0, in.Devices.Tiers[0].SCOP)
	assert.Equal(t, 150.0, in.Household.EV.KWhPerCharge)
	assert.Equal(t, 1e6, in.Household.Secondary.AnnualKWh)
}

func TestInputsClampPeakShare(t *testing.T) {
	in := DefaultInputs()
	tr := DefaultHeatPumpTariff(50)
	tr.OffPeak.OtherShare = 0.7
	tr.Peak.OtherShare = 0.6
	tr.Peak.HoursPerDay = 20
	in.Tariff.HeatPump = tr

	out := in.Clamp()
	hp, ok := out.Tariff.HeatPump.(ThreeBandTariff)
	require.True(t, ok)
	assert.InDelta(t, 0.3, hp.Peak.OtherShare, 1e-9)
	assert.InDelta(t, 0, hp.StandardShare(), 1e-9)
	assert.Equal(t, float64(MaxBandHours), hp.Peak.HoursPerDay)
}

func TestInputsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(in *Inputs)
		wantErr error
	}{
		{"zero heating efficiency", func(in *Inputs) { in.Devices.BoilerHeatingEff = 0 }, types.ErrInvalidEfficiency},
		{"zero hot water efficiency", func(in *Inputs) { in.Devices.BoilerHotWaterEff = 0 }, types.ErrInvalidEfficiency},
		{"zero immersion efficiency", func(in *Inputs) { in.Devices.ImmersionEff = 0 }, types.ErrInvalidEfficiency},
		{"no tiers", func(in *Inputs) { in.Devices.Tiers = nil }, types.ErrNoTiers},
		{"duplicate tier", func(in *Inputs) {
			in.Devices.Tiers = append(in.Devices.Tiers, in.Devices.Tiers[0])
		}, types.ErrDuplicateTier},
		{"unknown hot water", func(in *Inputs) { in.Household.HotWaterSource = "solar" }, types.ErrUnknownHotWaterSource},
		{"unknown secondary", func(in *Inputs) {
			in.Household.Secondary = &SecondaryHeatSource{Type: "wood", Disposition: SecondaryRetained}
		}, types.ErrUnknownSecondaryHeat},
		{"unknown disposition", func(in *Inputs) {
			in.Household.Secondary = &SecondaryHeatSource{Type: SecondaryOther, Disposition: "sold"}
		}, types.ErrUnknownSecondaryHeat},
		{"bands longer than a day", func(in *Inputs) {
			tr := DefaultHeatPumpTariff(50)
			tr.OffPeak.HoursPerDay = 14
			tr.Peak.HoursPerDay = 12
			in.Tariff.HeatPump = tr
		}, types.ErrInvalidTariff},
		{"missing electricity", func(in *Inputs) { in.Tariff.Electricity = nil }, types.ErrInvalidTariff},
		{"valid secondary", func(in *Inputs) {
			in.Household.Secondary = &SecondaryHeatSource{Type: SecondaryOther, Disposition: SecondaryRemoved, AnnualKWh: 800}
		}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := DefaultInputs()
			tt.mutate(&in)
			err := in.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
